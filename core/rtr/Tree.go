package rtr

import (
	"github.com/rohanthewiz/serr"
	"github.com/trollfot/horsetrail/types"
)

// Tree is the route trie: templates go in through Add, request paths come
// back out of Lookup with their bound variables and the registered payload.
//
// The tree is built once (or incrementally) and then queried. Lookups only
// read node state, so any number of them may run concurrently over a stable
// tree; callers that keep adding templates while matching must serialize
// Add against Lookup themselves.
type Tree struct {
	root     treeNode
	registry *types.Registry
}

// New creates an empty tree. A nil registry gets the built-in type set.
func New(reg *types.Registry) *Tree {
	if reg == nil {
		reg = types.NewRegistry()
	}
	return &Tree{registry: reg}
}

// Add compiles the template and inserts one node per path level, reusing
// existing nodes where the levels already exist. The payload is attached to
// the terminal node; re-adding a template merges the new payload's keys into
// the existing one, later keys winning.
//
// A template that is empty after trimming slashes is silently ignored.
// A malformed template (unterminated placeholder, fragment that does not
// compile) is rejected here and leaves the tree untouched.
func (tree *Tree) Add(template string, payload Payload) error {
	levels, err := tokenize(template)
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		return nil
	}

	// Compile every level before touching the trie so a bad level cannot
	// leave a partial chain behind.
	segments := make([]*Segment, len(levels))
	for i, tokens := range levels {
		seg, cErr := compileSegment(tokens, i == len(levels)-1, tree.registry)
		if cErr != nil {
			return serr.Wrap(cErr, "template", template)
		}
		segments[i] = seg
	}

	node := &tree.root
	for _, seg := range segments {
		node = node.child(seg)
	}
	node.segment.attachPayload(payload)

	return nil
}

// Lookup resolves a request path against the tree.
//
// On success it returns the variables bound by the winning template and
// that template's payload. found is false when no template covers the path;
// that is a first-class outcome, not an error. err is non-nil only when a
// converter rejected a syntactically matched capture, which aborts the
// search entirely.
func (tree *Tree) Lookup(path string) (vars map[string]any, payload Payload, found bool, err error) {
	levels := splitLevels(path)
	if len(levels) == 0 {
		return nil, nil, false, nil
	}

	return tree.root.match(levels)
}
