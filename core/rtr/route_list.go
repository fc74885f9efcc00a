package rtr

import (
	"fmt"
	"sort"
)

// RouteList represents a registered template for debugging and inspection
// purposes.
//
// Fields:
//   - Template: the template as stored, normalized of outer slashes
//   - PayloadRef: string rendering of the terminal payload
//
// This is primarily used for:
//   - Route table visualization
//   - Debugging overlapping templates
//   - Testing registration
type RouteList struct {
	Template   string
	PayloadRef string
}

// ListRoutes walks the tree and returns one entry per terminal node, in
// deterministic order (exact children sorted by literal, then dynamic
// children in priority order, depth first).
func (tree *Tree) ListRoutes() []RouteList {
	var routes []RouteList
	tree.root.listInto("", &routes)
	return routes
}

func (node *treeNode) listInto(prefix string, routes *[]RouteList) {
	if node.segment != nil {
		if prefix == "" {
			prefix = node.segment.raw
		} else {
			prefix = prefix + "/" + node.segment.raw
		}

		if node.segment.terminal {
			*routes = append(*routes, RouteList{
				Template:   prefix,
				PayloadRef: fmt.Sprintf("%v", node.segment.payload),
			})
		}
	}

	literals := make([]string, 0, len(node.exactChildren))
	for lit := range node.exactChildren {
		literals = append(literals, lit)
	}
	sort.Strings(literals)

	for _, lit := range literals {
		node.exactChildren[lit].listInto(prefix, routes)
	}

	for _, child := range node.dynamicChildren {
		child.listInto(prefix, routes)
	}
}
