package rtr

// treeNode is one trie vertex: it owns the compiled segment that brought the
// walk here plus the children for the next path level.
//
// Children are split by dispatch strategy:
//   - exactChildren is keyed by the literal level text, giving O(1) dispatch
//     for levels without placeholders
//   - dynamicChildren holds the regex-backed alternatives, kept ascending by
//     complexity so the least ambiguous template is tried first; siblings of
//     equal complexity stay in insertion order
//
// The root node of a tree owns no segment.
//
// Example structure for the templates users, users/{id:int} and
// users/{id:int}/posts/{slug}:
//
//	root
//	 └── "users" (terminal)
//	      └── {id:int}
//	           └── "posts"
//	                └── {slug} (terminal)
type treeNode struct {
	segment         *Segment
	exactChildren   map[string]*treeNode
	dynamicChildren []*treeNode
}

// child finds or creates the child node owning the given segment.
//
// Exact segments dedup on their literal text; dynamic segments dedup on the
// matcher text, so re-inserted templates reuse the existing chain. Whether a
// reused node also becomes terminal is the caller's concern (attachPayload),
// a terminal flag is never cleared here or anywhere else.
func (node *treeNode) child(seg *Segment) *treeNode {
	if seg.exact {
		if existing, ok := node.exactChildren[seg.literal]; ok {
			return existing
		}

		if node.exactChildren == nil {
			node.exactChildren = make(map[string]*treeNode)
		}

		child := &treeNode{segment: seg}
		node.exactChildren[seg.literal] = child
		return child
	}

	// The hash narrows the scan; the matcher text confirms, so a hash
	// collision cannot silently merge two distinct templates.
	for _, existing := range node.dynamicChildren {
		if existing.segment.key == seg.key &&
			existing.segment.expr.String() == seg.expr.String() {
			return existing
		}
	}

	// Insert after the last sibling of equal or lower complexity so the
	// slice stays sorted and ties resolve by insertion order.
	at := len(node.dynamicChildren)
	for i, existing := range node.dynamicChildren {
		if existing.segment.complexity > seg.complexity {
			at = i
			break
		}
	}

	child := &treeNode{segment: seg}
	node.dynamicChildren = append(node.dynamicChildren, nil)
	copy(node.dynamicChildren[at+1:], node.dynamicChildren[at:])
	node.dynamicChildren[at] = child
	return child
}

// match resolves the remaining path levels against this node's children.
//
// This is a depth-first backtracking search. The exact child, when present,
// is always the first candidate since literal dispatch is unambiguous and
// cheap; the dynamic candidates follow in ascending complexity. A candidate
// that matches the current level but cannot complete the rest of the path
// simply yields to the next sibling.
//
// Bound variables are collected on the unwind of the successful branch, so
// abandoned candidates never leave stale bindings behind. A converter error
// is not a failed candidate: it aborts the whole lookup.
func (node *treeNode) match(levels []string) (vars map[string]any, payload Payload, found bool, err error) {
	current := levels[0]
	isLast := len(levels) == 1

	if child, ok := node.exactChildren[current]; ok {
		if isLast {
			if child.segment.terminal {
				return make(map[string]any), child.segment.payload, true, nil
			}
			// Not a template end here; a dynamic sibling may still finish.
		} else {
			vars, payload, found, err = child.match(levels[1:])
			if err != nil || found {
				return vars, payload, found, err
			}
		}
	}

	for _, child := range node.dynamicChildren {
		seg := child.segment

		submatch := seg.expr.FindStringSubmatch(current)
		if submatch == nil {
			continue
		}

		if isLast {
			if !seg.terminal {
				continue
			}

			vars = make(map[string]any)
			if err = seg.bind(vars, submatch); err != nil {
				return nil, nil, false, err
			}
			return vars, seg.payload, true, nil
		}

		vars, payload, found, err = child.match(levels[1:])
		if err != nil {
			return nil, nil, false, err
		}
		if !found {
			continue
		}

		if err = seg.bind(vars, submatch); err != nil {
			return nil, nil, false, err
		}
		return vars, payload, true, nil
	}

	return nil, nil, false, nil
}
