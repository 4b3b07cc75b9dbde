package octree

// Clone returns a deep copy of the subtree rooted at n. The copy shares no
// nodes with n, or with itself where n reuses a node under several parents.
// It fails with ErrNilNode if n or any node beneath it is nil.
func Clone(n Node) (Node, error) {
	type frame struct {
		src *BranchNode
		dst *BranchNode
	}
	stack := []frame{}
	copyNode := func(n Node) (Node, error) {
		switch node := n.(type) {
		case *LeafNode:
			if node == nil {
				return nil, ErrNilNode
			}
			return &LeafNode{voxel: node.voxel, occupied: node.occupied}, nil
		case *BranchNode:
			if node == nil {
				return nil, ErrNilNode
			}
			b := &BranchNode{}
			stack = append(stack, frame{node, b})
			return b, nil
		case nil:
			return nil, ErrNilNode
		default:
			return nil, NewUnexpectedNodeError(Branch, n)
		}
	}
	root, err := copyNode(n)
	if err != nil {
		return nil, err
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i, child := range f.src.Children {
			c, err := copyNode(child)
			if err != nil {
				return nil, err
			}
			f.dst.Children[i] = c
		}
	}
	return root, nil
}

// isNil reports whether n is nil, including a nil leaf or branch pointer.
func isNil(n Node) bool {
	switch node := n.(type) {
	case *LeafNode:
		return node == nil
	case *BranchNode:
		return node == nil
	default:
		return n == nil
	}
}
