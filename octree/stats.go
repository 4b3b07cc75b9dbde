package octree

// NodeStats summarizes the structure of a subtree.
type NodeStats struct {
	Branches    int   `json:"branches"`
	Leaves      int   `json:"leaves"`
	EmptyLeaves int   `json:"emptyLeaves"`
	Height      uint8 `json:"height"`
}

// Nodes returns the total number of nodes.
func (s NodeStats) Nodes() int {
	return s.Branches + s.Leaves
}

// Stats walks the subtree rooted at n with an explicit stack and returns its
// statistics.
func Stats(n Node) NodeStats {
	type frame struct {
		node  Node
		level uint8
	}
	stats := NodeStats{}
	stack := []frame{{n, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if isNil(f.node) {
			continue
		}
		stats.Height = max(stats.Height, f.level)
		switch node := f.node.(type) {
		case *LeafNode:
			stats.Leaves++
			if !node.occupied {
				stats.EmptyLeaves++
			}
		case *BranchNode:
			stats.Branches++
			for _, child := range node.Children {
				stack = append(stack, frame{child, f.level + 1})
			}
		}
	}
	return stats
}
