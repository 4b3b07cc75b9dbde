package octree

import (
	"strings"
)

// Print returns a bracketed rendering of the subtree rooted at n. Leaves render
// as [leaf <index>], or [leaf -] when empty, and branches as [branch ...] with
// their children in index order.
func Print(n Node) string {
	sb := &strings.Builder{}
	printNode(sb, n)
	return sb.String()
}

func printNode(sb *strings.Builder, n Node) {
	branch, ok := n.(*BranchNode)
	if !ok {
		if n == nil {
			sb.WriteString("[nil]")
			return
		}
		sb.WriteString(n.String())
		return
	}
	sb.WriteString("[branch")
	for _, child := range branch.Children {
		sb.WriteString(" ")
		printNode(sb, child)
	}
	sb.WriteString("]")
}
