package htmlutil

import (
	"slices"

	"golang.org/x/net/html"
)

// ElementChildren returns the element children of `node` in document order,
// text and comment nodes are skipped.
func ElementChildren(node *html.Node) []*html.Node {
	var children []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			children = append(children, child)
		}
	}
	return children
}

func isLeaf(node *html.Node) bool {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			return false
		}
	}
	return true
}

// Leaves flattens the element subtrees rooted at `nodes` into their leaf
// elements, depth-first and left to right. If `tags` is not empty only
// leaves with one of the given tag names are kept.
//
// Only leaves are ever returned: an element that has element children is
// descended into, even when its own tag is in `tags`. This means a <form>
// can't be located through Leaves, but its <input>s can.
func Leaves(nodes []*html.Node, tags ...string) []*html.Node {
	var out []*html.Node

	// explicit stack so deeply nested markup can't exhaust the goroutine stack.
	// nodes are pushed in reverse so they pop in document order.
	stack := make([]*html.Node, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i] != nil && nodes[i].Type == html.ElementNode {
			stack = append(stack, nodes[i])
		}
	}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !isLeaf(node) {
			children := ElementChildren(node)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
			continue
		}

		if len(tags) == 0 || slices.Contains(tags, node.Data) {
			out = append(out, node)
		}
	}

	return out
}
