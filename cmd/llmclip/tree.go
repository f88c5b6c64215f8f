package main

import (
	"sort"
	"strings"
)

// treeNode is one entry in a synthesized directory tree.
type treeNode struct {
	name     string
	children []*treeNode
	index    map[string]*treeNode
}

func newTreeNode(name string) *treeNode {
	return &treeNode{name: name, index: make(map[string]*treeNode)}
}

func (n *treeNode) child(name string) *treeNode {
	if c, ok := n.index[name]; ok {
		return c
	}
	c := newTreeNode(name)
	n.index[name] = c
	n.children = append(n.children, c)
	return c
}

func (n *treeNode) add(rel string) {
	cur := n
	for _, part := range strings.Split(rel, "/") {
		cur = cur.child(part)
	}
}

// renderTree post-processes the flat discovery listing into
// tree-indentation form. Paths are inserted in lexical order, so
// sibling order matches the discovery order of the walk. The first
// line is the label (the directory's display path).
func renderTree(label string, dirs, files []string) string {
	all := make([]string, 0, len(dirs)+len(files))
	all = append(all, dirs...)
	all = append(all, files...)
	sort.Strings(all)

	root := newTreeNode(label)
	for _, rel := range all {
		root.add(rel)
	}

	var b strings.Builder
	b.WriteString(label + "\n")
	writeTreeChildren(&b, root, "")
	return b.String()
}

func writeTreeChildren(b *strings.Builder, n *treeNode, prefix string) {
	for i, child := range n.children {
		connector, extension := "├── ", "│   "
		if i == len(n.children)-1 {
			connector, extension = "└── ", "    "
		}
		b.WriteString(prefix + connector + child.name + "\n")
		writeTreeChildren(b, child, prefix+extension)
	}
}
