package main

import (
	"io"
	"strings"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
)

// Node is one code of the lineage tree, children in insertion order.
type Node struct {
	Code     string
	Children []*Node
	seen     map[string]bool
}

func (node *Node) add(child *Node) {
	if node.seen[child.Code] {
		return
	}
	node.seen[child.Code] = true
	node.Children = append(node.Children, child)
}

// BuildTree links status -> run -> test -> biological sample -> entity -> project
// and returns the project node.
func BuildTree(records []*VCRecord, project string) *Node {
	var child, parent []string
	for _, r := range records {
		child, parent = append(child, r.Status), append(parent, r.NGSCode)
	}
	for _, r := range records {
		child, parent = append(child, r.NGSCode), append(parent, r.NGSParent)
	}
	for _, r := range records {
		child, parent = append(child, r.TestCode), append(parent, r.TestParent)
	}
	for _, r := range records {
		child, parent = append(child, r.BiolCode), append(parent, r.BiolParent)
	}
	for _, r := range records {
		child, parent = append(child, r.BiolParent), append(parent, r.Project)
	}

	var items = make(map[string]*Node)
	var getNode = func(code string) *Node {
		node, ok := items[code]
		if !ok {
			node = &Node{Code: code, seen: make(map[string]bool)}
			items[code] = node
		}
		return node
	}
	getNode(project)
	for i := range child {
		getNode(parent[i]).add(getNode(child[i]))
	}
	return items[project]
}

// WriteTree prints the children of root depth first, one "|_code" per line,
// indented by one tab per level.
func WriteTree(w io.Writer, root *Node) {
	writeTree(w, root, 0, map[*Node]bool{root: true})
}

func writeTree(w io.Writer, node *Node, indent int, path map[*Node]bool) {
	for _, child := range node.Children {
		fmtUtil.Fprintf(w, "%s|_%s\n", strings.Repeat("\t", indent), child.Code)
		// lineage loops in the export would recurse forever
		if path[child] {
			continue
		}
		path[child] = true
		writeTree(w, child, indent+1, path)
		delete(path, child)
	}
}
