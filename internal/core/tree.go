package core

import (
	"encoding/json"
	"strings"
)

// TreeNode is a folder in the track hierarchy. Files holds the full
// repository paths of the tracks directly inside this folder; Subfolders
// maps child folder names to their nodes. Subfolder iteration order is
// tracked separately because it becomes meaningful after sorting.
type TreeNode struct {
	Name       string
	Files      []string
	Subfolders map[string]*TreeNode

	order []string
}

// NewTreeNode creates an empty folder node.
func NewTreeNode(name string) *TreeNode {
	return &TreeNode{
		Name:       name,
		Files:      []string{},
		Subfolders: map[string]*TreeNode{},
	}
}

// BuildTree converts a flat list of repository paths into a nested folder
// tree. Only paths under rootPrefix with a ".gpx" suffix participate;
// everything else is ignored. The full original path is kept as the file
// identifier. Duplicate input paths yield duplicate file entries.
func BuildTree(paths []string, rootPrefix string) *TreeNode {
	root := NewTreeNode(rootPrefix)
	prefix := rootPrefix + "/"

	for _, p := range paths {
		if !strings.HasPrefix(p, prefix) || !strings.HasSuffix(p, ".gpx") {
			continue
		}

		segments := strings.Split(strings.TrimPrefix(p, prefix), "/")
		node := root
		for _, seg := range segments[:len(segments)-1] {
			node = node.child(seg)
		}
		// The last segment is always a file, never a folder.
		node.Files = append(node.Files, p)
	}

	return root
}

// child returns the named subfolder, creating it on first use.
func (n *TreeNode) child(name string) *TreeNode {
	if sub, ok := n.Subfolders[name]; ok {
		return sub
	}
	sub := NewTreeNode(name)
	n.Subfolders[name] = sub
	n.order = append(n.order, name)
	return sub
}

// SubfolderNames returns child folder names in iteration order: insertion
// order for a freshly built tree, sorted order after SortTreeByDate.
func (n *TreeNode) SubfolderNames() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// IsEmpty reports whether the node holds no files and no subfolders.
func (n *TreeNode) IsEmpty() bool {
	return len(n.Files) == 0 && len(n.Subfolders) == 0
}

// FileCount counts files transitively contained in the node.
func (n *TreeNode) FileCount() int {
	total := len(n.Files)
	for _, name := range n.order {
		total += n.Subfolders[name].FileCount()
	}
	return total
}

// Walk visits every file identifier in the tree depth-first: a folder's own
// files first, then its subfolders in iteration order.
func (n *TreeNode) Walk(fn func(path string)) {
	for _, f := range n.Files {
		fn(f)
	}
	for _, name := range n.order {
		n.Subfolders[name].Walk(fn)
	}
}

type treeNodeJSON struct {
	Name       string      `json:"name"`
	Files      []string    `json:"files"`
	Subfolders []*TreeNode `json:"subfolders"`
}

// MarshalJSON emits subfolders as an ordered array so consumers see the
// same ordering the sort produced. Go maps would lose it.
func (n *TreeNode) MarshalJSON() ([]byte, error) {
	subs := make([]*TreeNode, 0, len(n.order))
	for _, name := range n.order {
		subs = append(subs, n.Subfolders[name])
	}
	return json.Marshal(treeNodeJSON{
		Name:       n.Name,
		Files:      n.Files,
		Subfolders: subs,
	})
}
