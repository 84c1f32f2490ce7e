package core

import (
	"sort"
	"time"
)

// DateIndex maps file identifiers to the first timestamp recorded in each
// track. Missing entries read as the Unix epoch.
type DateIndex map[string]time.Time

// DateOf returns the recorded date for path, defaulting to the epoch.
func (d DateIndex) DateOf(path string) time.Time {
	if t, ok := d[path]; ok {
		return t
	}
	return Epoch()
}

// SortTreeByDate returns a new tree ordered by recording date; the input is
// left untouched. Files within a folder are sorted ascending by first
// timestamp (stable, epoch-dated files first). Subfolders are sorted
// descending by the most recent track they transitively contain, so the
// most active folders surface first. Children are fully sorted before the
// parent computes its own ordering.
func SortTreeByDate(node *TreeNode, dates DateIndex) *TreeNode {
	sorted := NewTreeNode(node.Name)

	sorted.Files = append(sorted.Files, node.Files...)
	sort.SliceStable(sorted.Files, func(i, j int) bool {
		return dates.DateOf(sorted.Files[i]).Before(dates.DateOf(sorted.Files[j]))
	})

	type sub struct {
		name   string
		node   *TreeNode
		newest time.Time
	}
	subs := make([]sub, 0, len(node.order))
	for _, name := range node.order {
		child := SortTreeByDate(node.Subfolders[name], dates)
		subs = append(subs, sub{name: name, node: child, newest: newestDate(child, dates)})
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[j].newest.Before(subs[i].newest)
	})

	for _, s := range subs {
		sorted.Subfolders[s.name] = s.node
		sorted.order = append(sorted.order, s.name)
	}
	return sorted
}

// FindMostRecentTrack locates the file with the greatest first timestamp by
// depth-first traversal. Ties keep the first file encountered because the
// comparison is strictly greater-than. The second return is false when no
// file dates after the epoch.
func FindMostRecentTrack(node *TreeNode, dates DateIndex) (string, bool) {
	best := ""
	bestDate := Epoch()

	node.Walk(func(path string) {
		if d := dates.DateOf(path); d.After(bestDate) {
			best = path
			bestDate = d
		}
	})

	return best, best != ""
}

// newestDate returns the most recent track date transitively contained in
// the node, or the epoch for an empty subtree.
func newestDate(node *TreeNode, dates DateIndex) time.Time {
	newest := Epoch()
	node.Walk(func(path string) {
		if d := dates.DateOf(path); d.After(newest) {
			newest = d
		}
	})
	return newest
}
