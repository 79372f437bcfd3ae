// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package gridvoronoi

import (
	"slices"
)

// Adjacency returns, for every site, the sorted IDs of the sites whose
// regions touch it. Two regions touch when a cell of one has an 8-neighbor
// in the other, or when a border cell has 8-neighbors in both. Regions
// separated by a border band more than one cell thick are not adjacent.
func (d *Diagram) Adjacency() [][]int {
	n := d.Sites.Len()
	linked := make([]map[int]struct{}, n)
	for i := range linked {
		linked[i] = make(map[int]struct{})
	}
	link := func(a, b int) {
		if a == b || a < 0 || b < 0 || a >= n || b >= n {
			return
		}
		linked[a][b] = struct{}{}
		linked[b][a] = struct{}{}
	}

	var around []int
	for p, id := range d.Field.All() {
		nb := d.Field.Neighborhood(p)
		if id != Border {
			for _, v := range nb.All() {
				if v != Border {
					link(id, v)
				}
			}
			continue
		}
		around = around[:0]
		for _, v := range nb.All() {
			if v != Border && !slices.Contains(around, v) {
				around = append(around, v)
			}
		}
		for i := range around {
			for j := i + 1; j < len(around); j++ {
				link(around[i], around[j])
			}
		}
	}

	adj := make([][]int, n)
	for i, set := range linked {
		adj[i] = make([]int, 0, len(set))
		for j := range set {
			adj[i] = append(adj[i], j)
		}
		slices.Sort(adj[i])
	}
	return adj
}
