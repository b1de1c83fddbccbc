package objmesh

import "sort"

// FaceGroups groups vertices that share a coordinate along
// axis.
//
// Each group holds every vertex with that coordinate,
// sorted lexicographically. Groups are returned in the
// order their first vertex appears, without duplicates.
func FaceGroups(axis int, verts [][]float64) [][][]float64 {
	var groups [][][]float64
	for i, v := range verts {
		group := [][]float64{v}
		for j, other := range verts {
			if i != j && other[axis] == v[axis] {
				group = append(group, other)
			}
		}
		sort.SliceStable(group, func(a, b int) bool {
			return lessVertex(group[a], group[b])
		})
		if !containsGroup(groups, group) {
			groups = append(groups, group)
		}
	}
	return groups
}

// InfillRegions splits vertices into faces along z, then
// splits every face into lines along y.
func InfillRegions(verts [][]float64) [][][]float64 {
	var regions [][][]float64
	for _, face := range FaceGroups(2, verts) {
		regions = append(regions, FaceGroups(1, face)...)
	}
	return regions
}

func lessVertex(a, b []float64) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func equalVertex(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, x := range a {
		if b[i] != x {
			return false
		}
	}
	return true
}

func containsGroup(groups [][][]float64, group [][]float64) bool {
	for _, g := range groups {
		if len(g) != len(group) {
			continue
		}
		same := true
		for i := range g {
			if !equalVertex(g[i], group[i]) {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}
