package memory

import "math"

// dbscan clusters L2-normalized vectors by cosine distance. Returns one
// label per vector; -1 marks noise.
func dbscan(vectors [][]float64, eps float64, minSamples int) []int {
	const (
		unvisited = -2
		noise     = -1
	)
	labels := make([]int, len(vectors))
	for i := range labels {
		labels[i] = unvisited
	}

	cluster := 0
	for i := range vectors {
		if labels[i] != unvisited {
			continue
		}
		neighbors := regionQuery(vectors, i, eps)
		if len(neighbors) < minSamples {
			labels[i] = noise
			continue
		}

		labels[i] = cluster
		// Expand the cluster over the density-reachable frontier.
		for cursor := 0; cursor < len(neighbors); cursor++ {
			j := neighbors[cursor]
			if labels[j] == noise {
				labels[j] = cluster
			}
			if labels[j] != unvisited {
				continue
			}
			labels[j] = cluster
			jNeighbors := regionQuery(vectors, j, eps)
			if len(jNeighbors) >= minSamples {
				neighbors = append(neighbors, jNeighbors...)
			}
		}
		cluster++
	}
	return labels
}

func regionQuery(vectors [][]float64, i int, eps float64) []int {
	var neighbors []int
	for j := range vectors {
		if cosineDistance(vectors[i], vectors[j]) <= eps {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}

// cosineDistance assumes unit-length inputs, so 1 - dot product.
func cosineDistance(a, b []float64) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return 1 - dot
}

// l2Normalize scales v to unit length in place. Zero vectors stay zero.
func l2Normalize(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
}
