package match

import (
	"encoding/binary"
	"math"

	"gonum.org/v1/gonum/mat"
)

// coordKey encodes one coordinate row as a bit-exact lookup key.
func coordKey(row []float64) string {
	buf := make([]byte, 8*len(row))
	for i, v := range row {
		if v == 0 {
			v = 0 // collapse -0 onto +0; their distance is zero
		}
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	return string(buf)
}

// preMatch pairs bit-identical coordinate rows of a and b before the
// expensive solve — the maximal set of zero-cost pairs. When several
// candidates tie, the lowest available index wins on both sides: A rows
// are scanned ascending and each takes the lowest unused duplicate B row.
//
// Returns the zero-cost pairs (sorted by A index by construction) and the
// residual row indices of each side, both ascending.
//
// Complexity: O((|A|+|B|)·d) expected, via hashing.
func preMatch(a, b *mat.Dense) (pairs [][2]int, restA, restB []int) {
	na, _ := a.Dims()
	nb, _ := b.Dims()

	// Ascending B-index queues per coordinate key.
	queues := make(map[string][]int, nb)
	for j := 0; j < nb; j++ {
		k := coordKey(b.RawRowView(j))
		queues[k] = append(queues[k], j)
	}

	usedB := make([]bool, nb)
	for i := 0; i < na; i++ {
		k := coordKey(a.RawRowView(i))
		q := queues[k]
		if len(q) == 0 {
			restA = append(restA, i)
			continue
		}
		j := q[0]
		queues[k] = q[1:]
		usedB[j] = true
		pairs = append(pairs, [2]int{i, j})
	}

	for j := 0; j < nb; j++ {
		if !usedB[j] {
			restB = append(restB, j)
		}
	}

	return pairs, restA, restB
}
