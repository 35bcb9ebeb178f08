package pieces

import (
	"fmt"
	"sort"
	"strings"
)

// rotate90 maps (r, c) to (c, -r): a quarter turn clockwise.
func rotate90(cells []offset) []offset {
	out := make([]offset, len(cells))
	for i, cc := range cells {
		out[i] = offset{r: cc.c, c: -cc.r}
	}
	return out
}

// mirror reflects across the horizontal axis: (r, c) to (-r, c).
func mirror(cells []offset) []offset {
	out := make([]offset, len(cells))
	for i, cc := range cells {
		out[i] = offset{r: -cc.r, c: cc.c}
	}
	return out
}

// normalize translates so the minimum row and column are zero and sorts
// row-major, giving every congruent shape a single representation.
func normalize(cells []offset) []offset {
	minR, minC := cells[0].r, cells[0].c
	for _, cc := range cells[1:] {
		if cc.r < minR {
			minR = cc.r
		}
		if cc.c < minC {
			minC = cc.c
		}
	}
	out := make([]offset, len(cells))
	for i, cc := range cells {
		out[i] = offset{r: cc.r - minR, c: cc.c - minC}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].r != out[j].r {
			return out[i].r < out[j].r
		}
		return out[i].c < out[j].c
	})
	return out
}

func key(cells []offset) string {
	var b strings.Builder
	for _, cc := range cells {
		fmt.Fprintf(&b, "%d,%d;", cc.r, cc.c)
	}
	return b.String()
}

// orientationsOf derives the distinct orientations of a shape: the four
// rotations of the base, then the four rotations of its mirror image,
// normalized, first occurrence kept. The order is fixed so every derived
// table, and with it the search order, is deterministic.
func orientationsOf(base []offset) [][]offset {
	var out [][]offset
	seen := make(map[string]bool)
	cur := base
	for pass := 0; pass < 2; pass++ {
		for rot := 0; rot < 4; rot++ {
			n := normalize(cur)
			if k := key(n); !seen[k] {
				seen[k] = true
				out = append(out, n)
			}
			cur = rotate90(cur)
		}
		cur = mirror(base)
	}
	return out
}
