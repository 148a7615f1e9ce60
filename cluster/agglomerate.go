// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvpca/matrix"
)

const (
	opAgglomerate = "Agglomerate"
	symmetryTol   = 1e-12
)

// Linkage selects how the distance between two clusters is derived from the
// distances between their leaves.
type Linkage int

const (
	// Average is the mean leaf-to-leaf distance (UPGMA).
	Average Linkage = iota
	// Single is the minimum leaf-to-leaf distance.
	Single
	// Complete is the maximum leaf-to-leaf distance.
	Complete
)

func (l Linkage) String() string {
	switch l {
	case Average:
		return "average"
	case Single:
		return "single"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("linkage(%d)", int(l))
	}
}

// ParseLinkage maps "average", "single" and "complete" (case-insensitive) to a Linkage.
func ParseLinkage(s string) (Linkage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "average", "avg", "upgma":
		return Average, nil
	case "single", "min":
		return Single, nil
	case "complete", "max":
		return Complete, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLinkage, s)
	}
}

// linkageFunc evaluates the distance between clusters a and b, given as leaf lists.
type linkageFunc func(a, b []int, dist *matrix.Dense) float64

func minLinkage(a, b []int, dist *matrix.Dense) float64 {
	md := math.Inf(1)
	for _, i := range a {
		for _, j := range b {
			d, _ := dist.At(i, j)
			md = math.Min(md, d)
		}
	}

	return md
}

func maxLinkage(a, b []int, dist *matrix.Dense) float64 {
	md := math.Inf(-1)
	for _, i := range a {
		for _, j := range b {
			d, _ := dist.At(i, j)
			md = math.Max(md, d)
		}
	}

	return md
}

func avgLinkage(a, b []int, dist *matrix.Dense) float64 {
	sum := 0.0
	for _, i := range a {
		for _, j := range b {
			d, _ := dist.At(i, j)
			sum += d
		}
	}

	return sum / float64(len(a)*len(b))
}

func (l Linkage) fn() (linkageFunc, error) {
	switch l {
	case Average:
		return avgLinkage, nil
	case Single:
		return minLinkage, nil
	case Complete:
		return maxLinkage, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownLinkage, l)
	}
}

// Merge joins clusters A < B at Distance; the result holds Size leaves.
type Merge struct {
	A        int     `json:"a" yaml:"a"`
	B        int     `json:"b" yaml:"b"`
	Distance float64 `json:"distance" yaml:"distance"`
	Size     int     `json:"size" yaml:"size"`
}

// Dendrogram is the result of Agglomerate: n−1 merges and the leaf order.
type Dendrogram struct {
	Leaves int
	Merges []Merge
	Order  []int
}

// Agglomerate clusters n items from their n×n distance matrix.
//
// Implementation:
//   - Stage 1: validate (square, finite, symmetric within 1e-12, no negative entries).
//   - Stage 2: n−1 times, merge the active pair with the smallest linkage distance;
//     ties keep the first pair in (a, b) id order.
//   - Stage 3: walk the tree from the root, A before B, to produce Order.
//
// A single item yields no merges and Order = [0].
func Agglomerate(dist matrix.Matrix, linkage Linkage) (*Dendrogram, error) {
	link, err := linkage.fn()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAgglomerate, err)
	}
	d, err := validateDistances(dist)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAgglomerate, err)
	}
	n := d.Rows()

	members := make(map[int][]int, 2*n)
	active := make([]int, n) // ascending ids
	for i := 0; i < n; i++ {
		members[i] = []int{i}
		active[i] = i
	}
	children := make(map[int][2]int, n)

	dg := &Dendrogram{Leaves: n, Merges: make([]Merge, 0, n-1)}
	var (
		bestA, bestB int
		bestD, dd    float64
	)
	for step := 0; len(active) > 1; step++ {
		bestD = math.Inf(1)
		bestA, bestB = -1, -1
		for x := 0; x < len(active); x++ {
			for y := x + 1; y < len(active); y++ {
				dd = link(members[active[x]], members[active[y]], d)
				if dd < bestD {
					bestD, bestA, bestB = dd, x, y
				}
			}
		}

		a, b := active[bestA], active[bestB]
		id := n + step
		members[id] = append(append([]int(nil), members[a]...), members[b]...)
		children[id] = [2]int{a, b}
		dg.Merges = append(dg.Merges, Merge{A: a, B: b, Distance: bestD, Size: len(members[id])})

		// bestB > bestA, so remove B first; the new id is the largest and goes last.
		active = append(active[:bestB], active[bestB+1:]...)
		active = append(active[:bestA], active[bestA+1:]...)
		active = append(active, id)
	}

	dg.Order = leafOrder(active[0], n, children)

	return dg, nil
}

// leafOrder lists the leaves under root depth-first, A before B.
func leafOrder(root, n int, children map[int][2]int) []int {
	order := make([]int, 0, n)
	stack := []int{root}
	var top int
	for len(stack) > 0 {
		top = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top < n {
			order = append(order, top)
			continue
		}
		ch := children[top]
		stack = append(stack, ch[1], ch[0])
	}

	return order
}

// validateDistances returns a Dense view of dist after checking it is a proper
// distance matrix.
func validateDistances(dist matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := matrix.ValidateFinite(dist); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := matrix.ValidateSymmetric(dist, symmetryTol); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	n := dist.Rows()
	if n == 0 {
		return nil, fmt.Errorf("%w: no items", ErrInvalidInput)
	}
	d, err := toDense(dist)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	for k, v := range d.RawRowMajor() {
		if v < 0 {
			return nil, fmt.Errorf("%w: negative distance %g at (%d,%d)", ErrInvalidInput, v, k/n, k%n)
		}
	}

	return d, nil
}
