package partition

import (
	"fmt"
	"slices"
)

// Validate checks that every id lies in [0, rows), that no side lists an id
// twice, and that the sides are disjoint.
//
// Errors: ErrOutOfRange, ErrDuplicate, ErrOverlap (first violation wins,
// EP scanned before CP).
//
// Complexity: O(|EP| + |CP|) time and space.
func (p Partition) Validate(rows int) error {
	side := make(map[int]bool, len(p.Existing)+len(p.Candidates)) // id -> isExisting
	for _, id := range p.Existing {
		if id < 0 || id >= rows {
			return fmt.Errorf("existing id %d: %w", id, ErrOutOfRange)
		}
		if _, dup := side[id]; dup {
			return fmt.Errorf("existing id %d: %w", id, ErrDuplicate)
		}
		side[id] = true
	}
	for _, id := range p.Candidates {
		if id < 0 || id >= rows {
			return fmt.Errorf("candidate id %d: %w", id, ErrOutOfRange)
		}
		if existing, seen := side[id]; seen {
			if existing {
				return fmt.Errorf("candidate id %d: %w", id, ErrOverlap)
			}
			return fmt.Errorf("candidate id %d: %w", id, ErrDuplicate)
		}
		side[id] = false
	}

	return nil
}

// Clone returns a deep copy.
func (p Partition) Clone() Partition {
	return Partition{
		Existing:   slices.Clone(p.Existing),
		Candidates: slices.Clone(p.Candidates),
	}
}

// RatioSplit assigns the first ⌊rows·pct/100⌋ row ids to EP and the rest to CP.
//
// Contracts: rows > 0, 0 ≤ pct ≤ 100.
//
// Complexity: O(rows).
func RatioSplit(rows, pct int) (Partition, error) {
	if rows <= 0 {
		return Partition{}, ErrNoProducts
	}
	if pct < 0 || pct > 100 {
		return Partition{}, fmt.Errorf("existing percent %d: %w", pct, ErrBadRatio)
	}
	cut := rows * pct / 100

	p := Partition{
		Existing:   make([]int, 0, cut),
		Candidates: make([]int, 0, rows-cut),
	}
	var i int
	for i = 0; i < cut; i++ {
		p.Existing = append(p.Existing, i)
	}
	for i = cut; i < rows; i++ {
		p.Candidates = append(p.Candidates, i)
	}

	return p, nil
}

// Restrict keeps only the candidates listed in keep, in ascending id order.
// EP is copied unchanged; ids in keep that are not candidates are ignored.
//
// Complexity: O(|CP| + |keep|).
func Restrict(p Partition, keep []int) Partition {
	want := make(map[int]struct{}, len(keep))
	for _, id := range keep {
		want[id] = struct{}{}
	}
	out := Partition{
		Existing:   slices.Clone(p.Existing),
		Candidates: make([]int, 0, len(keep)),
	}
	for _, id := range p.Candidates {
		if _, ok := want[id]; ok {
			out.Candidates = append(out.Candidates, id)
		}
	}
	slices.Sort(out.Candidates)

	return out
}
