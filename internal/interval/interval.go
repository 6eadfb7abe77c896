// Package interval implements ordered, coalesced sets of closed ranges over
// a small scalar domain. It backs the character class engine for both the
// Unicode scalar value domain and the raw byte domain.
//
// Every mutating operation restores the canonical form: ranges sorted by
// lower bound, non-overlapping, and maximally coalesced (no two adjacent
// ranges touch). Consumers may therefore inspect only the last range to
// answer questions like "is everything in this set ASCII".
package interval

import "sort"

// Bound constrains the scalar types an interval set can range over.
type Bound interface {
	~uint8 | ~int32
}

// Range is a closed interval over B: both Lo and Hi are included.
type Range[B Bound] struct {
	Lo B
	Hi B
}

// MakeRange builds a range from two bounds in either order.
func MakeRange[B Bound](lo, hi B) Range[B] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Range[B]{Lo: lo, Hi: hi}
}

// Set is an ordered, non-overlapping, maximally coalesced collection of
// closed ranges over B. The zero value is not usable; construct with New.
type Set[B Bound] struct {
	dom    Domain[B]
	ranges []Range[B]
}

// New builds a set over the given domain. The ranges may be given in any
// order and may overlap; the set is canonicalized on construction.
func New[B Bound](dom Domain[B], ranges ...Range[B]) Set[B] {
	s := Set[B]{dom: dom, ranges: append([]Range[B](nil), ranges...)}
	s.canonicalize()
	return s
}

// Clone returns an independent copy of the set.
func (s *Set[B]) Clone() Set[B] {
	return Set[B]{dom: s.dom, ranges: append([]Range[B](nil), s.ranges...)}
}

// Ranges returns the canonical range slice. Callers must not mutate it.
func (s *Set[B]) Ranges() []Range[B] {
	return s.ranges
}

// IsEmpty reports whether the set contains no values.
func (s *Set[B]) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Push adds a range to the set and recanonicalizes.
func (s *Set[B]) Push(r Range[B]) {
	s.ranges = append(s.ranges, r)
	s.canonicalize()
}

// Union adds every value of other to this set, in place.
func (s *Set[B]) Union(other *Set[B]) {
	s.ranges = append(s.ranges, other.ranges...)
	s.canonicalize()
}

// Intersect keeps only the values present in both sets, in place.
func (s *Set[B]) Intersect(other *Set[B]) {
	if len(s.ranges) == 0 {
		return
	}
	if len(other.ranges) == 0 {
		s.ranges = s.ranges[:0]
		return
	}
	var out []Range[B]
	a, b := 0, 0
	for a < len(s.ranges) && b < len(other.ranges) {
		lo := maxBound(s.ranges[a].Lo, other.ranges[b].Lo)
		hi := minBound(s.ranges[a].Hi, other.ranges[b].Hi)
		if lo <= hi {
			out = append(out, Range[B]{Lo: lo, Hi: hi})
		}
		// Advance whichever range ends first.
		if s.ranges[a].Hi < other.ranges[b].Hi {
			a++
		} else {
			b++
		}
	}
	s.ranges = out
}

// Difference removes every value of other from this set, in place.
func (s *Set[B]) Difference(other *Set[B]) {
	if len(s.ranges) == 0 || len(other.ranges) == 0 {
		return
	}
	var out []Range[B]
	b := 0
	for _, r := range s.ranges {
		lo := r.Lo
		covered := false
		for b < len(other.ranges) && other.ranges[b].Hi < r.Lo {
			b++
		}
		for bi := b; bi < len(other.ranges) && other.ranges[bi].Lo <= r.Hi; bi++ {
			cut := other.ranges[bi]
			if cut.Lo > lo {
				out = append(out, Range[B]{Lo: lo, Hi: s.dom.Dec(cut.Lo)})
			}
			if cut.Hi >= r.Hi {
				covered = true
				break
			}
			if cut.Hi >= lo {
				lo = s.dom.Inc(cut.Hi)
			}
		}
		if !covered {
			out = append(out, Range[B]{Lo: lo, Hi: r.Hi})
		}
	}
	s.ranges = out
}

// SymmetricDifference keeps the values present in exactly one of the two
// sets, in place.
func (s *Set[B]) SymmetricDifference(other *Set[B]) {
	both := s.Clone()
	both.Intersect(other)
	s.Union(other)
	s.Difference(&both)
}

// Negate complements the set against the domain's full span, in place.
func (s *Set[B]) Negate() {
	if len(s.ranges) == 0 {
		s.ranges = append(s.ranges, Range[B]{Lo: s.dom.Min(), Hi: s.dom.Max()})
		return
	}
	out := make([]Range[B], 0, len(s.ranges)+1)
	if s.ranges[0].Lo > s.dom.Min() {
		out = append(out, Range[B]{Lo: s.dom.Min(), Hi: s.dom.Dec(s.ranges[0].Lo)})
	}
	for i := 1; i < len(s.ranges); i++ {
		out = append(out, Range[B]{
			Lo: s.dom.Inc(s.ranges[i-1].Hi),
			Hi: s.dom.Dec(s.ranges[i].Lo),
		})
	}
	if last := s.ranges[len(s.ranges)-1]; last.Hi < s.dom.Max() {
		out = append(out, Range[B]{Lo: s.dom.Inc(last.Hi), Hi: s.dom.Max()})
	}
	s.ranges = out
}

// Expand applies f to every range present when the call started. f may add
// ranges through its push argument; additions are not themselves expanded.
// The set is recanonicalized exactly once, even when f fails partway, so a
// failed expansion still leaves the set canonical.
func (s *Set[B]) Expand(f func(r Range[B], push func(lo, hi B)) error) error {
	push := func(lo, hi B) {
		s.ranges = append(s.ranges, MakeRange(lo, hi))
	}
	n := len(s.ranges)
	var err error
	for i := 0; i < n; i++ {
		if err = f(s.ranges[i], push); err != nil {
			break
		}
	}
	s.canonicalize()
	return err
}

// Equal reports whether both sets contain exactly the same values.
func (s *Set[B]) Equal(other *Set[B]) bool {
	if len(s.ranges) != len(other.ranges) {
		return false
	}
	for i, r := range s.ranges {
		if r != other.ranges[i] {
			return false
		}
	}
	return true
}

func (s *Set[B]) canonicalize() {
	if s.isCanonical() {
		return
	}
	sort.Slice(s.ranges, func(i, j int) bool {
		if s.ranges[i].Lo != s.ranges[j].Lo {
			return s.ranges[i].Lo < s.ranges[j].Lo
		}
		return s.ranges[i].Hi < s.ranges[j].Hi
	})
	out := s.ranges[:1]
	for _, r := range s.ranges[1:] {
		last := &out[len(out)-1]
		if contiguous(*last, r) {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		out = append(out, r)
	}
	s.ranges = out
}

func (s *Set[B]) isCanonical() bool {
	for i := 1; i < len(s.ranges); i++ {
		prev, cur := s.ranges[i-1], s.ranges[i]
		if prev.Lo >= cur.Lo {
			return false
		}
		if contiguous(prev, cur) {
			return false
		}
	}
	return true
}

// contiguous reports whether two ranges overlap or are directly adjacent.
// Adjacency is judged on the raw scalar values, so ranges separated only by
// the surrogate gap remain distinct, matching how the classes are built.
func contiguous[B Bound](a, b Range[B]) bool {
	lo := uint32(maxBound(a.Lo, b.Lo))
	hi := uint32(minBound(a.Hi, b.Hi))
	return lo <= hi+1
}

func minBound[B Bound](a, b B) B {
	if a < b {
		return a
	}
	return b
}

func maxBound[B Bound](a, b B) B {
	if a > b {
		return a
	}
	return b
}
