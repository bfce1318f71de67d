package itemset

import (
	"sort"
	"strings"

	"github.com/cnf/structhash"
)

// Set is an unordered collection of LR(1) items: an ItemSet / automaton
// state. Item equality already makes a Go map the natural backing store,
// so membership, Add and Union are native map operations; Hash
// additionally produces a canonical, order-independent digest of the
// set's contents so that automaton construction can bucket candidate
// states before falling back to the precise Equals check that decides
// state identity.
//
// Union and Add mutate the receiver in place.
type Set struct {
	items map[Item]struct{}
}

// NewSet creates an empty item set, optionally pre-populated with seed
// items (as when starting a CLOSURE computation).
func NewSet(seed ...Item) *Set {
	s := &Set{items: make(map[Item]struct{}, len(seed))}
	for _, it := range seed {
		s.items[it] = struct{}{}
	}
	return s
}

// Add inserts an item, returning true if it was not already present.
func (s *Set) Add(it Item) bool {
	if _, ok := s.items[it]; ok {
		return false
	}
	s.items[it] = struct{}{}
	return true
}

// Contains reports whether it is a member of s.
func (s *Set) Contains(it Item) bool {
	_, ok := s.items[it]
	return ok
}

// Size returns the number of items in s.
func (s *Set) Size() int {
	return len(s.items)
}

// Empty reports whether s has no items.
func (s *Set) Empty() bool {
	return len(s.items) == 0
}

// Values returns the items of s in an unspecified order. Callers that need
// a deterministic order should sort the result (see SortedValues).
func (s *Set) Values() []Item {
	out := make([]Item, 0, len(s.items))
	for it := range s.items {
		out = append(out, it)
	}
	return out
}

// SortedValues returns the items of s sorted by their string form, giving a
// deterministic, reproducible iteration order for debug dumps and tests.
func (s *Set) SortedValues() []Item {
	out := s.Values()
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Copy returns a shallow, independent copy of s.
func (s *Set) Copy() *Set {
	cp := NewSet()
	for it := range s.items {
		cp.items[it] = struct{}{}
	}
	return cp
}

// Union destructively adds every item of other into s.
func (s *Set) Union(other *Set) {
	for it := range other.items {
		s.items[it] = struct{}{}
	}
}

// Equals reports whether s and other contain exactly the same items — set
// equality, not list-order equality: two states are equal iff they contain
// the same items.
func (s *Set) Equals(other *Set) bool {
	if other == nil || len(s.items) != len(other.items) {
		return false
	}
	for it := range s.items {
		if _, ok := other.items[it]; !ok {
			return false
		}
	}
	return true
}

// Hash computes a canonical digest of s's contents: the items are rendered
// to their string triples, sorted for order-independence, and hashed with
// structhash. Two sets with the same items always produce the same hash;
// it is used purely to bucket candidate states during automaton
// construction (see package automaton) — actual state identity is always
// decided by Equals, never by hash alone, so collisions cannot cause two
// distinct states to be merged.
func (s *Set) Hash() string {
	triples := make([]string, 0, len(s.items))
	for it := range s.items {
		triples = append(triples, it.String())
	}
	sort.Strings(triples)
	h, err := structhash.Hash(struct{ Items []string }{Items: triples}, 1)
	if err != nil {
		// structhash only fails on unsupported reflect kinds; a []string
		// field never hits that path.
		return strings.Join(triples, "|")
	}
	return h
}

func (s *Set) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, it := range s.SortedValues() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(it.String())
	}
	b.WriteString(" }")
	return b.String()
}
