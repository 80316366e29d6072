package clausestore

import "github.com/apselect/apselect/internal/fol"

type bucketKey struct {
	predicate string
	arity     int
	sign      fol.Sign
}

// IndexedStore keys partner lookups by (predicate symbol, arity,
// sign), incrementally maintained on Add/Extract rather than rebuilt.
// A linear store and an indexed store seeded with the same clauses
// must return set-equal partner lists; only the order within a
// bucket, and the order buckets are visited in, is store-specific.
// Because a single partner query only ever touches one bucket (the
// query literal's predicate/arity with the opposite sign), that
// ordering requirement reduces here to "insertion order within the
// bucket".
type IndexedStore struct {
	clauses map[int64]*fol.Clause
	order   []int64
	buckets map[bucketKey][]PartnerRef
}

// NewIndexedStore seeds an indexed store with the given clauses.
func NewIndexedStore(clauses []*fol.Clause) *IndexedStore {
	s := &IndexedStore{
		clauses: make(map[int64]*fol.Clause, len(clauses)),
		buckets: make(map[bucketKey][]PartnerRef),
	}
	for _, c := range clauses {
		s.Add(c)
	}
	return s
}

// Add inserts c into the clause table and every bucket its literals
// contribute to; a no-op if c is already present.
func (s *IndexedStore) Add(c *fol.Clause) {
	if _, ok := s.clauses[c.ID()]; ok {
		return
	}
	s.clauses[c.ID()] = c
	s.order = append(s.order, c.ID())
	for i, lit := range c.Literals {
		key := bucketKey{predicate: lit.PredicateSymbol(), arity: lit.Arity(), sign: lit.Sign}
		s.buckets[key] = append(s.buckets[key], PartnerRef{Clause: c, Index: i})
	}
}

// Extract removes c from the clause table and every bucket it
// contributed to, idempotently.
func (s *IndexedStore) Extract(c *fol.Clause) bool {
	if _, ok := s.clauses[c.ID()]; !ok {
		return false
	}
	delete(s.clauses, c.ID())
	for i, id := range s.order {
		if id == c.ID() {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	for _, lit := range c.Literals {
		key := bucketKey{predicate: lit.PredicateSymbol(), arity: lit.Arity(), sign: lit.Sign}
		bucket := s.buckets[key]
		filtered := bucket[:0:0]
		for _, ref := range bucket {
			if ref.Clause.ID() != c.ID() {
				filtered = append(filtered, ref)
			}
		}
		if len(filtered) == 0 {
			delete(s.buckets, key)
		} else {
			s.buckets[key] = filtered
		}
	}
	return true
}

// Contains reports whether c is currently stored.
func (s *IndexedStore) Contains(c *fol.Clause) bool {
	_, ok := s.clauses[c.ID()]
	return ok
}

// All returns the stored clauses in insertion order.
func (s *IndexedStore) All() []*fol.Clause {
	out := make([]*fol.Clause, len(s.order))
	for i, id := range s.order {
		out[i] = s.clauses[id]
	}
	return out
}

// Len returns the number of stored clauses.
func (s *IndexedStore) Len() int { return len(s.clauses) }

// GetResolutionLiterals looks up the single bucket matching query's
// predicate/arity with the opposite sign.
func (s *IndexedStore) GetResolutionLiterals(query *fol.Literal) []PartnerRef {
	key := bucketKey{
		predicate: query.PredicateSymbol(),
		arity:     query.Arity(),
		sign:      oppositeSign(query.Sign),
	}
	bucket := s.buckets[key]
	out := make([]PartnerRef, len(bucket))
	copy(out, bucket)
	return out
}

var _ Store = (*IndexedStore)(nil)
