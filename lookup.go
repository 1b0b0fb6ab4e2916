package studio

// Record is a content record addressable by slug.
type Record interface {
	// Key returns the record's slug.
	Key() string
}

// FindBySlug returns the first record whose slug equals slug.
// The boolean is false when no record matches.
func FindBySlug[T Record](records []T, slug string) (T, bool) {
	for _, r := range records {
		if r.Key() == slug {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// ResolveReferences maps slugs to records in reference order.
// Slugs without a matching record are dropped.
func ResolveReferences[T Record](slugs []string, records []T) []T {
	var resolved []T
	for _, slug := range slugs {
		if r, ok := FindBySlug(records, slug); ok {
			resolved = append(resolved, r)
		}
	}
	return resolved
}

// Index is a slug-keyed view over a record collection, built once.
// Lookups behave like FindBySlug: the first record with a slug wins.
type Index[T Record] struct {
	records map[string]T
}

// NewIndex builds an index over records.
func NewIndex[T Record](records []T) *Index[T] {
	m := make(map[string]T, len(records))
	for _, r := range records {
		if _, exists := m[r.Key()]; !exists {
			m[r.Key()] = r
		}
	}
	return &Index[T]{records: m}
}

// Find returns the record for slug.
func (ix *Index[T]) Find(slug string) (T, bool) {
	r, ok := ix.records[slug]
	return r, ok
}

// Resolve maps slugs to records in reference order, dropping unknown slugs.
func (ix *Index[T]) Resolve(slugs []string) []T {
	var resolved []T
	for _, slug := range slugs {
		if r, ok := ix.records[slug]; ok {
			resolved = append(resolved, r)
		}
	}
	return resolved
}

// Len returns the number of distinct slugs.
func (ix *Index[T]) Len() int {
	return len(ix.records)
}
