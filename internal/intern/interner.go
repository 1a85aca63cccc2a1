package intern

import (
	"errors"
	"fmt"
	"slices"

	"svmlight-indexer/internal/svmlight"
)

var (
	// ErrLiveMappingActive is returned when a live mapping is activated
	// while a previous one is still open.
	ErrLiveMappingActive = errors.New("live mapping already active")
)

// DuplicateFeatureError reports a record that lists the same feature
// name more than once.
type DuplicateFeatureError struct {
	// Name is the feature name that appeared twice.
	Name string
}

func (e *DuplicateFeatureError) Error() string {
	return fmt.Sprintf("duplicate feature %q in record", e.Name)
}

// Entry is one index/name pair of the mapping table.
type Entry struct {
	Index int
	Name  string
}

// MappingWriter receives index/name pairs as they are assigned. The
// interner holds one while a live mapping is active.
type MappingWriter interface {
	Append(index int, name string) error
}

// Interner assigns integer indices to feature names on first sight.
// It is exclusively owned by the conversion driver; no concurrent use.
type Interner struct {
	next   int
	byName map[string]int
	// names[i] holds the name assigned index i+1.
	names []string
	live  MappingWriter
}

// New returns an empty interner. The first assigned index is 1;
// svmlight indices must start at 1, not 0.
func New() *Interner {
	return &Interner{
		next:   1,
		byName: make(map[string]int),
	}
}

// IndexFor resolves a feature name to its FeatureRef, assigning the
// next index on first sight. The qid name passes through unconverted
// and never consumes an index. When a live mapping is active, newly
// assigned entries are appended to it immediately.
func (in *Interner) IndexFor(name string) (svmlight.FeatureRef, error) {
	if name == svmlight.QidName {
		return svmlight.QidRef(), nil
	}

	if idx, ok := in.byName[name]; ok {
		return svmlight.IndexRef(idx), nil
	}

	idx := in.next
	in.byName[name] = idx
	in.names = append(in.names, name)
	in.next++

	if in.live != nil {
		if err := in.live.Append(idx, name); err != nil {
			return svmlight.FeatureRef{}, fmt.Errorf("appending mapping entry %d %s: %w", idx, name, err)
		}
	}

	return svmlight.IndexRef(idx), nil
}

// IndexFeatureList converts every feature of a record and returns the
// pairs sorted by the FeatureRef total order. Two input names that
// collapse to the same ref mean the record listed a feature twice;
// that raises a DuplicateFeatureError before anything is returned.
func (in *Interner) IndexFeatureList(features []svmlight.Feature) ([]svmlight.Feature, error) {
	out := make([]svmlight.Feature, 0, len(features))
	seen := make(map[svmlight.FeatureRef]string, len(features))

	for _, f := range features {
		ref, err := in.IndexFor(f.Ref.Name())
		if err != nil {
			return nil, err
		}

		if _, dup := seen[ref]; dup {
			return nil, &DuplicateFeatureError{Name: f.Ref.Name()}
		}

		seen[ref] = f.Ref.Name()
		out = append(out, svmlight.Feature{Ref: ref, Value: f.Value})
	}

	slices.SortFunc(out, func(a, b svmlight.Feature) int {
		return a.Ref.Compare(b.Ref)
	})

	return out, nil
}

// Mapping returns a snapshot of all interned features in assignment
// order, 1-based. Used for whole-file mapping output.
func (in *Interner) Mapping() []Entry {
	entries := make([]Entry, len(in.names))
	for i, name := range in.names {
		entries[i] = Entry{Index: i + 1, Name: name}
	}

	return entries
}

// Len returns the number of interned features.
func (in *Interner) Len() int {
	return len(in.names)
}

// ActivateLiveMapping starts write-through of newly assigned entries
// to w. Features interned before activation are flushed to w first, in
// assignment order. Must be paired with DeactivateLiveMapping.
func (in *Interner) ActivateLiveMapping(w MappingWriter) error {
	if in.live != nil {
		return ErrLiveMappingActive
	}

	for i, name := range in.names {
		if err := w.Append(i+1, name); err != nil {
			return fmt.Errorf("flushing mapping backlog: %w", err)
		}
	}

	in.live = w

	return nil
}

// DeactivateLiveMapping stops write-through. The writer itself is
// closed by its owner, not by the interner.
func (in *Interner) DeactivateLiveMapping() {
	in.live = nil
}
