package svmlight

import "strconv"

// refKind discriminates the FeatureRef variants.
type refKind int

const (
	// refName identifies a feature by its original string name.
	refName refKind = iota
	// refIndex identifies a feature by its assigned positive index.
	refIndex
	// refQid is the reserved qid pseudo-feature.
	refQid
)

// QidName is the reserved feature name that marks query identifiers.
// It is never assigned an index.
const QidName = "qid"

// FeatureRef identifies a feature. Before conversion it holds the
// original string name; after conversion it holds the assigned index.
// The reserved qid token is its own variant and never carries an index.
type FeatureRef struct {
	kind  refKind
	name  string
	index int
}

// NameRef returns a FeatureRef for an unconverted feature name.
// A name equal to QidName yields the qid variant.
func NameRef(name string) FeatureRef {
	if name == QidName {
		return QidRef()
	}

	return FeatureRef{kind: refName, name: name}
}

// IndexRef returns a FeatureRef for an assigned index (>= 1).
func IndexRef(index int) FeatureRef {
	return FeatureRef{kind: refIndex, index: index}
}

// QidRef returns the qid FeatureRef.
func QidRef() FeatureRef {
	return FeatureRef{kind: refQid}
}

// IsQid reports whether the ref is the reserved qid token.
func (r FeatureRef) IsQid() bool {
	return r.kind == refQid
}

// Name returns the original feature name, or QidName for the qid
// variant. Empty for index refs.
func (r FeatureRef) Name() string {
	if r.kind == refQid {
		return QidName
	}

	return r.name
}

// Index returns the assigned index, or 0 if the ref is not indexed.
func (r FeatureRef) Index() int {
	return r.index
}

// String renders the ref the way it appears on an output line.
func (r FeatureRef) String() string {
	switch r.kind {
	case refQid:
		return QidName
	case refIndex:
		return strconv.Itoa(r.index)
	default:
		return r.name
	}
}

// Compare defines the total order used to sort features within a
// record: qid sorts before every index, indices sort ascending, and
// name refs (which only exist pre-conversion) sort after all indices,
// lexicographically among themselves. Returns -1, 0 or 1.
func (r FeatureRef) Compare(o FeatureRef) int {
	if r.kind != o.kind {
		return cmpInt(rank(r.kind), rank(o.kind))
	}

	switch r.kind {
	case refQid:
		return 0
	case refIndex:
		return cmpInt(r.index, o.index)
	default:
		switch {
		case r.name < o.name:
			return -1
		case r.name > o.name:
			return 1
		}

		return 0
	}
}

func rank(k refKind) int {
	switch k {
	case refQid:
		return 0
	case refIndex:
		return 1
	default:
		return 2
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// Feature is one feature/value pair of a record. Value is kept as raw
// text; the format is comparison-and-passthrough, not computation.
type Feature struct {
	Ref   FeatureRef
	Value string
}

// Record is one parsed data line.
type Record struct {
	// Target is the label token, not validated as numeric.
	Target string
	// Features in line order (pre-conversion) or sorted ascending by
	// FeatureRef (post-conversion).
	Features []Feature
	// Info is the trailing comment segment including its leading '#',
	// or empty when the line has none.
	Info string
}
