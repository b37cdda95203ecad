package record

import (
	"fmt"
	"strconv"
)

// RelationKind discriminates the shapes a relation field arrives in.
type RelationKind int

const (
	// RelationAbsent means the field is missing, nil, or the store's
	// false-means-empty encoding.
	RelationAbsent RelationKind = iota
	// RelationScalar means the field held a plain value, not a tuple.
	RelationScalar
	// RelationRef means the field held an (id, label) tuple, possibly
	// without the label.
	RelationRef
)

// Relation is the decoded form of a foreign-relation field. Every caller
// that needs a related entity goes through Decode so the tuple/scalar/absent
// cases are handled in exactly one place.
type Relation struct {
	Kind  RelationKind
	ID    int64
	Label string
	// Scalar holds the stringified value for RelationScalar.
	Scalar string
}

// DecodeRelation interprets a raw relation field value.
func DecodeRelation(v interface{}) Relation {
	switch val := v.(type) {
	case nil:
		return Relation{Kind: RelationAbsent}
	case bool:
		// The store delivers false for an empty many2one field.
		return Relation{Kind: RelationAbsent}
	case []interface{}:
		if len(val) == 0 {
			return Relation{Kind: RelationAbsent}
		}
		rel := Relation{Kind: RelationRef, ID: toInt64(val[0])}
		if len(val) > 1 {
			if label, ok := val[1].(string); ok {
				rel.Label = label
			}
		}
		return rel
	case string:
		if val == "" {
			return Relation{Kind: RelationAbsent}
		}
		return Relation{Kind: RelationScalar, Scalar: val}
	default:
		return Relation{Kind: RelationScalar, Scalar: fmt.Sprint(val)}
	}
}

// Display returns the human-readable value for the relation: the label when
// present, the stringified id for a label-less tuple, the scalar itself, or
// "" when absent.
func (r Relation) Display() string {
	switch r.Kind {
	case RelationRef:
		if r.Label != "" {
			return r.Label
		}
		return strconv.FormatInt(r.ID, 10)
	case RelationScalar:
		return r.Scalar
	default:
		return ""
	}
}

func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
