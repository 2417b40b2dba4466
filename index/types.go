package index

import "fmt"

// IndexType distinguishes alphabets/classes of indices. Only the low 7 bits
// are encoded.
type IndexType uint8

// Catalogued index types. Matrix types are non-metric: their upper and lower
// forms cannot be exchanged by a metric, so variance is part of a tensor's
// structure for them.
const (
	LatinLower IndexType = iota // a, b, c… spacetime
	LatinUpper                  // A, B, C…
	GreekLower                  // α, β, γ…
	GreekUpper                  // Α, Β, Γ…
	Matrix1                     // spinor / matrix indices, first kind
	Matrix2
	Matrix3
	Matrix4
)

// MaxType is the largest encodable type value.
const MaxType IndexType = 0x7F

// typeInfo is the catalogue entry for a known type.
type typeInfo struct {
	name   string // stable name used in declarations
	symbol string // short prefix for String()
	metric bool
}

var catalogue = map[IndexType]typeInfo{
	LatinLower: {"latin_lower", "a", true},
	LatinUpper: {"latin_upper", "A", true},
	GreekLower: {"greek_lower", "α", true},
	GreekUpper: {"greek_upper", "Α", true},
	Matrix1:    {"matrix1", "m1:", false},
	Matrix2:    {"matrix2", "m2:", false},
	Matrix3:    {"matrix3", "m3:", false},
	Matrix4:    {"matrix4", "m4:", false},
}

// Metric reports whether upper and lower forms of this type are
// interchangeable by a metric. Uncatalogued types are treated as metric.
func (t IndexType) Metric() bool {
	if info, ok := catalogue[t]; ok {
		return info.metric
	}

	return true
}

// String returns the declaration name, or "type<N>" for uncatalogued values.
func (t IndexType) String() string {
	if info, ok := catalogue[t]; ok {
		return info.name
	}

	return fmt.Sprintf("type%d", uint8(t))
}

func (t IndexType) symbol() string {
	if info, ok := catalogue[t]; ok {
		return info.symbol
	}

	return fmt.Sprintf("t%d:", uint8(t))
}

// ParseType maps a declaration name ("latin_lower", "matrix2", …) to its type.
func ParseType(name string) (IndexType, error) {
	for t, info := range catalogue {
		if info.name == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("ParseType(%q): %w", name, ErrUnknownType)
}

// Types returns all catalogued types in ascending order.
func Types() []IndexType {
	return []IndexType{LatinLower, LatinUpper, GreekLower, GreekUpper, Matrix1, Matrix2, Matrix3, Matrix4}
}
