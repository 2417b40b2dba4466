package index

import "fmt"

// Bit layout of an encoded Index.
const (
	// UpperMask selects the variance bit; set ⇒ upper (contravariant) index.
	UpperMask uint32 = 0x80000000

	// TypeMask selects the 7 type bits.
	TypeMask uint32 = 0x7F000000

	// NameMask selects the 24 name bits.
	NameMask uint32 = 0x00FFFFFF

	// RawMask selects name and type, i.e. everything except variance.
	RawMask = TypeMask | NameMask

	// typeShift is the offset of the type field.
	typeShift = 24

	// MaxName is the largest name that survives an Encode round trip.
	MaxName = NameMask
)

// Index is a bit-packed tensor index. See package doc for the layout.
type Index uint32

// Encode packs name, type and variance into an Index.
// Bits of name above NameMask and of t above 7 bits are discarded, so Encode
// is total; callers keep names in [0, MaxName].
// Complexity: O(1).
func Encode(name uint32, t IndexType, upper bool) Index {
	w := (name & NameMask) | ((uint32(t) << typeShift) & TypeMask)
	if upper {
		w |= UpperMask
	}

	return Index(w)
}

// Name returns the 24-bit symbol identifier.
func (i Index) Name() uint32 { return uint32(i) & NameMask }

// Type returns the 7-bit index type.
func (i Index) Type() IndexType { return IndexType((uint32(i) & TypeMask) >> typeShift) }

// IsUpper reports whether the index is contravariant.
func (i Index) IsUpper() bool { return uint32(i)&UpperMask != 0 }

// Raw strips the variance bit, leaving name and type.
func (i Index) Raw() Index { return Index(uint32(i) & RawMask) }

// Inverse flips the variance bit only.
// Complexity: O(1).
func (i Index) Inverse() Index { return Index(uint32(i) ^ UpperMask) }

// WithVariance returns i with the given variance.
func (i Index) WithVariance(upper bool) Index {
	if upper {
		return Index(uint32(i) | UpperMask)
	}

	return Index(uint32(i) &^ UpperMask)
}

// DecodeName is the free-function form of Index.Name.
func DecodeName(i Index) uint32 { return i.Name() }

// DecodeType is the free-function form of Index.Type.
func DecodeType(i Index) IndexType { return i.Type() }

// DecodeVariance is the free-function form of Index.IsUpper.
func DecodeVariance(i Index) bool { return i.IsUpper() }

// InvertVariance is the free-function form of Index.Inverse.
func InvertVariance(i Index) Index { return i.Inverse() }

// AreContracted reports whether a and b differ only in variance.
// Complexity: O(1).
func AreContracted(a, b Index) bool {
	return uint32(a)^uint32(b) == UpperMask
}

// SameNameAndType reports whether a and b denote the same symbol of the same
// type, regardless of variance.
func SameNameAndType(a, b Index) bool {
	return (uint32(a)^uint32(b))&RawMask == 0
}

// Compare orders indices by type, then name, then variance (lower first).
// It returns -1, 0 or +1 and is suitable for slices.SortFunc.
func Compare(a, b Index) int {
	switch ta, tb := a.Type(), b.Type(); {
	case ta < tb:
		return -1
	case ta > tb:
		return 1
	}
	switch na, nb := a.Name(), b.Name(); {
	case na < nb:
		return -1
	case na > nb:
		return 1
	}
	switch ua, ub := a.IsUpper(), b.IsUpper(); {
	case ua == ub:
		return 0
	case ub:
		return -1
	default:
		return 1
	}
}

// String renders a diagnostic form such as "_a3" or "^α0"; the letter is the
// type's symbol prefix and the number is the raw name.
func (i Index) String() string {
	v := "_"
	if i.IsUpper() {
		v = "^"
	}

	return fmt.Sprintf("%s%s%d", v, i.Type().symbol(), i.Name())
}
