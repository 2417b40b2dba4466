package index_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensorsym/index"
)

// TestEncode_RoundTrip checks every field survives Encode for a spread of
// names, every catalogued type and both variances.
func TestEncode_RoundTrip(t *testing.T) {
	names := []uint32{0, 1, 7, 255, 1 << 16, index.MaxName - 1, index.MaxName}
	for _, typ := range index.Types() {
		for _, name := range names {
			for _, upper := range []bool{false, true} {
				i := index.Encode(name, typ, upper)
				assert.Equal(t, name, index.DecodeName(i))
				assert.Equal(t, typ, index.DecodeType(i))
				assert.Equal(t, upper, index.DecodeVariance(i))
			}
		}
	}
}

func TestEncode_MasksOverflow(t *testing.T) {
	i := index.Encode(index.MaxName+5, index.LatinLower, false)
	assert.Equal(t, uint32(4), i.Name(), "name bits above 24 are discarded")
	assert.Equal(t, index.LatinLower, i.Type())
}

func TestEncode_MaxType(t *testing.T) {
	i := index.Encode(3, index.MaxType, true)
	assert.Equal(t, index.MaxType, i.Type())
	assert.Equal(t, uint32(3), i.Name())
	assert.True(t, i.IsUpper())
}

func TestInverse(t *testing.T) {
	a := index.Encode(12, index.GreekLower, false)
	inv := index.InvertVariance(a)
	assert.True(t, inv.IsUpper())
	assert.Equal(t, a.Name(), inv.Name())
	assert.Equal(t, a.Type(), inv.Type())
	assert.Equal(t, a, inv.Inverse())
}

func TestAreContracted(t *testing.T) {
	lo := index.Encode(1, index.LatinLower, false)
	up := index.Encode(1, index.LatinLower, true)
	other := index.Encode(2, index.LatinLower, true)
	greek := index.Encode(1, index.GreekLower, true)

	assert.True(t, index.AreContracted(lo, up))
	assert.True(t, index.AreContracted(up, lo))
	assert.False(t, index.AreContracted(lo, lo), "same variance")
	assert.False(t, index.AreContracted(lo, other), "different name")
	assert.False(t, index.AreContracted(lo, greek), "different type")
}

func TestSameNameAndType(t *testing.T) {
	lo := index.Encode(9, index.Matrix1, false)
	assert.True(t, index.SameNameAndType(lo, lo.Inverse()))
	assert.True(t, index.SameNameAndType(lo, lo))
	assert.False(t, index.SameNameAndType(lo, index.Encode(9, index.Matrix2, false)))
	assert.Equal(t, lo.Raw(), lo.Inverse().Raw())
}

func TestWithVariance(t *testing.T) {
	a := index.Encode(4, index.LatinUpper, false)
	assert.True(t, a.WithVariance(true).IsUpper())
	assert.False(t, a.WithVariance(true).WithVariance(false).IsUpper())
	assert.Equal(t, a, a.WithVariance(false))
}

func TestCompare_Order(t *testing.T) {
	in := []index.Index{
		index.Encode(2, index.GreekLower, false),
		index.Encode(1, index.LatinLower, true),
		index.Encode(1, index.LatinLower, false),
		index.Encode(0, index.GreekLower, false),
	}
	slices.SortFunc(in, index.Compare)
	want := []index.Index{
		index.Encode(1, index.LatinLower, false),
		index.Encode(1, index.LatinLower, true),
		index.Encode(0, index.GreekLower, false),
		index.Encode(2, index.GreekLower, false),
	}
	assert.Equal(t, want, in)
	assert.Equal(t, 0, index.Compare(in[0], in[0]))
}

func TestParseType(t *testing.T) {
	for _, typ := range index.Types() {
		got, err := index.ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
	_, err := index.ParseType("hebrew")
	assert.ErrorIs(t, err, index.ErrUnknownType)
}

func TestMetric(t *testing.T) {
	assert.True(t, index.LatinLower.Metric())
	assert.True(t, index.GreekUpper.Metric())
	assert.False(t, index.Matrix1.Metric())
	assert.True(t, index.IndexType(100).Metric())
	assert.Equal(t, "type100", index.IndexType(100).String())
}

func TestString(t *testing.T) {
	assert.Equal(t, "_a3", index.Encode(3, index.LatinLower, false).String())
	assert.Equal(t, "^A0", index.Encode(0, index.LatinUpper, true).String())
}
