package symmetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensorsym/index"
	"github.com/katalvlaran/tensorsym/symmetry"
)

func TestNewStructure_RejectsUnencodableType(t *testing.T) {
	_, err := symmetry.NewStructure([]index.IndexType{index.LatinLower, index.MaxType + 2}, nil)
	require.ErrorIs(t, err, symmetry.ErrInvalidType)

	st, err := symmetry.NewStructure([]index.IndexType{index.MaxType}, nil)
	require.NoError(t, err)
	assert.Equal(t, index.MaxType, st.TypeAt(0))
}

func TestNewStructure_LengthMismatch(t *testing.T) {
	_, err := symmetry.NewStructure([]index.IndexType{index.LatinLower}, []bool{true, false})
	assert.ErrorIs(t, err, symmetry.ErrDimensionMismatch)
}

func TestStructure_KeyDistinguishesTypes(t *testing.T) {
	reg := symmetry.NewRegistry()
	for _, typ := range index.Types() {
		st, err := symmetry.NewStructure([]index.IndexType{typ}, nil)
		require.NoError(t, err)
		s := reg.Store("T", st)
		assert.True(t, s.Structure().Equal(st), "store for %v has structure %v", st, s.Structure())
	}
	assert.Equal(t, len(index.Types()), reg.Len())

	// Metric variance collapses, matrix variance does not.
	lo, _ := symmetry.NewStructure([]index.IndexType{index.LatinLower}, []bool{false})
	hi, _ := symmetry.NewStructure([]index.IndexType{index.LatinLower}, []bool{true})
	assert.Equal(t, lo.Key(), hi.Key())
	mlo, _ := symmetry.NewStructure([]index.IndexType{index.Matrix1}, []bool{false})
	mhi, _ := symmetry.NewStructure([]index.IndexType{index.Matrix1}, []bool{true})
	assert.NotEqual(t, mlo.Key(), mhi.Key())
}
