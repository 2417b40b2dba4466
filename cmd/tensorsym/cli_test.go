package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensorsym/symmetry"
)

const decls = `
tensors:
  - name: R
    indices: [latin_lower, latin_lower, latin_lower, latin_lower]
    symmetries:
      - {type: latin_lower, permutation: [1, 0, 2, 3], sign: true}
      - {type: latin_lower, permutation: [2, 3, 0, 1]}
      - {type: latin_lower, permutation: [0, 1, 3, 2], sign: true}
  - name: F
    indices: [latin_lower, latin_lower]
    symmetries:
      - {type: latin_lower, permutation: [1, 0], sign: true}
`

func writeDecls(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tensors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", writeDecls(t, decls))
	require.NoError(t, err)
	assert.Equal(t,
		"R (latin_lower,latin_lower,latin_lower,latin_lower): ok, 2 generators, 1 redundant\n"+
			"F (latin_lower,latin_lower): ok, 1 generators\n",
		out)
}

func TestGroup(t *testing.T) {
	out, err := run(t, "group", writeDecls(t, decls))
	require.NoError(t, err)
	assert.Equal(t,
		"F (latin_lower,latin_lower): order 2\n"+
			"R (latin_lower,latin_lower,latin_lower,latin_lower): order 8\n",
		out)

	out, err = run(t, "group", "-e", writeDecls(t, decls))
	require.NoError(t, err)
	assert.Contains(t, out, "F (latin_lower,latin_lower): order 2\n  +[0 1]\n  -[1 0]\n")
}

func TestDiffIDs(t *testing.T) {
	doc := `
tensors:
  - name: T
    indices: [latin_lower, latin_lower, greek_lower, greek_lower]
    symmetries:
      - {type: greek_lower, permutation: [1, 0]}
`
	out, err := run(t, "diffids", writeDecls(t, doc))
	require.NoError(t, err)
	assert.Equal(t, "T (latin_lower,latin_lower,greek_lower,greek_lower): [0 1 2 2]\n", out)
}

func TestErrors(t *testing.T) {
	bad := `
tensors:
  - name: A
    indices: [latin_lower, latin_lower, latin_lower]
    symmetries:
      - {type: latin_lower, permutation: [1, 0, 2], sign: true}
      - {type: latin_lower, permutation: [0, 2, 1]}
`
	_, err := run(t, "check", writeDecls(t, bad))
	assert.ErrorIs(t, err, symmetry.ErrInconsistentGenerators)

	_, err = run(t, "group", "--max-order", "4", writeDecls(t, decls))
	assert.ErrorIs(t, err, symmetry.ErrGroupTooLarge)

	_, err = run(t, "check")
	assert.Error(t, err, "file argument is required")
}
