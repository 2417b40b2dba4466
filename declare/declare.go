package declare

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tensorsym/index"
	"github.com/katalvlaran/tensorsym/permutation"
	"github.com/katalvlaran/tensorsym/symmetry"
)

// File is a parsed declaration document.
type File struct {
	Tensors []Tensor `yaml:"tensors"`
}

// Tensor declares one tensor's slot signature and symmetry generators.
type Tensor struct {
	Name       string     `yaml:"name"`
	Indices    []string   `yaml:"indices"`
	Symmetries []Symmetry `yaml:"symmetries,omitempty"`
}

// Symmetry is one generator. Sign true declares an antisymmetry.
type Symmetry struct {
	Type        string `yaml:"type,omitempty"`
	Permutation []int  `yaml:"permutation"`
	Sign        bool   `yaml:"sign,omitempty"`
}

// Result summarizes what Apply did for one tensor.
type Result struct {
	Name      string
	Store     *symmetry.Store
	Added     int // generators that enlarged the group
	Redundant int // generators already implied
}

// Load decodes a document from r. Unknown fields are rejected; an empty
// document yields an empty File.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("declare: decode: %w: %w", ErrInvalidDeclaration, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Parse is Load over a byte slice.
func Parse(data []byte) (*File, error) { return Load(bytes.NewReader(data)) }

// LoadFile reads and decodes the document at path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("declare: open %s: %w", path, err)
	}
	defer fh.Close()

	return Load(fh)
}

// Validate checks names and slot types without touching any registry.
func (f *File) Validate() error {
	type key struct{ name, structure string }
	seen := make(map[key]struct{}, len(f.Tensors))
	for i, t := range f.Tensors {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("declare: tensor #%d: empty name: %w", i, ErrInvalidDeclaration)
		}
		st, err := t.Structure()
		if err != nil {
			return err
		}
		k := key{name: t.Name, structure: st.Key()}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("declare: tensor %q declared twice with structure %v: %w", t.Name, st, ErrInvalidDeclaration)
		}
		seen[k] = struct{}{}
	}

	return nil
}

// Structure resolves the tensor's slot list.
func (t Tensor) Structure() (symmetry.Structure, error) {
	if len(t.Indices) == 0 {
		return symmetry.Structure{}, fmt.Errorf("declare: tensor %q: no indices: %w", t.Name, ErrInvalidDeclaration)
	}
	types := make([]index.IndexType, len(t.Indices))
	upper := make([]bool, len(t.Indices))
	for i, raw := range t.Indices {
		name := strings.TrimSpace(raw)
		if strings.HasPrefix(name, "^") {
			upper[i], name = true, name[1:]
		}
		typ, err := index.ParseType(name)
		if err != nil {
			return symmetry.Structure{}, fmt.Errorf("declare: tensor %q slot %d: %w", t.Name, i, err)
		}
		types[i] = typ
	}

	return symmetry.NewStructure(types, upper)
}

// Apply registers every tensor in reg and feeds its generators to the
// tensor's store in document order. It stops at the first failing
// generator; stores already updated keep their accepted generators.
func (f *File) Apply(reg *symmetry.Registry) ([]Result, error) {
	results := make([]Result, 0, len(f.Tensors))
	for _, t := range f.Tensors {
		st, err := t.Structure()
		if err != nil {
			return results, err
		}
		res := Result{Name: t.Name, Store: reg.Store(t.Name, st)}
		for j, s := range t.Symmetries {
			added, err := t.add(res.Store, s)
			if err != nil {
				return results, fmt.Errorf("declare: tensor %q symmetry #%d %v: %w", t.Name, j, s.Permutation, err)
			}
			if added {
				res.Added++
			} else {
				res.Redundant++
			}
		}
		results = append(results, res)
	}

	return results, nil
}

func (t Tensor) add(store *symmetry.Store, s Symmetry) (bool, error) {
	p, err := permutation.New(s.Permutation)
	if err != nil {
		return false, err
	}
	if s.Type == "" {
		return store.AddFull(permutation.NewSymmetry(p, s.Sign))
	}
	typ, err := index.ParseType(strings.TrimSpace(s.Type))
	if err != nil {
		return false, err
	}

	return store.Add(typ, p, s.Sign)
}
