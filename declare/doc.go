// Package declare loads tensor symmetry declarations from YAML and registers
// them in a symmetry.Registry.
//
// Document shape:
//
//	tensors:
//	  - name: g                       # metric
//	    indices: [latin_lower, latin_lower]
//	    symmetries:
//	      - type: latin_lower
//	        permutation: [1, 0]
//	  - name: F                       # field strength
//	    indices: [latin_lower, latin_lower]
//	    symmetries:
//	      - {type: latin_lower, permutation: [1, 0], sign: true}
//	  - name: G                       # gamma matrix: one upper, one lower spinor slot
//	    indices: [latin_lower, ^matrix1, matrix1]
//
// A symmetry with a type permutes the slots of that type only; without a
// type the permutation covers every slot. A leading '^' marks an upper slot,
// which only matters for non-metric (matrix) types.
//
// Errors:
//
//	ErrInvalidDeclaration - malformed document or tensor entry.
//	ErrUnknownIndexType   - type name not in the index catalogue.
//
// Store errors (inconsistent generators, dimension mismatch, …) are returned
// wrapped with the tensor name and symmetry position.
package declare
