// Package rep is the generic derivation engine: it synthesizes a forcing
// implementation from a type's structural representation, a derivation-time
// tree of nested sums and products of fields.
//
// Derivation pipeline:
//  1. Describe the type once: Meta/Product/Sum/Field/Unit constructors,
//     ForStruct for automatic struct shapes, or a YAML shapefile.
//  2. Compile the representation into a forcing function by structural
//     recursion over the tree.
//  3. Register the compiled function; force.Deep dispatches to it for every
//     value of that type from then on.
//
// A representation has no runtime identity beyond this: it exists purely so
// that a new composite type can opt into the protocol by declaring its shape
// once instead of hand-writing a traversal.
//
// Recursive types tie the knot through force.Deep: a Field projection whose
// value is of a registered type re-enters the registry, so representation
// trees themselves stay finite even for self-referential type definitions.
package rep
