// Package gen emits ForceDeep methods for analyzed struct types.
//
// Generation approach uses text/template + go/format for readable output.
// The emitted method is a plain field walk: one force.Deep call per
// traversable field, statically-atomic scalars and identity-only handles
// skipped. Because the file is written into the target package, the walk
// reaches unexported fields the reflect engine cannot.
package gen
