// Package shapefile loads declarative, human-reviewed type shapes from YAML
// and registers the derived forcing implementations they describe.
//
// Pipeline:
//  1. LoadFile/Parse YAML → File (schema in schema.go), defaults applied
//  2. Resolve each declared type name against a Registry of Go types
//  3. Validate every node against the reflect shape of its type
//  4. Build rep trees, compile and register them with the protocol
//
// A shape node is exactly one of: unit, field, product, sum or meta+of.
// Products are n-ary in the file and folded into right-nested binary
// products. Sums name a bool or integer tag field: false/0 selects the left
// alternative, anything else the right.
package shapefile
