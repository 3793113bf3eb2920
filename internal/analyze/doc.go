// Package analyze loads Go packages and builds the type graph consumed by
// forcing-method generation. Unlike runtime reflection, the graph records
// unexported fields: the generated method lives in the target type's own
// package and can traverse state the reflect engine cannot see.
package analyze
