// Package force implements the deep-forcing traversal protocol: Deep(v)
// materializes every deferred sub-result transitively reachable from v
// through its declared structure, then returns the Done marker.
//
// Dispatch pipeline for Deep:
//  1. nil → already forced
//  2. Forcer override → the type's own ForceDeep
//  3. registered derived implementation (see deepforce/rep) → compiled shape
//  4. kind-driven engine → atomic catalog entries observed in one step;
//     pointers, interfaces, slices/arrays, maps and exported struct fields
//     recursed into; identity-only handles treated as leaves
//
// Failures raised while materializing a sub-value propagate to the caller
// unchanged; nothing in this package recovers, wraps or translates them.
// Deep assumes the input forms a finite reachability structure: it performs
// no cycle detection and does not return on a self-referential value graph.
package force
