// Package result defines the canonical translation result shape shared by
// every path through the pipeline, and the normalizer that guarantees all
// required fields carry a value before a result is handed to a caller.
package result
