// Package pipeline contains the request resolution flow: glossary retrieval,
// complexity classification, prompt building, model invocation and response
// interpretation, ending in one canonical result shape. This package is the
// main coordinator between all other components.
package pipeline
