// Package classify scores input text complexity and picks the prompt
// strategy used to instruct the model. The default implementation is a
// heuristic over word count, a literal idiom allow-list and unusual symbols;
// the Classifier interface keeps it swappable for a model-based scorer.
package classify
