// Package provider defines the model-invocation boundary: one request and
// response shape shared by all generative backends, plus OpenAI and Gemini
// implementations and a circuit-breaker wrapper.
package provider
