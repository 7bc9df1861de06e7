// Package glossary is the persistent phrase-to-translation cache consulted
// before any model call. It holds the in-memory store with its JSON-file and
// SQLite backends, the built-in default phrase set, and the retrieval
// resolver with its exact and compositional lookup paths.
package glossary
