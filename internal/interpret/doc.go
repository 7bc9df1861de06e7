// Package interpret turns raw model responses into canonical translation
// results through a three-tier fallback: structured function call, JSON span
// scraped from free text, raw-text passthrough.
package interpret
