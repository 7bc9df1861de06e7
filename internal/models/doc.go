// Package models provides functionality for listing the chat models
// available with the configured OpenAI API key.
package models
