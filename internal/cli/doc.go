// Package cli handles command-line flags and viper configuration.
package cli
