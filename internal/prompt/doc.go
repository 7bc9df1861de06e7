// Package prompt renders strategy templates into model requests and defines
// the translate_text structured-output function descriptor.
package prompt
