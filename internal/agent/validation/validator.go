// Package validation classifies model output and builds corrective follow-up prompts.
package validation

import "strings"

// Markers of meta-commentary that make a response unusable as-is.
var invalidMarkers = []string{"Here is", "Explanation:"}

// Result is the outcome of validating one model response.
type Result struct {
	Text        string
	Valid       bool
	Diagnostics []string
}

// Validator decides whether model output is well formed.
type Validator interface {
	Validate(text string) Result
}

// FormatValidator is the default structural validator.
type FormatValidator struct{}

// Validate returns a Valid result, or an Invalid one carrying the diagnostics the
// feedback composer found for text.
func (FormatValidator) Validate(text string) Result {
	if IsValid(text) {
		return Result{Text: text, Valid: true}
	}
	return Result{Text: text, Valid: false, Diagnostics: Diagnose(text)}
}

// IsValid reports whether text is non-blank and free of the meta-commentary markers.
func IsValid(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	for _, marker := range invalidMarkers {
		if strings.Contains(text, marker) {
			return false
		}
	}
	return true
}
