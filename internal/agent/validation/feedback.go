package validation

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

const (
	maxResponseLength = 2000

	feedbackIntro   = "The previous output had the following specific issues:"
	genericIssue    = "General formatting inconsistencies or missing required sections."
	feedbackSuggest = "To improve, please regenerate the response with the following corrections:\n" +
		"✅ Start directly with the required sections, no extra introductions or summaries.\n" +
		"✅ Use plain raw text without markdown, code blocks, or decorative wrappers.\n" +
		"✅ Ensure all required sections are included, correctly labeled, and ordered.\n" +
		"✅ Keep the language concise, focused, and machine-ready.\n" +
		"✅ Avoid unnecessary disclaimers, apologies, or meta-comments.\n\n" +
		"Here is the original instruction to apply:"
)

type diagnostic struct {
	fires   func(output string) bool
	message string
}

// Order matters: messages are reported in this order.
var diagnostics = []diagnostic{
	{
		fires:   func(s string) bool { return strings.TrimSpace(s) == "" },
		message: "The response was empty or blank.",
	},
	{
		fires:   func(s string) bool { return strings.Contains(s, "```") },
		message: "Included unnecessary markdown code blocks (``` markers).",
	},
	{
		fires:   func(s string) bool { return utf8.RuneCountInString(s) > maxResponseLength },
		message: "Response was excessively long, possibly due to redundancy.",
	},
	{
		fires:   func(s string) bool { return !strings.Contains(s, "{") || !strings.Contains(s, "}") },
		message: "Expected structured formatting (like JSON or labeled sections) was missing.",
	},
	{
		fires: func(s string) bool {
			lower := strings.ToLower(s)
			return strings.Contains(lower, "warning") || strings.Contains(lower, "notice")
		},
		message: "Included irrelevant warnings or notices.",
	},
	{
		fires: func(s string) bool {
			lower := strings.ToLower(s)
			return strings.Contains(lower, "i'm sorry") || strings.Contains(lower, "as an ai")
		},
		message: "Included unnecessary disclaimers or apologies.",
	},
	{
		fires:   hasDuplicateLines,
		message: "Contained repeated or duplicate lines.",
	},
	{
		fires:   func(s string) bool { return !json.Valid([]byte(s)) },
		message: "Possible invalid JSON or unstructured formatting detected.",
	},
}

// Diagnose runs every diagnostic over output and returns the messages of those that fire.
func Diagnose(output string) []string {
	var issues []string
	for _, d := range diagnostics {
		if d.fires(output) {
			issues = append(issues, d.message)
		}
	}
	return issues
}

// BuildFeedbackPrompt composes the corrective prompt for the next attempt: the
// detected issues, the fixed correction list and then originalPrompt verbatim.
func BuildFeedbackPrompt(originalPrompt, invalidOutput string) string {
	issues := Diagnose(invalidOutput)

	combined := "- " + genericIssue
	if len(issues) > 0 {
		combined = "- " + strings.Join(issues, "\n- ")
	}

	var b strings.Builder
	b.WriteString(feedbackIntro)
	b.WriteString("\n")
	b.WriteString(combined)
	b.WriteString("\n\n")
	b.WriteString(feedbackSuggest)
	b.WriteString("\n\n")
	b.WriteString(originalPrompt)
	return b.String()
}

func hasDuplicateLines(s string) bool {
	seen := make(map[string]struct{})
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			return true
		}
		seen[line] = struct{}{}
	}
	return false
}
