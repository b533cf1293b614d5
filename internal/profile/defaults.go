package profile

// Default is a built-in profile installed by SeedDefaults.
type Default struct {
	AgentType string
	Template  string
}

// Defaults returns the profiles of the four pipeline roles.
func Defaults() []Default {
	return []Default{
		{
			AgentType: "datagatherer",
			Template:  "If memory is available ({memory}), collect and summarize recent project updates in Markdown format. If not, proceed based solely on the prompt: {prompt}. Please reply in the same language as the prompt.",
		},
		{
			AgentType: "analyzer",
			Template:  "Analyze the following context ({memory}) if available, and identify any risks, inconsistencies, or optimization points based on the prompt: {prompt}. Return your analysis in Markdown format and in the same language as the prompt.",
		},
		{
			AgentType: "synthesizer",
			Template:  "Using the context provided ({memory}) if available, or relying solely on the prompt ({prompt}), synthesize actionable insights and next steps. Please provide your response in Markdown format and match the language of the prompt.",
		},
		{
			AgentType: "communicator",
			Template:  "Draft a clear stakeholder report using available memory ({memory}) if present, or focus solely on addressing the prompt: {prompt}. Return the report in Markdown format and in the same language as the prompt.",
		},
	}
}
