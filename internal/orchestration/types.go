package orchestration

import "strings"

// PreviousResultLabel separates a step's prompt from the prior step's output.
const PreviousResultLabel = "\n\n[Previous Result]: "

// Step is one role of a plan. PromptTemplate may reference {prompt}, the
// prompt of the incoming request.
type Step struct {
	AgentType      string
	PromptTemplate string
}

// Render substitutes the request prompt into the step template.
func (s Step) Render(prompt string) string {
	if s.PromptTemplate == "" {
		return prompt
	}
	return strings.ReplaceAll(s.PromptTemplate, "{prompt}", prompt)
}

// Plan is an ordered list of steps.
type Plan struct {
	Steps []Step
}

// DefaultPlan is the gather → analyze → synthesize → communicate pipeline.
func DefaultPlan() Plan {
	return Plan{Steps: []Step{
		{AgentType: "DataGatherer", PromptTemplate: "{prompt}"},
		{AgentType: "Analyzer", PromptTemplate: "Analyze result from DataGatherer: {prompt}"},
		{AgentType: "Synthesizer", PromptTemplate: "Synthesize insights based on Analyzer: {prompt}"},
		{AgentType: "Communicator", PromptTemplate: "Communicate findings from Synthesizer: {prompt}"},
	}}
}

// --- UseCase Inputs ---

// RunPlanInput carries the overrides forwarded unchanged to every step.
type RunPlanInput struct {
	ThreadID      string
	Prompt        string
	SystemMessage string
	Model         string
	Temperature   *float64
	MaxTokens     int
}

// --- UseCase Outputs ---

type TaskResult struct {
	AgentType string
	Output    string
}

// RunPlanOutput lists executed steps in order. FinalOutput is the output
// of the last executed step.
type RunPlanOutput struct {
	FinalOutput string
	Tasks       []TaskResult
}
