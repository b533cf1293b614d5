package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"memory-agent/internal/agent"
	"memory-agent/internal/orchestration"
	"memory-agent/pkg/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeProfiles map[string]bool

func (p fakeProfiles) GetTemplate(_ context.Context, agentType string) (string, bool, error) {
	if p[strings.ToLower(agentType)] {
		return "tpl", true, nil
	}
	return "", false, nil
}

// fakeRunner answers "<agentType> out" and records every input.
type fakeRunner struct {
	inputs []agent.RunInput
	failOn string
}

func (r *fakeRunner) Run(_ context.Context, in agent.RunInput) (agent.RunOutput, error) {
	r.inputs = append(r.inputs, in)
	if in.AgentType == r.failOn {
		return agent.RunOutput{}, agent.ErrValidationExhausted
	}
	return agent.RunOutput{Response: in.AgentType + " out"}, nil
}

var allRoles = fakeProfiles{"datagatherer": true, "analyzer": true, "synthesizer": true, "communicator": true}

func TestRunPlan_AllSteps(t *testing.T) {
	runner := &fakeRunner{}
	temp := 0.3
	uc := New(log.NewNop(), runner, allRoles, orchestration.DefaultPlan())

	out, err := uc.RunPlan(context.Background(), orchestration.RunPlanInput{
		ThreadID: "t1", Prompt: "Q3 status", SystemMessage: "sys", Model: "m", Temperature: &temp, MaxTokens: 500,
	})
	if err != nil {
		t.Fatalf("RunPlan: %v", err)
	}

	want := orchestration.RunPlanOutput{
		FinalOutput: "Communicator out",
		Tasks: []orchestration.TaskResult{
			{AgentType: "DataGatherer", Output: "DataGatherer out"},
			{AgentType: "Analyzer", Output: "Analyzer out"},
			{AgentType: "Synthesizer", Output: "Synthesizer out"},
			{AgentType: "Communicator", Output: "Communicator out"},
		},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("RunPlan() mismatch (-want +got):\n%s", diff)
	}

	prompts := make([]string, len(runner.inputs))
	for i, in := range runner.inputs {
		prompts[i] = in.Prompt
		if in.ThreadID != "t1" || in.SystemMessage != "sys" || in.Model != "m" || in.Temperature != &temp || in.MaxTokens != 500 {
			t.Errorf("overrides not forwarded to %s: %+v", in.AgentType, in)
		}
	}
	wantPrompts := []string{
		"Q3 status\n\n[Previous Result]: ",
		"Analyze result from DataGatherer: Q3 status\n\n[Previous Result]: DataGatherer out",
		"Synthesize insights based on Analyzer: Q3 status\n\n[Previous Result]: Analyzer out",
		"Communicate findings from Synthesizer: Q3 status\n\n[Previous Result]: Synthesizer out",
	}
	if diff := cmp.Diff(wantPrompts, prompts); diff != "" {
		t.Errorf("chained prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestRunPlan_SkipsMissingProfile(t *testing.T) {
	runner := &fakeRunner{}
	profiles := fakeProfiles{"datagatherer": true, "synthesizer": true, "communicator": true}
	uc := New(log.NewNop(), runner, profiles, orchestration.DefaultPlan())

	out, err := uc.RunPlan(context.Background(), orchestration.RunPlanInput{ThreadID: "t1", Prompt: "p"})
	if err != nil {
		t.Fatalf("RunPlan: %v", err)
	}
	if len(out.Tasks) != 3 {
		t.Fatalf("tasks = %d, want 3", len(out.Tasks))
	}
	if out.FinalOutput != "Communicator out" {
		t.Errorf("final output = %q", out.FinalOutput)
	}
	// The synthesizer is chained onto the gatherer, the last executed step.
	if !strings.HasSuffix(runner.inputs[1].Prompt, "[Previous Result]: DataGatherer out") {
		t.Errorf("synthesizer prompt = %q", runner.inputs[1].Prompt)
	}
}

func TestRunPlan_FinalOutputIsLastExecuted(t *testing.T) {
	runner := &fakeRunner{}
	profiles := fakeProfiles{"datagatherer": true, "analyzer": true}
	uc := New(log.NewNop(), runner, profiles, orchestration.DefaultPlan())

	out, err := uc.RunPlan(context.Background(), orchestration.RunPlanInput{ThreadID: "t1", Prompt: "p"})
	if err != nil {
		t.Fatal(err)
	}
	if out.FinalOutput != "Analyzer out" {
		t.Errorf("final output = %q, want Analyzer out", out.FinalOutput)
	}
}

func TestRunPlan_StepFailureIsFatal(t *testing.T) {
	runner := &fakeRunner{failOn: "Analyzer"}
	uc := New(log.NewNop(), runner, allRoles, orchestration.DefaultPlan())

	_, err := uc.RunPlan(context.Background(), orchestration.RunPlanInput{ThreadID: "t1", Prompt: "p"})
	if !errors.Is(err, orchestration.ErrStepFailed) || !errors.Is(err, agent.ErrValidationExhausted) {
		t.Fatalf("expected wrapped step failure, got %v", err)
	}
	if len(runner.inputs) != 2 {
		t.Errorf("runner calls = %d, want 2", len(runner.inputs))
	}
}

func TestRunPlan_CustomPlan(t *testing.T) {
	runner := &fakeRunner{}
	plan := orchestration.Plan{Steps: []orchestration.Step{
		{AgentType: "writer"},
		{AgentType: "editor", PromptTemplate: "Edit: {prompt}"},
	}}
	uc := New(log.NewNop(), runner, fakeProfiles{"writer": true, "editor": true}, plan)

	out, err := uc.RunPlan(context.Background(), orchestration.RunPlanInput{ThreadID: "t1", Prompt: "draft"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"draft\n\n[Previous Result]: ", "Edit: draft\n\n[Previous Result]: writer out"},
		[]string{runner.inputs[0].Prompt, runner.inputs[1].Prompt}); diff != "" {
		t.Errorf("prompts (-want +got):\n%s", diff)
	}
	if out.FinalOutput != "editor out" {
		t.Errorf("final = %q", out.FinalOutput)
	}
}

func TestRunPlan_InvalidInput(t *testing.T) {
	uc := New(log.NewNop(), &fakeRunner{}, allRoles, orchestration.DefaultPlan())
	if _, err := uc.RunPlan(context.Background(), orchestration.RunPlanInput{ThreadID: "t1"}); !errors.Is(err, orchestration.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	empty := New(log.NewNop(), &fakeRunner{}, allRoles, orchestration.Plan{})
	if _, err := empty.RunPlan(context.Background(), orchestration.RunPlanInput{ThreadID: "t1", Prompt: "p"}); !errors.Is(err, orchestration.ErrEmptyPlan) {
		t.Errorf("expected ErrEmptyPlan, got %v", err)
	}
}
