package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"memory-agent/internal/agent"
	"memory-agent/internal/orchestration"
)

var (
	runInput    agent.RunInput
	planInput   orchestration.RunPlanInput
	temperature float64

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run one agent against a thread",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			runInput.Temperature = temperatureOverride(cmd)
			out, err := a.Agent.Run(cmd.Context(), runInput)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Response)
			return nil
		},
	}

	planCmd = &cobra.Command{
		Use:   "plan",
		Short: "Run the configured multi-agent plan against a thread",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			planInput.Temperature = temperatureOverride(cmd)
			out, err := a.Orchestration.RunPlan(cmd.Context(), planInput)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, task := range out.Tasks {
				fmt.Fprintf(w, "== %s ==\n%s\n\n", task.AgentType, task.Output)
			}
			fmt.Fprintf(w, "== final ==\n%s\n", out.FinalOutput)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(runCmd, planCmd)

	runCmd.Flags().StringVar(&runInput.ThreadID, "thread", "", "thread id")
	runCmd.Flags().StringVar(&runInput.AgentType, "agent", "", "agent type, matched against prompt profiles")
	runCmd.Flags().StringVar(&runInput.Prompt, "prompt", "", "user prompt")
	runCmd.Flags().StringVar(&runInput.SystemMessage, "system", "", "optional system message")
	runCmd.Flags().StringVar(&runInput.Model, "model", "", "model override")
	runCmd.Flags().Float64Var(&temperature, "temperature", 0, "sampling temperature override")
	runCmd.Flags().IntVar(&runInput.MaxTokens, "max-tokens", 0, "max output tokens override")
	_ = runCmd.MarkFlagRequired("thread")
	_ = runCmd.MarkFlagRequired("agent")
	_ = runCmd.MarkFlagRequired("prompt")

	planCmd.Flags().StringVar(&planInput.ThreadID, "thread", "", "thread id")
	planCmd.Flags().StringVar(&planInput.Prompt, "prompt", "", "user prompt")
	planCmd.Flags().StringVar(&planInput.SystemMessage, "system", "", "optional system message")
	planCmd.Flags().StringVar(&planInput.Model, "model", "", "model override")
	planCmd.Flags().Float64Var(&temperature, "temperature", 0, "sampling temperature override")
	planCmd.Flags().IntVar(&planInput.MaxTokens, "max-tokens", 0, "max output tokens override")
	_ = planCmd.MarkFlagRequired("thread")
	_ = planCmd.MarkFlagRequired("prompt")
}

// temperatureOverride returns nil unless --temperature was given.
func temperatureOverride(cmd *cobra.Command) *float64 {
	if !cmd.Flags().Changed("temperature") {
		return nil
	}
	t := temperature
	return &t
}
