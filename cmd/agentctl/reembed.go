package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"memory-agent/internal/memory/reembed"
)

var (
	reembedOpts reembed.Options

	reembedCmd = &cobra.Command{
		Use:   "reembed",
		Short: "Recompute the embeddings of stored semantic memory",
		Long: `Recompute the embeddings of stored semantic memory with the configured
embedding provider. Run it after switching embedding models, since entries with
a different dimensionality never match new queries.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			stats, err := reembed.Run(cmd.Context(), e.l, a.Memory, a.Embedder, reembedOpts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated: %d\nfailed: %d\n", stats.Updated, stats.Failed)
			if stats.Failed > 0 {
				return fmt.Errorf("%d entries could not be re-embedded", stats.Failed)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(reembedCmd)
	reembedCmd.Flags().StringVar(&reembedOpts.ThreadID, "thread", "", "only re-embed this thread")
	reembedCmd.Flags().IntVar(&reembedOpts.BatchSize, "batch", reembed.DefaultBatchSize, "entries per embedding request")
	reembedCmd.Flags().IntVar(&reembedOpts.Workers, "workers", reembed.DefaultWorkers, "concurrent embedding requests")
}
