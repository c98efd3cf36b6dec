package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gooze.dev/pkg/calculo/internal/domain"
	m "gooze.dev/pkg/calculo/internal/model"
)

var batchParallelFlag int
var batchExpectFlag string

const batchLongDescription = `Evaluate every scenario of a YAML file:

  scenarios:
    - name: small
      inputs: [1, 3, 2, 5]
      expect: smaller
    - inputs: [10, 20, 1, 6]

Scenarios are evaluated in parallel and printed in file order. The command
fails when a scenario's "expect" does not match, or when --expect names a
golden file whose lines differ from the printed messages.`

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate a scenario file",
		Long:  batchLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflowFor(cmd).Batch(cmd.Context(), domain.BatchArgs{
				Scenarios: m.Path(args[0]),
				Expect:    m.Path(batchExpectFlag),
				Threads:   viper.GetInt(batchParallelConfigKey),
			})
		},
	}

	configureBatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func configureBatchFlags(cmd *cobra.Command) {
	loadConfig()

	cmd.Flags().IntVarP(&batchParallelFlag, batchParallelFlagName, "p", viper.GetInt(batchParallelConfigKey), "number of parallel workers")
	bindFlagToConfig(cmd.Flags().Lookup(batchParallelFlagName), batchParallelConfigKey)
	cmd.Flags().StringVar(&batchExpectFlag, expectFlagName, "", "golden file holding the expected message lines")
}
