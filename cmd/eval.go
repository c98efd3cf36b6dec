package cmd

import (
	"github.com/spf13/cobra"
	"gooze.dev/pkg/calculo/internal/domain"
)

// evalCmd represents the eval command.
var evalCmd = newEvalCmd()

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval A B C D",
		Short: "Evaluate one set of inputs",
		Long:  "Compute (A+B)*(C+D) and print whether it is greater than 50.\n\n" + inputsHelp,
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := parseInputs(args)
			if err != nil {
				return err
			}

			return workflowFor(cmd).Eval(cmd.Context(), domain.EvalArgs{Inputs: inputs})
		},
	}
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
