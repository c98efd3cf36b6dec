package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gooze.dev/pkg/calculo/internal/controller"
	"gooze.dev/pkg/calculo/internal/domain"
	m "gooze.dev/pkg/calculo/internal/model"
)

// playCmd represents the play command.
var playCmd = newPlayCmd()

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play [A B C D]",
		Short: "Interactive calculator",
		Long:  "Edit the four inputs and watch the verdict update as you type.\n\n" + inputsHelp,
		Args:  noneOrFourArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var initial m.Inputs

			if len(args) > 0 {
				inputs, err := parseInputs(args)
				if err != nil {
					return err
				}

				initial = inputs
			}

			return workflowFor(cmd).Play(cmd.Context(), domain.PlayArgs{
				Initial: initial,
				TUI:     controller.NewTUI(cmd.InOrStdin(), cmd.OutOrStdout(), domain.Evaluate),
			})
		},
	}
}

func noneOrFourArgs(_ *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 4 {
		return fmt.Errorf("accepts 0 or 4 arg(s), received %d", len(args))
	}

	return nil
}

func init() {
	rootCmd.AddCommand(playCmd)
}
