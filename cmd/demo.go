package cmd

import (
	"github.com/spf13/cobra"
	"gooze.dev/pkg/calculo/internal/domain"
)

var demoAllFlag bool

// demoCmd represents the demo command.
var demoCmd = newDemoCmd()

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the reference invocations",
		Long: `Run calculo(1, 3, 2, 5) and calculo(10, 20, 1, 6). With --all the boundary
case calculo(5, 0, 10, 0) and the negative case calculo(-5, -5, -5, -5) follow.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflowFor(cmd).Demo(cmd.Context(), domain.DemoArgs{All: demoAllFlag})
		},
	}

	cmd.Flags().BoolVarP(&demoAllFlag, allFlagName, "a", false, "also run the boundary and negative cases")

	return cmd
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
