// Package cmd provides the root command and CLI setup for calculo.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gooze.dev/pkg/calculo/internal/adapter"
	"gooze.dev/pkg/calculo/internal/controller"
	"gooze.dev/pkg/calculo/internal/domain"
	m "gooze.dev/pkg/calculo/internal/model"
)

var scenarioStore adapter.ScenarioStore

// workflowFor builds the workflow serving a command invocation.
// Tests replace it to inject a mock.
var workflowFor = defaultWorkflow

// formatFlag selects plain or table output.
var formatFlag string

// logFileFlag overrides the log file path.
var logFileFlag string

// verboseFlag enables debug logging.
var verboseFlag bool

func init() {
	scenarioStore = adapter.NewLocalScenarioStore()
}

func defaultWorkflow(cmd *cobra.Command) domain.Workflow {
	return domain.NewWorkflow(scenarioStore, newUI(cmd))
}

func newUI(cmd *cobra.Command) controller.UI {
	return controller.NewSimpleUI(cmd,
		controller.WithFormat(m.ParseFormat(viper.GetString(formatConfigKey))),
		controller.WithStyle(controller.IsTTY(cmd.OutOrStdout())),
	)
}

const inputsHelp = `Inputs are parsed as 64-bit floats; NaN, Inf and -Inf are accepted.
Put "--" before the inputs when the first one is negative:
  calculo eval -- -5 -5 -5 -5`

const rootLongDescription = `Calculo sums its first two and its last two inputs, multiplies the sums
and reports whether the product is greater than 50. A product of exactly 50
is reported as smaller.

Without a subcommand it runs the two reference invocations:
  calculo(1, 3, 2, 5)   -> The number is smaller than 50!
  calculo(10, 20, 1, 6) -> The number is greater than 50!`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "calculo",
		Short:        "Threshold calculator",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflowFor(cmd).Demo(cmd.Context(), domain.DemoArgs{})
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	loadConfig()

	cmd.PersistentFlags().StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "output format: plain or table")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// parseInputs converts exactly four arguments into calculator inputs.
func parseInputs(args []string) (m.Inputs, error) {
	if len(args) != 4 {
		return m.Inputs{}, fmt.Errorf("expected 4 inputs, got %d", len(args))
	}

	var values [4]float64

	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return m.Inputs{}, fmt.Errorf("input %d: %w", i+1, err)
		}

		values[i] = v
	}

	return m.Inputs{A: values[0], B: values[1], C: values[2], D: values[3]}, nil
}
