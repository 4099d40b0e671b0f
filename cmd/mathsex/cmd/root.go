package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mxconfig "github.com/msto63/mathsex/foundation/core/config"
	mxerrors "github.com/msto63/mathsex/foundation/core/errors"
	mxlog "github.com/msto63/mathsex/foundation/core/log"
	"github.com/msto63/mathsex/pkg/core/logging"
)

// app holds the state shared by all commands of one invocation
type app struct {
	cfgFile string
	verbose bool
	output  string
	noColor bool

	settings mxconfig.Settings
	logger   *mxlog.Logger
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	a := &app{
		settings: mxconfig.DefaultSettings(),
		logger:   mxlog.NewNop(),
	}

	cmd := &cobra.Command{
		Use:   "mathsex",
		Short: "mathsex - exakte Brüche, gemischte Zahlen und Zahlentheorie",
		Long: `mathsex rechnet exakt mit Brüchen und gemischten Zahlen
und bietet die üblichen zahlentheoretischen Funktionen.

Negative Zahlen werden nach "--" übergeben:
  mathsex fraction add -- -1 2 1 3`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config-Datei (TOML oder YAML, default: nur Umgebung)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Debug-Logging aktivieren")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Ausgabeformat (text, json)")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Farbige Ausgabe abschalten")

	cmd.AddCommand(
		a.versionCmd(),
		a.gcdCmd(),
		a.lcmCmd(),
		a.factorsCmd(),
		a.primeCmd(),
		a.factorialCmd(),
		a.averageCmd(),
		a.fractionCmd(),
		a.mixedCmd(),
	)
	return cmd
}

// setup loads the settings and builds the logger for this invocation
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	settings, err := mxconfig.LoadSettings(a.cfgFile, mxconfig.EnvPrefix)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("output") {
		format := strings.ToLower(strings.TrimSpace(a.output))
		if format != "text" && format != "json" {
			return mxerrors.InvalidFormat(mxerrors.ModuleCLI, a.output, "text or json")
		}
		settings.OutputFormat = format
	}
	if a.noColor {
		settings.OutputColor = false
	}
	if a.verbose {
		settings.LogLevel = "debug"
	}
	a.settings = settings

	a.logger = logging.NewRequestLogger(logging.LoggerConfig{
		Name:   "mathsex",
		Level:  settings.LogLevel,
		Format: settings.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	a.logger.Debug("settings loaded", mxlog.Fields{
		"config":        a.cfgFile,
		"output_format": settings.OutputFormat,
		"output_scale":  settings.OutputScale,
	})
	return nil
}

// run executes fn for the named operation, logs its outcome and renders the result
func (a *app) run(cmd *cobra.Command, operation string, fn func() (Result, error)) error {
	timer := a.logger.StartTimer(operation)

	res, err := fn()
	if err != nil {
		timer.WithField("failed", true).Stop()
		a.logger.LogError(err)
		return err
	}
	timer.Stop()

	res.Command = operation
	return a.renderer(cmd.OutOrStdout()).Render(res)
}

func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Fehler: %v\n", err)
}
