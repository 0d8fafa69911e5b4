// Package commands implements the CLI commands for emorec.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/emorec/internal/app"
	"go.trai.ch/emorec/internal/build"
	"go.trai.ch/emorec/internal/core/domain"
)

// CLI represents the command line interface for emorec.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.GlobalOptions) error
	Info(ctx context.Context, sets []app.DatasetOptions) error
	Convert(ctx context.Context, opts app.ConvertOptions) error
	Process(ctx context.Context, opts app.ProcessOptions) (*domain.Report, error)
	Preprocess(ctx context.Context, path string) error
	Agreement(ctx context.Context, opts app.AgreementOptions) (app.AgreementResult, error)
	Analyse(ctx context.Context, opts app.AnalyseOptions) (app.AnalyseResult, error)
	Clean(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "emorec",
		Short:         "Speech emotion recognition dataset toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to emorec.yaml (default: search upwards)")
	rootCmd.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty, or json")
	rootCmd.PersistentFlags().StringP("output-mode", "o", "auto", "Progress output mode: auto, interactive, or linear")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		logFormat, _ := cmd.Flags().GetString("log-format")
		outputMode, _ := cmd.Flags().GetString("output-mode")
		return c.app.Configure(app.GlobalOptions{
			ConfigPath: configPath,
			LogFormat:  logFormat,
			OutputMode: outputMode,
		})
	}

	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newConvertCmd())
	rootCmd.AddCommand(c.newProcessCmd())
	rootCmd.AddCommand(c.newPreprocessCmd())
	rootCmd.AddCommand(c.newAgreementCmd())
	rootCmd.AddCommand(c.newAnalyseCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
