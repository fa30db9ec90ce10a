// Package commands implements the sub-commands of the lingua CLI.
package commands

import (
	"context"
	"io"

	"github.com/npillmayer/lingua/culture"
	"github.com/npillmayer/lingua/text"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// tracer traces to lingua.cli .
func tracer() tracing.Trace {
	return tracing.Select("lingua.cli")
}

// CLI is the command line interface of lingua.
type CLI struct {
	rootCmd *cobra.Command
	conf    *flagConfig
	out     io.Writer
	engine  *text.Engine
}

// New creates a CLI writing its results to out.
func New(out io.Writer) *CLI {
	c := &CLI{conf: newFlagConfig(), out: out}
	c.rootCmd = &cobra.Command{
		Use:           "lingua",
		Short:         "Culture-aware formatting and text breaking",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	c.conf.bind(c.rootCmd.PersistentFlags())
	c.rootCmd.PersistentFlags().String("trace", "Error", "trace level (Debug, Info, Error)")
	c.rootCmd.SetOut(out)

	c.rootCmd.AddCommand(c.newNumberCmd("number", "Format a decimal number", culture.AsNumber))
	c.rootCmd.AddCommand(c.newNumberCmd("percent", "Format a fraction as a percentage", culture.AsPercent))
	c.rootCmd.AddCommand(c.newNumberCmd("currency", "Format a currency amount", culture.AsCurrency))
	c.rootCmd.AddCommand(c.newDateCmd())
	c.rootCmd.AddCommand(c.newWrapCmd())
	c.rootCmd.AddCommand(c.newCompareCmd())
	c.rootCmd.AddCommand(c.newInfoCmd())
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	defer func() {
		if c.engine != nil {
			c.engine.Close()
			c.engine = nil
		}
	}()
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func (c *CLI) setup(cmd *cobra.Command) error {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	level, _ := cmd.Flags().GetString("trace")
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
	engine, err := text.NewEngine(c.conf)
	if err != nil {
		return err
	}
	c.engine = engine
	tracer().Debugf("culture is %s", engine.CurrentCulture().Name())
	return nil
}
