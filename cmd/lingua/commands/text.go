package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/lingua/culture"
	"github.com/npillmayer/lingua/uax11"
	"github.com/npillmayer/lingua/wordwrap"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newWrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrap [<text>...]",
		Short: "Wrap text to a column width; reads stdin if no text is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetInt("width")
			if width <= 0 {
				return zerr.With(zerr.New("width must be positive"), "width", width)
			}
			input := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return zerr.Wrap(err, "cannot read input")
				}
				input = string(b)
			}
			ctx := uax11.ContextFor(c.engine.CurrentCulture().Name())
			spans, err := c.engine.WordWrap(input, wordwrap.FitsWidth(width, ctx))
			if err != nil {
				return err
			}
			for _, sp := range spans {
				fmt.Fprintln(c.out, sp.Text(input))
			}
			return nil
		},
	}
	cmd.Flags().IntP("width", "w", 72, "column width in en")
	return cmd
}

func (c *CLI) newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two strings with the collation rules of the culture",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("strength")
			strength, ok := culture.ParseStrength(name)
			if !ok {
				return zerr.With(zerr.New("unknown collation strength"), "strength", name)
			}
			a, b := c.engine.FromString(args[0]), c.engine.FromString(args[1])
			rel := "="
			switch r := a.CompareTo(b, strength); {
			case r < 0:
				rel = "<"
			case r > 0:
				rel = ">"
			}
			fmt.Fprintf(c.out, "%s %s %s\n", args[0], rel, args[1])
			return nil
		},
	}
	cmd.Flags().StringP("strength", "s", "Tertiary", "Primary, Secondary, Tertiary, Quaternary or Quinary")
	return cmd
}

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [<culture>...]",
		Short: "Show locale data of cultures; default is the current culture",
		RunE: func(cmd *cobra.Command, args []string) error {
			cultures := []*culture.Culture{c.engine.CurrentCulture()}
			if len(args) > 0 {
				cultures = cultures[:0]
				for _, name := range args {
					cult, err := c.engine.Culture(name)
					if err != nil {
						return err
					}
					cultures = append(cultures, cult)
				}
			}
			for _, cult := range cultures {
				fmt.Fprintf(c.out, "%s\t%s (%s)\tcurrency=%s rtl=%v\n", cult.Name(),
					cult.DisplayName(), cult.NativeName(), cult.CurrencyCode(), cult.IsRightToLeft())
			}
			return nil
		},
	}
}
