package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/npillmayer/lingua/culture"
	"github.com/npillmayer/lingua/numfmt"
	"github.com/npillmayer/lingua/text"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newNumberCmd(use, short string, kind culture.NumberKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <value>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := numberOptions(cmd)
			if err != nil {
				return err
			}
			code, _ := cmd.Flags().GetString("code")
			for _, arg := range args {
				var t text.Text
				switch kind {
				case culture.AsPercent:
					t = c.engine.FormatPercent(arg, opts, nil)
				case culture.AsCurrency:
					t = c.engine.FormatCurrency(arg, opts, code, nil)
				default:
					t = c.engine.FormatNumber(arg, opts, nil)
				}
				fmt.Fprintln(c.out, t.ToString())
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Int("min-fraction", 0, "minimum number of fraction digits")
	flags.Int("max-fraction", 3, "maximum number of fraction digits")
	flags.Int("min-integer", 1, "minimum number of integer digits")
	flags.Bool("grouping", true, "group integer digits")
	flags.Bool("sign", false, "always render a sign")
	flags.String("rounding", "HalfToEven", "rounding mode")
	if kind == culture.AsCurrency {
		flags.String("code", "", "ISO 4217 currency code; default is the currency of the culture")
	}
	return cmd
}

// numberOptions returns nil if no option flag has been given, selecting
// the defaults of the culture.
func numberOptions(cmd *cobra.Command) (*numfmt.Options, error) {
	flags := cmd.Flags()
	changed := false
	for _, name := range []string{"min-fraction", "max-fraction", "min-integer", "grouping", "sign", "rounding"} {
		changed = changed || flags.Changed(name)
	}
	if !changed {
		return nil, nil
	}
	name, _ := flags.GetString("rounding")
	mode, ok := numfmt.ParseRoundingMode(name)
	if !ok {
		return nil, zerr.With(zerr.New("unknown rounding mode"), "mode", name)
	}
	minFrac, _ := flags.GetInt("min-fraction")
	maxFrac, _ := flags.GetInt("max-fraction")
	minInt, _ := flags.GetInt("min-integer")
	grouping, _ := flags.GetBool("grouping")
	sign, _ := flags.GetBool("sign")
	opts := numfmt.DefaultWithGrouping.
		WithGrouping(grouping).
		WithRounding(mode).
		WithFractionDigits(minFrac, maxFrac).
		WithIntegerDigits(minInt, numfmt.MaxIntegerDigits)
	opts.AlwaysSign = sign
	return &opts, nil
}

func (c *CLI) newDateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date [<date>]",
		Short: "Format a date and time; default is now",
		Long: `Format a date and time. The input is parsed leniently and may be
given in most common notations, e.g. "2024-03-05 14:07", "03/05/2024"
or "March 5, 2024".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := c.engine.Registry().Location()
			t := time.Now().In(loc)
			if len(args) > 0 {
				input := strings.Join(args, " ")
				var err error
				if t, err = dateparse.ParseIn(input, loc); err != nil {
					return zerr.With(zerr.Wrap(err, "cannot parse date"), "input", input)
				}
			}
			dateStyle, err := dateStyleFlag(cmd, "style")
			if err != nil {
				return err
			}
			timeStyle, err := dateStyleFlag(cmd, "time-style")
			if err != nil {
				return err
			}
			zone := "" // default zone of the engine
			var out text.Text
			switch show, _ := cmd.Flags().GetString("show"); show {
			case "date":
				out = c.engine.FormatDate(t, dateStyle, zone, nil)
			case "time":
				out = c.engine.FormatTime(t, timeStyle, zone, nil)
			case "both":
				out = c.engine.FormatDateTime(t, dateStyle, timeStyle, zone, nil)
			default:
				return zerr.With(zerr.New("--show must be one of date, time, both"), "show", show)
			}
			fmt.Fprintln(c.out, out.ToString())
			return nil
		},
	}
	cmd.Flags().String("style", "Default", "date style: Default, Short, Medium, Long, Full")
	cmd.Flags().String("time-style", "Default", "time style: Default, Short, Medium, Long, Full")
	cmd.Flags().String("show", "both", "parts to render: date, time, both")
	return cmd
}

func dateStyleFlag(cmd *cobra.Command, name string) (culture.DateStyle, error) {
	v, _ := cmd.Flags().GetString(name)
	style, ok := culture.ParseDateStyle(v)
	if !ok {
		return style, zerr.With(zerr.New("unknown date style"), "style", v)
	}
	return style, nil
}
