package commands

import (
	"strconv"

	"github.com/npillmayer/lingua/text"
	"github.com/spf13/pflag"
)

// flagConfig is a schuko.Configuration backed by command line flags.
type flagConfig struct {
	flags *pflag.FlagSet
	names map[string]string // configuration key → flag name
}

func newFlagConfig() *flagConfig {
	return &flagConfig{
		names: map[string]string{
			text.KeyCulture:      "culture",
			text.KeyReportErrors: "report-errors",
			text.KeyLRUCapacity:  "cache-size",
			text.KeyTimezone:     "zone",
			text.KeyLocaleData:   "locale-data",
		},
	}
}

func (fc *flagConfig) bind(flags *pflag.FlagSet) {
	fc.flags = flags
	flags.StringP("culture", "l", "", "culture name, e.g. de-DE; default is the system locale")
	flags.Bool("report-errors", false, "render diagnostics for failed operations")
	flags.Int("cache-size", 10, "capacity of the formatter caches")
	flags.StringP("zone", "z", "", "time zone of dates, e.g. Europe/Berlin")
	flags.String("locale-data", "", "YAML file with locale data overrides")
}

func (fc *flagConfig) flag(key string) *pflag.Flag {
	if fc.flags == nil {
		return nil
	}
	name, ok := fc.names[key]
	if !ok {
		return nil
	}
	return fc.flags.Lookup(name)
}

// InitDefaults is part of interface schuko.Configuration. Defaults live
// in the flag definitions.
func (fc *flagConfig) InitDefaults() {}

// IsSet is part of interface schuko.Configuration.
func (fc *flagConfig) IsSet(key string) bool {
	f := fc.flag(key)
	return f != nil && f.Changed
}

// GetString is part of interface schuko.Configuration.
func (fc *flagConfig) GetString(key string) string {
	if f := fc.flag(key); f != nil {
		return f.Value.String()
	}
	return ""
}

// GetInt is part of interface schuko.Configuration.
func (fc *flagConfig) GetInt(key string) int {
	n, err := strconv.Atoi(fc.GetString(key))
	if err != nil {
		return 0
	}
	return n
}

// GetBool is part of interface schuko.Configuration.
func (fc *flagConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(fc.GetString(key))
	return b
}

// IsInteractive is part of interface schuko.Configuration.
func (fc *flagConfig) IsInteractive() bool { return false }
