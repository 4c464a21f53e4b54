package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. NESTEGG_PLAN_TAX_RATE.
const EnvPrefix = "NESTEGG"

var planKeys = []string{
	"current_age",
	"final_age",
	"retirement_age",
	"current_balance",
	"yearly_contribution",
	"yearly_return",
	"retirement_return",
	"withdrawal_rate",
	"withdrawal_increase",
	"tax_rate",
}

var outputKeys = []string{
	"format",
	"locale",
	"log_level",
}

// requiredKeys have no sensible default and must come from some layer.
var requiredKeys = []string{
	"plan.current_age",
	"plan.final_age",
	"plan.retirement_age",
	"plan.current_balance",
}

// Loader merges a plan file, NESTEGG_* environment variables and command
// line flags. Changed flags win over env, env wins over the file.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader with every known key registered for env lookup.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, k := range allKeys() {
		_ = v.BindEnv(k, EnvName(k))
	}

	out := DefaultOutput()
	v.SetDefault("output.format", out.Format)
	v.SetDefault("output.locale", out.Locale)
	v.SetDefault("output.log_level", out.LogLevel)

	return &Loader{v: v}
}

// EnvName returns the environment variable consulted for key.
// "plan.tax_rate" -> "NESTEGG_PLAN_TAX_RATE"
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// FlagName returns the command line flag bound to key.
// "plan.tax_rate" -> "tax-rate"
func FlagName(key string) string {
	leaf := key[strings.LastIndex(key, ".")+1:]
	return strings.ReplaceAll(leaf, "_", "-")
}

// BindFlags binds every known key to its flag in fs. Keys without a
// matching flag are skipped.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	for _, k := range allKeys() {
		f := fs.Lookup(FlagName(k))
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(k, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", f.Name, err)
		}
	}
	return nil
}

// Load reads path (if non-empty), applies env and flag overrides and
// returns the merged Config. It fails when a required key is unset.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var missing []string
	for _, k := range requiredKeys {
		if !l.v.IsSet(k) {
			missing = append(missing, "--"+FlagName(k))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func allKeys() []string {
	keys := make([]string, 0, len(planKeys)+len(outputKeys))
	for _, k := range planKeys {
		keys = append(keys, "plan."+k)
	}
	for _, k := range outputKeys {
		keys = append(keys, "output."+k)
	}
	return keys
}
