package main

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hucsmn/pegrt"
	"github.com/hucsmn/pegrt/example/rpn"
	"github.com/hucsmn/pegrt/pegutil"
)

const envPrefix = "pegrt"

var grammars = map[string]*pegrt.Table{
	"rpn":     rpn.Grammar,
	"pegutil": pegutil.Rules,
}

// settings is what every sub-command shares. Flags set on the command line
// win over PEGRT_* environment variables, which win over the config file.
type settings struct {
	config pegrt.Config
	log    *logrus.Logger
}

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.Int("node-limit", pegrt.DefaultNodeLimit, "maximum number of live result nodes, 0 for unlimited")
	flags.Bool("no-lines", false, "report offsets only, without line and column counting")
	flags.String("log-level", "warning", "log level (debug, info, warning, error)")
	flags.String("log-format", "text", "log format (text, json)")
}

func addGrammarFlag(flags *pflag.FlagSet, grammar *string) {
	flags.StringVarP(grammar, "grammar", "g", "rpn", "grammar to use ("+strings.Join(grammarNames(), ", ")+")")
}

func grammarNames() []string {
	names := make([]string, 0, len(grammars))
	for name := range grammars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupGrammar(name string) (*pegrt.Table, error) {
	table, ok := grammars[name]
	if !ok {
		return nil, errors.Errorf("unknown grammar %q (expected one of %s)", name, strings.Join(grammarNames(), ", "))
	}
	return table, nil
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", file)
		}
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	level, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, errors.Wrap(err, "log-level")
	}
	log.SetLevel(level)
	switch format := v.GetString("log-format"); format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}

	cfg := pegrt.DefaultConfig()
	cfg.NodeLimit = v.GetInt("node-limit")
	cfg.DisableLineColumnCounting = v.GetBool("no-lines")
	cfg.Logger = log

	log.WithFields(logrus.Fields{
		"node-limit": cfg.NodeLimit,
		"no-lines":   cfg.DisableLineColumnCounting,
		"config":     v.ConfigFileUsed(),
	}).Debug("settings loaded")
	return &settings{config: cfg, log: log}, nil
}
