package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"vramest/internal/config"
	"vramest/internal/estimate"
	"vramest/internal/params"
	"vramest/internal/quant"
	"vramest/internal/report"
)

// Config carries flag values. Empty strings mean "not set on the command line".
type Config struct {
	Output     string
	ConfigPath string
	LogLvl     string
}

// state is resolved once per invocation in PersistentPreRunE.
type state struct {
	calc   *estimate.Calculator
	format report.Format
	log    zerolog.Logger
}

// Execute runs the CLI with args and returns the process exit code. Errors are
// printed to stdout as a single "Error: ..." line.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := buildRootCmdWith(&Config{LogLvl: envStr(EnvLogLevel, "")}, stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stdout, "Error: %s\n", err)
		return 1
	}
	return 0
}

// buildRootCmdWith constructs the command tree wired to cfg.
func buildRootCmdWith(cfg *Config, stdout, stderr io.Writer) *cobra.Command {
	st := &state{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:               "vramest <parameter> <quantization>",
		Short:             "Estimate GPU memory for a model size and quantization",
		Long:              longHelp(),
		Example:           "  vramest 7B Q4_0\n  vramest 65M fp16 -o json\n  vramest tags",
		Args:              cobra.ExactArgs(2),
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.resolve(cfg, stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := st.calc.Calculate(args[0], args[1])
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), st.format, e)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text|json|yaml|prom (default text)")
	root.PersistentFlags().StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Config file (.yaml|.json|.toml); defaults to $"+config.EnvConfig+" or the user config dir")
	root.PersistentFlags().StringVar(&cfg.LogLvl, "log-level", cfg.LogLvl, "Log level: debug|info|warn|error|off (defaults "+EnvLogLevel+" or warn)")

	tags := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"list"},
		Short:   "List known quantization tags and their bits per parameter",
		Example: "  vramest tags\n  vramest tags -o json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.WriteTags(cmd.OutOrStdout(), st.format, st.calc.Table().Tags())
		},
	}
	root.AddCommand(tags)
	return root
}

// resolve merges flags, the optional config file and defaults, then builds
// the logger and calculator.
func (st *state) resolve(cfg *Config, stderr io.Writer) error {
	path := cfg.ConfigPath
	if path == "" {
		path = config.Discover()
	}
	var fileCfg config.Config
	if path != "" {
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		fileCfg = c
	}

	lvl := firstNonEmpty(cfg.LogLvl, fileCfg.LogLevel, "warn")
	l, err := newLogger(stderr, lvl)
	if err != nil {
		return err
	}
	st.log = l
	estimate.SetLogger(l)
	if path != "" {
		st.log.Debug().Str("path", path).Int("quant_overrides", len(fileCfg.Quantization)).Msg("loaded config")
	}

	format, err := report.ParseFormat(firstNonEmpty(cfg.Output, fileCfg.Output))
	if err != nil {
		return err
	}
	st.format = format

	table, err := quant.Default().With(fileCfg.Quantization)
	if err != nil {
		return err
	}
	st.calc = estimate.New(table)
	return nil
}

func longHelp() string {
	var suffixes []string
	for _, u := range params.Units() {
		suffixes = append(suffixes, fmt.Sprintf("%s = 10^%d", u.Suffix, int(math.Round(math.Log10(u.Multiplier)))))
	}
	return "Estimate the memory footprint of a model from its parameter count\n" +
		"(e.g. 7B, 2.7B, 65M) and a quantization tag (e.g. Q4_0, int8, fp16).\n" +
		"The figure is params x bits-per-param / 8 using a fixed heuristic table.\n\n" +
		"Parameter suffixes: " + strings.Join(suffixes, ", ") + "."
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
