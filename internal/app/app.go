// Package app wires the fpe command line: flags and config through viper,
// logging through zap, and the pipeline runner underneath.
package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fpe/lists"
	"fpe/pipeline"
)

const (
	keyInput    = "input"
	keyStyle    = "style"
	keyLogLevel = "log-level"
	keyConfig   = "config"
)

// Config is the resolved configuration shared by every subcommand.
// Values come from flags, FPE_* environment variables and the optional
// config file, in that order of precedence.
type Config struct {
	Input     string                         `mapstructure:"input"`
	Style     string                         `mapstructure:"style"`
	LogLevel  string                         `mapstructure:"log-level"`
	Pipelines map[string]pipeline.Definition `mapstructure:"pipelines"`
}

// InvalidInputError occurs when an element of --input is not an integer.
type InvalidInputError struct {
	Element string
	cause   error
}

// Error implements the error interface.
func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input element %q: %s", e.Element, e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidInputError) Unwrap() error {
	return e.cause
}

// ParseInput reads a comma separated list of integers. Blank input yields
// the empty list.
func ParseInput(s string) (lists.List[int], error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return lists.Empty[int](), nil
	}
	fields := strings.Split(s, ",")
	vals := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		v, err := strconv.Atoi(f)
		if err != nil {
			return lists.Empty[int](), InvalidInputError{Element: f, cause: err}
		}
		vals = append(vals, v)
	}
	return lists.FromSlice(vals), nil
}

// NewLogger builds a console logger writing to stderr at the given level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// env carries what PersistentPreRunE resolved down to the subcommands.
type env struct {
	v      *viper.Viper
	cfg    Config
	style  lists.Style
	logger *zap.Logger
}

func (e *env) input() (lists.List[int], error) {
	return ParseInput(e.cfg.Input)
}

func (e *env) runner() *pipeline.Runner {
	return pipeline.NewRunner(pipeline.WithLogger(e.logger))
}

// NewRootCommand returns the fpe command tree.
func NewRootCommand() *cobra.Command {
	e := &env{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:          "fpe",
		Short:        "Run functional combinators over immutable integer lists",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = e.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "path to a YAML config file")
	flags.String(keyInput, "1,2,3,4,5", "comma separated input integers")
	flags.String(keyStyle, "bracket", "list display style: bracket or arrow")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn or error")

	for _, key := range []string{keyInput, keyStyle, keyLogLevel} {
		// BindPFlag only fails for a nil flag.
		_ = e.v.BindPFlag(key, flags.Lookup(key))
	}
	e.v.SetEnvPrefix("FPE")
	e.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	e.v.AutomaticEnv()

	root.AddCommand(
		newRunCommand(e),
		newDemoCommand(e),
		newOpsCommand(e),
	)
	return root
}

func (e *env) load(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString(keyConfig); path != "" {
		e.v.SetConfigFile(path)
		if err := e.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := e.v.Unmarshal(&e.cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	style, err := lists.ParseStyle(e.cfg.Style)
	if err != nil {
		return err
	}
	e.style = style

	logger, err := NewLogger(e.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	e.logger = logger
	e.logger.Debug("configuration loaded",
		zap.String("config_file", e.v.ConfigFileUsed()),
		zap.String("style", e.style.String()),
		zap.Int("pipelines", len(e.cfg.Pipelines)),
	)
	return nil
}

// resolve finds a pipeline by name in the config file, falling back to
// treating the argument as the path of a YAML definition. Viper folds config
// keys to lower case, so names match case-insensitively.
func (e *env) resolve(arg string) (pipeline.Definition, error) {
	if def, ok := e.cfg.Pipelines[strings.ToLower(arg)]; ok {
		if def.Name == "" {
			def.Name = arg
		}
		return def, nil
	}

	f, err := os.Open(arg)
	if err != nil {
		return pipeline.Definition{}, err
	}
	defer f.Close()

	def, err := pipeline.Parse(f)
	if err != nil {
		return def, err
	}
	if def.Name == "" {
		def.Name = arg
	}
	return def, nil
}
