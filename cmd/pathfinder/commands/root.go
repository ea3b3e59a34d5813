// Package commands implements the pathfinder command line: configuration,
// logging, data loading and the route, stats and reach subcommands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathfinder/campus"
)

var (
	errNoData     = errors.New("pathfinder: no data file configured (use --data or PATHFINDER_DATA)")
	errEmptyPlace = errors.New("pathfinder: place name is empty")
)

// Config is the merged view of flags, PATHFINDER_* env vars and the config file.
type Config struct {
	DataFile  string `mapstructure:"data"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	NoColor   bool   `mapstructure:"no-color"`
}

// app carries per-invocation state shared by all subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	logger  *slog.Logger
}

// Execute runs the root command, exiting non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "pathfinder",
		Short: "Shortest walking routes across a campus map",
		Long: `pathfinder loads a DOT-like list of campus walkways and answers
route, statistics and reachability queries over it.

Every flag can also be set with a PATHFINDER_ environment variable
(--log-level becomes PATHFINDER_LOG_LEVEL) or in $HOME/.pathfinder.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	a.bindFlags(root.PersistentFlags())
	root.AddCommand(newRouteCmd(a), newStatsCmd(a), newReachCmd(a))

	return root
}

// bindFlags declares the persistent flags and binds them to viper under their own names.
func (a *app) bindFlags(pf *pflag.FlagSet) {
	pf.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/.pathfinder.yaml)")
	pf.String("data", "", "campus data file")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.String("log-format", "text", "log format: text or json")
	pf.Bool("no-color", false, "disable styled output")
	_ = a.v.BindPFlags(pf)
}

func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.SetConfigFile(filepath.Join(home, ".pathfinder.yaml"))
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("PATHFINDER")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		// The default location is optional; an explicit --config is not.
		if a.cfgFile != "" || !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("pathfinder: read config: %w", err)
		}
	}
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("pathfinder: decode config: %w", err)
	}

	a.logger = newLogger(a.cfg.LogLevel, a.cfg.LogFormat, cmd.ErrOrStderr())
	a.logger.Debug("configuration loaded", "config", a.v.ConfigFileUsed(), "data", a.cfg.DataFile)

	return nil
}

// loadService reads the configured data file into a new campus.Service.
func (a *app) loadService(ctx context.Context) (*campus.Service, error) {
	if a.cfg.DataFile == "" {
		return nil, errNoData
	}
	svc, err := campus.NewService(campus.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	if _, err = svc.LoadFile(ctx, a.cfg.DataFile); err != nil {
		return nil, err
	}

	return svc, nil
}

func placeArg(name, which string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s", errEmptyPlace, which)
	}

	return name, nil
}
