package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/internal/config"
	"github.com/katalvlaran/degrees/internal/degrees"
)

// app carries the resolved configuration between the root command and its
// subcommands.
type app struct {
	cfgPath   string
	database  string
	reference string
	logLevel  string
	noDedup   bool

	root   *cobra.Command
	loader *config.Loader
	cfg    *config.Config
	log    *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "degrees",
		Short: "Degrees of separation between chess players",
		Long: `degrees reads a PGN database, links every two players who met over the
board and answers how many games apart any two players are.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	a.root = root

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&a.database, "database", "d", "", "PGN game database (overrides config)")
	pf.StringVarP(&a.reference, "reference", "r", "", "reference player (default \""+degrees.DefaultReference+"\")")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (default info)")
	pf.BoolVar(&a.noDedup, "no-dedup", false, "keep one edge per game instead of one per pairing")

	root.AddCommand(
		newQueryCmd(a),
		newPathCmd(a),
		newPlayersCmd(a),
		newReplCmd(a),
		newServeCmd(a),
	)

	return root
}

// setup loads the config file when given, applies flag overrides and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	base := config.Default()
	if a.cfgPath != "" {
		l, err := config.NewLoader(a.cfgPath)
		if err != nil {
			return err
		}
		a.loader = l
		base = l.Config()
	}
	a.cfg = a.resolve(base)
	if err := config.Validate(a.cfg); err != nil {
		if a.cfg.Database == "" {
			return errors.New("no game database: pass --database or set database in --config")
		}
		return err
	}

	lvl, _ := config.ParseLevel(a.cfg.LogLevel)
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(a.log)

	return nil
}

// resolve returns a copy of cfg with the command-line overrides applied.
func (a *app) resolve(cfg *config.Config) *config.Config {
	out := *cfg
	if a.database != "" {
		out.Database = a.database
	}
	if a.reference != "" {
		out.Reference = a.reference
	}
	if a.logLevel != "" {
		out.LogLevel = a.logLevel
	}
	if a.noDedup {
		off := false
		out.DedupEdges = &off
	}

	return &out
}

// open loads the configured game database.
func (a *app) open() (*degrees.Database, error) {
	return openDatabase(a.cfg, a.log)
}

func openDatabase(cfg *config.Config, log *slog.Logger) (*degrees.Database, error) {
	db, err := degrees.LoadFile(cfg.Database,
		degrees.WithReference(cfg.Reference),
		degrees.WithDedup(cfg.Dedup()),
		degrees.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.Database, err)
	}

	return db, nil
}
