package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizmastery/internal/calendar"
	"github.com/abhisek/quizmastery/internal/config"
	"github.com/abhisek/quizmastery/internal/logging"
	"github.com/abhisek/quizmastery/internal/mastery"
	"github.com/abhisek/quizmastery/internal/quizbank"
	"github.com/abhisek/quizmastery/internal/store"
)

// env holds everything a command needs once config is resolved.
type env struct {
	cfg   *config.Config
	log   *zap.Logger
	store *store.Store
	svc   *mastery.Service
	clock calendar.Clock
	out   io.Writer
}

// loadConfig resolves configuration from the command's flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// output wraps stdout so styling is dropped when it is not a terminal.
func output(cmd *cobra.Command) io.Writer {
	return colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())
}

// openEnv opens the store and builds the mastery service.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Console:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	clock, err := calendar.LoadClock(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	var reg *quizbank.Registry
	if cfg.Registry != "" {
		reg, err = quizbank.LoadRegistry(cfg.Registry)
		if err != nil {
			return nil, fmt.Errorf("load registry: %w", err)
		}
	}

	dbPath, err := resolveDBPath(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", zap.String("path", dbPath), zap.String("timezone", cfg.Timezone))

	svc := mastery.NewService(mastery.Options{
		Store:    st.Documents(),
		Events:   st.SetEvents(),
		Registry: reg,
		Clock:    clock,
		Logger:   log,
	})

	return &env{cfg: cfg, log: log, store: st, svc: svc, clock: clock, out: output(cmd)}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store", zap.Error(err))
	}
	_ = e.log.Sync()
}

// loadBank reads the configured question bank.
func loadBank(cfg *config.Config) ([]quizbank.Question, error) {
	if cfg.Bank == "" {
		return nil, fmt.Errorf("no question bank configured (use --bank or QUIZMASTERY_BANK)")
	}
	qs, err := quizbank.LoadBank(cfg.Bank)
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	return qs, nil
}
