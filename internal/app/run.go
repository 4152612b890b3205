package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/journal-cli/internal/config"
	"github.com/glabrego/journal-cli/internal/credential"
	"github.com/glabrego/journal-cli/internal/format"
	"github.com/glabrego/journal-cli/internal/journal"
	"github.com/glabrego/journal-cli/internal/logging"
	"github.com/glabrego/journal-cli/internal/poll"
	"github.com/glabrego/journal-cli/internal/storage"
	"github.com/glabrego/journal-cli/internal/tui"
	"github.com/glabrego/journal-cli/internal/tui/actions"
)

const startupTimeout = 15 * time.Second

type Options struct {
	ConfigPath string
	// PollInterval overrides the configured interval when positive.
	PollInterval time.Duration
}

// Env holds everything a command needs once configuration, logging and
// storage are up.
type Env struct {
	Config    config.Config
	Logger    *slog.Logger
	Store     storage.KV
	Tokens    *credential.StoreProvider
	Service   *Service
	Formatter format.Formatter

	logCloser io.Closer
}

func Open(ctx context.Context, opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if opts.PollInterval > 0 {
		cfg.PollInterval = opts.PollInterval
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}
	return OpenWithConfig(ctx, cfg)
}

func OpenWithConfig(ctx context.Context, cfg config.Config) (*Env, error) {
	logger, logCloser, err := logging.Open(logging.Options{Path: cfg.LogPath, Level: cfg.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("logging init error: %w", err)
	}

	openCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()
	kv, err := storage.Open(openCtx, cfg.Storage, cfg.DBPath, cfg.DiskvPath)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		_ = kv.Close()
		_ = logCloser.Close()
		return nil, fmt.Errorf("config error: %w", err)
	}
	locale := cfg.Locale
	if locale == "" {
		locale = format.LocaleFromEnv(os.Getenv)
	}

	tokens := credential.FromStore(kv)
	client := journal.NewClient(cfg.APIBaseURL, cfg.JournalsPath, &http.Client{Timeout: actions.FetchTimeout})
	service := NewService(client, credential.Chain{credential.Static(cfg.Token), tokens}, logger)

	logger.Info("journal starting", "api", cfg.APIBaseURL+cfg.JournalsPath, "storage", cfg.Storage, "poll", cfg.PollInterval)
	return &Env{
		Config:    cfg,
		Logger:    logger,
		Store:     kv,
		Tokens:    tokens,
		Service:   service,
		Formatter: format.New(locale, loc),
		logCloser: logCloser,
	}, nil
}

func (e *Env) Close() error {
	return errors.Join(e.Store.Close(), e.logCloser.Close())
}

// Run shows the journal view until the user quits. The fetch loop starts with
// the view and is stopped, and joined, before Run returns. Extra program
// options are applied after the defaults, so callers can swap the terminal
// for other readers and writers.
func Run(ctx context.Context, env *Env, opts ...tea.ProgramOption) error {
	var program *tea.Program
	send := func(msg tea.Msg) {
		switch m := msg.(type) {
		case actions.FetchSucceededMsg:
			env.Logger.Debug("fetch round finished", "entries", len(m.Entries), "duration", m.Duration)
		case actions.FetchFailedMsg:
			env.Logger.Debug("fetch round failed", "error", m.Err, "duration", m.Duration)
		}
		program.Send(msg)
	}
	poller := poll.New(env.Config.PollInterval, actions.PollFunc(env.Service, send))

	model := tui.NewModel(tui.Options{
		Formatter: env.Formatter,
		Refresh:   poller.Trigger,
	})
	programOpts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	program = tea.NewProgram(model, programOpts...)

	if err := poller.Start(ctx); err != nil {
		return fmt.Errorf("start fetch loop: %w", err)
	}
	defer poller.Stop()

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui error: %w", err)
	}
	env.Logger.Info("journal stopped")
	return nil
}
