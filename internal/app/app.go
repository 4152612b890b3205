package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/glabrego/journal-cli/internal/credential"
	"github.com/glabrego/journal-cli/internal/journal"
	"github.com/glabrego/journal-cli/internal/logging"
)

type JournalClient interface {
	ListJournals(ctx context.Context, token string) ([]journal.Entry, error)
}

type Service struct {
	client      JournalClient
	credentials credential.Provider
	logger      *slog.Logger
}

func NewService(client JournalClient, credentials credential.Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{client: client, credentials: credentials, logger: logger}
}

// Fetch returns the journal list in server order. Without a token no request
// is made and the error wraps journal.ErrMissingCredential.
func (s *Service) Fetch(ctx context.Context) ([]journal.Entry, error) {
	if s.credentials == nil {
		return nil, journal.ErrMissingCredential
	}
	token, err := s.credentials.Token(ctx)
	if err != nil {
		if !errors.Is(err, credential.ErrNotFound) {
			s.logger.Warn("read session token failed", "err", err)
		}
		return nil, fmt.Errorf("%w: %w", journal.ErrMissingCredential, err)
	}

	entries, err := s.client.ListJournals(ctx, token)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("fetch journals failed", "err", err)
		}
		if !errors.Is(err, journal.ErrFetchFailed) {
			err = fmt.Errorf("%w: %w", journal.ErrFetchFailed, err)
		}
		return nil, err
	}
	s.logger.Debug("fetched journals", "count", len(entries))
	return entries, nil
}
