// Package credential resolves the session token the journal API expects.
package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glabrego/journal-cli/internal/storage"
)

// TokenKey is the client state key the login flow stores the token under.
const TokenKey = "token"

// ErrNotFound is returned when no provider holds a token.
var ErrNotFound = errors.New("no session token available")

// Provider returns the current session token.
type Provider interface {
	Token(ctx context.Context) (string, error)
}

// Static serves a fixed token, typically from JOURNAL_TOKEN.
type Static string

func (s Static) Token(context.Context) (string, error) {
	token := strings.TrimSpace(string(s))
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

// StoreProvider reads the token from persisted client state.
type StoreProvider struct {
	kv  storage.KV
	key string
}

func FromStore(kv storage.KV) *StoreProvider {
	return &StoreProvider{kv: kv, key: TokenKey}
}

func (p *StoreProvider) Token(ctx context.Context) (string, error) {
	if p == nil || p.kv == nil {
		return "", ErrNotFound
	}
	value, err := p.kv.Get(ctx, p.key)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrNotFound
	}
	return value, nil
}

// ErrEmptyToken is returned when saving a blank token.
var ErrEmptyToken = errors.New("session token is empty")

// Save stores token for later sessions.
func (p *StoreProvider) Save(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	if err := p.kv.Set(ctx, p.key, token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (p *StoreProvider) Clear(ctx context.Context) error {
	if err := p.kv.Delete(ctx, p.key); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

// Chain asks each provider in order and returns the first token found.
type Chain []Provider

func (c Chain) Token(ctx context.Context) (string, error) {
	var errs []error
	for _, p := range c {
		if p == nil {
			continue
		}
		token, err := p.Token(ctx)
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, ErrNotFound) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return "", errors.Join(errs...)
	}
	return "", ErrNotFound
}
