// Package session holds the identity of the person using the client.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/prepgenius/prepgenius/internal/store"
)

const (
	// UsernameKey is the preference key holding the display name.
	UsernameKey = "pg_username"

	// PromptMessage asks for a name on first use.
	PromptMessage = "Enter a username for this demo:"

	// PromptDefault pre-fills the name prompt.
	PromptDefault = "student123"

	// FallbackUsername is used when the prompt is cancelled or left blank.
	FallbackUsername = "Student"
)

// Prompter asks the user for a line of text. ok is false when the prompt
// was cancelled.
type Prompter interface {
	Prompt(ctx context.Context, message, def string) (value string, ok bool, err error)
}

// Session is passed explicitly to everything that needs the username.
type Session struct {
	Username string
}

// Load reads the stored username, prompting and persisting one when none
// exists yet.
func Load(ctx context.Context, prefs store.PrefsRepo, p Prompter) (*Session, error) {
	name, ok, err := prefs.Get(ctx, UsernameKey)
	if err != nil {
		return nil, fmt.Errorf("read username: %w", err)
	}
	if ok && name != "" {
		return &Session{Username: name}, nil
	}

	answer, answered, err := p.Prompt(ctx, PromptMessage, PromptDefault)
	if err != nil {
		return nil, fmt.Errorf("prompt username: %w", err)
	}
	name = strings.TrimSpace(answer)
	if !answered || name == "" {
		name = FallbackUsername
	}

	if err := prefs.Set(ctx, UsernameKey, name); err != nil {
		return nil, fmt.Errorf("save username: %w", err)
	}
	return &Session{Username: name}, nil
}

// Reset forgets the stored username so the next start prompts again.
func Reset(ctx context.Context, prefs store.PrefsRepo) error {
	if err := prefs.Delete(ctx, UsernameKey); err != nil {
		return fmt.Errorf("clear username: %w", err)
	}
	return nil
}
