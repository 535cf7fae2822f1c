// Package auth verifies bearer tokens against an external identity provider
// and carries the verified subject through request contexts.
package auth

import (
	"context"
	"fmt"

	"github.com/zbutler/habit-api/internal/errs"
)

// Verifier validates a bearer token and extracts the caller's subject.
// Implementations decide how the token is checked; handlers only see the
// subject or an error.
type Verifier interface {
	// Verify returns the stable subject identifier encoded in a valid token.
	Verify(ctx context.Context, token string) (string, error)
}

// StaticVerifier maps fixed tokens to subjects. It exists for deterministic
// testing without a live identity provider; every unknown token is rejected.
type StaticVerifier struct {
	Subjects map[string]string // token -> subject
}

// Verify looks the token up in the static table.
func (v StaticVerifier) Verify(_ context.Context, token string) (string, error) {
	sub, ok := v.Subjects[token]
	if !ok {
		return "", fmt.Errorf("unknown token: %w", errs.ErrUnauthorized)
	}
	return sub, nil
}

type ctxKey string

const subjectKey ctxKey = "habit.subject"

// WithSubject stores the verified subject in context.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromCtx fetches the verified subject from context.
func SubjectFromCtx(ctx context.Context) (string, bool) {
	v := ctx.Value(subjectKey)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
