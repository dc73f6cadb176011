package api

import (
	"context"
	"errors"
	"testing"

	"github.com/matiasleandrokruk/searxng-mcp/internal/api/ctxkeys"
)

func TestSubject_Present(t *testing.T) {
	t.Parallel()

	ctx := ctxkeys.WithValue(context.Background(), ctxkeys.Subject, "cli")
	got, err := Subject(ctx)
	if err != nil {
		t.Fatalf("Subject error = %v", err)
	}
	if got != "cli" {
		t.Errorf("expected cli, got %q", got)
	}
}

func TestSubject_Missing(t *testing.T) {
	t.Parallel()

	if _, err := Subject(context.Background()); !errors.Is(err, ErrMissingSubject) {
		t.Fatalf("expected ErrMissingSubject, got %v", err)
	}
}
