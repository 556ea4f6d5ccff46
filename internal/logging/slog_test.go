package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "probing store", "table", "tblAccounts")
	log.Info(ctx, "account registered", "email", "a@x.com")
	log.Warn(ctx, "slow upstream", "duration", "2s")
	log.Error(ctx, "signup failed", "status", 503)

	out := buf.String()

	for _, want := range []string{
		"level=DEBUG", "msg=\"probing store\"", "table=tblAccounts",
		"level=INFO", "msg=\"account registered\"", "email=a@x.com",
		"level=WARN", "msg=\"slow upstream\"", "duration=2s",
		"level=ERROR", "msg=\"signup failed\"", "status=503",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger(t)

	child := log.With("module", "httpapi")
	child.Info(context.Background(), "request", "path", "/ping")

	out := buf.String()
	for _, want := range []string{"module=httpapi", "msg=request", "path=/ping"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
