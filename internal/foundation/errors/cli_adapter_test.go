package errors

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation error", err: ValidationError("invalid input").Build(), expected: 2},
		{name: "config error", err: ConfigError("bad config").Build(), expected: 7},
		{name: "docs error", err: DocsError("bad encoding").Build(), expected: 11},
		{name: "template error", err: TemplateError("bad template").Build(), expected: 11},
		{name: "filesystem error", err: FileSystemError("write failed").Build(), expected: 11},
		{name: "internal error", err: InternalError("bug").Build(), expected: 10},
		{name: "wrapped classified error", err: fmt.Errorf("walk: %w", DocsError("x").Build()), expected: 11},
		{name: "unclassified error", err: &customError{msg: "unknown error"}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.ExitCodeFor(tt.err)
			if got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: ""},
		{name: "config error shows message only", err: ConfigError("bad config").Build(), want: "bad config"},
		{
			name: "filesystem error shows category and path",
			err:  FileSystemError("write page failed").WithContext("path", "site/a.html").Build(),
			want: "filesystem: write page failed (site/a.html)",
		},
		{name: "unclassified error", err: &customError{msg: "unknown error"}, want: "Error: unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.FormatError(tt.err); got != tt.want {
				t.Errorf("FormatError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCLIErrorAdapter_VerboseFormatIncludesCause(t *testing.T) {
	adapter := NewCLIErrorAdapter(true, slog.Default())
	err := FileSystemError("write page failed").WithCause(&customError{msg: "permission denied"}).Build()

	got := adapter.FormatError(err)
	if !strings.Contains(got, "permission denied") {
		t.Errorf("FormatError() = %q, want cause included", got)
	}
}

func TestCLIErrorAdapter_Report(t *testing.T) {
	var out bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(io.Discard, nil)))
	adapter.out = &out

	code := adapter.Report(DocsError("README missing").WithContext("path", "docs/README.md").Build())
	if code != 11 {
		t.Errorf("Report() = %d, want 11", code)
	}
	if got := out.String(); got != "docs: README missing (docs/README.md)\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestCLIErrorAdapter_ReportLogsOnlyFatal(t *testing.T) {
	var logs bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	adapter.out = io.Discard

	adapter.Report(ValidationError("input directory is required").Build())
	if logs.Len() != 0 {
		t.Errorf("expected rejected input to skip logging, got %q", logs.String())
	}

	adapter.Report(TemplateError("parse template").WithCause(&customError{msg: "unexpected EOF"}).Build())
	if !strings.Contains(logs.String(), "category=template") || !strings.Contains(logs.String(), "unexpected EOF") {
		t.Errorf("expected fatal error to be logged, got %q", logs.String())
	}
}

// customError is a test helper for unclassified errors
type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}
