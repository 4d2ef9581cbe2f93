package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyOutput     = "output"
	KeyLocator    = "locator"
	KeyTemplate   = "template"
	KeyHeadings   = "headings"
	KeyEntries    = "entries"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr      { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func File(f string) slog.Attr          { return slog.String(KeyFile, f) }
func Output(p string) slog.Attr        { return slog.String(KeyOutput, p) }
func Locator(l string) slog.Attr       { return slog.String(KeyLocator, l) }
func Template(t string) slog.Attr      { return slog.String(KeyTemplate, t) }
func Headings(n int) slog.Attr         { return slog.Int(KeyHeadings, n) }
func Entries(n int) slog.Attr          { return slog.Int(KeyEntries, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
