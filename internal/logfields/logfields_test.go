package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"BuildID", KeyBuildID, "b1", BuildID("b1")},
		{"Stage", KeyStage, "walk", Stage("walk")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"File", KeyFile, "guide.md", File("guide.md")},
		{"Output", KeyOutput, "site/guide.html", Output("site/guide.html")},
		{"Locator", KeyLocator, "guide.html", Locator("guide.html")},
		{"Template", KeyTemplate, "builtin:doc.html", Template("builtin:doc.html")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if tc.attr.Value.String() != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %s", tc.name, tc.attrVal, tc.attr.Value.String())
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if got := Headings(3).Value.Int64(); got != 3 {
		t.Fatalf("Headings value = %d", got)
	}
	if got := Entries(7).Value.Int64(); got != 7 {
		t.Fatalf("Entries value = %d", got)
	}
	if got := DurationMS(1.5).Value.Float64(); got != 1.5 {
		t.Fatalf("DurationMS value = %f", got)
	}
}

func TestErrorHelper(t *testing.T) {
	if Error(nil).Value.String() != "" {
		t.Fatal("nil error should produce empty value")
	}
	if Error(errors.New("boom")).Value.String() != "boom" {
		t.Fatal("error message not preserved")
	}
}
