package hints

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestForInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "script.fountain")
	if err := os.WriteFile(existing, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"stdin", "-", "pipe a screenplay on stdin"},
		{"empty", "", "pipe a screenplay on stdin"},
		{"existing file", existing, "check read permissions on " + existing},
		{"missing file", filepath.Join(dir, "missing"), "check the path"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ForInput(tt.path)
			if !strings.HasPrefix(got, "\n  hint: ") {
				t.Errorf("ForInput(%q) = %q, missing hint prefix", tt.path, got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("ForInput(%q) = %q, want it to contain %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains []string
		excludes []string
	}{
		{
			name:     "suggests user config path",
			paths:    []string{"work.yaml", "/home/me/.config/go-textplay/work.yaml"},
			contains: []string{"--config", "or create /home/me/.config/go-textplay/work.yaml"},
		},
		{
			name:     "no user path",
			paths:    []string{"work.yaml"},
			contains: []string{"--config"},
			excludes: []string{"or create"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ForConfigNotFound(tt.paths)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ForConfigNotFound() = %q, want it to contain %q", got, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("ForConfigNotFound() = %q, should not contain %q", got, unwanted)
				}
			}
		})
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if got := ForStyleNotFound(nil); got != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", got)
	}

	got := ForStyleNotFound([]string{"draft", "screenplay"})
	want := "\n  hint: available: draft, screenplay; or pass a .css path"
	if got != want {
		t.Errorf("ForStyleNotFound() = %q, want %q", got, want)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, got := range map[string]string{
		"ForOutputDirectory":  ForOutputDirectory(),
		"ForConflictingModes": ForConflictingModes(),
	} {
		if !strings.HasPrefix(got, "\n  hint: ") {
			t.Errorf("%s() = %q, missing hint prefix", name, got)
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := format("x"); got != "\n  hint: x" {
		t.Errorf("format(\"x\") = %q", got)
	}
}
