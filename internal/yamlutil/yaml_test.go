package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-textplay/internal/yamlutil"
)

type testConfig struct {
	Title      string `yaml:"title"`
	Standalone bool   `yaml:"standalone"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		want    testConfig
		wantErr error
	}{
		{
			name: "valid YAML",
			data: []byte("title: Brick\nstandalone: true\n"),
			dest: &testConfig{},
			want: testConfig{Title: "Brick", Standalone: true},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("title: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "too large",
			data:    []byte("title: " + strings.Repeat("x", yamlutil.MaxInputSize)),
			dest:    &testConfig{},
			wantErr: yamlutil.ErrInputTooLarge,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
			}
			if got := *tt.dest.(*testConfig); got != tt.want {
				t.Errorf("UnmarshalStrict() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnmarshalStrict_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := yamlutil.UnmarshalStrict([]byte("title: x\nunknown: y\n"), &cfg)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error should carry the package prefix, got %q", err.Error())
	}
}

func TestUnmarshalStrict_InvalidSyntax(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	if err := yamlutil.UnmarshalStrict([]byte("title: [unclosed"), &cfg); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	t.Run("reads stream", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		if err := yamlutil.DecodeStrict(strings.NewReader("title: Heat\n"), &cfg); err != nil {
			t.Fatalf("DecodeStrict() unexpected error: %v", err)
		}
		if cfg.Title != "Heat" {
			t.Errorf("Title = %q, want %q", cfg.Title, "Heat")
		}
	})

	t.Run("oversized stream", func(t *testing.T) {
		t.Parallel()

		r := strings.NewReader("title: " + strings.Repeat("x", yamlutil.MaxInputSize*2))
		var cfg testConfig
		if err := yamlutil.DecodeStrict(r, &cfg); !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("DecodeStrict() error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("empty stream", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		if err := yamlutil.DecodeStrict(strings.NewReader(""), &cfg); !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("DecodeStrict() error = %v, want ErrNilData", err)
		}
	})
}
