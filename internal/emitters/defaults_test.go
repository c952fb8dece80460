package emitters

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/custodia-labs/iso4217/internal/adapters/driven/iso3166"
)

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, iso3166.New())

	want := []string{"gosource", "sqlite"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBuildGoSource(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, iso3166.New())
	out := filepath.Join(t.TempDir(), "currency.go")

	tests := []struct {
		name    string
		cfg     map[string]any
		wantErr bool
	}{
		{"minimal", map[string]any{"output": out}, false},
		{"zerocopy bool", map[string]any{"output": out, "zerocopy": true}, false},
		{"zerocopy feature", map[string]any{"output": out, "zerocopy": "fast"}, false},
		{"custom package", map[string]any{"output": out, "package": "money"}, false},
		{"missing output", map[string]any{}, true},
		{"nil config", nil, true},
		{"bad package", map[string]any{"output": out, "package": "9lives"}, true},
		{"bad zerocopy", map[string]any{"output": out, "zerocopy": 1.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := r.Build("gosource", tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				if e != nil {
					t.Errorf("expected nil emitter, got %v", e)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if e.Name() != "gosource" {
				t.Errorf("expected gosource, got %s", e.Name())
			}
		})
	}
}

func TestBuildSQLite(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r, iso3166.New())

	if _, err := r.Build("sqlite", map[string]any{}); err == nil {
		t.Error("expected error for missing path")
	}

	e, err := r.Build("sqlite", map[string]any{"path": t.TempDir()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Name() != "sqlite" {
		t.Errorf("expected sqlite, got %s", e.Name())
	}
}
