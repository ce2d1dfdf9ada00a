package diagramcli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arlojames/sketchdiagram/pkg/diagram"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    diagram.Style
		wantErr bool
	}{
		{"hand-drawn", "hand-drawn", diagram.StyleHandDrawn, false},
		{"clean", "clean", diagram.StyleClean, false},
		{"minimal", "minimal", diagram.StyleMinimal, false},
		{"unknown", "wireframe", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStyle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseStyle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseStyle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct{ input, want string }{
		{"diagram.json", "diagram"},
		{"a/b/diagram.json", "a/b/diagram"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		if got := basePath(tt.input); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func neverChanged(string) bool { return false }

func TestRunRender_WritesSVGAlongsideInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "diagram.json")
	body := `{"type":"flow","nodes":[{"id":"a","label":"A"},{"id":"b","label":"B"}],"edges":[{"from":"a","to":"b"}]}`
	if err := os.WriteFile(input, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &renderOpts{pngScale: 2.0}
	if err := runRender(context.Background(), input, opts, neverChanged); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	out := filepath.Join(dir, "diagram.svg")
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", out, err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty SVG output")
	}
}

func TestRunRender_RejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "diagram.json")
	body := `{"type":"flow","nodes":[{"id":"a","label":"A"}]}`
	if err := os.WriteFile(input, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &renderOpts{pngScale: 2.0, backend: "quantum"}
	if err := runRender(context.Background(), input, opts, neverChanged); err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
}
