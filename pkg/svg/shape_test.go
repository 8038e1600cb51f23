package svg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/satopan/dtreeviz/pkg/errors"
)

func writeShapeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.svg")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadShape(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantWidth  float64
		wantHeight float64
	}{
		{
			name: "matplotlib header",
			content: `<?xml version="1.0" encoding="utf-8" standalone="no"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<!-- Created with matplotlib (https://matplotlib.org/) -->
<svg height="214.90625pt" version="1.1" viewBox="0 0 340 214" width="340.585937pt" xmlns="http://www.w3.org/2000/svg">
<defs/>
</svg>
`,
			wantWidth:  340.585937,
			wantHeight: 214.90625,
		},
		{
			name: "graphviz header split across lines",
			content: `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg width="340pt" height="215pt"
 viewBox="0.00 0.00 340.00 214.50" xmlns="http://www.w3.org/2000/svg">
</svg>
`,
			wantWidth:  340,
			wantHeight: 215,
		},
		{
			name:       "unquoted integers",
			content:    `<svg width=120 height=64 xmlns="http://www.w3.org/2000/svg"></svg>`,
			wantWidth:  120,
			wantHeight: 64,
		},
		{
			name:       "no unit suffix",
			content:    `<svg height="76.5" width="45.25" xmlns="http://www.w3.org/2000/svg"></svg>`,
			wantWidth:  45.25,
			wantHeight: 76.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeShapeFile(t, tt.content)
			got, err := ReadShape(path)
			if err != nil {
				t.Fatalf("ReadShape() error: %v", err)
			}
			if got.Width != tt.wantWidth || got.Height != tt.wantHeight {
				t.Errorf("ReadShape() = %+v, want width %v height %v", got, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestReadShape_MissingFile(t *testing.T) {
	_, err := ReadShape(filepath.Join(t.TempDir(), "gone.svg"))
	if !errors.Is(err, errors.ErrCodeFileAccess) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileAccess)
	}
}

func TestReadShape_ParseFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "no svg element", content: "<html><body/></html>"},
		{
			// The scan is line anchored, matching only a header that
			// starts the line.
			name:    "indented header",
			content: "  <svg width=\"10\" height=\"10\">\n</svg>\n",
		},
		{name: "header without attributes", content: "<svg>\n</svg>\n"},
		{
			name:    "width missing",
			content: `<svg height="20pt" xmlns="http://www.w3.org/2000/svg"></svg>`,
		},
		{
			name:    "width not numeric",
			content: `<svg width="wide" height="20" xmlns="http://www.w3.org/2000/svg"></svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeShapeFile(t, tt.content)
			_, err := ReadShape(path)
			if !errors.Is(err, errors.ErrCodeParse) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeParse)
			}
		})
	}
}
