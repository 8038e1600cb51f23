package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunInline(t *testing.T) {
	dir := t.TempDir()

	chart := filepath.Join(dir, "node0.svg")
	chartDoc := `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="10"><circle r="4"/></svg>`
	if err := os.WriteFile(chart, []byte(chartDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	input := filepath.Join(dir, "diagram.svg")
	doc := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">` +
		`<g><image xlink:href="` + filepath.Join(dir, "node0.png") + `" width="45px"/></g>` +
		`</svg>`
	if err := os.WriteFile(input, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "out.svg")
	c := New(io.Discard, LogInfo)
	if err := c.runInline(context.Background(), input, output); err != nil {
		t.Fatalf("runInline() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	if strings.Contains(got, "<image") {
		t.Errorf("output still contains a placeholder:\n%s", got)
	}
	if !strings.Contains(got, "<circle") {
		t.Errorf("output is missing the embedded chart content:\n%s", got)
	}
	if !strings.Contains(got, `width="45px"`) {
		t.Errorf("output is missing the placeholder's width:\n%s", got)
	}
}

func TestRunInlineMissingReference(t *testing.T) {
	dir := t.TempDir()

	input := filepath.Join(dir, "diagram.svg")
	doc := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">` +
		`<g><image xlink:href="` + filepath.Join(dir, "missing.png") + `"/></g>` +
		`</svg>`
	if err := os.WriteFile(input, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "out.svg")
	c := New(io.Discard, LogInfo)
	if err := c.runInline(context.Background(), input, output); err == nil {
		t.Fatal("runInline() should fail when a referenced file is missing")
	}

	// Fail-fast: no partial output file
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("runInline() should not write output on failure")
	}
}

func TestRunInlineMissingInput(t *testing.T) {
	c := New(io.Discard, LogInfo)
	err := c.runInline(context.Background(), filepath.Join(t.TempDir(), "nope.svg"), "")
	if err == nil {
		t.Fatal("runInline() should fail for a missing input file")
	}
}

func TestInlineCommandFlags(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.inlineCommand()

	if cmd.Flags().Lookup("output") == nil {
		t.Error("inline command should have an --output flag")
	}
}
