package cli

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRootCommandSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"unfold":     false,
		"inspect":    false,
		"serve":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"dxf", []string{"dxf"}},
		{"svg,dxf,json", []string{"svg", "dxf", "json"}},
	}

	for _, tt := range tests {
		if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"empty output strips input ext", "", "depot.toml", "depot"},
		{"output with format ext", "out.svg", "depot.toml", "out"},
		{"output without format ext", "patterns/depot", "depot.toml", "patterns/depot"},
		{"output with unknown ext kept", "out.backup", "depot.toml", "out.backup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestDiscoverBuildings(t *testing.T) {
	dir := t.TempDir()

	valid := `
name = "depot"
width = 20.0
depth = 15.0
height = 10.0

[roof]
style = "gable"
pitch = 30.0
`
	if err := os.WriteFile(filepath.Join(dir, "depot.toml"), []byte(valid), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("width = -1.0"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries := discoverBuildings(dir)
	if len(entries) != 2 {
		t.Fatalf("discovered %d entries, want 2", len(entries))
	}

	// Sorted by path: broken.toml before depot.toml
	if entries[0].Err == nil {
		t.Error("broken.toml should carry an error")
	}
	if entries[1].Err != nil {
		t.Errorf("depot.toml should parse: %v", entries[1].Err)
	}
	if entries[1].Params == nil || entries[1].Params.Name != "depot" {
		t.Error("depot.toml params missing or wrong name")
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{
		"svg": []byte("<svg/>"),
		"dxf": []byte("0\nEOF\n"),
	}

	input := filepath.Join(dir, "depot.toml")
	if err := writeArtifacts(artifacts, []string{"svg", "dxf"}, input, ""); err != nil {
		t.Fatalf("writeArtifacts() error = %v", err)
	}

	for _, ext := range []string{"svg", "dxf"} {
		path := filepath.Join(dir, "depot."+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("missing artifact %s: %v", path, err)
		}
		if string(data) != string(artifacts[ext]) {
			t.Errorf("artifact %s content mismatch", path)
		}
	}
}

func TestWriteArtifactsSingleWithOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "custom-name.svg")

	err := writeArtifacts(map[string][]byte{"svg": []byte("<svg/>")}, []string{"svg"}, "depot.toml", out)
	if err != nil {
		t.Fatalf("writeArtifacts() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("explicit output path not written: %v", err)
	}
}
