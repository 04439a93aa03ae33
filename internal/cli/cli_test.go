package cli

import (
	"io"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseCategories(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty means all", "", nil},
		{"single", "genre", []string{"genre"}},
		{"multiple", "genre,decade", []string{"genre", "decade"}},
		{"whitespace trimmed", " genre , decade ", []string{"genre", "decade"}},
		{"empty parts dropped", "genre,,decade,", []string{"genre", "decade"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCategories(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseCategories(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"generate":   false,
		"cache":      false,
		"verify":     false,
		"fonts":      false,
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

func TestStoreDirUsesXDGCacheHome(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := storeDir()
	if err != nil {
		t.Fatalf("storeDir error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", appName) {
		t.Errorf("storeDir = %q", dir)
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	if c.Logger.GetLevel() != LogInfo {
		t.Errorf("initial level = %v, want info", c.Logger.GetLevel())
	}
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level after SetLogLevel = %v, want debug", c.Logger.GetLevel())
	}
}
