package cli

import (
	"io"
	"path/filepath"
	"testing"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "linkrank" {
		t.Errorf("Use = %q, want linkrank", root.Use)
	}

	want := map[string]bool{
		"rank":       false,
		"crawl":      false,
		"dot":        false,
		"top":        false,
		"serve":      false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestCacheDir(t *testing.T) {
	c := New(io.Discard, LogInfo)

	t.Run("config override", func(t *testing.T) {
		c.Config.Cache.Dir = "/custom/cache"
		defer func() { c.Config.Cache.Dir = "" }()

		dir, err := c.cacheDir()
		if err != nil {
			t.Fatalf("cacheDir: %v", err)
		}
		if dir != "/custom/cache" {
			t.Errorf("dir = %q, want /custom/cache", dir)
		}
	})

	t.Run("xdg", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CACHE_HOME", home)

		dir, err := c.cacheDir()
		if err != nil {
			t.Fatalf("cacheDir: %v", err)
		}
		if want := filepath.Join(home, "linkrank"); dir != want {
			t.Errorf("dir = %q, want %q", dir, want)
		}
	})
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)

	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}
