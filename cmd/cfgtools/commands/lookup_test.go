package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLookupFlags(t *testing.T) {
	fs, flags := SetupLookupFlags()

	args := []string{"-k", "threads", "-f", "json", "a.yaml", "b.yaml"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if flags.Key != "threads" {
		t.Errorf("expected Key 'threads', got '%s'", flags.Key)
	}
	if flags.Format != "json" {
		t.Errorf("expected Format 'json', got '%s'", flags.Format)
	}
	if fs.NArg() != 2 {
		t.Errorf("expected 2 file args, got %d", fs.NArg())
	}
}

func TestHandleLookup_NoArgs(t *testing.T) {
	if err := HandleLookup([]string{}); err == nil {
		t.Error("expected error when no files provided")
	}
}

func TestHandleLookup_NoKey(t *testing.T) {
	if err := HandleLookup([]string{"a.yaml"}); err == nil {
		t.Error("expected error when no key provided")
	}
}

func TestHandleLookup_Help(t *testing.T) {
	if err := HandleLookup([]string{"--help"}); err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleLookup_Found(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")

	if err := os.WriteFile(first, []byte("threads: 1\ntarget: dev\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("threads: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := HandleLookup([]string{"-q", "-k", "threads", first, second}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHandleLookup_KeyNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "only.yaml")
	if err := os.WriteFile(path, []byte("threads: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := HandleLookup([]string{"-q", "-k", "schema", path}); err == nil {
		t.Error("expected error when no file defines the key")
	}
}
