package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupMergeFlags(t *testing.T) {
	fs, flags := SetupMergeFlags()

	t.Run("default values", func(t *testing.T) {
		if flags.Output != "" {
			t.Errorf("expected Output to be empty by default, got '%s'", flags.Output)
		}
		if flags.Format != FormatYAML {
			t.Errorf("expected Format 'yaml' by default, got '%s'", flags.Format)
		}
		if flags.Quiet {
			t.Error("expected Quiet to be false by default")
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-o", "out.yaml", "-f", "json", "-q", "a.yaml", "b.yaml"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}

		if flags.Output != "out.yaml" {
			t.Errorf("expected Output 'out.yaml', got '%s'", flags.Output)
		}
		if flags.Format != "json" {
			t.Errorf("expected Format 'json', got '%s'", flags.Format)
		}
		if !flags.Quiet {
			t.Error("expected Quiet to be true")
		}
		if fs.NArg() != 2 {
			t.Errorf("expected 2 file args, got %d", fs.NArg())
		}
	})

	t.Run("long flags", func(t *testing.T) {
		fs2, flags2 := SetupMergeFlags()
		args := []string{"--output", "merged.yaml", "--format", "yaml", "a.yaml", "b.yaml"}
		if err := fs2.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		if flags2.Output != "merged.yaml" {
			t.Errorf("expected Output 'merged.yaml', got '%s'", flags2.Output)
		}
	})
}

func TestHandleMerge_NoArgs(t *testing.T) {
	if err := HandleMerge([]string{}); err == nil {
		t.Error("expected error when no files provided")
	}
}

func TestHandleMerge_OneFile(t *testing.T) {
	if err := HandleMerge([]string{"only.yaml"}); err == nil {
		t.Error("expected error when fewer than 2 files provided")
	}
}

func TestHandleMerge_Help(t *testing.T) {
	if err := HandleMerge([]string{"--help"}); err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleMerge_InvalidFormat(t *testing.T) {
	if err := HandleMerge([]string{"-f", "toml", "a.yaml", "b.yaml"}); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestHandleMerge_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.yaml")
	override := filepath.Join(dir, "override.yaml")
	out := filepath.Join(dir, "out.yaml")

	if err := os.WriteFile(base, []byte("models:\n  materialized: view\n  threads: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(override, []byte("models:\n  materialized: table\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := HandleMerge([]string{"-q", "-o", out, base, override}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "materialized: table") {
		t.Errorf("expected later file to win, got:\n%s", data)
	}
	if !strings.Contains(string(data), "threads: 4") {
		t.Errorf("expected earlier-only key to survive, got:\n%s", data)
	}
}

func TestHandleMerge_TypeMismatch(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.yaml")
	override := filepath.Join(dir, "override.yaml")

	if err := os.WriteFile(base, []byte("models:\n  a: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(override, []byte("models: scalar\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := HandleMerge([]string{"-q", base, override}); err == nil {
		t.Error("expected error for mapping/scalar collision")
	}
}

func TestHandleMerge_MissingFile(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.yaml")
	if err := os.WriteFile(base, []byte("a: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	err := HandleMerge([]string{"-q", base, filepath.Join(dir, "missing.yaml")})
	if err == nil {
		t.Error("expected error for missing input file")
	}
}
