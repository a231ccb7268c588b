package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupExpandFlags(t *testing.T) {
	fs, flags := SetupExpandFlags()

	t.Run("default values", func(t *testing.T) {
		if flags.Vars != "" {
			t.Errorf("expected Vars to be empty by default, got '%s'", flags.Vars)
		}
		if flags.NoEnv {
			t.Error("expected NoEnv to be false by default")
		}
		if flags.Format != FormatYAML {
			t.Errorf("expected Format 'yaml' by default, got '%s'", flags.Format)
		}
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--vars", "{a: 1}", "--no-env", "-f", "json", "profiles.yaml"}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		if flags.Vars != "{a: 1}" {
			t.Errorf("expected Vars '{a: 1}', got '%s'", flags.Vars)
		}
		if !flags.NoEnv {
			t.Error("expected NoEnv to be true")
		}
		if flags.Format != "json" {
			t.Errorf("expected Format 'json', got '%s'", flags.Format)
		}
	})
}

func TestHandleExpand_NoArgs(t *testing.T) {
	if err := HandleExpand([]string{}); err == nil {
		t.Error("expected error when no file provided")
	}
}

func TestHandleExpand_Help(t *testing.T) {
	if err := HandleExpand([]string{"--help"}); err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleExpand_EnvExpansion(t *testing.T) {
	t.Setenv("CFGTEST_TARGET", "prod")

	dir := t.TempDir()
	source := filepath.Join(dir, "profiles.yaml")
	out := filepath.Join(dir, "out.yaml")

	if err := os.WriteFile(source, []byte("target: ${CFGTEST_TARGET}\nthreads: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := HandleExpand([]string{"-q", "-o", out, source}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, "target: prod") {
		t.Errorf("expected env var expansion, got:\n%s", got)
	}
	if !strings.Contains(got, "threads: 4") {
		t.Errorf("expected non-string values untouched, got:\n%s", got)
	}
}

func TestHandleExpand_NoEnv(t *testing.T) {
	t.Setenv("CFGTEST_TARGET", "prod")

	dir := t.TempDir()
	source := filepath.Join(dir, "profiles.yaml")
	out := filepath.Join(dir, "out.yaml")

	if err := os.WriteFile(source, []byte("target: x${CFGTEST_TARGET}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := HandleExpand([]string{"-q", "--no-env", "-o", out, source}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "target: x\n") {
		t.Errorf("expected env to be ignored with --no-env, got:\n%s", data)
	}
}
