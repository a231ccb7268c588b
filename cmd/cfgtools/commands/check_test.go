package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHandleCheck_NoArgs(t *testing.T) {
	if err := HandleCheck([]string{}); err == nil {
		t.Error("expected error when no file provided")
	}
}

func TestHandleCheck_Help(t *testing.T) {
	if err := HandleCheck([]string{"--help"}); err != nil {
		t.Errorf("unexpected error for help: %v", err)
	}
}

func TestHandleCheck_WellFormed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")
	if err := os.WriteFile(path, []byte("name: x\nmodels:\n  a: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := HandleCheck([]string{"-q", path}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHandleCheck_InvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("not: valid: yaml: ["), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := HandleCheck([]string{"-q", path}); err == nil {
		t.Error("expected error for invalid document")
	}
}

func TestHandleCheck_NonMappingTopLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.yaml")
	if err := os.WriteFile(path, []byte("- a\n- b\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := HandleCheck([]string{"-q", path}); err == nil {
		t.Error("expected error for non-mapping top level")
	}
}
