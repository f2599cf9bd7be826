package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePromptFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing prompt file: %v", err)
	}
	return path
}

func TestLoadPromptFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := writePromptFile(t, dir, "system.txt", "  Rewrite each bullet with a metric.\n")

		cfg := &Config{}
		content, err := cfg.loadPromptFromFile(path, "system", "improveResume")
		if err != nil {
			t.Fatalf("loadPromptFromFile() unexpected error: %v", err)
		}
		if content != "Rewrite each bullet with a metric." {
			t.Errorf("content = %q, want trimmed prompt text", content)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := &Config{}
		if _, err := cfg.loadPromptFromFile(filepath.Join(dir, "absent.txt"), "system", "improveResume"); err == nil {
			t.Error("loadPromptFromFile() expected error for missing file, got nil")
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := writePromptFile(t, dir, "empty.txt", "   \n\t")

		cfg := &Config{}
		_, err := cfg.loadPromptFromFile(path, "user", "improveResume")
		if err == nil {
			t.Fatal("loadPromptFromFile() expected error for empty file, got nil")
		}
		if !strings.Contains(err.Error(), "is empty") {
			t.Errorf("error = %q, want empty-file complaint", err.Error())
		}
	})
}

func TestValidatePromptFiles(t *testing.T) {
	dir := t.TempDir()
	valid := writePromptFile(t, dir, "prompt.txt", "content")

	t.Run("no files configured", func(t *testing.T) {
		cfg := &Config{}
		if err := cfg.validatePromptFiles(); err != nil {
			t.Errorf("validatePromptFiles() unexpected error: %v", err)
		}
	})

	t.Run("existing file passes", func(t *testing.T) {
		cfg := &Config{}
		cfg.AI.CustomPrompts.SystemPrompts.ImproveResumeFile = valid
		if err := cfg.validatePromptFiles(); err != nil {
			t.Errorf("validatePromptFiles() unexpected error: %v", err)
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		cfg := &Config{}
		cfg.AI.Improve.CustomPrompts.UserPrompts.ImproveResumeFile = filepath.Join(dir, "nope.txt")
		err := cfg.validatePromptFiles()
		if err == nil {
			t.Fatal("validatePromptFiles() expected error for missing file, got nil")
		}
		if !strings.Contains(err.Error(), "file not found") {
			t.Errorf("error = %q, want file-not-found complaint", err.Error())
		}
	})

	t.Run("directory instead of file fails", func(t *testing.T) {
		cfg := &Config{}
		cfg.AI.CustomPrompts.UserPrompts.ImproveResumeFile = dir
		err := cfg.validatePromptFiles()
		if err == nil {
			t.Fatal("validatePromptFiles() expected error for directory path, got nil")
		}
		if !strings.Contains(err.Error(), "directory") {
			t.Errorf("error = %q, want directory complaint", err.Error())
		}
	})
}

func TestLoadPromptsFromFiles(t *testing.T) {
	dir := t.TempDir()
	systemPath := writePromptFile(t, dir, "improve_system.txt", "You are a resume editor.")
	userPath := writePromptFile(t, dir, "improve_user.txt", "Improve this text: {{.Text}}")

	cfg := &Config{}
	cfg.AI.Improve.CustomPrompts.SystemPrompts.ImproveResumeFile = systemPath
	cfg.AI.Improve.CustomPrompts.UserPrompts.ImproveResumeFile = userPath

	if err := cfg.loadPromptsFromFiles(); err != nil {
		t.Fatalf("loadPromptsFromFiles() unexpected error: %v", err)
	}

	loaded := cfg.GetLoadedImprovePrompts()
	if loaded.SystemPrompts.ImproveResume != "You are a resume editor." {
		t.Errorf("system prompt = %q, want file content", loaded.SystemPrompts.ImproveResume)
	}
	if loaded.UserPrompts.ImproveResume != "Improve this text: {{.Text}}" {
		t.Errorf("user prompt = %q, want file content", loaded.UserPrompts.ImproveResume)
	}

	// Unconfigured operations fall back to global prompts.
	fallback := GetPromptsForOperation("unknown")
	if fallback.SystemPrompts.ImproveResume != cfg.GetLoadedGlobalPrompts().SystemPrompts.ImproveResume {
		t.Error("GetPromptsForOperation(unknown) should return global prompts")
	}
}
