package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	loadedPrompts     AllLoadedPrompts
	loadedPromptsOnce sync.Once
)

// LoadedPrompts holds the content of prompts loaded from files
type LoadedPrompts struct {
	SystemPrompts LoadedSystemPrompts
	UserPrompts   LoadedUserPrompts
}

// LoadedSystemPrompts contains loaded system-level instructions
type LoadedSystemPrompts struct {
	ImproveResume string
}

// LoadedUserPrompts contains loaded user-level prompt templates
type LoadedUserPrompts struct {
	ImproveResume string
}

// OperationLoadedPrompts holds loaded prompts for a specific operation
type OperationLoadedPrompts struct {
	SystemPrompts LoadedSystemPrompts
	UserPrompts   LoadedUserPrompts
}

// AllLoadedPrompts holds all loaded prompts for all operations
type AllLoadedPrompts struct {
	Global  LoadedPrompts
	Improve OperationLoadedPrompts
}

// GetLoadedPrompts returns the loaded prompt content in a thread-safe way
func GetLoadedPrompts() *AllLoadedPrompts {
	return &loadedPrompts
}

// GetPromptsForOperation returns a copy of the loaded prompts for an operation type
func GetPromptsForOperation(operationType string) OperationLoadedPrompts {
	switch operationType {
	case "improve":
		return loadedPrompts.Improve
	default:
		return OperationLoadedPrompts{
			SystemPrompts: loadedPrompts.Global.SystemPrompts,
			UserPrompts:   loadedPrompts.Global.UserPrompts,
		}
	}
}

// loadPromptsFromFiles loads custom prompts from external files if file paths are specified
func (c *Config) loadPromptsFromFiles() error {
	log.Println("[CONFIG] Starting custom prompt loading from files")

	// Initialize loaded prompts exactly once
	loadedPromptsOnce.Do(func() {
		loadedPrompts = AllLoadedPrompts{}
	})

	// Load global prompts
	if err := c.loadOperationPrompts(&c.AI.CustomPrompts, &loadedPrompts.Global.SystemPrompts, &loadedPrompts.Global.UserPrompts); err != nil {
		return fmt.Errorf("failed to load global prompts: %w", err)
	}

	// Load operation-specific prompts
	if err := c.loadOperationPrompts(&c.AI.Improve.CustomPrompts, &loadedPrompts.Improve.SystemPrompts, &loadedPrompts.Improve.UserPrompts); err != nil {
		return fmt.Errorf("failed to load improve prompts: %w", err)
	}

	c.logPromptLoadingSummary()

	return nil
}

// loadOperationPrompts loads system and user prompts from files if file paths are specified
func (c *Config) loadOperationPrompts(prompts *PromptConfig, system *LoadedSystemPrompts, user *LoadedUserPrompts) error {
	if prompts.SystemPrompts.ImproveResumeFile != "" {
		content, err := c.loadPromptFromFile(prompts.SystemPrompts.ImproveResumeFile, "system", "improveResume")
		if err != nil {
			return err
		}
		system.ImproveResume = content
	}

	if prompts.UserPrompts.ImproveResumeFile != "" {
		content, err := c.loadPromptFromFile(prompts.UserPrompts.ImproveResumeFile, "user", "improveResume")
		if err != nil {
			return err
		}
		user.ImproveResume = content
	}

	return nil
}

// loadPromptFromFile loads a prompt from a file with proper error handling and logging
func (c *Config) loadPromptFromFile(filePath, promptType, operation string) (string, error) {
	// Resolve relative paths
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s %s prompt file '%s': %w", promptType, operation, filePath, err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("%s %s prompt file not found: %s", promptType, operation, absPath)
	}

	// Read file content
	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s %s prompt file '%s': %w", promptType, operation, absPath, err)
	}

	// Validate content is not empty
	trimmedContent := strings.TrimSpace(string(content))
	if trimmedContent == "" {
		return "", fmt.Errorf("%s %s prompt file '%s' is empty", promptType, operation, absPath)
	}

	log.Printf("[CONFIG] Successfully loaded %s %s prompt from file: %s (%d characters)",
		promptType, operation, absPath, len(trimmedContent))

	return trimmedContent, nil
}

// validatePromptFiles validates that prompt files exist and are readable before loading
func (c *Config) validatePromptFiles() error {
	var validationErrors []string

	paths := []struct {
		path  string
		label string
	}{
		{c.AI.CustomPrompts.SystemPrompts.ImproveResumeFile, "global system improveResume"},
		{c.AI.CustomPrompts.UserPrompts.ImproveResumeFile, "global user improveResume"},
		{c.AI.Improve.CustomPrompts.SystemPrompts.ImproveResumeFile, "improve system improveResume"},
		{c.AI.Improve.CustomPrompts.UserPrompts.ImproveResumeFile, "improve user improveResume"},
	}

	for _, p := range paths {
		if p.path == "" {
			continue
		}
		absPath, err := filepath.Abs(p.path)
		if err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: cannot resolve path '%s': %v", p.label, p.path, err))
			continue
		}
		info, err := os.Stat(absPath)
		if os.IsNotExist(err) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: file not found: %s", p.label, absPath))
			continue
		}
		if err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: cannot stat file '%s': %v", p.label, absPath, err))
			continue
		}
		if info.IsDir() {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: path is a directory, not a file: %s", p.label, absPath))
		}
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("prompt file validation errors:\n  %s", strings.Join(validationErrors, "\n  "))
	}

	return nil
}

// logPromptLoadingSummary logs which prompts were loaded from files
func (c *Config) logPromptLoadingSummary() {
	count := 0
	if loadedPrompts.Global.SystemPrompts.ImproveResume != "" {
		log.Println("[CONFIG] Loaded global system improveResume prompt from file")
		count++
	}
	if loadedPrompts.Global.UserPrompts.ImproveResume != "" {
		log.Println("[CONFIG] Loaded global user improveResume prompt from file")
		count++
	}
	if loadedPrompts.Improve.SystemPrompts.ImproveResume != "" {
		log.Println("[CONFIG] Loaded improve system improveResume prompt from file")
		count++
	}
	if loadedPrompts.Improve.UserPrompts.ImproveResume != "" {
		log.Println("[CONFIG] Loaded improve user improveResume prompt from file")
		count++
	}

	if count == 0 {
		log.Println("[CONFIG] No custom prompt files configured, using built-in prompts")
	} else {
		log.Printf("[CONFIG] Loaded %d custom prompt(s) from files", count)
	}
}
