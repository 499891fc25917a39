// Package prompts provides a loader for externalized LLM prompt fragments.
// Fragments are stored as JSON files and embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// cache stores parsed prompt files to avoid repeated JSON parsing
var (
	cache   = make(map[string]map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves a prompt fragment by filename and key.
// The filename should not include a path (e.g. "autofix.json").
func Get(filename, key string) (string, error) {
	fragments, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	fragment, exists := fragments[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}

	return fragment, nil
}

// MustGet retrieves a prompt fragment, panicking if it is missing.
// Use this for fragments that are required at initialization time.
func MustGet(filename, key string) string {
	fragment, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return fragment
}

// Format replaces template placeholders in the form {{.Key}} with values
// from data. This is a simple template system for prompt customization.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// loadFile loads and caches a prompt file.
func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	if fragments, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return fragments, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var fragments map[string]string
	if err := json.Unmarshal(data, &fragments); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = fragments
	cacheMu.Unlock()

	return fragments, nil
}
