// Package prompts holds the extraction prompt templates, embedded at compile
// time as JSON catalogs keyed by extraction aspect (technical skills, soft
// skills, education, certifications).
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var catalogFS embed.FS

// Parsed catalogs are cached per file; templates never change at runtime.
var (
	cache   = make(map[string]map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves a prompt template by catalog filename and aspect key, e.g.
// Get("extraction.json", "technical_skills"). The filename carries no path.
func Get(filename, key string) (string, error) {
	catalog, err := load(filename)
	if err != nil {
		return "", err
	}

	prompt, exists := catalog[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}

	return prompt, nil
}

// MustGet retrieves a prompt template, panicking if it does not exist. The
// extractor uses this for its fixed aspect set: a missing template there is
// a build defect, not a runtime condition.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format substitutes {{.Key}} placeholders with values from data. Templates
// use this for the document text, source type label and category guidance;
// placeholders with no entry in data are left in place.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// load parses a catalog file, serving repeated reads from the cache.
func load(filename string) (map[string]string, error) {
	cacheMu.RLock()
	if catalog, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return catalog, nil
	}
	cacheMu.RUnlock()

	data, err := catalogFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var catalog map[string]string
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = catalog
	cacheMu.Unlock()

	return catalog, nil
}

// ClearCache clears the parsed catalog cache. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[string]map[string]string)
	cacheMu.Unlock()
}

// List returns all template keys in a catalog file.
func List(filename string) ([]string, error) {
	catalog, err := load(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(catalog))
	for key := range catalog {
		keys = append(keys, key)
	}
	return keys, nil
}
