// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks translation keys. It scans the Go sources for
// i18n.T("key") calls and compares them against the YAML locale files:
// keys used but not defined in the primary locale, keys of the primary
// locale missing from other locales, and keys nobody uses.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "active.en.yaml"
	projectRoot   = "."
)

// dynamicPrefixes are key families built at runtime, e.g. one message per
// validator tag. Their members count as used.
var dynamicPrefixes = []string{"validation."}

var keyCall = regexp.MustCompile(`i18n\.T\(\s*"([^"]+)"`)

type report struct {
	Undefined []string            // used in code, absent from the primary locale
	Missing   map[string][]string // locale file -> keys absent from it
	Orphaned  []string            // defined in the primary locale, never used
}

func (r report) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	fmt.Println("Running i18n linter...")

	r, err := lint(projectRoot, filepath.Join(projectRoot, localesDir))
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	for _, key := range r.Undefined {
		fmt.Printf("  - Undefined: %s\n", key)
	}
	files := make([]string, 0, len(r.Missing))
	for file := range r.Missing {
		files = append(files, file)
	}
	sort.Strings(files)
	for _, file := range files {
		for _, key := range r.Missing[file] {
			fmt.Printf("  - Missing in %s: %s\n", file, key)
		}
	}
	for _, key := range r.Orphaned {
		fmt.Printf("  - Orphaned: %s\n", key)
	}

	if r.failed() {
		fmt.Println("Found issues that need to be addressed.")
		os.Exit(1)
	}
	fmt.Println("All translation files are consistent.")
}

func lint(root, locales string) (report, error) {
	r := report{Missing: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("find used keys: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("load primary locale: %w", err)
	}

	for key := range used {
		if _, ok := primary[key]; !ok {
			r.Undefined = append(r.Undefined, key)
		}
	}
	for key := range primary {
		if _, ok := used[key]; !ok && !isDynamic(key) {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	sort.Strings(r.Undefined)
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("load %s: %w", file, err)
		}
		var missing []string
		for key := range primary {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			r.Missing[filepath.Base(file)] = missing
		}
	}
	return r, nil
}

func isDynamic(key string) bool {
	for _, prefix := range dynamicPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// findUsedKeys scans all .go files below root for i18n.T("key") calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyCall.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into a flat map with dot-separated keys.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	case []any:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
