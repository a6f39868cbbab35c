// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides the translated strings shown by the question handlers
// and the CLI. It uses the go-i18n library to load the embedded YAML locale
// files.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
	locales   map[string]string
)

// Init initializes the bundle and sets up the localizer for lang.
// Unknown languages fall back to English.
func Init(l string) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	found := map[string]string{}
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		mf, err := b.ParseMessageFileBytes(data, f.Name())
		if err != nil {
			continue
		}
		tag := mf.Tag.String()
		found[tag] = displayName(mf.Tag)
	}

	if _, ok := found[l]; !ok {
		l = "en"
	}

	mu.Lock()
	bundle, localizer, lang, locales = b, i18n.NewLocalizer(b, l), l, found
	mu.Unlock()
}

// SetLang changes the active language of the localizer.
func SetLang(l string) {
	Init(l)
}

// GetLang returns the active language tag.
func GetLang() string {
	ensure()
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// GetAvailableLocales returns the embedded locales keyed by tag.
func GetAvailableLocales() map[string]string {
	ensure()
	mu.RLock()
	defer mu.RUnlock()
	out := make(map[string]string, len(locales))
	for k, v := range locales {
		out[k] = v
	}
	return out
}

// Languages returns the sorted locale tags.
func Languages() []string {
	av := GetAvailableLocales()
	tags := make([]string, 0, len(av))
	for k := range av {
		tags = append(tags, k)
	}
	sort.Strings(tags)
	return tags
}

// T translates messageID. A single map argument is used as template data,
// any other arguments are applied fmt-style to the translated text.
// If the message is unknown the ID itself is returned.
func T(messageID string, args ...any) string {
	ensure()
	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	mu.RLock()
	msg, err := localizer.Localize(cfg)
	mu.RUnlock()
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 && strings.Contains(msg, "%") {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Has reports whether messageID is translated in the active language or in
// the English fallback.
func Has(messageID string) bool {
	ensure()
	mu.RLock()
	defer mu.RUnlock()
	_, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	return err == nil
}

func ensure() {
	mu.RLock()
	ready := localizer != nil
	mu.RUnlock()
	if !ready {
		Init("en")
	}
}

func displayName(tag language.Tag) string {
	switch tag.String() {
	case "de":
		return "Deutsch"
	case "en":
		return "English"
	default:
		return tag.String()
	}
}
