// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-lint checks that every message ID passed to i18n.T exists in the
// English catalogue, that every other catalogue carries the same IDs, and
// lists English IDs that no code refers to.
//
// Usage:
//
//	go run ./tools/i18n-lint
package main

import (
	"fmt"
	"io"
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
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var (
	// i18n.T("id") calls, and bare dotted literals that may be passed as IDs.
	callRe    = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	literalRe = regexp.MustCompile(`"([a-z_]+\.[a-z_.]+)"`)
)

// report is the outcome of one lint run.
type report struct {
	Undefined []string            // called via i18n.T but absent from the primary locale
	Orphaned  []string            // in the primary locale but never referenced
	Missing   map[string][]string // locale file -> IDs it lacks
}

func (r report) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	r, err := lint(projectRoot, filepath.Join(projectRoot, localesDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-lint: %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, r)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (report, error) {
	r := report{Missing: map[string][]string{}}

	called, referenced, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("scanning sources: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("loading %s: %w", primaryLocale, err)
	}

	for key := range called {
		if _, ok := primary[key]; !ok {
			r.Undefined = append(r.Undefined, key)
		}
	}
	for key := range primary {
		if _, ok := referenced[key]; !ok {
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
			return r, fmt.Errorf("loading %s: %w", file, err)
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

func printReport(w io.Writer, r report) {
	section := func(title string, keys []string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(keys) == 0 {
			fmt.Fprintln(w, "  none")
		}
		for _, k := range keys {
			fmt.Fprintf(w, "  - %s\n", k)
		}
	}
	section("Undefined (used in code, missing from "+primaryLocale+")", r.Undefined)
	section("Orphaned (in "+primaryLocale+", never referenced)", r.Orphaned)

	locales := make([]string, 0, len(r.Missing))
	for l := range r.Missing {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	for _, l := range locales {
		section("Missing from "+l, r.Missing[l])
	}
	if r.failed() {
		fmt.Fprintln(w, "FAIL")
	} else {
		fmt.Fprintln(w, "OK")
	}
}

// findUsedKeys scans non-test Go files under root. called holds IDs passed
// literally to i18n.T; referenced additionally holds every dotted literal.
func findUsedKeys(root string) (called, referenced map[string]struct{}, err error) {
	called = map[string]struct{}{}
	referenced = map[string]struct{}{}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
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
		for _, m := range callRe.FindAllStringSubmatch(string(content), -1) {
			called[m[1]] = struct{}{}
			referenced[m[1]] = struct{}{}
		}
		for _, m := range literalRe.FindAllStringSubmatch(string(content), -1) {
			referenced[m[1]] = struct{}{}
		}
		return nil
	})
	return called, referenced, err
}

// loadKeysFromLocale reads a YAML catalogue and returns its message IDs,
// flattening nested maps into dotted IDs.
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

func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, v := range m {
		next := k
		if prefix != "" {
			next = prefix + "." + k
		}
		flattenYAML(next, v, keys)
	}
}
