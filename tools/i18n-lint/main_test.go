// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFlattenYAML(t *testing.T) {
	keys := make(map[string]struct{})
	flattenYAML("", map[string]any{
		"menu":  map[string]any{"title": "x", "exit": "y"},
		"plain": "z",
	}, keys)
	for _, k := range []string{"menu.title", "menu.exit", "plain"} {
		if _, ok := keys[k]; !ok {
			t.Fatalf("expected %q in %v", k, keys)
		}
	}
}

func TestLint(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "a.go"), `package pkg
func f() {
	_ = i18n.T("menu.title")
	_ = i18n.T("menu.ghost")
	prompt("prompt.encrypt")
}`)
	writeFile(t, filepath.Join(root, "pkg", "a_test.go"), `package pkg
var _ = i18n.T("test.only")`)
	writeFile(t, filepath.Join(root, "_examples", "x.go"), `package x
var _ = i18n.T("ignored.key")`)

	locales := filepath.Join(root, "locales")
	writeFile(t, filepath.Join(locales, "en.yaml"), "menu.title: a\nprompt.encrypt: b\nunused.key: c\n")
	writeFile(t, filepath.Join(locales, "de.yaml"), "menu.title: a\n")

	r, err := lint(root, locales)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if strings.Join(r.Undefined, ",") != "menu.ghost" {
		t.Fatalf("unexpected undefined keys %v", r.Undefined)
	}
	if strings.Join(r.Orphaned, ",") != "unused.key" {
		t.Fatalf("unexpected orphaned keys %v", r.Orphaned)
	}
	if strings.Join(r.Missing["de.yaml"], ",") != "prompt.encrypt,unused.key" {
		t.Fatalf("unexpected missing keys %v", r.Missing)
	}
	if !r.failed() {
		t.Fatalf("report should fail")
	}

	var buf bytes.Buffer
	printReport(&buf, r)
	if !strings.Contains(buf.String(), "  - menu.ghost\n") || !strings.HasSuffix(buf.String(), "FAIL\n") {
		t.Fatalf("unexpected report:\n%s", buf.String())
	}
}

func TestLint_RepositoryCataloguesAreConsistent(t *testing.T) {
	root := filepath.Join("..", "..")
	r, err := lint(root, filepath.Join(root, localesDir))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if r.failed() {
		var buf bytes.Buffer
		printReport(&buf, r)
		t.Fatalf("catalogues inconsistent:\n%s", buf.String())
	}
}
