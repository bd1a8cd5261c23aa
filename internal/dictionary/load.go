// Copyright (c) 2026 Caesar Team
// Caesar - classical shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/caesar/internal/logging"
)

// DefaultSource is the word list shipped by most Unix systems.
const DefaultSource = "/usr/share/dict/words"

var (
	// ErrEmptySource is returned when no dictionary source is configured.
	ErrEmptySource = errors.New("dictionary: empty source")
	// ErrUnsupportedSource is returned for a source scheme that has no loader.
	ErrUnsupportedSource = errors.New("dictionary: unsupported source")
)

// Options tune where words are read from. Table and Column only apply to
// database sources.
type Options struct {
	Source string
	Table  string
	Column string
}

func (o Options) withDefaults() Options {
	if o.Table == "" {
		o.Table = "words"
	}
	if o.Column == "" {
		o.Column = "word"
	}
	return o
}

// Load reads a WordSet from the configured source. Plain files hold one word
// per line; *.zst and *.gz files are decompressed on the fly; sqlite://,
// postgres:// and mysql:// sources are queried for a single word column.
func Load(ctx context.Context, opts Options) (*WordSet, error) {
	opts = opts.withDefaults()
	src := strings.TrimSpace(opts.Source)
	if src == "" {
		return nil, ErrEmptySource
	}

	if driver, dsn, ok := parseDatabaseSource(src); ok {
		return loadDatabase(ctx, driver, dsn, opts.Table, opts.Column)
	}
	if strings.Contains(src, "://") {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, src)
	}
	return loadFile(src)
}

// LoadOrEmpty behaves like Load but never fails. A missing or unreadable
// source yields an empty set; the reason is only logged at debug level.
func LoadOrEmpty(ctx context.Context, opts Options) *WordSet {
	words, err := Load(ctx, opts)
	if err != nil {
		logging.Debugf("dictionary %q unavailable, continuing without one: %v", opts.Source, err)
		return Empty()
	}
	logging.Debugf("dictionary %q loaded with %d words", opts.Source, words.Len())
	return words
}

func loadFile(path string) (*WordSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open word list: %w", err)
	}
	defer func() { _ = file.Close() }()

	var r io.Reader = file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("could not create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	case ".gz":
		gr, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("could not create gzip reader: %w", err)
		}
		defer func() { _ = gr.Close() }()
		r = gr
	}
	return ReadWords(r)
}

// ReadWords builds a WordSet from newline-delimited words. Lines have no
// length limit.
func ReadWords(r io.Reader) (*WordSet, error) {
	s := Empty()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for scanner.Scan() {
		s.add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read word list: %w", err)
	}
	return s, nil
}
