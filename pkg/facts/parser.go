// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package facts

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// Option configures a Parser.
type Option func(*Parser)

// Parser reads KEY=value files such as os-release.
type Parser struct {
	fs          afero.Fs
	maxSize     int
	kvDelimiter string
	vTrimChars  string
}

// WithMaxSize sets the maximum file size in bytes. Default is 64KB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithKVDelimiter sets the key-value delimiter. Default is "=".
func WithKVDelimiter(kvDelim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = kvDelim
	}
}

// WithVTrimChars sets characters trimmed from both ends of values.
// Default is double and single quotes.
func WithVTrimChars(trimChars string) Option {
	return func(p *Parser) {
		p.vTrimChars = trimChars
	}
}

// NewParser creates a parser reading from fs.
func NewParser(fs afero.Fs, opts ...Option) *Parser {
	p := &Parser{
		fs:          fs,
		maxSize:     64 << 10,
		kvDelimiter: "=",
		vTrimChars:  `"'`,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetMap parses the file at path into a map. Blank lines, comments, lines
// without a delimiter and entries with empty values are skipped.
func (p *Parser) GetMap(path string) (map[string]string, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	b, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	if len(b) > p.maxSize {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", path, p.maxSize)
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	result := make(map[string]string, 16)
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, p.kvDelimiter)
		if !ok {
			slog.Debug("skipping line without value", "path", path, "line", line)
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if p.vTrimChars != "" {
			value = strings.Trim(value, p.vTrimChars)
		}
		if key == "" || value == "" {
			continue
		}
		result[key] = value
	}

	return result, nil
}
