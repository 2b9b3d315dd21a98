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

package bundle

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/NVIDIA/nagcfg/pkg/defaults"
	"github.com/NVIDIA/nagcfg/pkg/nagios"
)

// File names inside a bundle.
const (
	ConfigFileName   = "nagios.cfg"
	UnitFileName     = defaults.UnitName
	PackagesFileName = "packages.txt"
)

// Bundler writes artifacts through an afero.Fs.
type Bundler struct {
	fs     afero.Fs
	result *Result
}

// New creates a Bundler on fs. A nil fs selects the OS filesystem.
func New(fs afero.Fs) *Bundler {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Bundler{fs: fs}
}

// Write writes a bundle for art into dir on the OS filesystem.
func Write(ctx context.Context, dir string, art *nagios.Artifacts) (*Result, error) {
	return New(nil).Write(ctx, dir, art)
}

// Write creates dir and writes every bundle file plus checksums.txt.
func (b *Bundler) Write(ctx context.Context, dir string, art *nagios.Artifacts) (*Result, error) {
	if art == nil {
		return nil, fmt.Errorf("artifacts cannot be nil")
	}
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("output directory cannot be empty")
	}

	start := time.Now()
	b.result = NewResult(dir)
	b.result.OSFamily = art.OSFamily

	if err := b.fs.MkdirAll(dir, defaults.DirMode); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	files := []struct {
		name    string
		content string
	}{
		{ConfigFileName, art.ConfigText},
		{UnitFileName, art.UnitText},
		{PackagesFileName, strings.Join(art.Packages, "\n") + "\n"},
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled: %w", err)
		}
		if err := b.writeFile(filepath.Join(dir, f.name), []byte(f.content), defaults.FileMode); err != nil {
			return nil, err
		}
	}

	sums, err := checksumContent(b.fs, dir, b.result.Files)
	if err != nil {
		return nil, err
	}
	if err := b.writeFile(filepath.Join(dir, ChecksumFileName), []byte(sums), defaults.FileMode); err != nil {
		return nil, fmt.Errorf("failed to write checksums: %w", err)
	}

	b.result.Duration = time.Since(start)
	b.result.MarkSuccess()

	slog.Debug("bundle written",
		"run_id", b.result.RunID,
		"files", len(b.result.Files),
		"size_bytes", b.result.Size,
		"duration", b.result.Duration.Round(time.Millisecond),
	)

	return b.result, nil
}

func (b *Bundler) writeFile(path string, content []byte, perm os.FileMode) error {
	if err := afero.WriteFile(b.fs, path, content, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	b.result.AddFile(path, int64(len(content)))

	slog.Debug("file written",
		"path", path,
		"size_bytes", len(content),
		"permissions", perm,
	)
	return nil
}
