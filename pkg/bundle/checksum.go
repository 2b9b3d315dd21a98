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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/NVIDIA/nagcfg/pkg/errors"
)

// ChecksumFileName is the name of the digest list inside a bundle.
const ChecksumFileName = "checksums.txt"

// Digest returns the hex SHA-256 of data.
func Digest(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// checksumContent builds checksums.txt for files under dir.
func checksumContent(fs afero.Fs, dir string, files []string) (string, error) {
	lines := make([]string, 0, len(files))
	for _, file := range files {
		data, err := afero.ReadFile(fs, file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s for checksum: %w", file, err)
		}

		relPath, err := filepath.Rel(dir, file)
		if err != nil {
			relPath = file
		}
		lines = append(lines, fmt.Sprintf("%s  %s", Digest(data), filepath.ToSlash(relPath)))
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// Verify recomputes every digest in dir/checksums.txt. It returns an
// INVALID_REQUEST error naming the first file that does not match.
func Verify(ctx context.Context, fs afero.Fs, dir string) error {
	data, err := afero.ReadFile(fs, filepath.Join(dir, ChecksumFileName))
	if err != nil {
		return errors.Wrap(errors.ErrCodeNotFound, "checksums not found", err)
	}

	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if err := ctx.Err(); err != nil {
			return err
		}

		want, rel, ok := strings.Cut(line, "  ")
		if !ok {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"malformed checksum line", map[string]any{"line": line})
		}

		local := filepath.FromSlash(rel)
		if !filepath.IsLocal(local) {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"checksum entry escapes bundle directory", map[string]any{"file": rel})
		}

		content, err := afero.ReadFile(fs, filepath.Join(dir, local))
		if err != nil {
			return errors.Wrap(errors.ErrCodeNotFound, "bundle file missing", err)
		}
		if got := Digest(content); got != want {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, "checksum mismatch",
				map[string]any{"file": rel, "expected": want, "actual": got})
		}
	}

	slog.Debug("bundle verified", "dir", dir)
	return nil
}
