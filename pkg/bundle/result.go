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
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result describes one bundle run.
type Result struct {
	// RunID identifies the run in logs and reports.
	RunID string `json:"run_id" yaml:"run_id"`

	// OutputDir is the bundle directory.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// OSFamily is the family the artifacts were built for.
	OSFamily string `json:"os_family" yaml:"os_family"`

	// Files lists written files in write order.
	Files []string `json:"files" yaml:"files"`

	// Size is the total size in bytes of all written files.
	Size int64 `json:"size_bytes" yaml:"size_bytes"`

	// Duration is the time taken to write the bundle.
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Success is set once every file and the checksums are written.
	Success bool `json:"success" yaml:"success"`

	// Errors holds non-fatal errors.
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewResult creates an empty result with a fresh run ID.
func NewResult(outputDir string) *Result {
	return &Result{
		RunID:     uuid.NewString(),
		OutputDir: outputDir,
		Files:     make([]string, 0),
		Errors:    make([]string, 0),
	}
}

// AddFile records a written file.
func (r *Result) AddFile(path string, size int64) {
	r.Files = append(r.Files, path)
	r.Size += size
}

// AddError records a non-fatal error. Nil is ignored.
func (r *Result) AddError(err error) {
	if err != nil {
		r.Errors = append(r.Errors, err.Error())
	}
}

// MarkSuccess marks the run as complete.
func (r *Result) MarkSuccess() {
	r.Success = true
}

// Summary returns a one-line description of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf("Wrote %d files (%s) to %s in %v.",
		len(r.Files),
		formatBytes(r.Size),
		r.OutputDir,
		r.Duration.Round(time.Millisecond),
	)
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
