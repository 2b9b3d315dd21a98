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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	cerrors "github.com/NVIDIA/nagcfg/pkg/errors"
	"github.com/NVIDIA/nagcfg/pkg/nagios"
)

func testArtifacts() *nagios.Artifacts {
	return &nagios.Artifacts{
		OSFamily:   "RedHat",
		ConfigText: "admin_email=root@localhost\nsleep_time=0.25\n",
		UnitText:   "[Unit]\nDescription=Nagios Network Monitoring\n",
		Packages:   []string{"nagios", "nagios-plugins-all"},
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	res, err := New(fs).Write(context.Background(), "/out", testArtifacts())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if !res.Success {
		t.Error("result should be marked as successful")
	}
	if res.RunID == "" {
		t.Error("result should carry a run ID")
	}
	if res.OSFamily != "RedHat" {
		t.Errorf("OSFamily = %q", res.OSFamily)
	}
	if len(res.Files) != 4 {
		t.Fatalf("expected 4 files, got %d: %v", len(res.Files), res.Files)
	}

	cfg, err := afero.ReadFile(fs, "/out/nagios.cfg")
	if err != nil {
		t.Fatalf("failed to read nagios.cfg: %v", err)
	}
	if string(cfg) != testArtifacts().ConfigText {
		t.Errorf("nagios.cfg = %q", cfg)
	}

	pkgs, err := afero.ReadFile(fs, "/out/packages.txt")
	if err != nil {
		t.Fatalf("failed to read packages.txt: %v", err)
	}
	if string(pkgs) != "nagios\nnagios-plugins-all\n" {
		t.Errorf("packages.txt = %q", pkgs)
	}

	sums, err := afero.ReadFile(fs, "/out/checksums.txt")
	if err != nil {
		t.Fatalf("failed to read checksums.txt: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(sums)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 checksum lines, got %d", len(lines))
	}
	for _, line := range lines {
		parts := strings.Split(line, "  ")
		if len(parts) != 2 || len(parts[0]) != 64 {
			t.Errorf("invalid checksum line: %s", line)
		}
	}
	if !strings.HasSuffix(lines[0], "  nagios.cfg") {
		t.Errorf("first checksum line should cover nagios.cfg: %s", lines[0])
	}

	if err := Verify(context.Background(), fs, "/out"); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
}

func TestWrite_Errors(t *testing.T) {
	t.Parallel()

	b := New(afero.NewMemMapFs())
	if _, err := b.Write(context.Background(), "/out", nil); err == nil {
		t.Error("expected error for nil artifacts")
	}
	if _, err := b.Write(context.Background(), " ", testArtifacts()); err == nil {
		t.Error("expected error for empty directory")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := b.Write(ctx, "/out", testArtifacts())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	if _, err := New(afero.NewReadOnlyFs(afero.NewMemMapFs())).Write(context.Background(), "/out", testArtifacts()); err == nil {
		t.Error("expected error on read-only filesystem")
	}
}

func TestWrite_OsFs(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "bundle")
	res, err := Write(context.Background(), dir, testArtifacts())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, UnitFileName))
	if err != nil {
		t.Fatalf("unit file missing: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("unit mode = %v, want 0644", info.Mode().Perm())
	}
	if res.Size == 0 {
		t.Error("result size should be non-zero")
	}
}

func TestVerify_Mismatch(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	if _, err := New(fs).Write(context.Background(), "/out", testArtifacts()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := afero.WriteFile(fs, "/out/nagios.cfg", []byte("tampered\n"), 0644); err != nil {
		t.Fatalf("failed to tamper: %v", err)
	}

	err := Verify(context.Background(), fs, "/out")
	if !cerrors.IsCode(err, cerrors.ErrCodeInvalidRequest) {
		t.Fatalf("expected INVALID_REQUEST, got %v", err)
	}
	if file, _ := cerrors.ContextValue(err, "file"); file != "nagios.cfg" {
		t.Errorf("mismatch file = %v", file)
	}

	if err := Verify(context.Background(), afero.NewMemMapFs(), "/none"); !cerrors.IsCode(err, cerrors.ErrCodeNotFound) {
		t.Errorf("expected NOT_FOUND for missing bundle, got %v", err)
	}
}

func TestVerify_RejectsEscapingPaths(t *testing.T) {
	t.Parallel()

	secret := []byte("root:x:0:0\n")
	tests := []struct {
		name string
		path string
	}{
		{"parent", "../etc/passwd"},
		{"nested parent", "sub/../../etc/passwd"},
		{"absolute", "/etc/passwd"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, "/etc/passwd", secret, 0644); err != nil {
				t.Fatalf("failed to seed: %v", err)
			}
			sums := Digest(secret) + "  " + tt.path + "\n"
			if err := afero.WriteFile(fs, "/out/"+ChecksumFileName, []byte(sums), 0644); err != nil {
				t.Fatalf("failed to write checksums: %v", err)
			}

			err := Verify(context.Background(), fs, "/out")
			if !cerrors.IsCode(err, cerrors.ErrCodeInvalidRequest) {
				t.Fatalf("expected INVALID_REQUEST, got %v", err)
			}
			if file, _ := cerrors.ContextValue(err, "file"); file != tt.path {
				t.Errorf("rejected file = %v, want %s", file, tt.path)
			}
		})
	}
}

func TestResult(t *testing.T) {
	t.Parallel()

	r := NewResult("/out")
	if r.Success || len(r.Files) != 0 || r.RunID == "" {
		t.Fatalf("unexpected new result: %+v", r)
	}

	r.AddFile("/out/a", 100)
	r.AddFile("/out/b", 2048)
	r.AddError(nil)
	r.AddError(errors.New("first error"))
	r.Duration = 1500 * time.Millisecond
	r.MarkSuccess()

	if r.Size != 2148 {
		t.Errorf("Size = %d, want 2148", r.Size)
	}
	if len(r.Errors) != 1 || r.Errors[0] != "first error" {
		t.Errorf("Errors = %v", r.Errors)
	}
	if got := r.Summary(); got != "Wrote 2 files (2.1 KB) to /out in 1.5s." {
		t.Errorf("Summary() = %q", got)
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
