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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	cerrors "github.com/NVIDIA/nagcfg/pkg/errors"
)

var (
	filePathReleasePrimary  = "/etc/os-release"
	filePathReleaseFallback = "/usr/lib/os-release"
)

// Families known to the built-in overlays and package tables.
const (
	FamilyRedHat    = "RedHat"
	FamilyDebian    = "Debian"
	FamilySuse      = "Suse"
	FamilyArchlinux = "Archlinux"
)

var familyByID = map[string]string{
	"rhel":      FamilyRedHat,
	"centos":    FamilyRedHat,
	"fedora":    FamilyRedHat,
	"rocky":     FamilyRedHat,
	"almalinux": FamilyRedHat,
	"amzn":      FamilyRedHat,
	"ol":        FamilyRedHat,
	"debian":    FamilyDebian,
	"ubuntu":    FamilyDebian,
	"raspbian":  FamilyDebian,
	"linuxmint": FamilyDebian,
	"suse":      FamilySuse,
	"sles":      FamilySuse,
	"opensuse":  FamilySuse,
	"arch":      FamilyArchlinux,
	"manjaro":   FamilyArchlinux,
}

// Release is the subset of os-release used by nagcfg.
type Release struct {
	ID         string   `json:"id" yaml:"id"`
	IDLike     []string `json:"idLike,omitempty" yaml:"idLike,omitempty"`
	Name       string   `json:"name,omitempty" yaml:"name,omitempty"`
	VersionID  string   `json:"versionId,omitempty" yaml:"versionId,omitempty"`
	PrettyName string   `json:"prettyName,omitempty" yaml:"prettyName,omitempty"`
	Family     string   `json:"family" yaml:"family"`
	Source     string   `json:"source" yaml:"source"`
}

// Detect reads os-release from fs and maps it to an OS family.
//
//	NAME="Rocky Linux"
//	ID="rocky"
//	ID_LIKE="rhel centos fedora"
//	VERSION_ID="9.4"
func Detect(ctx context.Context, fs afero.Fs) (*Release, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filePathReleasePrimary
	if _, err := fs.Stat(path); errors.Is(err, os.ErrNotExist) {
		path = filePathReleaseFallback
	}

	kv, err := NewParser(fs).GetMap(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, cerrors.Wrap(cerrors.ErrCodeNotFound, "os-release not found", err)
		}
		return nil, fmt.Errorf("failed to read os release from %s: %w", path, err)
	}

	rel := &Release{
		ID:         strings.ToLower(kv["ID"]),
		IDLike:     strings.Fields(strings.ToLower(kv["ID_LIKE"])),
		Name:       kv["NAME"],
		VersionID:  kv["VERSION_ID"],
		PrettyName: kv["PRETTY_NAME"],
		Source:     path,
	}
	if rel.ID == "" {
		return nil, cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
			"os-release has no ID", map[string]any{"path": path})
	}
	rel.Family = FamilyOf(rel.ID, rel.IDLike...)

	slog.Debug("detected os release",
		"id", rel.ID,
		"family", rel.Family,
		"source", path,
	)

	return rel, nil
}

// FamilyOf maps a distribution ID and its ID_LIKE list to a family. The ID is
// tried first, then each ID_LIKE entry in order.
func FamilyOf(id string, idLike ...string) string {
	for _, candidate := range append([]string{id}, idLike...) {
		if f, ok := lookupFamily(candidate); ok {
			return f
		}
	}
	if id == "" {
		return ""
	}
	return cases.Title(language.Und).String(strings.ReplaceAll(id, "-", " "))
}

func lookupFamily(id string) (string, bool) {
	id = strings.ToLower(id)
	if f, ok := familyByID[id]; ok {
		return f, true
	}
	if strings.HasPrefix(id, "opensuse") {
		return FamilySuse, true
	}
	return "", false
}
