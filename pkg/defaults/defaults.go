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

package defaults

import (
	"os"
	"strings"
	"time"
)

// Installed artifact locations.
const (
	// ConfFile is the main Nagios configuration file.
	ConfFile = "/etc/nagios/nagios.cfg"

	// Binary is the Nagios daemon executable.
	Binary = "/usr/sbin/nagios"

	// UnitName is the systemd unit managed by nagcfg.
	UnitName = "nagios.service"

	// UnitFile is where the unit is installed.
	UnitFile = "/usr/lib/systemd/system/" + UnitName

	// PendingReloadFile records reloads still owed for files already
	// written. It is removed once the reloads succeed.
	PendingReloadFile = "/var/lib/nagcfg/pending-reload"
)

// Ownership of installed files.
const (
	FileOwner = "root"
	FileGroup = "root"

	// FileMode applies to both the configuration and the unit file.
	FileMode os.FileMode = 0644

	// DirMode applies to parent directories created by the installer.
	DirMode os.FileMode = 0755
)

// Installer timeouts.
const (
	// PackageInstallTimeout bounds a single package manager invocation.
	PackageInstallTimeout = 10 * time.Minute

	// SystemdTimeout bounds D-Bus calls to systemd.
	SystemdTimeout = 30 * time.Second
)

// Family holds the per-family package and path defaults.
type Family struct {
	// Package is the daemon package.
	Package string
	// Plugins are installed next to the daemon unless overridden.
	Plugins []string
	// Binary is the daemon executable.
	Binary string
	// ConfFile is the main configuration file.
	ConfFile string
}

var families = map[string]Family{
	"redhat": {
		Package:  "nagios",
		Plugins:  []string{"nagios-plugins-all"},
		Binary:   Binary,
		ConfFile: ConfFile,
	},
	"debian": {
		Package:  "nagios4",
		Plugins:  []string{"monitoring-plugins"},
		Binary:   "/usr/sbin/nagios4",
		ConfFile: "/etc/nagios4/nagios.cfg",
	},
}

// ForFamily returns the defaults for an OS family, matched
// case-insensitively. Unknown families get the RedHat layout with the plain
// "nagios" package and no plugins.
func ForFamily(family string) (Family, bool) {
	f, ok := families[strings.ToLower(family)]
	if !ok {
		return Family{Package: "nagios", Binary: Binary, ConfFile: ConfFile}, false
	}
	f.Plugins = append([]string(nil), f.Plugins...)
	return f, true
}
