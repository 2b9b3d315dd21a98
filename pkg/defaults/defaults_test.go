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
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"PackageInstallTimeout", PackageInstallTimeout, 1 * time.Minute, 30 * time.Minute},
		{"SystemdTimeout", SystemdTimeout, 5 * time.Second, 2 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestUnitFile(t *testing.T) {
	if UnitFile != "/usr/lib/systemd/system/nagios.service" {
		t.Errorf("UnitFile = %q", UnitFile)
	}
	if FileMode != 0644 {
		t.Errorf("FileMode = %v, want 0644", FileMode)
	}
}

func TestForFamily(t *testing.T) {
	tests := []struct {
		family    string
		wantPkg   string
		wantConf  string
		wantKnown bool
		plugins   int
	}{
		{"RedHat", "nagios", "/etc/nagios/nagios.cfg", true, 1},
		{"redhat", "nagios", "/etc/nagios/nagios.cfg", true, 1},
		{"Debian", "nagios4", "/etc/nagios4/nagios.cfg", true, 1},
		{"Gentoo", "nagios", "/etc/nagios/nagios.cfg", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			f, known := ForFamily(tt.family)
			if known != tt.wantKnown {
				t.Errorf("known = %v, want %v", known, tt.wantKnown)
			}
			if f.Package != tt.wantPkg {
				t.Errorf("Package = %q, want %q", f.Package, tt.wantPkg)
			}
			if f.ConfFile != tt.wantConf {
				t.Errorf("ConfFile = %q, want %q", f.ConfFile, tt.wantConf)
			}
			if len(f.Plugins) != tt.plugins {
				t.Errorf("Plugins = %v, want %d entries", f.Plugins, tt.plugins)
			}
		})
	}
}

func TestForFamilyReturnsCopy(t *testing.T) {
	f, _ := ForFamily("RedHat")
	f.Plugins[0] = "changed"

	again, _ := ForFamily("RedHat")
	if again.Plugins[0] != "nagios-plugins-all" {
		t.Errorf("ForFamily leaked internal slice: %v", again.Plugins)
	}
}
