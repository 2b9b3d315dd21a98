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

// Package cli implements the nagcfg command-line interface.
//
// # Overview
//
// nagcfg renders the Nagios main configuration file and systemd unit from a
// parameter file, validates parameters against the option catalog and
// installs the result on the local host.
//
// # Commands
//
// render - Render nagios.cfg (or the unit) to stdout, or a bundle to a directory:
//
//	nagcfg render -p params.yaml [--os-family RedHat] [--output DIR]
//
// validate - Resolve parameters and report where each value came from:
//
//	nagcfg validate -p params.hcl [--format json]
//
// unit - Render the systemd unit from explicit paths:
//
//	nagcfg unit --binary /usr/sbin/nagios --pid-file /var/run/nagios/nagios.pid
//
// catalog - List every option with its kind, default and required flag:
//
//	nagcfg catalog [--format table|yaml|json] [--os-family Debian]
//
// install - Install packages, write files and reload systemd:
//
//	nagcfg install -p params.yaml [--root DIR] [--dry-run] [--skip-packages]
//
// facts - Show the detected OS release and family:
//
//	nagcfg facts
//
// verify - Check a rendered bundle against its checksums:
//
//	nagcfg verify --dir ./out
//
// # Parameter Files
//
// Parameter files are YAML, JSON or HCL, chosen by extension. All three use
// the same keys:
//
//	plugins:    [nagios-plugins-all]
//	conffile:   /etc/nagios/nagios.cfg
//	binary:     /usr/sbin/nagios
//	nagios_cfg: {admin_email: root@localhost, ...}
//
// # Global Flags
//
//	--log-level    debug, info, warn or error (env LOG_LEVEL)
//
// Every flag can also be set through a NAGCFG_* environment variable, for
// example NAGCFG_OS_FAMILY or NAGCFG_PARAMS.
//
// # Exit Status
//
// 0 on success, 1 on any error. Validation errors print the offending
// option name.
package cli
