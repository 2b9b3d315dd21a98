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

// Package installer applies rendered Nagios artifacts to a host.
//
// Installation is split in two steps. NewPlan is pure with respect to the
// host: it reads the currently installed files through an afero.Fs and
// reports what would change. Installer.Apply then installs packages, writes
// the changed files and asks systemd to reload.
//
//	plan, err := installer.NewPlan(fs, artifacts)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(plan.Diff())
//
//	in := installer.New(fs,
//	    installer.WithPackageManager(installer.PackageManagerFor(family, installer.ExecRunner{})),
//	    installer.WithReloader(installer.NewSystemdReloader()),
//	)
//	report, err := in.Apply(ctx, plan)
//
// Managed files are owned by root:root with mode 0644. A changed unit file
// triggers a systemd daemon-reload, a changed configuration file triggers a
// reload of nagios.service when it is running. Applying a plan without
// changes writes nothing and reloads nothing.
package installer
