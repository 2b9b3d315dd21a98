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

// Package facts detects host facts needed to pick OS-family defaults.
//
// Detection reads os-release per freedesktop.org: /etc/os-release first,
// /usr/lib/os-release when the primary file does not exist. The distribution
// ID and ID_LIKE fields are mapped onto the families used by the option
// overlays:
//
//	rhel, centos, fedora, rocky, almalinux, amzn, ol  -> RedHat
//	debian, ubuntu, raspbian, linuxmint               -> Debian
//	suse, sles, opensuse*                             -> Suse
//	arch, manjaro                                     -> Archlinux
//
// Unknown distributions map to the title-cased ID so that operators can
// supply an overlay for them under a predictable name.
//
// Usage:
//
//	rel, err := facts.Detect(ctx, afero.NewOsFs())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(rel.Family)
//
// The filesystem is an afero.Fs so detection can run against an install
// root or an in-memory fixture.
package facts
