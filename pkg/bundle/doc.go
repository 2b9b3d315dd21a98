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

// Package bundle writes rendered Nagios artifacts into an output directory
// for review or out-of-band installation.
//
// A bundle contains:
//
//	nagios.cfg       rendered main configuration
//	nagios.service   rendered systemd unit
//	packages.txt     packages to install, one per line
//	checksums.txt    "<sha256>  <relpath>" for every file above
//
// Usage:
//
//	res, err := bundle.Write(ctx, "./out", artifacts)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Summary())
//
// A bundle can be checked later with Verify, which recomputes every digest
// listed in checksums.txt.
package bundle
