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

// Package defaults provides centralized configuration constants for nagcfg.
//
// This package defines installed file locations, file ownership and modes,
// per-family package names and the timeouts used by the installer.
// Centralizing these values keeps the CLI, bundle and installer consistent.
//
// # Categories
//
//   - Paths: daemon binary, configuration file, systemd unit location
//   - Ownership: owner, group and mode of installed files
//   - Families: package and path defaults per OS family
//   - Timeouts: package manager and systemd operations
package defaults
