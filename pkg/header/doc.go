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

// Package header provides the kind/apiVersion envelope written at the top of
// nagcfg reports.
//
// Reports embed Header inline:
//
//	type ValidationReport struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    OSFamily string `json:"os_family" yaml:"os_family"`
//	}
//
// and serialize as:
//
//	kind: ValidationReport
//	apiVersion: nagcfg.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2025-06-01T12:00:00Z"
//	  version: v0.3.0
//	os_family: RedHat
package header
