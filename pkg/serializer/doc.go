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

// Package serializer reads parameter files and writes reports in multiple
// formats.
//
// # Supported Formats
//
// JSON:
//   - Read and write
//   - Numbers decode as json.Number so integers and floats stay distinct
//
// YAML:
//   - Read and write, gopkg.in/yaml.v3
//
// HCL:
//   - Read only, github.com/hashicorp/hcl/v2 native syntax
//   - Top-level attributes map onto the same keys as JSON and YAML
//
// Table:
//   - Write only, flattened FIELD/VALUE rows for terminals
//
// # Usage - Encoding
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// Write to a file or stdout:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	defer w.Close()
//
// # Usage - Decoding
//
// Parameter files are decoded based on their extension:
//
//	params, err := serializer.FromFile[nagios.Params]("params.hcl")
//
// An HCL parameter file looks like:
//
//	plugins  = ["nagios-plugins-all"]
//	conffile = "/etc/nagios/nagios.cfg"
//
//	nagios_cfg = {
//	  admin_email = "root@localhost"
//	  sleep_time  = 0.25
//	}
package serializer
