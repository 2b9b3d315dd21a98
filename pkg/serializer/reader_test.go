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

package serializer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

type testParams struct {
	Plugins  []string       `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	ConfFile string         `json:"conffile,omitempty" yaml:"conffile,omitempty"`
	Options  map[string]any `json:"nagios_cfg,omitempty" yaml:"nagios_cfg,omitempty"`
}

const (
	paramsYAML = `plugins:
  - nagios-plugins-all
conffile: /etc/nagios/nagios.cfg
nagios_cfg:
  admin_email: root@localhost
  check_service_freshness: 1
  sleep_time: 0.25
  cfg_dir:
    - /etc/nagios/conf.d
`
	paramsJSON = `{
  "plugins": ["nagios-plugins-all"],
  "conffile": "/etc/nagios/nagios.cfg",
  "nagios_cfg": {
    "admin_email": "root@localhost",
    "check_service_freshness": 1,
    "sleep_time": 0.25,
    "cfg_dir": ["/etc/nagios/conf.d"]
  }
}
`
	paramsHCL = `plugins  = ["nagios-plugins-all"]
conffile = "/etc/nagios/nagios.cfg"

nagios_cfg = {
  admin_email             = "root@localhost"
  check_service_freshness = 1
  sleep_time              = 0.25
  cfg_dir                 = ["/etc/nagios/conf.d"]
}
`
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"params.json", FormatJSON},
		{"PARAMS.JSON", FormatJSON},
		{"params.yaml", FormatYAML},
		{"params.yml", FormatYAML},
		{"params.hcl", FormatHCL},
		{"/etc/nagcfg/Params.HCL", FormatHCL},
		{"output.txt", FormatTable},
		{"params", FormatYAML},
		{"params.unknown", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.expected {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	tests := []struct {
		format  Format
		wantErr bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatHCL, false},
		{FormatTable, true},
		{Format("xml"), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(""))
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewReader() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && r == nil {
				t.Fatal("Expected non-nil reader")
			}
		})
	}
}

func TestReader_DeserializeFormats(t *testing.T) {
	inputs := map[Format]string{
		FormatYAML: paramsYAML,
		FormatJSON: paramsJSON,
		FormatHCL:  paramsHCL,
	}

	for format, input := range inputs {
		t.Run(string(format), func(t *testing.T) {
			r, err := NewReader(format, strings.NewReader(input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}

			var p testParams
			if err := r.Deserialize(&p); err != nil {
				t.Fatalf("Deserialize failed: %v", err)
			}

			if !reflect.DeepEqual(p.Plugins, []string{"nagios-plugins-all"}) {
				t.Errorf("plugins = %v", p.Plugins)
			}
			if p.ConfFile != "/etc/nagios/nagios.cfg" {
				t.Errorf("conffile = %q", p.ConfFile)
			}
			if p.Options["admin_email"] != "root@localhost" {
				t.Errorf("admin_email = %v", p.Options["admin_email"])
			}
			if got := numberString(p.Options["check_service_freshness"]); got != "1" {
				t.Errorf("check_service_freshness = %v", got)
			}
			if got := numberString(p.Options["sleep_time"]); got != "0.25" {
				t.Errorf("sleep_time = %v", got)
			}
			dirs, ok := p.Options["cfg_dir"].([]any)
			if !ok || len(dirs) != 1 || dirs[0] != "/etc/nagios/conf.d" {
				t.Errorf("cfg_dir = %#v", p.Options["cfg_dir"])
			}
		})
	}
}

func numberString(v any) string {
	switch v.(type) {
	case json.Number, int, int64, float64:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

func TestReader_DeserializeJSONKeepsNumbers(t *testing.T) {
	r, err := NewReader(FormatJSON, strings.NewReader(`{"nagios_cfg":{"retention_update_interval":60}}`))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var p testParams
	if err := r.Deserialize(&p); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if _, ok := p.Options["retention_update_interval"].(json.Number); !ok {
		t.Errorf("Expected json.Number, got %T", p.Options["retention_update_interval"])
	}
}

func TestReader_DeserializeHCLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", `plugins = [`},
		{"blocks", "nagios_cfg {\n  a = 1\n}\n"},
		{"variables", `conffile = var.path`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(FormatHCL, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			var p testParams
			if err := r.Deserialize(&p); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestReader_DeserializeNilChecks(t *testing.T) {
	var r *Reader
	if err := r.Deserialize(&testParams{}); err == nil {
		t.Error("Expected error for nil reader")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil reader should not error: %v", err)
	}

	r = &Reader{format: FormatJSON}
	if err := r.Deserialize(&testParams{}); err == nil {
		t.Error("Expected error for nil input")
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"params.yaml": paramsYAML,
		"params.json": paramsJSON,
		"params.hcl":  paramsHCL,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}

			p, err := FromFile[testParams](path)
			if err != nil {
				t.Fatalf("FromFile failed: %v", err)
			}
			if p.ConfFile != "/etc/nagios/nagios.cfg" {
				t.Errorf("conffile = %q", p.ConfFile)
			}
		})
	}
}

func TestFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := FromFile[testParams](filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := FromFile[testParams](bad); err == nil {
		t.Error("Expected error for invalid JSON")
	}

	table := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(table, []byte("FIELD VALUE"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := FromFile[testParams](table); err == nil {
		t.Error("Expected error for table format")
	}
}

func TestReader_Close(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	if err := os.WriteFile(path, []byte(paramsYAML), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	r, err := NewFileReaderAuto(path)
	if err != nil {
		t.Fatalf("NewFileReaderAuto failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close should be a no-op: %v", err)
	}
}
