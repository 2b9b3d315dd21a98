package nagios

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/nagcfg/pkg/render"
	"github.com/NVIDIA/nagcfg/pkg/schema"
	"github.com/NVIDIA/nagcfg/pkg/serializer"
)

// hclParams writes p as an HCL attribute file.
func hclParams(t *testing.T, p Params) string {
	t.Helper()

	var b strings.Builder
	fmt.Fprintf(&b, "conffile = %s\n", hclString(p.ConfFile))
	fmt.Fprintf(&b, "plugins  = %s\n", hclList(p.Plugins))
	b.WriteString("nagios_cfg = {\n")

	names := make([]string, 0, len(p.Options))
	for name := range p.Options {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var value string
		switch v := p.Options[name].(type) {
		case string:
			value = hclString(v)
		case int64:
			value = strconv.FormatInt(v, 10)
		case int:
			value = strconv.Itoa(v)
		case float64:
			value = render.FormatFloat(v)
		case []string:
			value = hclList(v)
		default:
			t.Fatalf("unsupported fixture value %T for %s", v, name)
		}
		fmt.Fprintf(&b, "  %s = %s\n", name, value)
	}
	b.WriteString("}\n")
	return b.String()
}

// hclString quotes s and escapes template sequences.
func hclString(s string) string {
	s = strings.ReplaceAll(s, "${", "$${")
	s = strings.ReplaceAll(s, "%{", "%%{")
	return strconv.Quote(s)
}

func hclList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = hclString(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func TestBuildFromParamFilesIsFormatIndependent(t *testing.T) {
	p := redHatParams()
	want, err := Build(p, schema.FamilyRedHat)
	require.NoError(t, err)

	yamlData, err := yaml.Marshal(p)
	require.NoError(t, err)
	jsonData, err := json.Marshal(p)
	require.NoError(t, err)

	dir := t.TempDir()
	files := map[string][]byte{
		"params.yaml": yamlData,
		"params.json": jsonData,
		"params.hcl":  []byte(hclParams(t, p)),
	}

	for name, data := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, data, 0o600))

			loaded, err := serializer.FromFile[Params](path)
			require.NoError(t, err)

			got, err := Build(*loaded, schema.FamilyRedHat)
			require.NoError(t, err)

			assert.Equal(t, want.ConfigText, got.ConfigText)
			assert.Equal(t, want.UnitText, got.UnitText)
			assert.Equal(t, want.Packages, got.Packages)
		})
	}
}
