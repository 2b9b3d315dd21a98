package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/nagcfg/pkg/resolver"
	"github.com/NVIDIA/nagcfg/pkg/schema"
	"github.com/NVIDIA/nagcfg/pkg/schema/schematest"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{20.0, "20.0"},
		{20, "20.0"},
		{5.0, "5.0"},
		{0.25, "0.25"},
		{0, "0.0"},
		{-1.5, "-1.5"},
		{1e21, "1000000000000000000000.0"},
		{0.1, "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.in))
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int", int64(4096), "4096"},
		{"negative int", int64(-1), "-1"},
		{"float", 20.0, "20.0"},
		{"string", "/var/log/nagios/nagios.log", "/var/log/nagios/nagios.log"},
		{"string with specials", "`~!$%^&*|'\"<>?,()=", "`~!$%^&*|'\"<>?,()="},
		{"list", []string{"/etc/nagios/conf.d", "/etc/nagios/objects"}, "/etc/nagios/conf.d,/etc/nagios/objects"},
		{"single list", []string{"/etc/nagios/conf.d"}, "/etc/nagios/conf.d"},
		{"empty list", []string{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}

func resolveFixture(t *testing.T) *resolver.Config {
	t.Helper()
	cfg, err := resolver.Resolve(schematest.RedHatOptions(), schema.FamilyRedHat, schema.Nagios(), schema.NagiosOSDefaults())
	require.NoError(t, err)
	return cfg
}

func TestRenderOneLinePerOptionInCatalogOrder(t *testing.T) {
	out := Render(resolveFixture(t))

	require.True(t, strings.HasSuffix(out, "\n"))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	names := schema.Nagios().Names()
	require.Len(t, lines, len(names))

	for i, line := range lines {
		key, _, found := strings.Cut(line, "=")
		require.True(t, found, "line %q", line)
		assert.Equal(t, names[i], key)
	}
}

func TestRenderFixtureValues(t *testing.T) {
	out := Render(resolveFixture(t))

	for _, want := range []string{
		"accept_passive_host_checks=1\n",
		"cfg_dir=/etc/nagios/conf.d\n",
		"command_check_interval=-1\n",
		"high_host_flap_threshold=20.0\n",
		"low_service_flap_threshold=5.0\n",
		"sleep_time=0.25\n",
		"illegal_macro_output_chars=`~$&|'\"<>\n",
		"lock_file=/var/run/nagios/nagios.pid\n",
		"date_format=us\n",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	first := Render(resolveFixture(t))
	second := Render(resolveFixture(t))
	assert.Equal(t, first, second)

	cfg := resolveFixture(t)
	assert.Equal(t, Render(cfg), Render(cfg))
}

func TestRenderSkipsAbsentOptional(t *testing.T) {
	catalog := schema.MustCatalog(
		schema.OptionSpec{Name: "a", Kind: schema.KindInt, Default: 1},
		schema.OptionSpec{Name: "b", Kind: schema.KindString},
		schema.OptionSpec{Name: "c", Kind: schema.KindFloat, Default: 2},
	)
	cfg, err := resolver.Resolve(nil, "", catalog, nil)
	require.NoError(t, err)

	assert.Equal(t, "a=1\nc=2.0\n", Render(cfg))
}

func TestRenderCannotBeSplitByValues(t *testing.T) {
	tests := []struct {
		name   string
		option string
		value  any
	}{
		{"newline adds a line", "admin_email", "root@x\nlock_file=/tmp/evil.pid"},
		{"carriage return", "admin_pager", "pager\r\nlock_file=/tmp/evil.pid"},
		{"comma merges list items", "cfg_dir", []any{"/etc/a,b", "/etc/c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := schematest.RedHatOptions()
			params[tt.option] = tt.value

			cfg, err := resolver.Resolve(params, schema.FamilyRedHat, schema.Nagios(), schema.NagiosOSDefaults())
			require.Error(t, err)
			assert.Nil(t, cfg)

			name, ok := resolver.IsTypeMismatch(err)
			require.True(t, ok)
			assert.Equal(t, tt.option, name)
		})
	}
}

func TestRenderKeepsOneLinePerOptionWithSpecialCharacters(t *testing.T) {
	params := schematest.RedHatOptions()
	params["admin_email"] = "ops,oncall@example.com"
	params["cfg_dir"] = []string{"/etc/nagios/conf.d", "/etc/nagios/extra"}

	cfg, err := resolver.Resolve(params, schema.FamilyRedHat, schema.Nagios(), schema.NagiosOSDefaults())
	require.NoError(t, err)

	out := Render(cfg)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, schema.Nagios().Len())
	assert.Contains(t, out, "admin_email=ops,oncall@example.com\n")
	assert.Contains(t, out, "cfg_dir=/etc/nagios/conf.d,/etc/nagios/extra\n")
	assert.Equal(t, 1, strings.Count(out, "\nlock_file="))
}
