package unit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/nagcfg/pkg/schema/schematest"
)

func redHatSpec() Spec {
	return Spec{
		Binary:     "/usr/sbin/nagios",
		ConfigFile: "/etc/nagios/nagios.cfg",
		PIDFile:    "/var/run/nagios/nagios.pid",
		CmdFile:    "/var/spool/nagios/cmd/nagios.cmd",
	}
}

func TestRenderMatchesLiteral(t *testing.T) {
	got, err := Render(redHatSpec())
	require.NoError(t, err)
	assert.Equal(t, schematest.RedHatUnit, got)
}

func TestRenderIsPure(t *testing.T) {
	a, err := Render(redHatSpec())
	require.NoError(t, err)
	b, err := Render(redHatSpec())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderChangesOnlyAffectedLines(t *testing.T) {
	base, err := Render(redHatSpec())
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(*Spec)
		changed []string
	}{
		{
			name:    "pid file",
			mutate:  func(s *Spec) { s.PIDFile = "/run/nagios/nagios.pid" },
			changed: []string{"PIDFile=/run/nagios/nagios.pid"},
		},
		{
			name:    "cmd file",
			mutate:  func(s *Spec) { s.CmdFile = "/run/nagios/nagios.cmd" },
			changed: []string{"ExecStopPost=/usr/bin/rm -f /run/nagios/nagios.cmd"},
		},
		{
			name:   "config file",
			mutate: func(s *Spec) { s.ConfigFile = "/etc/nagios4/nagios.cfg" },
			changed: []string{
				"ExecStartPre=/usr/sbin/nagios -v /etc/nagios4/nagios.cfg",
				"ExecStart=/usr/sbin/nagios -d /etc/nagios4/nagios.cfg",
			},
		},
		{
			name:    "user",
			mutate:  func(s *Spec) { s.User = "icinga" },
			changed: []string{"User=icinga"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := redHatSpec()
			tt.mutate(&spec)
			got, err := Render(spec)
			require.NoError(t, err)

			baseLines := strings.Split(base, "\n")
			gotLines := strings.Split(got, "\n")
			require.Len(t, gotLines, len(baseLines))

			var diff []string
			for i := range gotLines {
				if gotLines[i] != baseLines[i] {
					diff = append(diff, gotLines[i])
				}
			}
			assert.Equal(t, tt.changed, diff)
		})
	}
}

func TestRenderRejectsInvalidSpec(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
		errMsg string
	}{
		{"empty binary", func(s *Spec) { s.Binary = "" }, "binary cannot be empty"},
		{"empty config", func(s *Spec) { s.ConfigFile = "" }, "config file cannot be empty"},
		{"empty pid", func(s *Spec) { s.PIDFile = "" }, "pid file cannot be empty"},
		{"empty cmd", func(s *Spec) { s.CmdFile = "" }, "cmd file cannot be empty"},
		{"whitespace", func(s *Spec) { s.ConfigFile = "/etc/my nagios.cfg" }, "contains whitespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := redHatSpec()
			tt.mutate(&spec)
			_, err := Render(spec)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParse(t *testing.T) {
	opts, err := Parse(schematest.RedHatUnit)
	require.NoError(t, err)

	tests := []struct {
		section string
		name    string
		want    string
	}{
		{"Unit", "Description", "Nagios Network Monitoring"},
		{"Service", "Type", "forking"},
		{"Service", "User", "nagios"},
		{"Service", "Group", "nagios"},
		{"Service", "PIDFile", "/var/run/nagios/nagios.pid"},
		{"Service", "ExecReload", "/bin/kill -HUP $MAINPID"},
		{"Install", "WantedBy", "multi-user.target"},
	}
	for _, tt := range tests {
		t.Run(tt.section+"/"+tt.name, func(t *testing.T) {
			got, ok := Value(opts, tt.section, tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := Value(opts, "Service", "Restart")
	assert.False(t, ok)
}
