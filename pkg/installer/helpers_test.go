package installer

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/nagcfg/pkg/nagios"
	"github.com/NVIDIA/nagcfg/pkg/schema"
	"github.com/NVIDIA/nagcfg/pkg/schema/schematest"
)

func buildArtifacts(t *testing.T, mutate func(p *nagios.Params)) *nagios.Artifacts {
	t.Helper()
	p := nagios.Params{
		Plugins: schematest.RedHatPlugins(),
		Options: schematest.RedHatOptions(),
	}
	if mutate != nil {
		mutate(&p)
	}
	art, err := nagios.Build(p, schema.FamilyRedHat)
	require.NoError(t, err)
	return art
}

type fakePackages struct {
	installed map[string]bool
	calls     [][]string
	err       error
}

func (f *fakePackages) Missing(_ context.Context, pkgs []string) ([]string, error) {
	var out []string
	for _, p := range pkgs {
		if !f.installed[p] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePackages) Install(_ context.Context, pkgs []string) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, pkgs)
	if f.installed == nil {
		f.installed = map[string]bool{}
	}
	for _, p := range pkgs {
		f.installed[p] = true
	}
	return nil
}

type fakeReloader struct {
	daemonReloads  int
	serviceReloads []string
	active         bool
	stale          bool
	err            error
}

func (f *fakeReloader) DaemonReload(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.daemonReloads++
	return nil
}

func (f *fakeReloader) ReloadService(_ context.Context, unit string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if !f.active {
		return false, nil
	}
	f.serviceReloads = append(f.serviceReloads, unit)
	return true, nil
}

func (f *fakeReloader) NeedsDaemonReload(context.Context, string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.stale, nil
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}
