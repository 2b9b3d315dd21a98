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

package installer

import (
	"context"
	"fmt"
	"log/slog"

	sdbus "github.com/coreos/go-systemd/v22/dbus"

	"github.com/NVIDIA/nagcfg/pkg/defaults"
	cerrors "github.com/NVIDIA/nagcfg/pkg/errors"
)

// Reloader asks the service manager to pick up changed files.
type Reloader interface {
	// DaemonReload reloads unit definitions.
	DaemonReload(ctx context.Context) error
	// ReloadService reloads unit when it is active and reports whether it
	// did.
	ReloadService(ctx context.Context, unit string) (bool, error)
	// NeedsDaemonReload reports whether the unit file on disk is newer than
	// the definition systemd has loaded.
	NeedsDaemonReload(ctx context.Context, unit string) (bool, error)
}

// systemdConn is the subset of the systemd D-Bus API used here.
type systemdConn interface {
	ReloadContext(ctx context.Context) error
	ReloadUnitContext(ctx context.Context, name, mode string, ch chan<- string) (int, error)
	UnitProperty(ctx context.Context, unit, name string) (any, error)
	Close()
}

type dbusConn struct {
	*sdbus.Conn
}

func (c dbusConn) UnitProperty(ctx context.Context, unit, name string) (any, error) {
	prop, err := c.GetUnitPropertyContext(ctx, unit, name)
	if err != nil {
		return nil, err
	}
	return prop.Value.Value(), nil
}

// SystemdReloader talks to systemd over D-Bus. Each call opens its own
// connection.
type SystemdReloader struct {
	connect func(ctx context.Context) (systemdConn, error)
}

// NewSystemdReloader returns a Reloader connected to the system bus.
func NewSystemdReloader() *SystemdReloader {
	return &SystemdReloader{
		connect: func(ctx context.Context) (systemdConn, error) {
			conn, err := sdbus.NewSystemdConnectionContext(ctx)
			if err != nil {
				return nil, err
			}
			return dbusConn{conn}, nil
		},
	}
}

func (r *SystemdReloader) open(ctx context.Context) (systemdConn, error) {
	conn, err := r.connect(ctx)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to connect to systemd", err)
	}
	return conn, nil
}

// DaemonReload implements Reloader.
func (r *SystemdReloader) DaemonReload(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.SystemdTimeout)
	defer cancel()

	conn, err := r.open(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	slog.Info("reloading systemd manager configuration")
	if err := conn.ReloadContext(ctx); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInternal, "systemd daemon-reload failed", err)
	}
	return nil
}

// ReloadService implements Reloader. Inactive units are left alone so that
// a first install does not start the daemon behind the operator's back.
func (r *SystemdReloader) ReloadService(ctx context.Context, unit string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.SystemdTimeout)
	defer cancel()

	conn, err := r.open(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	v, err := conn.UnitProperty(ctx, unit, "ActiveState")
	if err != nil {
		return false, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to get active state of "+unit, err)
	}
	state, _ := v.(string)
	if state != "active" {
		slog.Debug("unit not active, skipping reload", "unit", unit, "state", state)
		return false, nil
	}

	result := make(chan string, 1)
	if _, err := conn.ReloadUnitContext(ctx, unit, "replace", result); err != nil {
		return false, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to reload "+unit, err)
	}

	select {
	case status := <-result:
		if status != "done" {
			return false, cerrors.NewWithContext(cerrors.ErrCodeInternal,
				fmt.Sprintf("reload of %s finished with %q", unit, status),
				map[string]any{"unit": unit, "result": status})
		}
	case <-ctx.Done():
		return false, ctx.Err()
	}

	slog.Info("service reloaded", "unit", unit)
	return true, nil
}

// NeedsDaemonReload implements Reloader using the unit's NeedDaemonReload
// property.
func (r *SystemdReloader) NeedsDaemonReload(ctx context.Context, unit string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.SystemdTimeout)
	defer cancel()

	conn, err := r.open(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	v, err := conn.UnitProperty(ctx, unit, "NeedDaemonReload")
	if err != nil {
		return false, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to get NeedDaemonReload of "+unit, err)
	}
	need, _ := v.(bool)
	return need, nil
}

var _ Reloader = (*SystemdReloader)(nil)
