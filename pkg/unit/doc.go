// Package unit renders and parses the systemd service unit for the Nagios
// daemon.
//
// Render is a pure template substitution over a handful of paths. The output
// is installed verbatim and compared byte for byte by deploying systems, so
// the section layout, key order and the comment line are fixed:
//
//	text, err := unit.Render(unit.Spec{
//	    Binary:     "/usr/sbin/nagios",
//	    ConfigFile: "/etc/nagios/nagios.cfg",
//	    PIDFile:    "/var/run/nagios/nagios.pid",
//	    CmdFile:    "/var/spool/nagios/cmd/nagios.cmd",
//	})
//
// Parse reads unit text back into options so callers can inspect single keys.
package unit
