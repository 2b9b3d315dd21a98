package schema

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadOSDefaults decodes an overlay document of the form
//
//	RedHat:
//	  lock_file: /run/nagios/nagios.pid
//	Suse:
//	  command_file: /var/spool/nagios/nagios.cmd
//
// and validates it against catalog.
func LoadOSDefaults(r io.Reader, catalog *Catalog) (OSDefaults, error) {
	var raw map[string]map[string]any
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return OSDefaults{}, nil
		}
		return nil, fmt.Errorf("failed to decode os defaults: %w", err)
	}

	d := OSDefaults(raw)
	if d == nil {
		d = OSDefaults{}
	}
	if err := d.Validate(catalog); err != nil {
		return nil, err
	}
	return d, nil
}
