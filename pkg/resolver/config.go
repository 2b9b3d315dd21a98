package resolver

import (
	"github.com/NVIDIA/nagcfg/pkg/schema"
)

// Config is a fully resolved and validated option set. It is immutable:
// accessors return copies of list values.
type Config struct {
	catalog  *schema.Catalog
	osFamily string
	values   map[string]any
	sources  map[string]Source
	unknown  []string
}

// Catalog returns the catalog the config was resolved against.
func (c *Config) Catalog() *schema.Catalog {
	return c.catalog
}

// OSFamily returns the OS family used for overlay selection.
func (c *Config) OSFamily() string {
	return c.osFamily
}

// Len returns the number of options with a value.
func (c *Config) Len() int {
	return len(c.values)
}

// Get returns the normalized value of name: int64, float64, string or
// []string.
func (c *Config) Get(name string) (any, bool) {
	v, ok := c.values[name]
	if !ok {
		return nil, false
	}
	if l, isList := v.([]string); isList {
		return append([]string(nil), l...), true
	}
	return v, true
}

// String returns the value of a string or enum option.
func (c *Config) String(name string) (string, bool) {
	s, ok := c.values[name].(string)
	return s, ok
}

// Int returns the value of an int option.
func (c *Config) Int(name string) (int64, bool) {
	i, ok := c.values[name].(int64)
	return i, ok
}

// Float returns the value of a float option.
func (c *Config) Float(name string) (float64, bool) {
	f, ok := c.values[name].(float64)
	return f, ok
}

// StringList returns a copy of the value of a list option.
func (c *Config) StringList(name string) ([]string, bool) {
	l, ok := c.values[name].([]string)
	if !ok {
		return nil, false
	}
	return append([]string(nil), l...), true
}

// Source reports where the value of name came from.
func (c *Config) Source(name string) (Source, bool) {
	s, ok := c.sources[name]
	return s, ok
}

// Unknown returns the user parameter names not present in the catalog,
// sorted alphabetically.
func (c *Config) Unknown() []string {
	return append([]string(nil), c.unknown...)
}

// Values returns a copy of all resolved values keyed by option name.
func (c *Config) Values() map[string]any {
	out := make(map[string]any, len(c.values))
	for name := range c.values {
		out[name], _ = c.Get(name)
	}
	return out
}
