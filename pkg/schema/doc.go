// Package schema defines the option catalog nagcfg resolves and renders.
//
// A Catalog is an ordered, name-unique list of OptionSpec values. Each spec
// declares the option kind (int, float, string, list or enum), an optional
// default and whether a value is required. OSDefaults overlays per-family
// values on top of catalog defaults.
//
// The built-in Nagios catalog is static data:
//
//	catalog := schema.Nagios()
//	overlays := schema.NagiosOSDefaults()
//
// Families are matched case-insensitively, so "RedHat" and "redhat" select the
// same overlay. Options whose values differ per distribution are required and
// carry no catalog default; the RedHat and Debian overlays supply them, any
// other family must set them explicitly.
package schema
