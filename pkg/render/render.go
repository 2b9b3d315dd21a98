// Package render serializes a resolved configuration into the nagios.cfg
// key=value format.
//
// Each option with a value produces one line, in catalog order:
//
//	accept_passive_host_checks=1
//	cfg_dir=/etc/nagios/conf.d
//	high_host_flap_threshold=20.0
//
// Integers render in decimal, floats in the shortest round-trip form with at
// least one fractional digit, lists joined by commas and strings verbatim.
// Output is byte-stable for a given configuration.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NVIDIA/nagcfg/pkg/resolver"
)

// Render returns the configuration text for cfg.
func Render(cfg *resolver.Config) string {
	var b strings.Builder
	for _, name := range cfg.Catalog().Names() {
		v, ok := cfg.Get(name)
		if !ok {
			continue
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(FormatValue(v))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatValue renders a single normalized value.
func FormatValue(v any) string {
	switch x := v.(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return FormatFloat(x)
	case string:
		return x
	case []string:
		return strings.Join(x, ",")
	default:
		return fmt.Sprint(x)
	}
}

// FormatFloat renders f in decimal notation keeping at least one fractional
// digit, so 20 renders as "20.0" and 0.25 as "0.25".
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
