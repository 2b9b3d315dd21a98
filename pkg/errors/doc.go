// Package errors provides structured error types for better observability
// and programmatic error handling across nagcfg.
//
// Option validation produces exactly two codes, ErrCodeMissingRequiredOption
// and ErrCodeTypeMismatch, both carrying the offending option name under the
// "option" context key:
//
//	cfg, err := resolver.Resolve(params, "RedHat", catalog, overlays)
//	if errors.IsCode(err, errors.ErrCodeMissingRequiredOption) {
//	    name, _ := errors.ContextValue(err, errors.ContextOption)
//	    slog.Error("missing option", "option", name)
//	}
package errors
