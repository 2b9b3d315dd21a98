package resolver

import (
	"github.com/NVIDIA/nagcfg/pkg/errors"
)

func missing(name string) error {
	return errors.MissingRequiredOption(name)
}

// IsMissingRequiredOption reports whether err is a missing required option
// failure and returns the option name.
func IsMissingRequiredOption(err error) (string, bool) {
	return optionOf(err, errors.ErrCodeMissingRequiredOption)
}

// IsTypeMismatch reports whether err is a type mismatch failure and returns
// the option name.
func IsTypeMismatch(err error) (string, bool) {
	return optionOf(err, errors.ErrCodeTypeMismatch)
}

func optionOf(err error, code errors.ErrorCode) (string, bool) {
	if !errors.IsCode(err, code) {
		return "", false
	}
	v, _ := errors.ContextValue(err, errors.ContextOption)
	name, _ := v.(string)
	return name, true
}
