// Package mapping turns the raw options section of an output into typed
// options.
//
// The legal keys of every output kind live in one declarative table,
// [Rules]. Each rule names the key, the kinds accepting it, whether it is
// mandatory, an optional transform for structured values, and the setter
// storing the result. [Apply] walks the table once per output.
package mapping

import (
	"github.com/thoreinstein/kiplot/internal/errors"
	"github.com/thoreinstein/kiplot/internal/options"
)

// SectionOptions is the ConfigError section reported for option failures.
const SectionOptions = "options"

// Apply evaluates every rule for kind against section and stores the values
// in target. Failures are returned as *errors.ConfigError naming outputName
// and kind; the first failure stops evaluation.
func Apply(kind options.Kind, section Section, target options.Options, outputName string) error {
	fail := func(err error) error {
		return &errors.ConfigError{
			Section: SectionOptions,
			Output:  outputName,
			Kind:    string(kind),
			Err:     err,
		}
	}

	if target == nil || target.Kind() != kind {
		return fail(errors.Newf("options do not match output type %s", kind))
	}

	for _, rule := range Rules {
		if !rule.AppliesTo(kind) {
			continue
		}

		raw, ok := section.Get(rule.Key)
		if !ok {
			if rule.Mandatory(section) {
				return fail(&errors.MissingError{Key: rule.Key, Context: "in options"})
			}
			continue
		}

		v := raw
		if rule.Transform != nil {
			var err error
			if v, err = rule.Transform(raw); err != nil {
				return fail(withField(err, rule.Key))
			}
		}

		if err := rule.Set(target, v); err != nil {
			return fail(withField(err, rule.Key))
		}
	}
	return nil
}

// withField names key in validation errors raised by the plain converters.
func withField(err error, key string) error {
	var verr *options.ValidationError
	if errors.As(err, &verr) && verr.Field == "" {
		verr.Field = key
	}
	return err
}

// UnknownKeys returns the keys of section no rule for kind accepts, sorted.
func UnknownKeys(kind options.Kind, section Section) []string {
	var unknown []string
	for _, key := range section.Keys() {
		known := false
		for _, rule := range Rules {
			if rule.Key == key && rule.AppliesTo(kind) {
				known = true
				break
			}
		}
		if !known {
			unknown = append(unknown, key)
		}
	}
	return unknown
}
