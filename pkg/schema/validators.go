package schema

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// buildValidator composes the field's declared rules into a single validator.
// Rules run in declaration order (required, minLength, maxLength, pattern)
// and the first failing rule supplies the message. A field with no rules
// gets no validator at all, so it behaves as an always-valid field.
func (f *FieldDef) buildValidator() func(string) string {
	var rules []func(string) string

	if f.Required {
		name := f.Name
		rules = append(rules, func(value string) string {
			if value == "" {
				return fmt.Sprintf("%s is required", name)
			}
			return ""
		})
	}
	if f.MinLength > 0 {
		name, min := f.Name, f.MinLength
		rules = append(rules, func(value string) string {
			if utf8.RuneCountInString(value) < min {
				return fmt.Sprintf("%s must be at least %d characters", name, min)
			}
			return ""
		})
	}
	if f.MaxLength > 0 {
		name, max := f.Name, f.MaxLength
		rules = append(rules, func(value string) string {
			if utf8.RuneCountInString(value) > max {
				return fmt.Sprintf("%s must be at most %d characters", name, max)
			}
			return ""
		})
	}
	if f.Pattern != "" {
		// Already validated by validate(); compile once here.
		re := regexp.MustCompile(f.Pattern)
		name := f.Name
		rules = append(rules, func(value string) string {
			if !re.MatchString(value) {
				return fmt.Sprintf("%s has an invalid format", name)
			}
			return ""
		})
	}

	if len(rules) == 0 {
		return nil
	}
	return func(value string) string {
		for _, rule := range rules {
			if msg := rule(value); msg != "" {
				return msg
			}
		}
		return ""
	}
}
