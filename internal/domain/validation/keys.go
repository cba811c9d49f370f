package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var keyModifiers = map[string]bool{"ctrl": true, "alt": true, "shift": true}

// ValidateKeyBinding checks one key name as written in the config, such as
// "q", "ctrl+s", "tab" or "|". Modifiers are joined with "+"; a lone "+"
// is a key of its own.
func ValidateKeyBinding(value string) []string {
	if value == "" {
		return []string{"key binding cannot be empty"}
	}
	if strings.TrimSpace(value) != value {
		return []string{fmt.Sprintf("key binding %q has surrounding spaces", value)}
	}
	if value == "+" || utf8.RuneCountInString(value) == 1 {
		return nil
	}

	var prefix, key string
	if strings.HasSuffix(value, "++") {
		prefix, key = value[:len(value)-2], "+"
	} else {
		i := strings.LastIndex(value, "+")
		if i < 0 {
			// Named key such as "tab" or "enter".
			return nil
		}
		prefix, key = value[:i], value[i+1:]
	}

	var errs []string
	for _, mod := range strings.Split(prefix, "+") {
		if !keyModifiers[mod] {
			errs = append(errs, fmt.Sprintf("key binding %q: unknown modifier %q", value, mod))
		}
	}
	if key == "" {
		errs = append(errs, fmt.Sprintf("key binding %q has no key after the modifiers", value))
	}
	return errs
}
