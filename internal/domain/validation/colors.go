// Package validation holds value checks shared by the config and layout
// loaders.
package validation

import (
	"regexp"
	"strconv"
)

var hexColorRE = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether value is "#rgb" or "#rrggbb".
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// IsTerminalColor accepts a hex color or an ANSI palette index 0-255.
func IsTerminalColor(value string) bool {
	if IsHexColor(value) {
		return true
	}
	n, err := strconv.Atoi(value)
	if err != nil || strconv.Itoa(n) != value {
		return false
	}
	return n >= 0 && n <= 255
}
