package entity

import "strings"

// ConfigKeyInfo documents one key of the sash config file, as listed by
// `sash config keys`.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "drag_drop.edge_ratio".
	Key     string `json:"key"`
	Type    string `json:"type"`
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists the accepted strings of an enum key, e.g. the log levels.
	Values []string `json:"values,omitempty"`
	// Range bounds a numeric key, e.g. "0-0.5".
	Range string `json:"range,omitempty"`

	// Section is the TOML table the key lives in, title-cased.
	Section string `json:"section"`
}

// Constraint renders the accepted values or range, or "" when the key
// takes any value of its type.
func (k ConfigKeyInfo) Constraint() string {
	switch {
	case len(k.Values) > 0:
		return "Values: " + strings.Join(k.Values, ", ")
	case k.Range != "":
		return "Range: " + k.Range
	}
	return ""
}
