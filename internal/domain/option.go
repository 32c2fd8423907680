// Package domain contains the core selection types shared by the dropdown
// component, its configuration and the demo form.
package domain

// Option is a single selectable entry. Value is the lookup key, Label is what
// the user sees.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options is an ordered option set. Order decides both render order and
// which entry wins when values collide.
type Options []Option

// Find returns the first option whose value equals value
func (o Options) Find(value string) (Option, bool) {
	if i := o.IndexOf(value); i >= 0 {
		return o[i], true
	}
	return Option{}, false
}

// IndexOf returns the index of the first option with the given value, or -1
func (o Options) IndexOf(value string) int {
	for i, opt := range o {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// LabelFor resolves the text a trigger should show for value.
// An empty or unmatched value falls back to placeholder.
func (o Options) LabelFor(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	if opt, ok := o.Find(value); ok {
		return opt.Label
	}
	return placeholder
}

// DuplicateValues lists values that appear more than once, in first-seen order
func (o Options) DuplicateValues() []string {
	seen := make(map[string]int, len(o))
	var dups []string
	for _, opt := range o {
		seen[opt.Value]++
		if seen[opt.Value] == 2 {
			dups = append(dups, opt.Value)
		}
	}
	return dups
}
