package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleOptions() Options {
	return Options{
		{Value: "a", Label: "Alpha"},
		{Value: "b", Label: "Beta"},
	}
}

func TestOptions_LabelFor(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		value string
		want  string
	}{
		{name: "match", opts: sampleOptions(), value: "b", want: "Beta"},
		{name: "no match falls back", opts: sampleOptions(), value: "z", want: "Select an option"},
		{name: "empty value", opts: sampleOptions(), value: "", want: "Select an option"},
		{name: "empty options", opts: nil, value: "a", want: "Select an option"},
		{
			name: "first match wins",
			opts: Options{
				{Value: "x", Label: "First"},
				{Value: "x", Label: "Second"},
			},
			value: "x",
			want:  "First",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.LabelFor(tt.value, "Select an option"))
		})
	}
}

func TestOptions_Find(t *testing.T) {
	opts := sampleOptions()

	opt, ok := opts.Find("a")
	assert.True(t, ok)
	assert.Equal(t, "Alpha", opt.Label)

	_, ok = opts.Find("missing")
	assert.False(t, ok)

	assert.Equal(t, 1, opts.IndexOf("b"))
	assert.Equal(t, -1, opts.IndexOf("c"))
}

func TestOptions_DuplicateValues(t *testing.T) {
	opts := Options{
		{Value: "a", Label: "A1"},
		{Value: "b", Label: "B"},
		{Value: "a", Label: "A2"},
		{Value: "a", Label: "A3"},
		{Value: "c", Label: "C"},
		{Value: "c", Label: "C2"},
	}

	assert.Equal(t, []string{"a", "c"}, opts.DuplicateValues())
	assert.Empty(t, sampleOptions().DuplicateValues())
}
