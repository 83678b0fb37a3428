package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClass(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		token      string
		breakpoint string
		pseudo     string
		base       string
	}{
		{"px-4", "", "", "px-4"},
		{"md:px-4", "md", "", "px-4"},
		{"2xl:flex", "2xl", "", "flex"},
		{"hover:bg-blue-500", "", "hover", "bg-blue-500"},
		{"disabled:opacity-50", "", "disabled", "opacity-50"},
		// Unrecognized prefixes stay part of the base utility.
		{"group:px-4", "", "", "group:px-4"},
		// Only one variant prefix is recognized.
		{"hover:md:px-4", "", "hover", "md:px-4"},
		// Colons inside arbitrary values after an unknown prefix.
		{"w-[37px]", "", "", "w-[37px]"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			pc := r.ParseClass(tt.token)
			assert.Equal(t, tt.token, pc.Raw)
			assert.Equal(t, tt.breakpoint, pc.Breakpoint)
			assert.Equal(t, tt.pseudo, pc.Pseudo)
			assert.Equal(t, tt.base, pc.Base)
		})
	}
}
