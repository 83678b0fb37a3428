package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	th, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, th.Name)
	assert.Equal(t, "640px", th.Breakpoints["sm"])
	assert.Equal(t, "1536px", th.Breakpoints["2xl"])
	assert.Equal(t, ":hover", th.PseudoStates["hover"])
	assert.Equal(t, "1rem", th.Spacing["4"])
	assert.Equal(t, "#3b82f6", th.Palette["blue"]["500"])
}

func TestDefaultFontSizes(t *testing.T) {
	th, err := Default()
	require.NoError(t, err)

	xl, ok := th.FontSizes["text-xl"]
	require.True(t, ok)
	assert.Equal(t, "1.25rem", xl.Size)
	assert.Equal(t, "1.75rem", xl.LineHeight)

	huge, ok := th.FontSizes["text-5xl"]
	require.True(t, ok)
	assert.Equal(t, "3rem", huge.Size)
	assert.Equal(t, "1", huge.LineHeight)
}

func TestLoadFromBytes(t *testing.T) {
	data := []byte(`{
		"name": "custom",
		"breakpoints": {"sm": "640px"},
		"pseudo_states": {"hover": ":hover"},
		"spacing": {"1": "0.25rem"},
		"palette": {"brand": {"base": "#336699"}}
	}`)

	th, err := LoadFromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, "custom", th.Name)
	assert.Equal(t, "#336699", th.Palette["brand"]["base"])
}

func TestLoadFromBytesInvalidJSON(t *testing.T) {
	_, err := LoadFromBytes([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse theme JSON")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Theme)
		wantErr string
	}{
		{
			name:    "missing name",
			mutate:  func(th *Theme) { th.Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "empty breakpoints",
			mutate:  func(th *Theme) { th.Breakpoints = nil },
			wantErr: "breakpoints",
		},
		{
			name:    "empty spacing",
			mutate:  func(th *Theme) { th.Spacing = nil },
			wantErr: "spacing",
		},
		{
			name:    "font size without size",
			mutate:  func(th *Theme) { th.FontSizes = map[string]FontSize{"text-xl": {}} },
			wantErr: "size is required",
		},
		{
			name:    "empty palette family",
			mutate:  func(th *Theme) { th.Palette = map[string]map[string]string{"ghost": {}} },
			wantErr: "no entries",
		},
		{
			name:    "empty shade value",
			mutate:  func(th *Theme) { th.Palette = map[string]map[string]string{"blue": {"500": ""}} },
			wantErr: "empty value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := Default()
			require.NoError(t, err)

			tt.mutate(th)
			errs := th.Validate()
			require.NotEmpty(t, errs)

			found := false
			for _, e := range errs {
				if strings.Contains(e.Error(), tt.wantErr) {
					found = true
					break
				}
			}
			assert.True(t, found, "expected an error containing %q, got %v", tt.wantErr, errs)
		})
	}
}

func TestValidateDefaultIsClean(t *testing.T) {
	th, err := Default()
	require.NoError(t, err)
	assert.Empty(t, th.Validate())
}
