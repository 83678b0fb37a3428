package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	_ "embed"
)

//go:embed default_theme.json
var defaultThemeJSON []byte

// Validate checks the theme for internal consistency.
// Returns a slice of validation errors (empty slice if valid).
func (t *Theme) Validate() []error {
	var errs []error

	if t.Name == "" {
		errs = append(errs, fmt.Errorf("theme name is required"))
	}
	if len(t.Breakpoints) == 0 {
		errs = append(errs, fmt.Errorf("breakpoints table must not be empty"))
	}
	if len(t.PseudoStates) == 0 {
		errs = append(errs, fmt.Errorf("pseudo_states table must not be empty"))
	}
	if len(t.Spacing) == 0 {
		errs = append(errs, fmt.Errorf("spacing table must not be empty"))
	}

	for key, fs := range t.FontSizes {
		if fs.Size == "" {
			errs = append(errs, fmt.Errorf("font size %q: size is required", key))
		}
	}

	// Every palette family must resolve through at least one entry, or
	// color-suffix utilities referencing it silently yield no rule.
	for family, shades := range t.Palette {
		if len(shades) == 0 {
			errs = append(errs, fmt.Errorf("palette family %q has no entries", family))
			continue
		}
		for shade, value := range shades {
			if value == "" {
				errs = append(errs, fmt.Errorf("palette family %q shade %q has an empty value", family, shade))
			}
		}
	}

	return errs
}

// LoadFromFile loads a theme from a JSON file and validates it.
func LoadFromFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a theme from raw JSON bytes and validates it.
func LoadFromBytes(data []byte) (*Theme, error) {
	var t Theme
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}
	if errs := t.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("theme validation failed: %w", errors.Join(errs...))
	}
	return &t, nil
}

// Default returns the embedded default theme.
func Default() (*Theme, error) {
	return LoadFromBytes(defaultThemeJSON)
}
