// Package theme defines the immutable design-token tables the class resolver
// consumes: spacing scale, color palette, typography, sizing maps, responsive
// breakpoints, and pseudo-state selectors. A theme is constructed once (from
// the embedded default or a JSON file) and never mutated afterwards.
package theme

// FontSize pairs a font-size value with its line-height. An empty LineHeight
// means the table entry has no paired line-height and the utility emits
// font-size alone.
type FontSize struct {
	Size       string `json:"size"`
	LineHeight string `json:"line_height,omitempty"`
}

// Theme holds the full set of design-token tables.
//
// Palette is a two-level mapping: color family name -> shade key -> hex color.
// Families may instead carry a single "base" entry (e.g. "white", "black",
// brand colors). Every family must resolve through at least one entry; this
// is enforced by Validate.
type Theme struct {
	Name          string                       `json:"name"`
	Version       string                       `json:"version"`
	Breakpoints   map[string]string            `json:"breakpoints"`
	PseudoStates  map[string]string            `json:"pseudo_states"`
	Spacing       map[string]string            `json:"spacing"`
	FontSizes     map[string]FontSize          `json:"font_sizes"`
	FontWeights   map[string]string            `json:"font_weights"`
	BorderRadius  map[string]string            `json:"border_radius"`
	Shadows       map[string]string            `json:"shadows"`
	DropShadows   map[string]string            `json:"drop_shadows"`
	LetterSpacing map[string]string            `json:"letter_spacing"`
	Width         map[string]string            `json:"width"`
	Height        map[string]string            `json:"height"`
	MaxWidth      map[string]string            `json:"max_width"`
	Palette       map[string]map[string]string `json:"palette"`
}
