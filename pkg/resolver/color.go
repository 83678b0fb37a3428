package resolver

import (
	"strconv"
	"strings"
)

// resolveColor resolves a color reference from a utility suffix into a CSS
// color value. Returns "" when the reference names an unknown family or
// shade, which callers translate into "emit nothing".
//
// Accepted forms, in order:
//   - bracket literal passthrough: "[#336699]" -> "#336699"
//   - bare keywords: "transparent", "current"
//   - single-entry family: "card-dark" -> palette["card-dark"]["base"]
//   - family-shade pair: "blue-500" -> palette["blue"]["500"]
//
// An optional "/<0-100>" suffix requests an alpha-blended rgba() rendering of
// the hex value. An unparseable alpha suffix is ignored (opaque base color),
// as is an alpha on a non-hex base.
func (r *Resolver) resolveColor(token string) string {
	if strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]") {
		return token[1 : len(token)-1]
	}
	if token == "transparent" || token == "current" {
		return token
	}

	colorPart, alphaPart, _ := strings.Cut(token, "/")
	alpha := -1.0
	if alphaPart != "" {
		if v, err := strconv.ParseFloat(alphaPart, 64); err == nil {
			alpha = v / 100
		}
	}

	var base string
	if shades, ok := r.theme.Palette[colorPart]; ok && shades["base"] != "" {
		base = shades["base"]
	} else {
		name, shade, found := strings.Cut(colorPart, "-")
		if !found {
			shade = "base"
		}
		shades, ok := r.theme.Palette[name]
		if !ok {
			return ""
		}
		base = shades[shade]
		if base == "" {
			base = shades["base"]
		}
	}
	if base == "" {
		return ""
	}

	if alpha >= 0 {
		return withAlpha(base, alpha)
	}
	return base
}

// withAlpha renders a 6-digit (or expanded 3-digit) hex color as an rgba()
// value with the given alpha. Non-hex inputs are returned unchanged.
func withAlpha(hex string, alpha float64) string {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return hex
	}

	red, err1 := strconv.ParseUint(h[0:2], 16, 8)
	green, err2 := strconv.ParseUint(h[2:4], 16, 8)
	blue, err3 := strconv.ParseUint(h[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return hex
	}

	return "rgba(" + strconv.FormatUint(red, 10) + ", " +
		strconv.FormatUint(green, 10) + ", " +
		strconv.FormatUint(blue, 10) + ", " +
		formatFraction(alpha) + ")"
}

// formatFraction renders an alpha or scale fraction without trailing zeros.
func formatFraction(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
