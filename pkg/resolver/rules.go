package resolver

import (
	"regexp"
	"strconv"
	"strings"
)

// structuralSelector is the sibling-combinator suffix used by space-between
// and divide utilities, which style children rather than the element itself.
const structuralSelector = " > :not([hidden]) ~ :not([hidden])"

// spinKeyframes is the standalone fragment required by the spin animation
// utility. It is returned as a side effect and de-duplicated at assembly.
const spinKeyframes = "@keyframes utilcss-spin { from { transform: rotate(0deg); } to { transform: rotate(360deg); } }"

// arbitraryRe matches the "prefix-[raw-css-value]" arbitrary-value form.
var arbitraryRe = regexp.MustCompile(`^([a-z-]+)-\[([^\]]+)\]$`)

// rule is one entry of the ordered dispatch table. apply reports whether the
// rule claimed the base utility; a claimed utility terminates the chain even
// when it yields no specs (unresolvable reference within a known family).
type rule struct {
	name  string
	apply func(base string) (specs []RuleSpec, effects []string, ok bool)
}

// plain adapts a resolver function that never produces side effects.
func plain(name string, fn func(base string) ([]RuleSpec, bool)) rule {
	return rule{name: name, apply: func(base string) ([]RuleSpec, []string, bool) {
		specs, ok := fn(base)
		return specs, nil, ok
	}}
}

func decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

func single(property, value string) []RuleSpec {
	return []RuleSpec{{Declarations: []Declaration{decl(property, value)}}}
}

func specOf(decls ...Declaration) []RuleSpec {
	return []RuleSpec{{Declarations: decls}}
}

// buildRules returns the dispatch table in priority order. Order matters
// where naming patterns overlap: the font-size table must win over the
// generic text- color rule, border-opacity-NN over the border color suffix,
// and every exact table over its sibling prefix rule.
func (r *Resolver) buildRules() []rule {
	return []rule{
		plain("font-size", r.fontSizeRule),
		plain("font-weight", r.fontWeightRule),
		plain("text", r.textRule),
		plain("background", r.bgRule),
		plain("border", r.borderRule),
		plain("border-radius", r.radiusRule),
		plain("shadow", r.shadowRule),
		plain("ring", r.ringRule),
		plain("spacing", r.spacingRule),
		plain("space-between", r.spaceRule),
		plain("divide", r.divideRule),
		plain("gap", r.gapRule),
		plain("width", r.widthRule),
		plain("height", r.heightRule),
		plain("min-width", r.minWidthRule),
		plain("min-height", r.minHeightRule),
		plain("max-width", r.maxWidthRule),
		plain("max-height", r.maxHeightRule),
		plain("grid-cols", r.gridColsRule),
		plain("col-span", r.colSpanRule),
		plain("display", r.displayRule),
		plain("position", r.positionRule),
		plain("inset", r.insetRule),
		plain("offset", r.offsetRule),
		plain("negative-margin", r.negativeMarginRule),
		plain("translate", r.translateRule),
		plain("scale", r.scaleRule),
		plain("opacity", r.opacityRule),
		plain("leading", r.leadingRule),
		plain("tracking", r.trackingRule),
		plain("text-transform", r.textTransformRule),
		plain("justify", r.justifyRule),
		plain("items", r.itemsRule),
		plain("flex", r.flexRule),
		plain("self", r.selfRule),
		plain("overflow", r.overflowRule),
		plain("transition", r.transitionRule),
		plain("duration", r.durationRule),
		plain("ease", r.easeRule),
		plain("cursor", r.cursorRule),
		plain("decoration", r.decorationRule),
		plain("font-family", r.fontFamilyRule),
		plain("z-index", r.zIndexRule),
		plain("misc", r.miscRule),
		plain("placeholder", r.placeholderRule),
		plain("drop-shadow", r.dropShadowRule),
		{name: "animate", apply: r.animateRule},
		plain("form", r.formRule),
		plain("container", r.containerRule),
		plain("transform", r.transformRule),
		plain("arbitrary", r.arbitraryRule),
	}
}

func (r *Resolver) fontSizeRule(base string) ([]RuleSpec, bool) {
	fs, ok := r.theme.FontSizes[base]
	if !ok {
		return nil, false
	}
	decls := []Declaration{decl("font-size", fs.Size)}
	if fs.LineHeight != "" {
		decls = append(decls, decl("line-height", fs.LineHeight))
	}
	return specOf(decls...), true
}

func (r *Resolver) fontWeightRule(base string) ([]RuleSpec, bool) {
	if w, ok := r.theme.FontWeights[base]; ok {
		return single("font-weight", w), true
	}
	return nil, false
}

func (r *Resolver) textRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "text-")
	if !ok {
		return nil, false
	}
	switch rest {
	case "left", "center", "right":
		return single("text-align", rest), true
	}
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		return single("font-size", rest[1:len(rest)-1]), true
	}
	if color := r.resolveColor(rest); color != "" {
		return single("color", color), true
	}
	return nil, true
}

func (r *Resolver) bgRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "bg-")
	if !ok {
		return nil, false
	}
	switch rest {
	case "cover":
		return single("background-size", "cover"), true
	case "center":
		return single("background-position", "center"), true
	}
	if color := r.resolveColor(rest); color != "" {
		return single("background-color", color), true
	}
	return nil, true
}

// borderEdges maps edge utilities to their width property. The -4 variants
// share the lookup and override the width below.
var borderEdges = map[string]string{
	"border-b":   "border-bottom-width",
	"border-t":   "border-top-width",
	"border-b-4": "border-bottom-width",
	"border-t-4": "border-top-width",
	"border-l-4": "border-left-width",
}

func (r *Resolver) borderRule(base string) ([]RuleSpec, bool) {
	if base == "border" {
		return specOf(decl("border-width", "1px"), decl("border-style", "solid")), true
	}
	rest, ok := strings.CutPrefix(base, "border-")
	if !ok {
		return nil, false
	}
	switch base {
	case "border-2":
		return specOf(decl("border-width", "2px"), decl("border-style", "solid")), true
	case "border-4":
		return specOf(decl("border-width", "4px"), decl("border-style", "solid")), true
	case "border-none":
		return single("border", "none"), true
	}
	if prop, found := borderEdges[base]; found {
		width := "1px"
		if strings.HasSuffix(base, "-4") {
			width = "4px"
		}
		return specOf(decl(prop, width), decl("border-style", "solid")), true
	}
	// border-opacity-NN must win over the generic border color suffix.
	if opacity, found := strings.CutPrefix(base, "border-opacity-"); found {
		if v, err := strconv.Atoi(opacity); err == nil {
			return single("--tw-border-opacity", formatFraction(float64(v)/100)), true
		}
		return nil, true
	}
	if color := r.resolveColor(rest); color != "" {
		return single("border-color", color), true
	}
	return nil, true
}

func (r *Resolver) radiusRule(base string) ([]RuleSpec, bool) {
	if v, ok := r.theme.BorderRadius[base]; ok {
		return single("border-radius", v), true
	}
	if base == "rounded-t-xl" {
		return specOf(
			decl("border-top-left-radius", "0.75rem"),
			decl("border-top-right-radius", "0.75rem"),
		), true
	}
	return nil, false
}

func (r *Resolver) shadowRule(base string) ([]RuleSpec, bool) {
	if !strings.HasPrefix(base, "shadow") {
		return nil, false
	}
	if v, ok := r.theme.Shadows[base]; ok {
		return single("box-shadow", v), true
	}
	if m := arbitraryRe.FindStringSubmatch(base); m != nil && m[1] == "shadow" {
		return single("box-shadow", m[2]), true
	}
	return nil, true
}

func (r *Resolver) ringRule(base string) ([]RuleSpec, bool) {
	if !strings.HasPrefix(base, "ring") {
		return nil, false
	}
	switch base {
	case "ring-2":
		return single("box-shadow", "0 0 0 2px currentColor"), true
	case "ring-offset-2":
		return single("outline-offset", "2px"), true
	}
	rest, found := strings.CutPrefix(base, "ring-")
	if !found {
		return nil, true
	}
	if color := r.resolveColor(rest); color != "" {
		return single("box-shadow", "0 0 0 2px "+color), true
	}
	return nil, true
}

func (r *Resolver) spacingRule(base string) ([]RuleSpec, bool) {
	head, token, found := strings.Cut(base, "-")
	if !found {
		return nil, false
	}
	if _, known := axisProps[head]; !known {
		return nil, false
	}
	return r.spacingSpecs(head, token), true
}

func (r *Resolver) spaceRule(base string) ([]RuleSpec, bool) {
	if !strings.HasPrefix(base, "space-") {
		return nil, false
	}
	parts := strings.SplitN(base, "-", 3)
	if len(parts) < 3 {
		return nil, true
	}
	prop := "margin-left"
	if parts[1] == "y" {
		prop = "margin-top"
	}
	value := r.spacingValue(parts[2])
	if value == "" {
		return nil, true
	}
	return []RuleSpec{{
		SelectorSuffix: structuralSelector,
		Declarations:   []Declaration{decl(prop, value)},
	}}, true
}

func (r *Resolver) divideRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "divide-")
	if !ok {
		return nil, false
	}
	if rest == "y" {
		return []RuleSpec{{
			SelectorSuffix: structuralSelector,
			Declarations: []Declaration{
				decl("border-top-width", "1px"),
				decl("border-style", "solid"),
			},
		}}, true
	}
	if color := r.resolveColor(rest); color != "" {
		return []RuleSpec{{
			SelectorSuffix: structuralSelector,
			Declarations:   []Declaration{decl("border-color", color)},
		}}, true
	}
	return nil, true
}

func (r *Resolver) gapRule(base string) ([]RuleSpec, bool) {
	if !strings.HasPrefix(base, "gap") {
		return nil, false
	}
	prop := "gap"
	var token string
	switch {
	case strings.HasPrefix(base, "gap-x-"):
		prop, token = "column-gap", base[len("gap-x-"):]
	case strings.HasPrefix(base, "gap-y-"):
		prop, token = "row-gap", base[len("gap-y-"):]
	case strings.HasPrefix(base, "gap-"):
		token = base[len("gap-"):]
	default:
		return nil, true
	}
	if value := r.spacingValue(token); value != "" {
		return single(prop, value), true
	}
	return nil, true
}

func (r *Resolver) widthRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "w-")
	if !ok {
		return nil, false
	}
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		return single("width", rest[1:len(rest)-1]), true
	}
	if v := r.theme.Width[rest]; v != "" {
		return single("width", v), true
	}
	return nil, true
}

func (r *Resolver) heightRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "h-")
	if !ok {
		return nil, false
	}
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		return single("height", rest[1:len(rest)-1]), true
	}
	if v := r.theme.Height[rest]; v != "" {
		return single("height", v), true
	}
	return nil, true
}

func (r *Resolver) minWidthRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "min-w-")
	if !ok {
		return nil, false
	}
	switch {
	case rest == "full":
		return single("min-width", "100%"), true
	case rest == "0":
		return single("min-width", "0"), true
	case strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]"):
		return single("min-width", rest[1:len(rest)-1]), true
	}
	return nil, true
}

func (r *Resolver) minHeightRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "min-h-")
	if !ok {
		return nil, false
	}
	switch {
	case rest == "screen":
		return single("min-height", "100vh"), true
	case strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]"):
		return single("min-height", rest[1:len(rest)-1]), true
	}
	return nil, true
}

func (r *Resolver) maxWidthRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "max-w-")
	if !ok {
		return nil, false
	}
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		return single("max-width", rest[1:len(rest)-1]), true
	}
	if v := r.theme.MaxWidth[rest]; v != "" {
		return single("max-width", v), true
	}
	return nil, true
}

// maxHeightRule resolves against the spacing scale; the convention subset has
// no dedicated max-height table.
func (r *Resolver) maxHeightRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "max-h-")
	if !ok {
		return nil, false
	}
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		return single("max-height", rest[1:len(rest)-1]), true
	}
	if v := r.theme.Spacing[rest]; v != "" {
		return single("max-height", v), true
	}
	return nil, true
}

func (r *Resolver) gridColsRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "grid-cols-")
	if !ok {
		return nil, false
	}
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		return single("grid-template-columns", rest[1:len(rest)-1]), true
	}
	return single("grid-template-columns", "repeat("+rest+", minmax(0, 1fr))"), true
}

func (r *Resolver) colSpanRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "col-span-")
	if !ok {
		return nil, false
	}
	if rest == "full" {
		return single("grid-column", "1 / -1"), true
	}
	return single("grid-column", "span "+rest+" / span "+rest), true
}

var displayValues = map[string]string{
	"block":        "block",
	"inline-block": "inline-block",
	"inline":       "inline",
	"flex":         "flex",
	"inline-flex":  "inline-flex",
	"grid":         "grid",
	"hidden":       "none",
}

func (r *Resolver) displayRule(base string) ([]RuleSpec, bool) {
	if v, ok := displayValues[base]; ok {
		return single("display", v), true
	}
	return nil, false
}

func (r *Resolver) positionRule(base string) ([]RuleSpec, bool) {
	switch base {
	case "absolute", "relative", "fixed", "sticky":
		return single("position", base), true
	}
	return nil, false
}

func (r *Resolver) insetRule(base string) ([]RuleSpec, bool) {
	if base != "inset-0" {
		return nil, false
	}
	return specOf(
		decl("top", "0"),
		decl("right", "0"),
		decl("bottom", "0"),
		decl("left", "0"),
	), true
}

func (r *Resolver) offsetRule(base string) ([]RuleSpec, bool) {
	for _, prop := range []string{"top", "bottom", "left"} {
		rest, ok := strings.CutPrefix(base, prop+"-")
		if !ok {
			continue
		}
		var value string
		switch rest {
		case "0":
			value = "0"
		case "1/2":
			value = "50%"
		default:
			value = r.spacingValue(rest)
		}
		if value == "" {
			return nil, true
		}
		return single(prop, value), true
	}
	return nil, false
}

func (r *Resolver) negativeMarginRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "-mt-")
	if !ok {
		return nil, false
	}
	if v := r.spacingValue(rest); v != "" {
		return single("margin-top", "-"+v), true
	}
	return nil, true
}

func (r *Resolver) translateRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "-translate-y-")
	if !ok {
		return nil, false
	}
	if rest == "1/2" {
		return single("transform", "translateY(-50%)"), true
	}
	return nil, true
}

func (r *Resolver) scaleRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "scale-")
	if !ok {
		return nil, false
	}
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		return single("transform", "scale("+rest[1:len(rest)-1]+")"), true
	}
	if v, err := strconv.ParseFloat(rest, 64); err == nil {
		return single("transform", "scale("+formatFraction(v/100)+")"), true
	}
	return nil, true
}

func (r *Resolver) opacityRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "opacity-")
	if !ok {
		return nil, false
	}
	if v, err := strconv.Atoi(rest); err == nil {
		return single("opacity", formatFraction(float64(v)/100)), true
	}
	return nil, true
}

var leadingValues = map[string]string{
	"none":    "1",
	"tight":   "1.25",
	"relaxed": "1.625",
}

func (r *Resolver) leadingRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "leading-")
	if !ok {
		return nil, false
	}
	if v, found := leadingValues[rest]; found {
		return single("line-height", v), true
	}
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		return single("line-height", rest[1:len(rest)-1]), true
	}
	return nil, true
}

func (r *Resolver) trackingRule(base string) ([]RuleSpec, bool) {
	if !strings.HasPrefix(base, "tracking-") {
		return nil, false
	}
	if v, ok := r.theme.LetterSpacing[base]; ok {
		return single("letter-spacing", v), true
	}
	rest := base[len("tracking-"):]
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		return single("letter-spacing", rest[1:len(rest)-1]), true
	}
	return nil, true
}

func (r *Resolver) textTransformRule(base string) ([]RuleSpec, bool) {
	switch base {
	case "uppercase", "lowercase", "capitalize":
		return single("text-transform", base), true
	}
	return nil, false
}

var justifyValues = map[string]string{
	"center":  "center",
	"between": "space-between",
	"start":   "flex-start",
	"end":     "flex-end",
}

func (r *Resolver) justifyRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "justify-")
	if !ok {
		return nil, false
	}
	if v, found := justifyValues[rest]; found {
		return single("justify-content", v), true
	}
	return nil, true
}

var itemsValues = map[string]string{
	"center": "center",
	"start":  "flex-start",
	"end":    "flex-end",
}

func (r *Resolver) itemsRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "items-")
	if !ok {
		return nil, false
	}
	if v, found := itemsValues[rest]; found {
		return single("align-items", v), true
	}
	return nil, true
}

func (r *Resolver) flexRule(base string) ([]RuleSpec, bool) {
	switch base {
	case "flex-row":
		return single("flex-direction", "row"), true
	case "flex-col":
		return single("flex-direction", "column"), true
	case "flex-nowrap":
		return single("flex-wrap", "nowrap"), true
	case "flex-wrap":
		return single("flex-wrap", "wrap"), true
	case "flex-1":
		return single("flex", "1 1 0%"), true
	case "flex-grow":
		return single("flex-grow", "1"), true
	case "flex-shrink-0":
		return single("flex-shrink", "0"), true
	}
	return nil, false
}

func (r *Resolver) selfRule(base string) ([]RuleSpec, bool) {
	switch base {
	case "self-center":
		return single("align-self", "center"), true
	case "self-start":
		// Two rule lines: the alignment plus a shrink guard.
		return []RuleSpec{
			{Declarations: []Declaration{decl("align-self", "flex-start")}},
			{Declarations: []Declaration{decl("flex-shrink", "0")}},
		}, true
	}
	return nil, false
}

func (r *Resolver) overflowRule(base string) ([]RuleSpec, bool) {
	switch base {
	case "overflow-hidden":
		return single("overflow", "hidden"), true
	case "overflow-x-auto":
		return single("overflow-x", "auto"), true
	case "overflow-y-auto":
		return single("overflow-y", "auto"), true
	case "truncate":
		return specOf(
			decl("overflow", "hidden"),
			decl("text-overflow", "ellipsis"),
			decl("white-space", "nowrap"),
		), true
	case "whitespace-nowrap":
		return single("white-space", "nowrap"), true
	}
	return nil, false
}

func (r *Resolver) transitionRule(base string) ([]RuleSpec, bool) {
	if !strings.HasPrefix(base, "transition") {
		return nil, false
	}
	switch base {
	case "transition":
		return specOf(
			decl("transition-property", "all"),
			decl("transition-duration", "150ms"),
			decl("transition-timing-function", "cubic-bezier(0.4, 0, 0.2, 1)"),
		), true
	case "transition-all":
		return single("transition-property", "all"), true
	case "transition-colors":
		return single("transition-property", "color, background-color, border-color, text-decoration-color, fill, stroke"), true
	case "transition-transform":
		return single("transition-property", "transform"), true
	}
	return nil, true
}

func (r *Resolver) durationRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "duration-")
	if !ok {
		return nil, false
	}
	if _, err := strconv.Atoi(rest); err == nil {
		return single("transition-duration", rest+"ms"), true
	}
	return nil, true
}

func (r *Resolver) easeRule(base string) ([]RuleSpec, bool) {
	if base == "ease-in-out" {
		return single("transition-timing-function", "cubic-bezier(0.4, 0, 0.2, 1)"), true
	}
	return nil, false
}

func (r *Resolver) cursorRule(base string) ([]RuleSpec, bool) {
	switch base {
	case "cursor-pointer":
		return single("cursor", "pointer"), true
	case "cursor-not-allowed":
		return single("cursor", "not-allowed"), true
	}
	return nil, false
}

func (r *Resolver) decorationRule(base string) ([]RuleSpec, bool) {
	switch base {
	case "underline":
		return single("text-decoration", "underline"), true
	case "italic":
		return single("font-style", "italic"), true
	}
	return nil, false
}

func (r *Resolver) fontFamilyRule(base string) ([]RuleSpec, bool) {
	switch base {
	case "font-mono":
		return single("font-family", "'IBM Plex Mono', 'Courier New', monospace"), true
	case "font-title":
		return single("font-family", "'Bebas Neue', sans-serif"), true
	}
	return nil, false
}

func (r *Resolver) zIndexRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "z-")
	if !ok {
		return nil, false
	}
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		rest = rest[1 : len(rest)-1]
	}
	return single("z-index", rest), true
}

func (r *Resolver) miscRule(base string) ([]RuleSpec, bool) {
	switch base {
	case "backdrop-blur-sm":
		return single("backdrop-filter", "blur(4px)"), true
	case "appearance-none":
		return single("appearance", "none"), true
	case "outline-none":
		return single("outline", "none"), true
	case "select-all":
		return single("user-select", "all"), true
	case "object-cover":
		return single("object-fit", "cover"), true
	case "object-contain":
		return single("object-fit", "contain"), true
	}
	return nil, false
}

func (r *Resolver) placeholderRule(base string) ([]RuleSpec, bool) {
	rest, ok := strings.CutPrefix(base, "placeholder-")
	if !ok {
		return nil, false
	}
	if color := r.resolveColor(rest); color != "" {
		return []RuleSpec{{
			SelectorSuffix: "::placeholder",
			Declarations:   []Declaration{decl("color", color)},
		}}, true
	}
	return nil, true
}

func (r *Resolver) dropShadowRule(base string) ([]RuleSpec, bool) {
	if v, ok := r.theme.DropShadows[base]; ok {
		return single("filter", v), true
	}
	return nil, false
}

func (r *Resolver) animateRule(base string) ([]RuleSpec, []string, bool) {
	if base != "animate-spin" {
		return nil, nil, false
	}
	specs := single("animation", "utilcss-spin 1s linear infinite")
	return specs, []string{spinKeyframes}, true
}

func (r *Resolver) formRule(base string) ([]RuleSpec, bool) {
	switch base {
	case "form-checkbox":
		return specOf(
			decl("appearance", "none"),
			decl("width", "1rem"),
			decl("height", "1rem"),
			decl("border", "1px solid #d1d5db"),
			decl("border-radius", "0.25rem"),
		), true
	case "form-radio":
		return specOf(
			decl("appearance", "none"),
			decl("width", "1rem"),
			decl("height", "1rem"),
			decl("border", "1px solid #d1d5db"),
			decl("border-radius", "9999px"),
		), true
	}
	return nil, false
}

func (r *Resolver) containerRule(base string) ([]RuleSpec, bool) {
	if base != "container" {
		return nil, false
	}
	return specOf(
		decl("width", "100%"),
		decl("max-width", "1200px"),
		decl("margin-left", "auto"),
		decl("margin-right", "auto"),
		decl("padding-left", "1rem"),
		decl("padding-right", "1rem"),
	), true
}

func (r *Resolver) transformRule(base string) ([]RuleSpec, bool) {
	if base != "transform" {
		return nil, false
	}
	return single("transform", "translateZ(0)"), true
}

// arbitraryProps maps prefixes the generic arbitrary-value fallthrough
// understands to the property the prefix implies. Prefixes with dedicated
// rules never reach this table; it covers the remainder.
var arbitraryProps = map[string]string{
	"w":       "width",
	"h":       "height",
	"min-w":   "min-width",
	"min-h":   "min-height",
	"max-w":   "max-width",
	"max-h":   "max-height",
	"top":     "top",
	"right":   "right",
	"bottom":  "bottom",
	"left":    "left",
	"text":    "font-size",
	"leading": "line-height",
	"gap":     "gap",
	"z":       "z-index",
}

func (r *Resolver) arbitraryRule(base string) ([]RuleSpec, bool) {
	m := arbitraryRe.FindStringSubmatch(base)
	if m == nil {
		return nil, false
	}
	if prop, ok := arbitraryProps[m[1]]; ok {
		return single(prop, m[2]), true
	}
	return nil, true
}
