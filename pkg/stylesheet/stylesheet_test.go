package stylesheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/utilcss/pkg/resolver"
	"github.com/gnana997/utilcss/pkg/theme"
)

func TestEscapeClass(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"px-4", "px-4"},
		{"hover:bg-blue-500", `hover\:bg-blue-500`},
		{"bg-blue-500/50", `bg-blue-500\/50`},
		{"w-[37px]", `w-\[37px\]`},
		{"py-0.5", `py-0\.5`},
		{"left-[10%]", `left-\[10\%\]`},
		{"bg-[#336699]", `bg-\[\#336699\]`},
		{"grid-cols-[200px,1fr]", `grid-cols-\[200px\,1fr\]`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeClass(tt.in), "escape %q", tt.in)
	}
}

func testPipeline(t *testing.T, tokens ...string) (string, int) {
	t.Helper()
	th, err := theme.Default()
	require.NoError(t, err)
	r, err := resolver.New(th, nil)
	require.NoError(t, err)

	resolutions := make([]resolver.Resolution, len(tokens))
	for i, token := range tokens {
		resolutions[i] = r.Resolve(token)
	}
	return Assemble(th, resolutions)
}

func TestAssembleSimpleRule(t *testing.T) {
	css, count := testPipeline(t, "px-4")
	assert.Equal(t, 1, count)
	assert.Equal(t, ".px-4 {padding-left: 1rem; padding-right: 1rem}\n", css)
}

func TestAssembleArbitraryValue(t *testing.T) {
	css, _ := testPipeline(t, "w-[37px]")
	assert.Equal(t, `.w-\[37px\] {width: 37px}`+"\n", css)
}

func TestAssemblePseudoVariant(t *testing.T) {
	css, _ := testPipeline(t, "hover:bg-blue-500")
	assert.Equal(t, `.hover\:bg-blue-500:hover {background-color: #3b82f6}`+"\n", css)
}

func TestAssembleBreakpointVariant(t *testing.T) {
	css, _ := testPipeline(t, "md:flex")
	assert.Equal(t, `@media (min-width: 768px) {.md\:flex {display: flex}}`+"\n", css)
}

func TestAssembleStructuralSuffix(t *testing.T) {
	css, _ := testPipeline(t, "space-x-4")
	assert.Equal(t, `.space-x-4 > :not([hidden]) ~ :not([hidden]) {margin-left: 1rem}`+"\n", css)
}

func TestAssembleAlphaColor(t *testing.T) {
	css, _ := testPipeline(t, "bg-blue-500/50")
	assert.Equal(t, `.bg-blue-500\/50 {background-color: rgba(59, 130, 246, 0.5)}`+"\n", css)
}

func TestAssemblePreservesInputOrder(t *testing.T) {
	css, count := testPipeline(t, "flex", "items-center", "px-4")
	assert.Equal(t, 3, count)

	lines := strings.Split(strings.TrimRight(css, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], ".flex "))
	assert.True(t, strings.HasPrefix(lines[1], ".items-center "))
	assert.True(t, strings.HasPrefix(lines[2], ".px-4 "))
}

func TestAssembleSkipsUnknownClasses(t *testing.T) {
	css, count := testPipeline(t, "foo-bar-baz", "flex")
	assert.Equal(t, 1, count)
	assert.NotContains(t, css, "foo-bar-baz")
}

// Two spin classes share one keyframes block, appended after the class rules.
func TestAssembleDeduplicatesSideEffects(t *testing.T) {
	css, count := testPipeline(t, "animate-spin", "hover:animate-spin")
	assert.Equal(t, 2, count)

	assert.Equal(t, 1, strings.Count(css, "@keyframes utilcss-spin"))
	lines := strings.Split(strings.TrimRight(css, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[2], "@keyframes utilcss-spin"))
}

func TestAssembleEmptyInput(t *testing.T) {
	css, count := testPipeline(t)
	assert.Equal(t, 0, count)
	assert.Empty(t, css)
}

func TestAssembleMultiRuleUtility(t *testing.T) {
	css, count := testPipeline(t, "self-start")
	assert.Equal(t, 2, count)
	assert.Equal(t, ".self-start {align-self: flex-start}\n.self-start {flex-shrink: 0}\n", css)
}
