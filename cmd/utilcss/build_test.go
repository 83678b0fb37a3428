package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/utilcss/pkg/util"
)

func quietLogger() *util.LoggerConfig {
	cfg := util.DefaultLoggerConfig()
	cfg.Output = io.Discard
	return &cfg
}

func TestExecuteBuild(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"),
		[]byte(`<div class="px-4 md:flex w-[37px] animate-spin foo-bar"></div>`), 0644))

	output := filepath.Join(t.TempDir(), "css", "site.css")
	opts := buildOptions{root: root, output: output}
	logger := util.NewLogger(*quietLogger())

	count, outPath, err := executeBuild(opts, nil, logger)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.Equal(t, output, outPath)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	css := string(data)

	lines := strings.Split(strings.TrimRight(css, "\n"), "\n")
	require.Len(t, lines, 5)

	// Class rules come in sorted-token order, side effects last.
	assert.True(t, strings.HasPrefix(lines[0], ".animate-spin "))
	assert.True(t, strings.HasPrefix(lines[1], "@media (min-width: 768px) {"))
	assert.True(t, strings.HasPrefix(lines[2], ".px-4 "))
	assert.True(t, strings.HasPrefix(lines[3], `.w-\[37px\] `))
	assert.True(t, strings.HasPrefix(lines[4], "@keyframes utilcss-spin"))

	// Unknown classes leave no trace.
	assert.NotContains(t, css, "foo-bar")
}

func TestExecuteBuildUsesProjectConfig(t *testing.T) {
	base := t.TempDir()
	siteDir := filepath.Join(base, "site")
	require.NoError(t, os.MkdirAll(siteDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, "page.html"),
		[]byte(`<p class="italic"></p>`), 0644))

	output := filepath.Join(base, "out.css")
	cfg := &ProjectConfig{Root: siteDir, Output: output}
	logger := util.NewLogger(*quietLogger())

	count, outPath, err := executeBuild(buildOptions{}, cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, output, outPath)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, ".italic {font-style: italic}\n", string(data))
}

func TestExecuteBuildFlagOverridesConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.html"),
		[]byte(`<p class="flex"></p>`), 0644))

	flagOutput := filepath.Join(t.TempDir(), "flag.css")
	cfg := &ProjectConfig{Output: filepath.Join(t.TempDir(), "config.css")}

	opts := buildOptions{root: root, output: flagOutput}
	logger := util.NewLogger(*quietLogger())

	_, outPath, err := executeBuild(opts, cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, flagOutput, outPath)
	_, err = os.Stat(flagOutput)
	require.NoError(t, err)
}

func TestExecuteBuildCustomTheme(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.html"),
		[]byte(`<p class="bg-brand"></p>`), 0644))

	themePath := filepath.Join(t.TempDir(), "theme.json")
	require.NoError(t, os.WriteFile(themePath, []byte(`{
		"name": "custom",
		"breakpoints": {"sm": "640px"},
		"pseudo_states": {"hover": ":hover"},
		"spacing": {"1": "0.25rem"},
		"palette": {"brand": {"base": "#336699"}}
	}`), 0644))

	output := filepath.Join(t.TempDir(), "out.css")
	opts := buildOptions{root: root, output: output, themePath: themePath}
	logger := util.NewLogger(*quietLogger())

	count, _, err := executeBuild(opts, nil, logger)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, ".bg-brand {background-color: #336699}\n", string(data))
}

func TestParseBuildFlags(t *testing.T) {
	opts, err := parseBuildFlags([]string{"--root", "site", "--output", "x.css", "--verbose"})
	require.NoError(t, err)
	assert.Equal(t, "site", opts.root)
	assert.Equal(t, "x.css", opts.output)
	assert.True(t, opts.verbose)
}
