package scanner

// ScanConfig controls file discovery and scan fan-out.
type ScanConfig struct {
	// Include/Exclude are doublestar globs matched against slash-separated
	// paths relative to the scan root.
	Include []string
	Exclude []string

	// Workers overrides the scan concurrency when positive.
	Workers int
}

// DefaultScanConfig covers static markup plus the component sources that
// carry className attributes.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		Include: []string{
			"**/*.html",
			"**/*.htm",
			"**/*.jsx",
			"**/*.tsx",
			"**/*.js",
			"**/*.ts",
		},
		Exclude: []string{
			"**/node_modules/**",
			"**/.git/**",
			"**/dist/**",
			"**/build/**",
			"**/.next/**",
			"**/out/**",
			"**/coverage/**",
			"**/.utilcss/**",
		},
	}
}

// ScanStats summarizes one scan.
type ScanStats struct {
	FilesScanned int
	FilesFailed  int
	TokensFound  int
}
