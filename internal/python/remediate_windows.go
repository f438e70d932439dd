//go:build windows

package python

// defaultRemediation installs a pinned interpreter via winget when the
// initial scan finds nothing.
func defaultRemediation() []string {
	return []string{
		"winget", "install", "-e", "--id", "Python.Python.3.12",
		"--accept-package-agreements", "--accept-source-agreements",
	}
}
