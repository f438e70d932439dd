//go:build !windows

package python

import "runtime"

// defaultRemediation picks the host package manager's python3 install
// command. Only one attempt is ever made; success is observed via re-scan.
func defaultRemediation() []string {
	if runtime.GOOS == "darwin" {
		return []string{"brew", "install", "python@3.12"}
	}
	return []string{"apt-get", "install", "-y", "python3"}
}
