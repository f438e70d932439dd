//go:build !windows

package launcher

import (
	"fmt"
	"strings"
)

// wrapperScripts emits the shell wrappers. The elevating variant re-execs
// itself through sudo when not running as root.
func wrapperScripts(pythonPath, entryScript, appName string) []scriptFile {
	slug := strings.ToLower(strings.ReplaceAll(appName, " ", "-"))

	plain := fmt.Sprintf("#!/bin/sh\n"+
		"cd \"$(dirname \"$0\")\"\n"+
		"exec %q %q \"$@\"\n", pythonPath, entryScript)

	elevated := fmt.Sprintf("#!/bin/sh\n"+
		"cd \"$(dirname \"$0\")\"\n"+
		"if [ \"$(id -u)\" -ne 0 ]; then\n"+
		"    exec sudo \"$0\" \"$@\"\n"+
		"fi\n"+
		"exec %q %q \"$@\"\n", pythonPath, entryScript)

	return []scriptFile{
		{name: "launch-" + slug + ".sh", content: plain},
		{name: "launch-" + slug + "-admin.sh", content: elevated},
	}
}
