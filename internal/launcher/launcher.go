// Package launcher handles the handoff from installer to installed
// application: wrapper launch scripts (plain and privilege-elevating) and
// the fire-and-forget post-install launch.
package launcher

import (
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// portProbeTimeout bounds the pre-launch port check.
const portProbeTimeout = 300 * time.Millisecond

// PortFree reports whether nothing is listening on the local port. A
// probe error is read as free, matching the application's own check.
func PortFree(port int) bool {
	conn, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", port), portProbeTimeout)
	if err != nil {
		return true
	}
	conn.Close()
	return false
}

// Detach spawns the application and immediately releases it: the spawned
// process outlives the installer, which never waits on it.
func Detach(pythonPath, scriptPath, workDir string) error {
	cmd := exec.Command(pythonPath, scriptPath)
	cmd.Dir = workDir
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", scriptPath, err)
	}
	return cmd.Process.Release()
}

// scriptFile is one wrapper script to write into the install directory.
type scriptFile struct {
	name    string
	content string
}

// WriteScripts writes the two wrapper launch scripts (plain and
// elevating) into installDir and returns their paths.
func WriteScripts(installDir, pythonPath, entryScript, appName string) ([]string, error) {
	var paths []string
	for _, sf := range wrapperScripts(pythonPath, entryScript, appName) {
		path := filepath.Join(installDir, sf.name)
		if err := os.WriteFile(path, []byte(sf.content), 0755); err != nil {
			return paths, fmt.Errorf("write %s: %w", sf.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
