//go:build windows

package launcher

import "fmt"

// wrapperScripts emits the batch wrappers. The elevating variant probes
// for admin rights via `net session` and re-invokes itself through RunAs
// when they are absent.
func wrapperScripts(pythonPath, entryScript, appName string) []scriptFile {
	plain := fmt.Sprintf("@echo off\r\n"+
		"cd /d \"%%~dp0\"\r\n"+
		"start \"\" \"%s\" \"%s\"\r\n", pythonPath, entryScript)

	elevated := fmt.Sprintf("@echo off\r\n"+
		"net session >nul 2>&1\r\n"+
		"if %%errorlevel%% neq 0 (\r\n"+
		"    powershell -NoProfile -Command \"Start-Process -FilePath '%%~f0' -Verb RunAs\"\r\n"+
		"    exit /b\r\n"+
		")\r\n"+
		"cd /d \"%%~dp0\"\r\n"+
		"start \"\" \"%s\" \"%s\"\r\n", pythonPath, entryScript)

	return []scriptFile{
		{name: "Launch " + appName + ".bat", content: plain},
		{name: "Launch " + appName + " (Admin).bat", content: elevated},
	}
}
