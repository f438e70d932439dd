// Package bundle drives the PyInstaller black box to turn the DRILLBUR
// entry script plus its data files into a distributable artifact.
//
// PyInstaller's static analysis cannot see every dynamically imported
// module, so the invocation carries an explicit force-include list, and an
// exclude list keeps large unrelated libraries out of the bundle.
package bundle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/drillbur/drillbur-setup/internal/config"
	"github.com/drillbur/drillbur-setup/internal/python"
)

// ErrPackagingFailed indicates the packager exited non-zero or produced
// no artifact.
var ErrPackagingFailed = errors.New("packaging failed")

// Mode selects the output layout. A build-time choice, never runtime
// detected.
type Mode int

const (
	// MultiFile collects runtime, dependencies, and data files into a
	// directory next to an executable stub. Faster cold start.
	MultiFile Mode = iota
	// SingleFile concatenates everything into one self-extracting
	// executable. Slower cold start.
	SingleFile
)

func (m Mode) String() string {
	if m == SingleFile {
		return "onefile"
	}
	return "onedir"
}

// Options parameterizes one assembly run.
type Options struct {
	AppName       string
	EntryScript   string
	WorkDir       string
	IconPath      string
	HiddenImports []string
	Excludes      []string
	DataFiles     []config.DataFile
	Mode          Mode
}

// dataSep is the --add-data src/dest separator, which PyInstaller varies
// by platform.
func dataSep() string {
	if runtime.GOOS == "windows" {
		return ";"
	}
	return ":"
}

// Args builds the PyInstaller argument list (without the interpreter).
func (o Options) Args() []string {
	// Paths are made explicit so the invocation does not depend on the
	// installer's working directory.
	args := []string{
		"-m", "PyInstaller",
		"--noconfirm",
		"--clean",
		"--name", o.AppName,
		"--windowed",
		"--distpath", filepath.Join(o.WorkDir, "dist"),
		"--workpath", filepath.Join(o.WorkDir, "build"),
		"--specpath", o.WorkDir,
	}
	if o.Mode == SingleFile {
		args = append(args, "--onefile")
	} else {
		args = append(args, "--onedir")
	}
	if o.IconPath != "" {
		icon := filepath.Join(o.WorkDir, o.IconPath)
		if _, err := os.Stat(icon); err == nil {
			args = append(args, "--icon", icon)
		}
	}
	for _, mod := range o.HiddenImports {
		args = append(args, "--hidden-import", mod)
	}
	for _, mod := range o.Excludes {
		args = append(args, "--exclude-module", mod)
	}
	for _, df := range o.DataFiles {
		args = append(args, "--add-data", filepath.Join(o.WorkDir, df.Src)+dataSep()+df.Dest)
	}
	return append(args, filepath.Join(o.WorkDir, o.EntryScript))
}

// OutputPath returns where the artifact is expected after a successful run.
func (o Options) OutputPath() string {
	dist := filepath.Join(o.WorkDir, "dist")
	if o.Mode == SingleFile {
		name := o.AppName
		if runtime.GOOS == "windows" {
			name += ".exe"
		}
		return filepath.Join(dist, name)
	}
	return filepath.Join(dist, o.AppName)
}

// Assemble invokes the packager through rt and verifies the artifact
// exists. Failures come back wrapping ErrPackagingFailed with remediation
// hints instead of raw packager output.
func Assemble(rt *python.Runtime, o Options, run python.Runner) (string, error) {
	if run == nil {
		run = python.ExecRunner
	}

	if _, err := run(rt.Path, o.Args()...); err != nil {
		return "", fmt.Errorf("%w: %v\n%s", ErrPackagingFailed, err, hints())
	}

	out := o.OutputPath()
	if _, err := os.Stat(out); err != nil {
		return "", fmt.Errorf("%w: no artifact at %s\n%s", ErrPackagingFailed, out, hints())
	}
	return out, nil
}

func hints() string {
	return strings.Join([]string{
		"Common fixes:",
		"  • Install the packager:  python -m pip install pyinstaller",
		"  • Close any running DRILLBUR instance holding files open",
		"  • Delete the build/ and dist/ directories and retry",
	}, "\n")
}
