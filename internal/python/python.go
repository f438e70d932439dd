// Package python locates a usable Python runtime and ensures the modules
// the installed application needs.
//
// The locator walks a fixed, prioritized candidate list and accepts the
// first interpreter reporting version 3.8 or later (first-fit, not
// best-fit). If nothing on the host qualifies it makes a single
// package-manager remediation attempt and re-scans; failing that, the
// caller gets ErrNoRuntime with download guidance. This is the only
// unconditionally fatal check besides the required-file verification.
package python

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// DownloadURL is surfaced when no runtime can be found or installed.
const DownloadURL = "https://www.python.org/downloads/"

// ErrNoRuntime indicates no acceptable interpreter was found, even after
// the remediation attempt.
var ErrNoRuntime = errors.New("no suitable Python runtime found")

// Runner executes a command and returns its combined output. Injectable so
// tests can stub interpreter and package-manager invocations.
type Runner func(name string, args ...string) ([]byte, error)

// ExecRunner runs commands for real via os/exec.
func ExecRunner(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// Runtime is a validated interpreter handle. It lives for the duration of
// an installer run and is never persisted.
type Runtime struct {
	Path  string
	Major int
	Minor int
}

// Version returns the detected "major.minor" string.
func (r *Runtime) Version() string {
	return fmt.Sprintf("%d.%d", r.Major, r.Minor)
}

// Locator probes runtime candidates in priority order.
type Locator struct {
	// Candidates are invocation names tried in order.
	Candidates []string

	// MinMajor/MinMinor is the version floor. Any later major also passes.
	MinMajor int
	MinMinor int

	// Remediation, when non-empty, is a package-manager command invoked
	// once if no candidate qualifies. The scan is repeated afterwards.
	Remediation []string

	Run Runner
}

// NewLocator returns a locator with the stock candidate order and the
// host platform's default remediation command.
func NewLocator() *Locator {
	return &Locator{
		Candidates:  []string{"python", "python3", "py"},
		MinMajor:    3,
		MinMinor:    8,
		Remediation: defaultRemediation(),
		Run:         ExecRunner,
	}
}

// Locate returns the first acceptable candidate. If the initial scan comes
// up empty it runs the remediation command once and scans again. The
// returned error wraps ErrNoRuntime when both attempts fail.
func (l *Locator) Locate() (*Runtime, error) {
	if rt := l.scan(); rt != nil {
		return rt, nil
	}

	if len(l.Remediation) > 0 {
		// Remediation success is observed only through the re-scan;
		// the command's own exit status is informational.
		if _, err := l.Run(l.Remediation[0], l.Remediation[1:]...); err == nil {
			if rt := l.scan(); rt != nil {
				return rt, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: install Python %d.%d or newer from %s",
		ErrNoRuntime, l.MinMajor, l.MinMinor, DownloadURL)
}

// scan walks the candidate list and returns the first acceptable runtime,
// or nil.
func (l *Locator) scan() *Runtime {
	for _, cand := range l.Candidates {
		out, err := l.Run(cand, "--version")
		if err != nil {
			continue
		}
		major, minor, err := ParseVersion(string(out))
		if err != nil {
			continue
		}
		if l.acceptable(major, minor) {
			return &Runtime{Path: cand, Major: major, Minor: minor}
		}
	}
	return nil
}

func (l *Locator) acceptable(major, minor int) bool {
	if major > l.MinMajor {
		return true
	}
	return major == l.MinMajor && minor >= l.MinMinor
}

// ParseVersion extracts major.minor from interpreter version output such
// as "Python 3.11.4". The patch component is ignored.
func ParseVersion(out string) (major, minor int, err error) {
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("empty version output")
	}
	ver := fields[len(fields)-1]

	parts := strings.SplitN(ver, ".", 3)
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("unrecognized version %q", ver)
	}
	major, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("unrecognized version %q", ver)
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("unrecognized version %q", ver)
	}
	return major, minor, nil
}
