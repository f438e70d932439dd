package python

import "fmt"

// DependencyStatus reports how a module requirement was satisfied.
type DependencyStatus int

const (
	// AlreadyPresent: the module imported cleanly on the first probe.
	AlreadyPresent DependencyStatus = iota
	// InstalledNow: the module was installed during this run and the
	// re-probe succeeded.
	InstalledNow
	// Unavailable: the module could not be imported even after an
	// install attempt. Degrading, not fatal.
	Unavailable
)

func (s DependencyStatus) String() string {
	switch s {
	case AlreadyPresent:
		return "already present"
	case InstalledNow:
		return "installed now"
	case Unavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("DependencyStatus(%d)", int(s))
	}
}

// Ensure checks that module is importable through rt, installing it via pip
// if not. The result is never an error in the fatal sense: Unavailable
// means the installed application runs with reduced functionality.
func Ensure(rt *Runtime, module string, run Runner) DependencyStatus {
	if run == nil {
		run = ExecRunner
	}

	if importable(rt, module, run) {
		return AlreadyPresent
	}

	// pip output is noisy; --quiet keeps the installer report readable.
	// Install failure is not inspected directly, only via the re-probe.
	_, _ = run(rt.Path, "-m", "pip", "install", "--quiet", module)

	if importable(rt, module, run) {
		return InstalledNow
	}
	return Unavailable
}

func importable(rt *Runtime, module string, run Runner) bool {
	_, err := run(rt.Path, "-c", "import "+module)
	return err == nil
}
