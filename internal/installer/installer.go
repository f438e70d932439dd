// Package installer sequences the DRILLBUR provisioning workflow.
//
// Steps run strictly in order: runtime location, stats-module check,
// required-file verification, icon generation, optional packaging,
// shortcut provisioning, wrapper scripts, optional launch. Only a missing
// runtime or missing required files halt the run; every other failure is
// recorded as a warning and the sequence continues with degraded
// capability.
package installer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/drillbur/drillbur-setup/internal/bundle"
	"github.com/drillbur/drillbur-setup/internal/config"
	"github.com/drillbur/drillbur-setup/internal/icon"
	"github.com/drillbur/drillbur-setup/internal/launcher"
	"github.com/drillbur/drillbur-setup/internal/python"
	"github.com/drillbur/drillbur-setup/internal/shortcut"
	"github.com/drillbur/drillbur-setup/internal/verify"
)

// Status classifies a step result.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// StepResult is the recorded outcome of one installer step.
type StepResult struct {
	Step    string
	Status  Status
	Message string
}

// Options are the per-run switches.
type Options struct {
	// BuildExe also runs the bundle assembler.
	BuildExe bool
	// BundleMode selects the packaging layout when BuildExe is set.
	BundleMode bundle.Mode
	// CreateShortcuts gates desktop/start-menu provisioning.
	CreateShortcuts bool
	// Launch spawns the application, detached, after a non-fatal run.
	Launch bool
}

// Installer drives all provisioning components. Collaborators are
// function fields so tests can substitute every external effect.
type Installer struct {
	cfg  *config.Config
	opts Options

	locate       func() (*python.Runtime, error)
	ensure       func(rt *python.Runtime, module string) python.DependencyStatus
	verifyFiles  func() verify.Report
	generateIcon func(path string) error
	assemble     func(rt *python.Runtime, o bundle.Options) (string, error)
	provisioner  func() (shortcut.Provisioner, error)
	writeScripts func(rt *python.Runtime) ([]string, error)
	portFree     func(port int) bool
	detach       func(pythonPath, script, workDir string) error

	onStep func(StepResult)
}

// New wires an installer against the real components.
func New(cfg *config.Config, opts Options) *Installer {
	return &Installer{
		cfg:  cfg,
		opts: opts,
		locate: func() (*python.Runtime, error) {
			return python.NewLocator().Locate()
		},
		ensure: func(rt *python.Runtime, module string) python.DependencyStatus {
			return python.Ensure(rt, module, nil)
		},
		verifyFiles: func() verify.Report {
			return verify.Files(cfg.InstallDir, cfg.RequiredFiles)
		},
		generateIcon: icon.Generate,
		assemble: func(rt *python.Runtime, o bundle.Options) (string, error) {
			return bundle.Assemble(rt, o, nil)
		},
		provisioner: shortcut.New,
		writeScripts: func(rt *python.Runtime) ([]string, error) {
			return launcher.WriteScripts(cfg.InstallDir, rt.Path, cfg.EntryScript, cfg.AppName)
		},
		portFree: launcher.PortFree,
		detach:   launcher.Detach,
	}
}

// OnStep registers a callback invoked as each step result is recorded.
func (i *Installer) OnStep(fn func(StepResult)) {
	i.onStep = fn
}

// Run executes the full sequence. The returned error is non-nil only for
// the two fatal conditions; it wraps python.ErrNoRuntime or
// verify.ErrMissingFiles. All recorded step results are returned either way.
func (i *Installer) Run() ([]StepResult, error) {
	var results []StepResult
	record := func(step string, status Status, message string) {
		r := StepResult{Step: step, Status: status, Message: message}
		results = append(results, r)
		if i.onStep != nil {
			i.onStep(r)
		}
	}

	// Step 1: runtime. Fatal when absent, even after remediation.
	rt, err := i.locate()
	if err != nil {
		record("Python runtime", StatusFail, err.Error())
		return results, err
	}
	record("Python runtime", StatusOK, fmt.Sprintf("%s %s", rt.Path, rt.Version()))

	// Step 2: stats module. Degrading only.
	switch i.ensure(rt, i.cfg.StatsModule) {
	case python.AlreadyPresent:
		record("Stats module", StatusOK, i.cfg.StatsModule+" already present")
	case python.InstalledNow:
		record("Stats module", StatusOK, i.cfg.StatsModule+" installed now")
	case python.Unavailable:
		record("Stats module", StatusWarn,
			i.cfg.StatsModule+" unavailable — live stats disabled")
	}

	// Step 3: required files. Fatal when any are missing; the message
	// carries the complete missing set.
	rep := i.verifyFiles()
	if !rep.OK() {
		record("Required files", StatusFail,
			"missing: "+strings.Join(rep.Missing, ", "))
		return results, rep.Err()
	}
	record("Required files", StatusOK,
		fmt.Sprintf("%d files present", len(rep.Present)))

	// Step 4: icon. Idempotent; failure degrades to default glyphs.
	iconFile := i.cfg.IconFile()
	if err := i.generateIcon(iconFile); err != nil {
		record("Icon asset", StatusWarn,
			fmt.Sprintf("%v — shortcuts will use the default glyph", err))
	} else {
		record("Icon asset", StatusOK, i.cfg.IconPath)
	}

	// Step 5: optional packaging.
	if i.opts.BuildExe {
		out, err := i.assemble(rt, bundle.Options{
			AppName:       i.cfg.AppName,
			EntryScript:   i.cfg.EntryScript,
			WorkDir:       i.cfg.InstallDir,
			IconPath:      i.cfg.IconPath,
			HiddenImports: i.cfg.HiddenImports,
			Excludes:      i.cfg.Excludes,
			DataFiles:     i.cfg.DataFiles,
			Mode:          i.opts.BundleMode,
		})
		if err != nil {
			record("Package bundle", StatusWarn, err.Error())
		} else {
			record("Package bundle", StatusOK, out)
		}
	}

	// Step 6: shortcuts, each kind attempted independently.
	if i.opts.CreateShortcuts {
		i.createShortcuts(rt, iconFile, record)
	}

	// Step 7: wrapper launch scripts.
	if paths, err := i.writeScripts(rt); err != nil {
		record("Launch scripts", StatusWarn, err.Error())
	} else {
		names := make([]string, len(paths))
		for n, p := range paths {
			names[n] = filepath.Base(p)
		}
		record("Launch scripts", StatusOK, strings.Join(names, ", "))
	}

	// Step 8: optional fire-and-forget launch.
	if i.opts.Launch {
		i.launch(rt, record)
	}

	return results, nil
}

// quoteArg wraps a script path in double quotes for the shortcut Arguments
// field. Not %q: that verb escapes backslashes and mangles Windows paths.
func quoteArg(path string) string {
	return "\"" + path + "\""
}

func (i *Installer) createShortcuts(rt *python.Runtime, iconFile string, record func(string, Status, string)) {
	prov, err := i.provisioner()
	if err != nil {
		record("Desktop shortcut", StatusWarn, err.Error())
		record("Start menu shortcut", StatusWarn, err.Error())
		return
	}

	desc := shortcut.Descriptor{
		Name:        i.cfg.AppName,
		Target:      rt.Path,
		Arguments:   quoteArg(i.cfg.EntryScriptPath()),
		WorkingDir:  i.cfg.InstallDir,
		Description: i.cfg.Description,
		IconPath:    iconFile,
	}

	for _, kind := range []shortcut.Kind{shortcut.Desktop, shortcut.StartMenu} {
		step := "Desktop shortcut"
		if kind == shortcut.StartMenu {
			step = "Start menu shortcut"
		}
		if err := prov.Create(kind, desc); err != nil {
			record(step, StatusWarn, err.Error())
		} else {
			record(step, StatusOK, "")
		}
	}
}

func (i *Installer) launch(rt *python.Runtime, record func(string, Status, string)) {
	if !i.portFree(i.cfg.Port) {
		record("Launch", StatusOK,
			fmt.Sprintf("already running on port %d", i.cfg.Port))
		return
	}
	if err := i.detach(rt.Path, i.cfg.EntryScriptPath(), i.cfg.InstallDir); err != nil {
		record("Launch", StatusWarn, err.Error())
		return
	}
	record("Launch", StatusOK,
		fmt.Sprintf("started — http://127.0.0.1:%d", i.cfg.Port))
}

// Fatal reports whether results contain a failed step.
func Fatal(results []StepResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
