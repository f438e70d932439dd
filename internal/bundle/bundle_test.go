package bundle

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drillbur/drillbur-setup/internal/config"
	"github.com/drillbur/drillbur-setup/internal/python"
)

func testOptions(workDir string) Options {
	return Options{
		AppName:       "DRILLBUR",
		EntryScript:   "drillbur_app.py",
		WorkDir:       workDir,
		HiddenImports: []string{"psutil"},
		Excludes:      []string{"numpy", "pandas"},
		DataFiles:     []config.DataFile{{Src: "Drillbur.html", Dest: "."}},
	}
}

func hasPair(args []string, flag, value string) bool {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag && args[i+1] == value {
			return true
		}
	}
	return false
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func TestArgs(t *testing.T) {
	dir := t.TempDir()
	o := testOptions(dir)
	args := o.Args()

	if !hasPair(args, "--name", "DRILLBUR") {
		t.Errorf("args missing --name DRILLBUR: %v", args)
	}
	if !hasPair(args, "--hidden-import", "psutil") {
		t.Errorf("args missing hidden import: %v", args)
	}
	if !hasPair(args, "--exclude-module", "numpy") || !hasPair(args, "--exclude-module", "pandas") {
		t.Errorf("args missing excludes: %v", args)
	}
	if !hasFlag(args, "--onedir") {
		t.Errorf("default mode should be --onedir: %v", args)
	}
	if hasFlag(args, "--onefile") {
		t.Errorf("--onefile present in multi-file mode: %v", args)
	}
	if last := args[len(args)-1]; last != filepath.Join(dir, "drillbur_app.py") {
		t.Errorf("entry script should be last arg, got %q", last)
	}

	var addData string
	for i, a := range args {
		if a == "--add-data" {
			addData = args[i+1]
		}
	}
	if !strings.HasPrefix(addData, filepath.Join(dir, "Drillbur.html")) {
		t.Errorf("--add-data = %q, want source under work dir", addData)
	}
}

func TestArgsSingleFile(t *testing.T) {
	o := testOptions(t.TempDir())
	o.Mode = SingleFile
	args := o.Args()
	if !hasFlag(args, "--onefile") {
		t.Errorf("args missing --onefile: %v", args)
	}
	if hasFlag(args, "--onedir") {
		t.Errorf("--onedir present in single-file mode: %v", args)
	}
}

func TestArgsIconOnlyWhenPresent(t *testing.T) {
	dir := t.TempDir()
	o := testOptions(dir)
	o.IconPath = filepath.Join("assets", "drillbur.ico")

	if hasFlag(o.Args(), "--icon") {
		t.Error("--icon passed for a missing icon file")
	}

	iconFile := filepath.Join(dir, "assets", "drillbur.ico")
	if err := os.MkdirAll(filepath.Dir(iconFile), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(iconFile, []byte{0}, 0644); err != nil {
		t.Fatal(err)
	}
	if !hasPair(o.Args(), "--icon", iconFile) {
		t.Error("--icon not passed for an existing icon file")
	}
}

func TestAssemble(t *testing.T) {
	rt := &python.Runtime{Path: "python", Major: 3, Minor: 11}

	t.Run("success", func(t *testing.T) {
		dir := t.TempDir()
		o := testOptions(dir)

		run := func(name string, args ...string) ([]byte, error) {
			// Simulate the packager creating the artifact.
			if err := os.MkdirAll(o.OutputPath(), 0755); err != nil {
				t.Fatal(err)
			}
			return nil, nil
		}

		out, err := Assemble(rt, o, run)
		if err != nil {
			t.Fatalf("Assemble() error: %v", err)
		}
		if out != o.OutputPath() {
			t.Errorf("output = %q, want %q", out, o.OutputPath())
		}
	})

	t.Run("packager exits non-zero", func(t *testing.T) {
		o := testOptions(t.TempDir())
		run := func(name string, args ...string) ([]byte, error) {
			return []byte("traceback"), errors.New("exit status 1")
		}
		_, err := Assemble(rt, o, run)
		if !errors.Is(err, ErrPackagingFailed) {
			t.Fatalf("Assemble() error = %v, want ErrPackagingFailed", err)
		}
		if !strings.Contains(err.Error(), "Common fixes") {
			t.Errorf("error %q lacks remediation hints", err)
		}
	})

	t.Run("artifact missing", func(t *testing.T) {
		o := testOptions(t.TempDir())
		run := func(name string, args ...string) ([]byte, error) {
			return nil, nil // exit 0, but nothing produced
		}
		_, err := Assemble(rt, o, run)
		if !errors.Is(err, ErrPackagingFailed) {
			t.Fatalf("Assemble() error = %v, want ErrPackagingFailed", err)
		}
	})
}
