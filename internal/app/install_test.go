package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/drillbur/drillbur-setup/internal/installer"
)

func TestSummaryTitle(t *testing.T) {
	ok := []installer.StepResult{{Step: "a", Status: installer.StatusOK}}
	warned := []installer.StepResult{
		{Step: "a", Status: installer.StatusOK},
		{Step: "b", Status: installer.StatusWarn},
	}
	failed := []installer.StepResult{{Step: "a", Status: installer.StatusFail}}

	if got := summaryTitle(ok, nil); got != "Install complete" {
		t.Errorf("summaryTitle(ok) = %q", got)
	}
	if got := summaryTitle(warned, nil); got != "Install complete (with warnings)" {
		t.Errorf("summaryTitle(warned) = %q", got)
	}
	if got := summaryTitle(failed, errors.New("fatal")); got != "Install aborted" {
		t.Errorf("summaryTitle(failed) = %q", got)
	}
}

func TestInstallExitErr(t *testing.T) {
	if err := installExitErr(nil); err != nil {
		t.Errorf("installExitErr(nil) = %v, want nil", err)
	}

	fatal := errors.New("no python 3.8+ runtime found; download from https://www.python.org/downloads/")
	err := installExitErr(fatal)
	if err == nil {
		t.Fatal("installExitErr(fatal) = nil, want non-nil for a non-zero exit")
	}
	// The step line and summary box already show the failure; the exit
	// message must not repeat it a third time.
	if strings.Contains(err.Error(), "runtime") {
		t.Errorf("exit error repeats step detail: %q", err)
	}
}

func TestSummaryLines(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	results := []installer.StepResult{
		{Step: "Python runtime", Status: installer.StatusOK, Message: "python 3.11"},
		{Step: "Stats module", Status: installer.StatusWarn, Message: "psutil unavailable"},
		{Step: "Required files", Status: installer.StatusOK, Message: "3 files present"},
	}

	lines := summaryLines(results)
	if len(lines) != 2 {
		t.Fatalf("summaryLines returned %d lines, want count + 1 warning", len(lines))
	}
	if lines[0] != "2 ok, 1 warnings, 0 failures" {
		t.Errorf("count line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Stats module") {
		t.Errorf("warning line = %q", lines[1])
	}
}
