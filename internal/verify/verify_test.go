package verify

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "drillbur_app.py", "Drillbur.html")

	required := []string{"drillbur_app.py", "drillbur_backend.py", "Drillbur.html"}
	rep := Files(dir, required)

	wantPresent := []string{"Drillbur.html", "drillbur_app.py"}
	wantMissing := []string{"drillbur_backend.py"}
	if !reflect.DeepEqual(rep.Present, wantPresent) {
		t.Errorf("Present = %v, want %v", rep.Present, wantPresent)
	}
	if !reflect.DeepEqual(rep.Missing, wantMissing) {
		t.Errorf("Missing = %v, want %v", rep.Missing, wantMissing)
	}
	if rep.OK() {
		t.Error("OK() = true with a missing file")
	}
}

func TestFilesOrderIndependent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.py", "c.html")

	orders := [][]string{
		{"a.py", "b.py", "c.html"},
		{"c.html", "a.py", "b.py"},
		{"b.py", "c.html", "a.py"},
	}

	first := Files(dir, orders[0])
	for _, order := range orders[1:] {
		rep := Files(dir, order)
		if !reflect.DeepEqual(rep, first) {
			t.Errorf("permuted input %v produced %+v, want %+v", order, rep, first)
		}
	}
}

func TestFilesAggregatesAllMissing(t *testing.T) {
	dir := t.TempDir()
	required := []string{"one.py", "two.py", "three.html"}

	rep := Files(dir, required)
	if len(rep.Missing) != 3 {
		t.Fatalf("Missing = %v, want all three", rep.Missing)
	}

	err := rep.Err()
	if !errors.Is(err, ErrMissingFiles) {
		t.Fatalf("Err() = %v, want ErrMissingFiles", err)
	}
	for _, name := range required {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("Err() = %q does not name %s", err, name)
		}
	}
}

func TestFilesAllPresent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "drillbur_app.py", "drillbur_backend.py", "Drillbur.html")

	rep := Files(dir, []string{"drillbur_app.py", "drillbur_backend.py", "Drillbur.html"})
	if !rep.OK() {
		t.Errorf("OK() = false, Missing = %v", rep.Missing)
	}
	if rep.Err() != nil {
		t.Errorf("Err() = %v, want nil", rep.Err())
	}
}

func TestWatchReportsChanges(t *testing.T) {
	dir := t.TempDir()
	required := []string{"drillbur_app.py"}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reports := make(chan Report, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dir, required, func(r Report) { reports <- r })
	}()

	// Initial report: file missing.
	select {
	case rep := <-reports:
		if rep.OK() {
			t.Error("initial report should be missing the file")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no initial report")
	}

	writeFiles(t, dir, "drillbur_app.py")

	// Eventual report: file present.
	deadline := time.After(3 * time.Second)
	for {
		select {
		case rep := <-reports:
			if rep.OK() {
				cancel()
				if err := <-done; !errors.Is(err, context.Canceled) {
					t.Errorf("Watch returned %v, want context.Canceled", err)
				}
				return
			}
		case <-deadline:
			t.Fatal("no report after file creation")
		}
	}
}
