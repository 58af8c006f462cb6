package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func openArchive(t *testing.T, name string) *zip.ReadCloser {
	t.Helper()
	arc, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report archive: %v", err)
	}
	t.Cleanup(func() { arc.Close() })
	return arc
}

func readArchiveFile(t *testing.T, arc *zip.ReadCloser, name string) string {
	t.Helper()
	for _, f := range arc.File {
		if f.Name != name {
			continue
		}
		r, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s in archive: %v", name, err)
		}
		defer r.Close()
		data, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("unable to read %s from archive: %v", name, err)
		}
		return string(data)
	}
	t.Fatalf("archive has no entry %s", name)
	return ""
}

func TestReport_Finalize(t *testing.T) {
	conf := &ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	if _, err := uuid.Parse(r.RunID()); err != nil {
		t.Errorf("RunID() = %q is not a valid uuid: %v", r.RunID(), err)
	}

	r.StoreData("input/selectors.txt", []byte("div#main\n"))
	r.StoreData("output/selectors.txt", []byte("div#main\n"))

	// a stored path entry should be archived from disk
	srcPath := filepath.Join(t.TempDir(), "final.log")
	if err := os.WriteFile(srcPath, []byte("log line\n"), 0644); err != nil {
		t.Fatalf("unable to write source file: %v", err)
	}
	r.Store("logs/final.log", srcPath)

	name := r.Name()
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	arc := openArchive(t, name)

	manifest := readArchiveFile(t, arc, "MANIFEST")
	if !strings.HasPrefix(manifest, "run "+r.RunID()+" at ") {
		t.Errorf("MANIFEST does not start with run id: %q", manifest)
	}
	for _, entry := range []string{"input/selectors.txt", "output/selectors.txt", "logs/final.log"} {
		if !strings.Contains(manifest, entry) {
			t.Errorf("MANIFEST does not mention %s", entry)
		}
	}

	if got := readArchiveFile(t, arc, "input/selectors.txt"); got != "div#main\n" {
		t.Errorf("archived data = %q, want %q", got, "div#main\n")
	}
	if got := readArchiveFile(t, arc, "logs/final.log"); got != "log line\n" {
		t.Errorf("archived file = %q, want %q", got, "log line\n")
	}
}

func TestReport_StoreDataVersionsDuplicates(t *testing.T) {
	conf := &ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	r.StoreData("input/same.txt", []byte("first"))
	r.StoreData("input/same.txt", []byte("second"))

	if len(r.entries) != 2 {
		t.Fatalf("expected 2 entries after duplicate store, got %d", len(r.entries))
	}

	name := r.Name()
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	arc := openArchive(t, name)
	// MANIFEST plus both versions
	if len(arc.File) != 3 {
		t.Errorf("archive has %d entries, want 3", len(arc.File))
	}
}

func TestReport_StoreIgnoresSamePath(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}

	r.Store("logs/final.log", "/tmp/final.log")
	r.Store("logs/final.log", "/tmp/final.log")

	if len(r.entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(r.entries))
	}
}

func TestReport_NilReceiver(t *testing.T) {
	var r *Report

	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if got := r.Name(); got != "" {
		t.Errorf("Name on nil report = %q, want empty", got)
	}
	if got := r.RunID(); got != "" {
		t.Errorf("RunID on nil report = %q, want empty", got)
	}
	// must not panic
	r.Store("name", "/tmp/path")
	r.StoreData("name", []byte("data"))
}

func TestReport_CloseNilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
