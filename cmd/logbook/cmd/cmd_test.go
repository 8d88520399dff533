package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/oriys/logbook/internal/domain"
)

// execute 以默认标志运行根命令，返回 stdout、stderr 与错误
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	// 隔离工作目录与主目录，避免读到开发者本地的 .logbook.yaml
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	if args == nil {
		// nil 会让 cobra 回退到 os.Args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

const demoOutput = "INFO: Application started\nWARNING: Low memory\nERROR: File not found\n"

func TestDemo(t *testing.T) {
	for _, args := range [][]string{{}, {"demo"}} {
		stdout, _, err := execute(t, args...)
		if err != nil {
			t.Fatalf("Execute(%v): %v", args, err)
		}
		if stdout != demoOutput {
			t.Errorf("Execute(%v) stdout = %q, want %q", args, stdout, demoOutput)
		}
	}
}

func TestDemo_DiagnosticsGoToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "demo", "--log-level", "info")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if stdout != demoOutput {
		t.Errorf("stdout = %q, want %q", stdout, demoOutput)
	}
	if !strings.Contains(stderr, "same registry") {
		t.Errorf("stderr missing singleton check: %q", stderr)
	}
}

func TestDemo_Metrics(t *testing.T) {
	_, stderr, err := execute(t, "demo", "--metrics")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{
		`logbook_entries_appended_total{category="warning"} 1`,
		"logbook_dumps_total 1",
		"logbook_registry_releases_total 1",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("metrics output missing %q:\n%s", want, stderr)
		}
	}
}

func TestLog(t *testing.T) {
	stdout, _, err := execute(t, "log", "warn", "Low", "memory")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if stdout != "WARNING: Low memory\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestLog_UnknownCategory(t *testing.T) {
	stdout, stderr, err := execute(t, "log", "bogus", "x")
	if !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("Execute err = %v, want ErrInvalidCategory", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr, `invalid category: "bogus"`) {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestLog_PolishVocabulary(t *testing.T) {
	stdout, _, err := execute(t, "--vocabulary", "pl", "log", "blad", "Nie", "znaleziono", "pliku.")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if stdout != "ERROR: Nie znaleziono pliku.\n" {
		t.Errorf("stdout = %q", stdout)
	}

	if _, _, err := execute(t, "--vocabulary", "pl", "log", "err", "x"); !errors.Is(err, domain.ErrInvalidCategory) {
		t.Errorf("pl vocabulary accepted en tag: err = %v", err)
	}
}

func TestReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.yaml")
	body := "entries:\n  - category: err\n    message: first\n  - category: info\n    message: second\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	stdout, _, err := execute(t, "replay", path)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if stdout != "ERROR: first\nINFO: second\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestReplay_AbortsOnUnknownCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.yaml")
	body := "entries:\n  - category: info\n    message: ok\n  - category: fatal\n    message: nope\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	stdout, _, err := execute(t, "replay", path)
	if !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("Execute err = %v, want ErrInvalidCategory", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logbook.yaml")
	body := "vocabulary:\n  preset: en\n  aliases:\n    warning: warning\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	stdout, _, err := execute(t, "--config", path, "log", "warning", "y")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if stdout != "WARNING: y\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestConfigFile_Missing(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Execute err = %v, want os.ErrNotExist", err)
	}
}

func TestCategories_JSON(t *testing.T) {
	stdout, _, err := execute(t, "categories", "-o", "json")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var view vocabularyView
	if err := json.Unmarshal([]byte(stdout), &view); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, stdout)
	}
	if view.Vocabulary != "en" || len(view.Tags) != 3 {
		t.Fatalf("view = %+v", view)
	}
	if view.Tags[1].Tag != "warn" || view.Tags[1].Label != "WARNING" {
		t.Errorf("Tags[1] = %+v", view.Tags[1])
	}
}

func TestCategories_Table(t *testing.T) {
	stdout, _, err := execute(t, "categories", "--vocabulary", "pl")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(stdout, "TAG") || !strings.Contains(stdout, "ostrzezenie") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(stdout, "logbook version dev") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestUnknownArgs(t *testing.T) {
	if _, _, err := execute(t, "bogus"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}
