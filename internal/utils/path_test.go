package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolveVocabPath(t *testing.T) {
	configDir := t.TempDir()
	execDir := t.TempDir()
	pr := &PathResolver{executableDir: execDir, configDir: configDir}

	inConfig := filepath.Join(configDir, "words.txt")
	if err := os.WriteFile(inConfig, []byte("cat\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := pr.ResolveVocabPath("words.txt"); got != inConfig {
		t.Errorf("expected config dir file %s, got %s", inConfig, got)
	}

	inExec := filepath.Join(execDir, "words.txt")
	if err := os.WriteFile(inExec, []byte("dog\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := pr.ResolveVocabPath("words.txt"); got != inExec {
		t.Errorf("expected executable dir to win over config dir, got %s", got)
	}

	if got := pr.ResolveVocabPath("missing.txt"); got != "missing.txt" {
		t.Errorf("missing files resolve to themselves, got %s", got)
	}

	if got := pr.ResolveVocabPath(inConfig); got != inConfig {
		t.Errorf("absolute paths are kept, got %s", got)
	}
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")

	result := CheckDirStatus(dir)
	if !result.Exists || !result.Writable {
		t.Fatalf("expected created writable dir, got %+v", result)
	}
	if FileExists(filepath.Join(dir, ".write_test")) {
		t.Error("write probe should be removed")
	}
}

func TestConfigDirIsSharedWithResolver(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME is not consulted on windows")
	}
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	want := filepath.Join(configHome, "acfield")

	dir, err := ConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != want {
		t.Errorf("expected %s, got %s", want, dir)
	}

	pr, err := NewPathResolver()
	if err != nil {
		t.Fatal(err)
	}
	if pr.configDir != dir {
		t.Errorf("resolver config dir %s differs from %s", pr.configDir, dir)
	}

	inConfig := filepath.Join(dir, "shared-words.txt")
	if err := os.WriteFile(inConfig, []byte("cat\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := pr.ResolveVocabPath("shared-words.txt"); got != inConfig {
		t.Errorf("expected vocabulary in config dir %s, got %s", inConfig, got)
	}
}
