package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds vocabulary and config files relative to the binary,
// the working directory and the user config directory.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	executableDir := filepath.Dir(execPath)
	configDir, err := ConfigDir()
	if err != nil {
		log.Warnf("Could not determine config directory: %v", err)
		configDir = executableDir
	}

	pr := &PathResolver{
		executableDir: executableDir,
		homeDir:       homeDir,
		configDir:     configDir,
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// ConfigDir returns the acfield config directory, the first writable of
// configDirCandidates, or the executable directory when none is.
// Config files and vocabulary lookups both go through it.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return GetExecutableDir()
	}
	for _, dir := range configDirCandidates(homeDir) {
		if result := CheckDirStatus(dir); result.Writable {
			return dir, nil
		}
	}
	execDir, err := GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// configDirCandidates lists the platform config directories in priority order:
// Windows uses %APPDATA%\acfield, everything else $XDG_CONFIG_HOME/acfield
// or ~/.config/acfield, with ~/Library/Application Support/acfield as a
// second choice on macOS.
func configDirCandidates(homeDir string) []string {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return []string{filepath.Join(appData, "acfield")}
		}
		return []string{filepath.Join(homeDir, "AppData", "Roaming", "acfield")}
	}

	primary := filepath.Join(homeDir, ".config", "acfield")
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		primary = filepath.Join(configHome, "acfield")
	}
	if runtime.GOOS == "darwin" {
		return []string{primary, filepath.Join(homeDir, "Library", "Application Support", "acfield")}
	}
	return []string{primary}
}

// ResolveVocabPath finds a vocabulary file. It tries, in order:
// 1. the path itself (absolute, or relative to the working directory)
// 2. relative to the executable directory
// 3. inside the config directory
// If none exists the path is returned unchanged so the caller can report it.
func (pr *PathResolver) ResolveVocabPath(userPath string) string {
	candidates := pr.vocabCandidates(userPath)
	for _, path := range candidates {
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			log.Debugf("Found vocabulary file: %s", path)
			return path
		}
		log.Debugf("Vocabulary candidate not found: %s", path)
	}
	return userPath
}

func (pr *PathResolver) vocabCandidates(userPath string) []string {
	if filepath.IsAbs(userPath) {
		return []string{userPath}
	}
	return []string{
		userPath,
		filepath.Join(pr.executableDir, userPath),
		filepath.Join(pr.configDir, userPath),
	}
}
