package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
)

// LexiconPatterns are the globs a lexicon directory is scanned with.
var LexiconPatterns = []string{"*.yaml", "*.yml", "*.txt"}

// PathResolver finds the lexicon and config locations relative to the binary,
// the working dir and the user config dir.
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	// Resolve any symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  filepath.Dir(execPath),
		homeDir:        homeDir,
		configDir:      getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: exec=%s, configDir=%s", execPath, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "teny")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "teny")
		}
		return filepath.Join(homeDir, ".config", "teny")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "teny")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "teny")
	default:
		return filepath.Join(homeDir, ".teny")
	}
}

// GetLexiconDir resolves a directory of extra lexicon files.
// An empty request means the embedded lexicon is used alone and returns "".
// Candidates, in order: absolute path, next to the executable, the working
// dir, then the config dir.
func (pr *PathResolver) GetLexiconDir(requested string) (string, error) {
	if requested == "" {
		return "", nil
	}
	for _, path := range pr.lexiconCandidates(requested) {
		if IsLexiconDir(path) {
			log.Debugf("Found lexicon directory: %s", path)
			return path, nil
		}
		log.Debugf("Lexicon directory candidate not valid: %s", path)
	}
	return "", fmt.Errorf("no lexicon files found for %q", requested)
}

func (pr *PathResolver) lexiconCandidates(requested string) []string {
	if filepath.IsAbs(requested) {
		return []string{requested}
	}
	candidates := []string{filepath.Join(pr.executableDir, requested)}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, requested))
	}
	return append(candidates, filepath.Join(pr.configDir, requested))
}

// IsLexiconDir checks that path is a directory holding at least one lexicon file.
func IsLexiconDir(path string) bool {
	if stat, err := os.Stat(path); err != nil || !stat.IsDir() {
		return false
	}
	return len(ListLexiconFiles(path)) > 0
}

// ListLexiconFiles returns the lexicon files of dir in a stable order.
func ListLexiconFiles(dir string) []string {
	var files []string
	for _, pattern := range LexiconPatterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		files = append(files, matches...)
	}
	return files
}

// GetConfigPath returns the full path for a config file
// It ensures the config directory exists and handles read-only filesystem issues
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	if pr.ensureConfigDir(pr.configDir) {
		return filepath.Join(pr.configDir, filename), nil
	}

	fallbackDirs := []string{
		filepath.Join(pr.homeDir, ".teny"),
		filepath.Join(os.TempDir(), "teny"),
		pr.executableDir,
	}
	for _, dir := range fallbackDirs {
		if pr.ensureConfigDir(dir) {
			path := filepath.Join(dir, filename)
			log.Warnf("Using fallback config location: %s", path)
			return path, nil
		}
	}

	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath, nil
}

// ensureConfigDir creates the directory if it doesn't exist and tests writability
func (pr *PathResolver) ensureConfigDir(dir string) bool {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Debugf("Cannot create config directory %s: %v", dir, err)
		return false
	}
	return testWriteAccess(dir)
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}

// GetRuntimeInfo returns debug information about the current runtime environment
func (pr *PathResolver) GetRuntimeInfo() map[string]string {
	cwd, _ := os.Getwd()
	info := map[string]string{
		"executable_path": pr.executablePath,
		"current_dir":     cwd,
		"config_dir":      pr.configDir,
		"os":              runtime.GOOS,
		"arch":            runtime.GOARCH,
	}
	for _, envVar := range []string{"HOME", "XDG_CONFIG_HOME", "APPDATA"} {
		if value := os.Getenv(envVar); value != "" {
			info["env_"+strings.ToLower(envVar)] = value
		}
	}
	return info
}
