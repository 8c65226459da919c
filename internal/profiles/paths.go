package profiles

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvHome overrides the store's base directory when set.
	EnvHome = "CLIMENU_DEMO_HOME"

	demoDirName     = ".climenu-demo"
	profilesDirName = "profiles"
	backupsDirName  = "backups"
	activeFileName  = "active.json"
	stateFileName   = "active.name"
	profileExt      = ".json"
)

// PathBuilder constructs store paths relative to a base directory.
type PathBuilder struct {
	baseDir string
}

// NewPathBuilder creates a PathBuilder rooted at baseDir.
func NewPathBuilder(baseDir string) *PathBuilder {
	return &PathBuilder{baseDir: baseDir}
}

// BaseDir returns the store's base directory.
func (p *PathBuilder) BaseDir() string {
	return p.baseDir
}

// ProfilesDir returns the directory where named profiles are stored.
func (p *PathBuilder) ProfilesDir() string {
	return filepath.Join(p.baseDir, profilesDirName)
}

// BackupsDir returns the directory where backups are stored.
func (p *PathBuilder) BackupsDir() string {
	return filepath.Join(p.baseDir, backupsDirName)
}

// ActivePath returns the path of the active profile file.
func (p *PathBuilder) ActivePath() string {
	return filepath.Join(p.baseDir, activeFileName)
}

// StatePath returns the path of the file recording the active profile's
// name.
func (p *PathBuilder) StatePath() string {
	return filepath.Join(p.baseDir, stateFileName)
}

// ProfilePath returns the path for a named profile.
func (p *PathBuilder) ProfilePath(name string) string {
	return filepath.Join(p.ProfilesDir(), name+profileExt)
}

// DefaultBaseDir resolves the base directory: $CLIMENU_DEMO_HOME when
// set, otherwise ~/.climenu-demo.
func DefaultBaseDir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, demoDirName), nil
}
