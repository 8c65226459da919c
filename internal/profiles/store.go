package profiles

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// Store persists named settings profiles, tracks the active one, and
// keeps content-addressed backups of the active copy across switches.
type Store struct {
	fs     afero.Fs
	paths  *PathBuilder
	now    func() time.Time
	logger *slog.Logger
}

// NewStore creates a Store over the given filesystem and path layout.
// A nil logger discards all log output.
func NewStore(fs afero.Fs, paths *PathBuilder, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		fs:     fs,
		paths:  paths,
		now:    time.Now,
		logger: logger,
	}
}

// SetNow allows overriding the clock for testing.
func (s *Store) SetNow(now func() time.Time) {
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// Init creates the profile and backup directories.
func (s *Store) Init() error {
	if err := s.fs.MkdirAll(s.paths.ProfilesDir(), 0o700); err != nil {
		return fmt.Errorf("failed to create profile store: %w", err)
	}
	if err := s.fs.MkdirAll(s.paths.BackupsDir(), 0o700); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}
	return nil
}

// Entry describes a stored profile for list output.
type Entry struct {
	Name   string
	Active bool
}

// Names returns the names of all stored profiles, sorted
// lexicographically. Only regular files with the profile extension
// count; the extension is stripped.
func (s *Store) Names() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.paths.ProfilesDir())
	if err != nil {
		return nil, fmt.Errorf("failed to read profile store: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, profileExt) {
			names = append(names, strings.TrimSuffix(name, profileExt))
		}
	}
	sort.Strings(names)
	return names, nil
}

// List returns the stored profiles with the active one flagged.
func (s *Store) List() ([]Entry, error) {
	names, err := s.Names()
	if err != nil {
		return nil, err
	}
	active := s.ActiveName()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, Active: name == active})
	}
	return entries, nil
}

// ActiveName returns the currently active profile name, or "" when no
// profile has been activated yet.
func (s *Store) ActiveName() string {
	content, err := afero.ReadFile(s.fs, s.paths.StatePath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(content))
}

// Save stores data as the profile name. The name is trimmed and
// validated first.
func (s *Store) Save(name string, data []byte) error {
	normalized, err := NormalizeName(name)
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	path := s.paths.ProfilePath(normalized)
	if err := afero.WriteFile(s.fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	s.logger.Info("profile saved", "name", normalized, "path", path)
	return nil
}

// Use activates the named profile. The current active copy is backed up
// first, then the stored profile atomically replaces it and the state
// file records the name.
func (s *Store) Use(name string) error {
	normalized, err := NormalizeName(name)
	if err != nil {
		return err
	}
	src := s.paths.ProfilePath(normalized)
	exists, err := afero.Exists(s.fs, src)
	if err != nil {
		return fmt.Errorf("failed to check profile: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, normalized)
	}
	if err := s.Init(); err != nil {
		return err
	}
	if err := s.backupActive(); err != nil {
		return err
	}
	if err := s.copyFile(src, s.paths.ActivePath()); err != nil {
		return err
	}
	if err := afero.WriteFile(s.fs, s.paths.StatePath(), []byte(normalized), 0o600); err != nil {
		return fmt.Errorf("failed to record active profile: %w", err)
	}
	s.logger.Info("profile activated", "name", normalized)
	return nil
}

// hashFile returns the SHA-256 hash of the file at path.
// Empty files return a special "empty" marker and log a warning.
// Missing files return an empty string without error.
func (s *Store) hashFile(path string) (string, error) {
	if err := s.validatePathSafety(path); err != nil {
		return "", fmt.Errorf("path validation failed: %w", err)
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to stat file for hashing: %w", err)
	}
	if info.Size() == 0 {
		s.logger.Warn("empty file detected during hash calculation",
			"path", path,
			"operation", "hash")
		return "empty", nil
	}

	f, err := s.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file for hashing: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// backupActive creates a content-addressed backup of the active file.
//
// The backup uses the SHA-256 hash as filename, enabling deduplication:
//   - Identical content reuses the same backup file
//   - Modified time (mtime) is updated on each backup event
//   - Empty files are backed up with hash "empty" (with warning logged)
//   - A missing active file is silently skipped
func (s *Store) backupActive() (err error) {
	active := s.paths.ActivePath()
	hash, err := s.hashFile(active)
	if err != nil {
		return err
	}
	if hash == "" {
		// Nothing active yet - nothing to back up
		return nil
	}

	source, err := s.fs.Open(active)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open file for backup: %w", err)
	}
	defer func() {
		if cerr := source.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close source: %w", cerr)
		}
	}()

	backupPath := filepath.Join(s.paths.BackupsDir(), hash+profileExt)
	now := s.now()
	if _, err := s.fs.Stat(backupPath); err == nil {
		// Backup already exists - just update timestamp for deduplication
		if err := s.fs.Chtimes(backupPath, now, now); err != nil {
			return fmt.Errorf("failed to update backup timestamp: %w", err)
		}
		s.logger.Debug("backup already exists, updated timestamp",
			"hash", hash,
			"backup_path", backupPath)
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat backup: %w", err)
	}

	dst, err := s.fs.OpenFile(backupPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	_, copyErr := io.Copy(dst, source)
	closeErr := dst.Close()

	if copyErr != nil {
		s.fs.Remove(backupPath)
		return fmt.Errorf("failed to copy backup: %w", copyErr)
	}
	if closeErr != nil {
		s.fs.Remove(backupPath)
		return fmt.Errorf("failed to close backup: %w", closeErr)
	}

	if err := s.fs.Chtimes(backupPath, now, now); err != nil {
		return fmt.Errorf("failed to update backup timestamp: %w", err)
	}

	s.logger.Info("backup created",
		"hash", hash,
		"backup_path", backupPath)

	return nil
}

// PruneBackups removes backup files older than the specified duration.
//
// Age is judged by modification time. Content-addressed backups update
// mtime on each backup event, so this prunes backups that haven't been
// referenced recently.
//
// Returns the number of backups deleted and any error encountered.
func (s *Store) PruneBackups(olderThan time.Duration) (int, error) {
	entries, err := afero.ReadDir(s.fs, s.paths.BackupsDir())
	if err != nil {
		return 0, fmt.Errorf("failed to read backup directory: %w", err)
	}
	cutoff := s.now().Add(-olderThan)
	deleted := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.paths.BackupsDir(), entry.Name())
		info, err := s.fs.Stat(path)
		if err != nil {
			return deleted, fmt.Errorf("failed to stat backup: %w", err)
		}
		if info.ModTime().Before(cutoff) {
			if err := s.fs.Remove(path); err != nil {
				return deleted, fmt.Errorf("failed to delete backup: %w", err)
			}
			deleted++
		}
	}
	return deleted, nil
}

// validatePathSafety checks that the path is not a symlink, preventing
// symlink attacks. It returns nil if the path doesn't exist or is a
// regular file/directory.
func (s *Store) validatePathSafety(path string) error {
	if lstater, ok := s.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("failed to check path: %w", err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("refusing to operate on symlink: %s", path)
		}
	}
	// Without Lstat support, fall through (in-memory filesystems don't
	// support symlinks anyway)
	return nil
}

// copyFile copies a file from src to dst, atomically replacing the
// destination.
func (s *Store) copyFile(src, dst string) (err error) {
	if err := s.validatePathSafety(src); err != nil {
		return fmt.Errorf("validate source: %w", err)
	}
	if err := s.validatePathSafety(dst); err != nil {
		return fmt.Errorf("validate destination: %w", err)
	}

	source, err := s.fs.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() {
		if cerr := source.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close source: %w", cerr)
		}
	}()

	if err := s.fs.MkdirAll(filepath.Dir(dst), 0o700); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Temp file in the same directory enables atomic rename
	tmp := dst + ".tmp"
	dest, err := s.fs.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	_, copyErr := io.Copy(dest, source)
	closeErr := dest.Close()

	if copyErr != nil || closeErr != nil {
		s.fs.Remove(tmp)
		if copyErr != nil {
			return fmt.Errorf("copy data: %w", copyErr)
		}
		return fmt.Errorf("close temp file: %w", closeErr)
	}

	if err := s.fs.Rename(tmp, dst); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}

	return nil
}
