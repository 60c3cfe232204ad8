// Package history loads and persists the command history of a session.
//
// The live buffer is ordered most-recent-first. The file on disk is ordered
// oldest-first, holds one trimmed command per line and never contains blank
// lines.
package history

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DefaultSize is the number of entries kept when no size is configured.
const DefaultSize = 20

// Load reads the history file at path and returns its entries
// most-recent-first, trimmed, with blank lines dropped. A missing file is an
// empty history. Any other read error is returned.
func Load(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	entries := make([]string, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries, nil
}

// Save overwrites the file at path with the newest maxSize entries of live,
// oldest-first. live is read, never modified. A maxSize of zero or less keeps
// no entries and writes an empty file.
func Save(fs afero.Fs, path string, live []string, maxSize int) error {
	return writeFile(fs, path, []byte(Encode(live, maxSize)))
}

// Encode renders the on-disk form of live without touching any file.
func Encode(live []string, maxSize int) string {
	if maxSize <= 0 {
		return ""
	}

	chronological := make([]string, len(live))
	for i, entry := range live {
		chronological[len(live)-1-i] = entry
	}
	if len(chronological) > maxSize {
		chronological = chronological[len(chronological)-maxSize:]
	}

	kept := chronological[:0]
	for _, entry := range chronological {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		kept = append(kept, entry)
	}
	return strings.Join(kept, "\n")
}

// maxLinks bounds symlink resolution of the history path.
const maxLinks = 16

// writeFile replaces path through a temp file in the same directory so a
// failed write never leaves a truncated history behind. A symlinked path is
// followed and its target rewritten; an existing file keeps its permissions,
// new files are created 0600.
func writeFile(fs afero.Fs, path string, data []byte) error {
	path = resolveLinks(fs, path)
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	mode := os.FileMode(0o600)
	if info, err := fs.Stat(path); err == nil && info.Mode().IsRegular() {
		mode = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(fs, dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpPath)
		return err
	}
	if err := fs.Chmod(tmpPath, mode); err != nil {
		_ = fs.Remove(tmpPath)
		return err
	}

	return fs.Rename(tmpPath, path)
}

// resolveLinks returns the file path ultimately points to. Filesystems
// without symlink support, dangling links and unreadable links resolve to
// the last path reached.
func resolveLinks(fs afero.Fs, path string) string {
	lstater, ok := fs.(afero.Lstater)
	if !ok {
		return path
	}
	reader, ok := fs.(afero.LinkReader)
	if !ok {
		return path
	}

	for range maxLinks {
		info, _, err := lstater.LstatIfPossible(path)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			return path
		}
		dest, err := reader.ReadlinkIfPossible(path)
		if err != nil {
			return path
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(path), dest)
		}
		path = dest
	}
	return path
}
