// Package workspace manages the temporary extraction directory scoped to one
// archive job.
//
// A workspace is created before extraction and must be removed on every exit
// path: success, no audio found, extraction failure, and transcode failure.
// Callers defer Remove immediately after Create so the guarantee holds.
package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// dirSuffix is appended to the archive base name to form the workspace
// directory. The name is deterministic; two archives sharing a base name in
// the same directory would collide.
const dirSuffix = "_extract"

// Workspace is a temporary extraction directory sibling to its archive.
type Workspace struct {
	Path string
}

// Create makes the extraction directory next to the archive. The parent of
// the archive must be writable.
func Create(archivePath string) (*Workspace, error) {
	base := filepath.Base(archivePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	path := filepath.Join(filepath.Dir(archivePath), base+dirSuffix)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace %q: %w", path, err)
	}
	return &Workspace{Path: path}, nil
}

// Remove recursively deletes the workspace. It is idempotent and safe to
// defer; a nil receiver is a no-op.
func (w *Workspace) Remove() error {
	if w == nil || w.Path == "" {
		return nil
	}
	return os.RemoveAll(w.Path)
}

// AudioFiles recursively collects files under the workspace whose extension
// matches ext case-insensitively. Results are sorted so the transcode order
// is deterministic.
func (w *Workspace) AudioFiles(ext string) ([]string, error) {
	if w == nil || w.Path == "" {
		return nil, nil
	}
	var files []string
	err := filepath.WalkDir(w.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan workspace %q: %w", w.Path, err)
	}
	sort.Strings(files)
	return files, nil
}
