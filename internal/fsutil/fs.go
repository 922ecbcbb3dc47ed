package fsutil

import (
	"fmt"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
)

// NewFs roots an afero.Fs at an existing directory.
func NewFs(dir string) (afero.Fs, error) {
	fs := afero.NewOsFs()
	if exists, err := afero.DirExists(fs, dir); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.Errorf("dir %s not exists", dir)
	}
	return afero.NewBasePathFs(fs, dir), nil
}

// WriteFile writes data to a temporary sibling of name and renames it into
// place, so readers see either the old file or the complete new one.
func WriteFile(fs afero.Fs, name string, data []byte, perm os.FileMode) error {
	dir := path.Dir(name)
	if exists, err := afero.DirExists(fs, dir); err != nil {
		return err
	} else if !exists {
		if err2 := fs.MkdirAll(dir, 0755); err2 != nil {
			return err2
		}
	}

	tmp := fmt.Sprintf("%s.%s.tmp", name, xid.New().String())
	if err := afero.WriteFile(fs, tmp, data, perm); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("write temp file failed: %w", err)
	}

	if err := fs.Rename(tmp, name); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("rename temp file failed: %w", err)
	}

	return nil
}
