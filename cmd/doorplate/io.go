package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"doorplate/internal/fsutil"
)

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filepath.Clean(name))
}

// outputFs roots a filesystem at the directory of name.
func outputFs(name string) (afero.Fs, string, error) {
	fs, err := fsutil.NewFs(filepath.Dir(name))
	if err != nil {
		return nil, "", err
	}
	return fs, filepath.Base(name), nil
}

func writeOutput(name string, data []byte) error {
	if name == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	fs, base, err := outputFs(name)
	if err != nil {
		return err
	}
	return fsutil.WriteFile(fs, base, data, 0644)
}
