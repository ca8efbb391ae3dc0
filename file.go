package revenant

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeFileAtomic replaces file with b via a temporary file in the same
// directory so that file is never left partially written. The existing
// permissions are kept.
func writeFileAtomic(file string, b []byte) error {
	info, err := os.Stat(file)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(file), "."+filepath.Base(file)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temporary file: %w", err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, file); err != nil {
		return fmt.Errorf("replacing %s: %w", file, err)
	}

	success = true
	return nil
}

// createExclusive creates file, which must not already exist, and fills it
// using write. The file is removed again if write fails.
func createExclusive(file string, write func(io.Writer) error) error {
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(file)
		return err
	}

	return f.Close()
}

// createNew writes b to a file that must not already exist.
func createNew(file string, b []byte) error {
	return createExclusive(file, func(w io.Writer) error {
		_, err := w.Write(b)
		return err
	})
}
