package revenant

import (
	"os"
	"path/filepath"

	"github.com/bodgit/revenant/freepath"
)

const trimPrefix = "new_"

// Trim copies every byte of file from offset onwards to a new file named
// "new_" followed by the original name, typically to cut off the header.
// The path written is returned.
func (c *Converter) Trim(file string, offset uint64) (string, error) {
	if !isFile(file) {
		return "", &Error{"trim", file, "", ErrContainerNotFound}
	}

	b, err := os.ReadFile(file)
	if err != nil {
		return "", &Error{"trim", file, "", err}
	}

	if offset < uint64(len(b)) {
		b = b[offset:]
	} else {
		b = nil
	}

	path, err := freepath.Next(filepath.Join(filepath.Dir(file), trimPrefix+filepath.Base(file)))
	if err != nil {
		return "", &Error{"trim", file, "", err}
	}

	if err := createNew(path, b); err != nil {
		return "", &Error{"trim", file, "", err}
	}

	c.logger.Printf("Copied %d bytes of \"%s\" to \"%s\"\n", len(b), file, path)

	return path, nil
}
