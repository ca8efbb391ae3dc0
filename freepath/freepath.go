/*
Package freepath derives file paths that do not collide with existing files.
*/
package freepath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Next returns path if nothing exists there. Otherwise it returns the first
// of "stem(01).ext", "stem(02).ext", ... that does not exist.
func Next(path string) (string, error) {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	candidate := path
	for i := 1; ; i++ {
		switch _, err := os.Lstat(candidate); {
		case errors.Is(err, os.ErrNotExist):
			return candidate, nil
		case err != nil:
			return "", err
		}
		candidate = fmt.Sprintf("%s(%02d)%s", stem, i, ext)
	}
}
