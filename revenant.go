/*
Package revenant converts the packed-pixel images stored in Revenant .dat
files to and from BMP files.

Where the pixels live inside each .dat file is not recorded in the file
itself; it is looked up in a catalog, see package registry. A .dat file may
hold several images. The one tagged "main" stands for the whole file and
extracting or inserting it also processes every other image in the file.
*/
package revenant

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/revenant/registry"
)

const rasterExt = ".bmp"

var (
	// ErrContainerNotFound is returned when the .dat file does not exist.
	ErrContainerNotFound = errors.New("container not found")
	// ErrRasterNotFound is returned when the image to insert does not exist.
	ErrRasterNotFound = errors.New("raster not found")
	// ErrRegistryUnavailable is returned when the catalog cannot be read.
	ErrRegistryUnavailable = registry.ErrUnavailable
	// ErrUnknownLayout is returned when the catalog has no entry for the
	// file and tag.
	ErrUnknownLayout = errors.New("unknown layout")
)

// Error records the operation, file and tag that failed.
type Error struct {
	Op   string
	File string
	Tag  string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s [%s]: %v", e.Op, e.File, e.Tag, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Converter extracts and inserts images using the catalog at a given path.
// The catalog is read afresh by every operation.
type Converter struct {
	registry string
	logger   *log.Logger
}

// New returns a Converter that reads its catalog from registry.
func New(registry string, logger *log.Logger) *Converter {
	return &Converter{
		registry: registry,
		logger:   logger,
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// RasterName returns the canonical image filename for the given .dat file
// and tag, e.g. "menus.dat" and "main" gives "menus_main.bmp".
func RasterName(file, tag string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + "_" + tag + rasterExt
}

func (c *Converter) openRegistry(op, file, tag string) (*registry.Registry, error) {
	reg, err := registry.Open(c.registry)
	if err != nil {
		return nil, &Error{op, file, tag, err}
	}
	return reg, nil
}

// plan returns the segments to process for a request. The primary tag
// covers the whole file, primary first, anything else covers just the one
// segment.
func (c *Converter) plan(reg *registry.Registry, op, file, tag string) ([]registry.Descriptor, error) {
	name := filepath.Base(file)

	d, ok := reg.Lookup(name, tag)
	if !ok {
		return nil, &Error{op, file, tag, ErrUnknownLayout}
	}

	if tag != registry.Primary {
		if siblings := reg.Siblings(name, tag); len(siblings) > 0 {
			c.logger.Printf("Only processing \"%s\" of \"%s\", use \"%s\" for all %d segments\n", tag, file, registry.Primary, len(siblings)+1)
		}
		return []registry.Descriptor{d}, nil
	}

	return append([]registry.Descriptor{d}, reg.Siblings(name, tag)...), nil
}

// Skipped returns the segments of file that a request for tag leaves
// untouched. It is empty for the primary tag, which covers the whole file.
func (c *Converter) Skipped(file, tag string) ([]registry.Descriptor, error) {
	reg, err := c.openRegistry("plan", file, tag)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(file)
	if _, ok := reg.Lookup(name, tag); !ok {
		return nil, &Error{"plan", file, tag, ErrUnknownLayout}
	}
	if tag == registry.Primary {
		return nil, nil
	}

	return reg.Siblings(name, tag), nil
}
