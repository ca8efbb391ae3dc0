package revenant

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/revenant/freepath"
	"github.com/bodgit/revenant/image"
	"github.com/bodgit/revenant/registry"
	"golang.org/x/image/bmp"
)

const containerExt = ".dat"

func (c *Converter) extractSegment(file string, b []byte, d registry.Descriptor) (string, error) {
	if d.End() > len(b) {
		c.logger.Printf("Segment \"%s\" of \"%s\" ends at %d, beyond the end of the file at %d\n", d.Tag, file, d.End(), len(b))
	}

	// Skip the header and any preceding segments
	if int(d.Offset) < len(b) {
		b = b[d.Offset:]
	} else {
		b = nil
	}

	m, n := image.Decode(b, int(d.Width), int(d.Height))
	if n < d.Pixels() {
		c.logger.Printf("Decoded %d of %d pixels of \"%s\" from \"%s\"\n", n, d.Pixels(), d.Tag, file)
	}

	path, err := freepath.Next(RasterName(file, d.Tag))
	if err != nil {
		return "", err
	}

	if err := createExclusive(path, func(w io.Writer) error {
		return bmp.Encode(w, m)
	}); err != nil {
		return "", err
	}

	c.logger.Printf("Extracted \"%s\" of \"%s\" to \"%s\"\n", d.Tag, file, path)

	return path, nil
}

// Extract decodes the segment of file identified by tag and writes it to a
// new BMP file alongside. If tag is the primary tag every other segment of
// file is extracted as well. Existing files are never overwritten, a numeric
// suffix is added instead. The paths written are returned; a failure with one
// segment does not stop the remaining segments from being extracted.
func (c *Converter) Extract(file, tag string) ([]string, error) {
	if !isFile(file) {
		return nil, &Error{"extract", file, tag, ErrContainerNotFound}
	}

	reg, err := c.openRegistry("extract", file, tag)
	if err != nil {
		return nil, err
	}

	plan, err := c.plan(reg, "extract", file, tag)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(file)
	if err != nil {
		return nil, &Error{"extract", file, tag, err}
	}

	var (
		paths []string
		errs  []error
	)
	for _, d := range plan {
		path, err := c.extractSegment(file, b, d)
		if err != nil {
			errs = append(errs, &Error{"extract", file, d.Tag, err})
			continue
		}
		paths = append(paths, path)
	}

	return paths, errors.Join(errs...)
}

// ExtractAll extracts every .dat file in dir that appears in the catalog,
// along with all of its segments. A failure with one file does not stop the
// others; the number of files extracted without error is returned along with
// every failure joined together.
func (c *Converter) ExtractAll(dir string) (int, error) {
	reg, err := c.openRegistry("extract", dir, registry.Primary)
	if err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	var (
		n    int
		errs []error
	)
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.EqualFold(filepath.Ext(entry.Name()), containerExt) {
			continue
		}
		if !reg.Contains(entry.Name()) {
			continue
		}

		if _, err := c.Extract(filepath.Join(dir, entry.Name()), registry.Primary); err != nil {
			c.logger.Println(err)
			errs = append(errs, err)
			continue
		}
		n++
	}

	return n, errors.Join(errs...)
}
