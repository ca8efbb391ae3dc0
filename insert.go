package revenant

import (
	"errors"
	"os"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/bodgit/revenant/image"
	"github.com/bodgit/revenant/registry"

	// Rasters may have been edited and saved in any of these formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// splice overwrites the two byte pairs of b that start within
// [offset, offset+len(pixels)) with pixels, in order. Pairs are aligned to
// the start of b; a trailing odd byte is never touched.
func splice(b []byte, offset int, pixels []byte) {
	end := offset + len(pixels)
	j := 0
	for i := 0; i+1 < len(b); i += 2 {
		if i >= offset && i < end {
			b[i], b[i+1] = pixels[j], pixels[j+1]
			j += 2
		}
	}
}

func (c *Converter) insertSegment(file string, b []byte, d registry.Descriptor, raster string) error {
	m, err := imgio.Open(raster)
	if err != nil {
		return err
	}

	if bounds := m.Bounds(); bounds.Dx() != int(d.Width) || bounds.Dy() != int(d.Height) {
		c.logger.Printf("\"%s\" is %dx%d but segment \"%s\" of \"%s\" is %dx%d\n", raster, bounds.Dx(), bounds.Dy(), d.Tag, file, d.Width, d.Height)
	}

	pixels := image.Encode(m)
	if end := int(d.Offset) + len(pixels); end > len(b) {
		c.logger.Printf("\"%s\" ends at %d, beyond the end of \"%s\" at %d\n", raster, end, file, len(b))
	}

	splice(b, int(d.Offset), pixels)

	c.logger.Printf("Inserted \"%s\" into \"%s\" of \"%s\"\n", raster, d.Tag, file)

	return nil
}

// Insert encodes the BMP file previously extracted for tag and writes it
// back over the matching segment of file. If tag is the primary tag every
// other segment with an image alongside is inserted as well. Bytes outside
// the segments are preserved and file is replaced in one step, so a failure
// leaves it untouched.
func (c *Converter) Insert(file, tag string) error {
	var errs []error
	if !isFile(file) {
		errs = append(errs, ErrContainerNotFound)
	}
	if !isFile(RasterName(file, tag)) {
		errs = append(errs, ErrRasterNotFound)
	}
	if len(errs) > 0 {
		return &Error{"insert", file, tag, errors.Join(errs...)}
	}

	reg, err := c.openRegistry("insert", file, tag)
	if err != nil {
		return err
	}

	plan, err := c.plan(reg, "insert", file, tag)
	if err != nil {
		return err
	}

	b, err := os.ReadFile(file)
	if err != nil {
		return &Error{"insert", file, tag, err}
	}

	for _, d := range plan {
		raster := RasterName(file, d.Tag)
		if d.Tag != tag && !isFile(raster) {
			c.logger.Printf("Skipping \"%s\" of \"%s\", \"%s\" not found\n", d.Tag, file, raster)
			continue
		}

		if err := c.insertSegment(file, b, d, raster); err != nil {
			return &Error{"insert", file, d.Tag, err}
		}
	}

	if err := writeFileAtomic(file, b); err != nil {
		return &Error{"insert", file, tag, err}
	}

	return nil
}
