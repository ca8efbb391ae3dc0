/*
Package registry implements the catalog of known pixel segments inside
Revenant .dat files.

The catalog is a plain text file, conventionally named known.txt, with one
segment per line:

	<filename> <offset> <width> <height> <tag>

Fields are separated by whitespace. Lines that are too short or that do not
parse are ignored, the file is maintained by hand.
*/
package registry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	// Filename is the conventional name of the catalog
	Filename = "known.txt"

	// Primary is the tag of the segment that stands for the whole file
	Primary = "main"

	numFields = 5

	// Larger segments are treated as malformed
	maxPixels = 1 << 24
)

// ErrUnavailable is returned when the catalog cannot be read at all.
var ErrUnavailable = errors.New("registry: unavailable")

// Descriptor locates one rectangular pixel segment within a file.
type Descriptor struct {
	Filename string
	Offset   uint32
	Width    uint32
	Height   uint32
	Tag      string
}

// Pixels returns the number of pixels in the segment.
func (d Descriptor) Pixels() int {
	return int(d.Width) * int(d.Height)
}

// Size returns the number of bytes the segment occupies.
func (d Descriptor) Size() int {
	return d.Pixels() * 2
}

// End returns the offset of the first byte after the segment.
func (d Descriptor) End() int {
	return int(d.Offset) + d.Size()
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s %d %d %d %s", d.Filename, d.Offset, d.Width, d.Height, d.Tag)
}

// Registry is an ordered, read-only collection of descriptors. It is safe
// for concurrent use once loaded.
type Registry struct {
	descriptors []Descriptor
}

func parseUint(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}

func parseLine(line string) (Descriptor, bool) {
	fields := strings.Fields(line)
	if len(fields) < numFields {
		return Descriptor{}, false
	}

	var (
		d   = Descriptor{Filename: fields[0], Tag: fields[4]}
		err error
	)
	if d.Offset, err = parseUint(fields[1]); err != nil {
		return Descriptor{}, false
	}
	if d.Width, err = parseUint(fields[2]); err != nil {
		return Descriptor{}, false
	}
	if d.Height, err = parseUint(fields[3]); err != nil {
		return Descriptor{}, false
	}
	if uint64(d.Width)*uint64(d.Height) > maxPixels {
		return Descriptor{}, false
	}

	return d, true
}

// Load reads a catalog from r. Only errors reading r are returned.
func Load(r io.Reader) (*Registry, error) {
	reg := new(Registry)
	seen := make(map[[2]string]struct{})

	s := bufio.NewScanner(r)
	for s.Scan() {
		d, ok := parseLine(s.Text())
		if !ok {
			continue
		}
		// First record wins
		key := [2]string{d.Filename, d.Tag}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		reg.descriptors = append(reg.descriptors, d)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return reg, nil
}

// Open reads the catalog stored in file. Any failure is wrapped with
// ErrUnavailable.
func Open(file string) (*Registry, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close()

	reg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, file, err)
	}

	return reg, nil
}

// Len returns the number of descriptors
func (reg *Registry) Len() int {
	return len(reg.descriptors)
}

// Lookup returns the descriptor for the given file and tag.
func (reg *Registry) Lookup(filename, tag string) (Descriptor, bool) {
	for _, d := range reg.descriptors {
		if d.Filename == filename && d.Tag == tag {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Siblings returns every descriptor for filename except the one tagged tag,
// in catalog order.
func (reg *Registry) Siblings(filename, tag string) []Descriptor {
	var out []Descriptor
	for _, d := range reg.descriptors {
		if d.Filename == filename && d.Tag != tag {
			out = append(out, d)
		}
	}
	return out
}

// Group returns every descriptor for filename in catalog order.
func (reg *Registry) Group(filename string) []Descriptor {
	var out []Descriptor
	for _, d := range reg.descriptors {
		if d.Filename == filename {
			out = append(out, d)
		}
	}
	return out
}

// Files returns each distinct filename in catalog order.
func (reg *Registry) Files() []string {
	var files []string
	seen := make(map[string]struct{})
	for _, d := range reg.descriptors {
		if _, ok := seen[d.Filename]; !ok {
			seen[d.Filename] = struct{}{}
			files = append(files, d.Filename)
		}
	}
	return files
}

// Contains reports whether there is at least one descriptor for filename.
func (reg *Registry) Contains(filename string) bool {
	for _, d := range reg.descriptors {
		if d.Filename == filename {
			return true
		}
	}
	return false
}
