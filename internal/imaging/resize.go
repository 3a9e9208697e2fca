// Package imaging decodes, downscales and re-encodes single texture images.
package imaging

import (
	"fmt"
	"image"
	_ "image/png"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	billy "github.com/go-git/go-billy/v5"

	"github.com/backmassage/pbrdump/internal/config"
)

var filters = map[config.Filter]transform.ResampleFilter{
	config.FilterLinear:     transform.Linear,
	config.FilterNearest:    transform.NearestNeighbor,
	config.FilterBox:        transform.Box,
	config.FilterGaussian:   transform.Gaussian,
	config.FilterMitchell:   transform.MitchellNetravali,
	config.FilterCatmullRom: transform.CatmullRom,
	config.FilterLanczos:    transform.Lanczos,
}

// Resizer scales images to square sizes and writes them as PNG.
type Resizer struct {
	filter transform.ResampleFilter
	encode imgio.Encoder
}

// NewResizer returns a Resizer using the named filter. Unknown names fall
// back to linear; config validation rejects them before this point.
func NewResizer(f config.Filter) *Resizer {
	rf, ok := filters[f]
	if !ok {
		rf = transform.Linear
	}
	return &Resizer{filter: rf, encode: imgio.PNGEncoder()}
}

// Resize scales img to size×size, ignoring aspect ratio.
func (r *Resizer) Resize(img image.Image, size int) image.Image {
	return transform.Resize(img, size, size, r.filter)
}

// ResizeFile decodes src, scales it to size×size and writes dst as PNG,
// returning the number of bytes written.
func (r *Resizer) ResizeFile(fs billy.Filesystem, src, dst string, size int) (int64, error) {
	img, err := Decode(fs, src)
	if err != nil {
		return 0, err
	}
	return r.write(fs, dst, r.Resize(img, size))
}

// Decode reads and decodes the image at path.
func Decode(fs billy.Filesystem, path string) (image.Image, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func (r *Resizer) write(fs billy.Filesystem, path string, img image.Image) (n int64, err error) {
	f, err := fs.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	cw := &countingWriter{w: f}
	if err := r.encode(cw, img); err != nil {
		return cw.n, fmt.Errorf("encode %s: %w", path, err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
