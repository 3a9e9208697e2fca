package imaging

import (
	"fmt"
	"image"

	billy "github.com/go-git/go-billy/v5"
)

// Info is the header of an image file.
type Info struct {
	Width  int
	Height int
	Format string // Decoder name, e.g. "png".
}

// Square reports whether the image is size×size.
func (i Info) Square(size int) bool {
	return i.Width == size && i.Height == size
}

func (i Info) String() string {
	return fmt.Sprintf("%dx%d %s", i.Width, i.Height, i.Format)
}

// Probe reads only the image header at path.
func Probe(fs billy.Filesystem, path string) (Info, error) {
	f, err := fs.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("probe %s: %w", path, err)
	}
	return Info{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}
