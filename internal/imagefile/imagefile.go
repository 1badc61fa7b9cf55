// Package imagefile writes finished framebuffers to disk.
package imagefile

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/Faultbox/raytracer/internal/engine/framebuffer"
)

// Format identifies an output encoding.
type Format string

// Supported formats.
const (
	PPM  Format = "ppm"
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "ppm", "p3":
		return PPM, nil
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("unsupported image format %q", name)
	}
}

// FormatFromPath picks a format from the file extension. Unknown extensions fall back to PPM.
func FormatFromPath(path string) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if f, err := ParseFormat(ext); err == nil {
		return f
	}
	return PPM
}

// Encode writes fb to w in the given format.
func Encode(w io.Writer, fb *framebuffer.Framebuffer, f Format) error {
	switch f {
	case PPM:
		return EncodePPM(w, fb)
	case PNG:
		return png.Encode(w, fb.Image())
	case BMP:
		return bmp.Encode(w, fb.Image())
	case TIFF:
		return tiff.Encode(w, fb.Image(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %q", f)
	}
}

// EncodePPM writes an ASCII "P3" image: a three-line header, then one line per row
// with space-separated "R G B" triples left to right.
func EncodePPM(w io.Writer, fb *framebuffer.Framebuffer) error {
	bw := bufio.NewWriter(w)
	width, height := fb.Width(), fb.Height()

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)

	var line []byte
	for y := 0; y < height; y++ {
		line = line[:0]
		for x := 0; x < width; x++ {
			if x > 0 {
				line = append(line, ' ')
			}
			r, g, b := fb.At(x, y)
			line = strconv.AppendUint(line, uint64(r), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(g), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(b), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes fb to path. An empty format is inferred from the extension.
func Save(path string, fb *framebuffer.Framebuffer, f Format) error {
	if f == "" {
		f = FormatFromPath(path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := Encode(file, fb, f); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", f, err)
	}
	return file.Close()
}
