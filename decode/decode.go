// Package decode opens image files in any format the standard library or
// golang.org/x/image can read.
package decode

import (
	"bufio"
	"image"
	"io"
	"os"

	// Registered formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Open decodes the image at path, returning the format name alongside it.
// A file that cannot be opened yields a *FileOpenError; one that cannot be
// decoded yields a *DecodeError.
func Open(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", &FileOpenError{Path: path, Err: err}
	}
	defer f.Close()

	return Decode(path, f)
}

// Decode reads an image from r. name is only used in errors.
func Decode(name string, r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, "", &DecodeError{Path: name, Err: err}
	}
	return img, format, nil
}
