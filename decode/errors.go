package decode

import (
	"errors"
	"fmt"
	"io/fs"
)

// FileOpenError reports an input file that is missing or unreadable.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	// *fs.PathError already names the file
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return fmt.Sprintf("file open error: %s: %v", e.Path, pathErr.Err)
	}
	return fmt.Sprintf("file open error: %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// DecodeError reports image data that is corrupt or in an unknown format.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
