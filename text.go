package img2sh

import (
	"io"
	"strings"
)

// Text is a rendered image: Height() lines of Width tokens each.
type Text struct {
	Width int
	Lines []string
}

func (t *Text) Height() int {
	return len(t.Lines)
}

// String joins the lines, ending each one with a newline.
func (t *Text) String() string {
	var b strings.Builder
	t.WriteTo(&b)
	return b.String()
}

func (t *Text) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range t.Lines {
		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = io.WriteString(w, "\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
