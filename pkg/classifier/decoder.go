package classifier

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Decoder maps class indices back to fertilizer names.
type Decoder struct {
	classes []string
}

func NewDecoder(classes []string) *Decoder {
	return &Decoder{classes: append([]string(nil), classes...)}
}

// LoadLabelsFile reads one class label per line; blank lines and lines
// starting with '#' are skipped.
func LoadLabelsFile(path string) (*Decoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var classes []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		classes = append(classes, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, fmt.Errorf("%s: no labels", path)
	}
	return NewDecoder(classes), nil
}

func (d *Decoder) Decode(idx int) (string, error) {
	if idx < 0 || idx >= len(d.classes) {
		return "", fmt.Errorf("%w: %d", ErrUnknownClass, idx)
	}
	return d.classes[idx], nil
}

func (d *Decoder) Len() int { return len(d.classes) }
