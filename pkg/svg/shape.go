package svg

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/satopan/dtreeviz/pkg/errors"
)

// Shape holds the dimensions stated in an SVG header line.
type Shape struct {
	Width  float64
	Height float64
}

// ReadShape extracts width and height from the <svg ...> header line of
// the file at path.
//
// The header is located by text scanning, never by XML parsing: the first
// line that starts with "<svg " is split into key=value tokens, and the
// width and height values are read with surrounding quotes and any "pt"
// unit suffix stripped. Matplotlib states both on that line:
//
//	<svg height="122.511795pt" version="1.1" width="451.265312pt" xmlns="...">
//
// ReadShape fails with [errors.ErrCodeFileAccess] if the file cannot be
// opened or read, and with [errors.ErrCodeParse] if no header line is
// found or the dimensions are missing or not numeric.
func ReadShape(path string) (Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return Shape{}, errors.Wrap(errors.ErrCodeFileAccess, err, "open %q", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "<svg ") {
			return parseShapeLine(strings.TrimPrefix(line, "<svg "), path)
		}
	}
	if err := scanner.Err(); err != nil {
		return Shape{}, errors.Wrap(errors.ErrCodeFileAccess, err, "read %q", path)
	}
	return Shape{}, errors.New(errors.ErrCodeParse, "%q has no svg header line", path)
}

// parseShapeLine reads width and height out of the attribute text of a
// header line. Tokens that are not a single key=value pair are skipped.
func parseShapeLine(args, path string) (Shape, error) {
	dims := make(map[string]string)
	for _, arg := range strings.Fields(args) {
		parts := strings.Split(arg, "=")
		if len(parts) != 2 {
			continue
		}
		dims[parts[0]] = strings.Trim(strings.Trim(parts[1], `"`), "pt")
	}

	w, werr := strconv.ParseFloat(dims["width"], 64)
	h, herr := strconv.ParseFloat(dims["height"], 64)
	if werr != nil || herr != nil {
		return Shape{}, errors.New(errors.ErrCodeParse, "%q header line has no usable width/height", path)
	}
	return Shape{Width: w, Height: h}, nil
}
