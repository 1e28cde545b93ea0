// Package pointio reads and writes the flat text point format consumed and
// produced by hosts of the geometry engine: one point per line, "<x> <y>".
//
// # Format
//
// A line is accepted iff it matches ^(-?\d+) (-?\d+)\s*$ and both coordinates
// fit a signed 32-bit integer; every other line is skipped silently. Readers
// attempt, in order, the character encodings UTF-8, ISO-8859-1, US-ASCII,
// UTF-16, UTF-16BE and UTF-16LE, and fail only if none succeeds. Writers emit
// UTF-8 with a trailing newline per point.
package pointio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aerben/convex-hull/point"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var lineRegexp = regexp.MustCompile(`^(-?\d+) (-?\d+)\s*$`)

// decoder is one attempt in the charset fallback chain.
type decoder struct {
	name   string
	decode func(data []byte) (string, error)
}

// decoders is the fallback chain, in attempt order.
var decoders = []decoder{
	{name: "UTF-8", decode: decodeUTF8},
	{name: "ISO-8859-1", decode: decodeWith(charmap.ISO8859_1)},
	{name: "US-ASCII", decode: decodeASCII},
	{name: "UTF-16", decode: decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM))},
	{name: "UTF-16BE", decode: decodeWith(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM))},
	{name: "UTF-16LE", decode: decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM))},
}

// decodeUTF8 accepts the input only if it is valid UTF-8.
func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("input is not valid UTF-8")
	}
	return string(data), nil
}

// decodeASCII accepts the input only if every byte is 7-bit.
func decodeASCII(data []byte) (string, error) {
	for i, b := range data {
		if b >= 0x80 {
			return "", fmt.Errorf("non-ASCII byte 0x%02x at offset %d", b, i)
		}
	}
	return string(data), nil
}

// decodeWith adapts an x/text encoding into a fallback-chain decoder.
func decodeWith(enc encoding.Encoding) func(data []byte) (string, error) {
	return func(data []byte) (string, error) {
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

// Read reads points from r in the flat text format, trying each encoding of
// the fallback chain in order and parsing with the first one that decodes the
// input.
//
// Lines not matching the point grammar, including lines whose coordinates
// overflow int32, are skipped silently.
//
// Parameters:
//   - r (io.Reader): The source to read from.
//
// Returns:
//   - []point.Point: The accepted points, in file order.
//   - error: The read error, or an error when no encoding in the chain could
//     decode the input.
func Read(r io.Reader) ([]point.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	for _, d := range decoders {
		text, err := d.decode(data)
		if err != nil {
			continue
		}
		return parse(text), nil
	}
	return nil, fmt.Errorf("pointio: no supported encoding could decode the input")
}

// ReadFile reads points from the named file. See [Read].
func ReadFile(name string) ([]point.Point, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// parse extracts the points from decoded text, one line at a time.
func parse(text string) []point.Point {
	var points []point.Point
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		m := lineRegexp.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		x, err := strconv.ParseInt(m[1], 10, 32)
		if err != nil {
			continue
		}
		y, err := strconv.ParseInt(m[2], 10, 32)
		if err != nil {
			continue
		}
		points = append(points, point.New(int32(x), int32(y)))
	}
	return points
}

// Write writes the points to w in the flat text format, "<x> <y>\n" per
// point, encoded as UTF-8.
//
// Parameters:
//   - w (io.Writer): The destination to write to.
//   - points ([]point.Point): The points, written in slice order.
//
// Returns:
//   - error: The first write error encountered, if any.
func Write(w io.Writer, points []point.Point) error {
	buf := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(buf, "%d %d\n", p.X(), p.Y()); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// WriteFile writes the points to the named file, creating or truncating it.
// See [Write].
func WriteFile(name string, points []point.Point) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Write(f, points); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
