// Package scan reads terrain scans mailed by the in-world scanner.
//
// A scan is an email whose body contains a JSON object like
//
//	{"region": "Foo", "scale": 35.2, "offset": 20.1, "elevs": ["00ff10...", ...]}
//
// where every elevs entry is one row of two-character hex bytes.
package scan

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gruppe-adler/regionsculpt/internal/elevation"
)

// ErrNoJSON is returned when a file does not contain a scan object.
var ErrNoJSON = errors.New("unable to find JSON data")

// Number accepts both JSON numbers and numeric strings.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid number %s", elevation.ErrMalformedInput, data)
	}

	*n = Number(f)
	return nil
}

// Scan represents the structure of the JSON sent by the scanner
type Scan struct {
	Region string   `json:"region"`
	Scale  *Number  `json:"scale"`
	Offset *Number  `json:"offset"`
	Elevs  []string `json:"elevs"`
}

// Read scan from given path
func Read(path string) (*Scan, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse reads an email and decodes the scan embedded in it.
func Parse(r io.Reader) (*Scan, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSON(string(body))
	if err != nil {
		return nil, err
	}

	var s Scan
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		if errors.Is(err, elevation.ErrMalformedInput) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", elevation.ErrMalformedInput, err)
	}

	if s.Region == "" {
		return nil, fmt.Errorf("%w: region is missing", elevation.ErrMalformedInput)
	}
	if s.Scale == nil {
		return nil, fmt.Errorf("%w: scale is missing", elevation.ErrMalformedInput)
	}
	if s.Offset == nil {
		return nil, fmt.Errorf("%w: offset is missing", elevation.ErrMalformedInput)
	}
	if len(s.Elevs) == 0 {
		return nil, fmt.Errorf("%w: elevs is missing", elevation.ErrMalformedInput)
	}

	return &s, nil
}

// ExtractJSON cuts the JSON object out of an email. The object has to start
// at the beginning of a line after the mail headers.
func ExtractJSON(text string) (string, error) {
	pos := strings.Index(text, "\n{")
	if pos < 1 {
		return "", ErrNoJSON
	}

	body := text[pos+1:]

	end := strings.LastIndex(body, "}")
	if end < 0 {
		return "", ErrNoJSON
	}

	return body[:end+1], nil
}

// UnpackRow decodes one row of two-character hex bytes.
func UnpackRow(row string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(row))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", elevation.ErrMalformedInput, err)
	}
	return b, nil
}

// Rows decodes all elevation rows.
func (s *Scan) Rows() ([][]byte, error) {
	rows := make([][]byte, len(s.Elevs))

	for i, e := range s.Elevs {
		row, err := UnpackRow(e)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = row
	}

	return rows, nil
}

// Grid decodes the rows into an elevation grid of raw samples.
func (s *Scan) Grid() (*elevation.Grid, error) {
	rows, err := s.Rows()
	if err != nil {
		return nil, err
	}

	return elevation.FromBytes(rows)
}
