package export

import (
	"fmt"
	"strings"
)

// Format selects the output encoding.
type Format uint8

const (
	// FormatRaw samples every frame into a fixed-width text table.
	FormatRaw Format = iota
	// FormatArc emits the keyframes and handles as Arc Move XML.
	FormatArc
)

// ParseFormat accepts the names "raw"/"arc" and the panel indices "0"/"1".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw", "0":
		return FormatRaw, nil
	case "arc", "1":
		return FormatArc, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatArc:
		return "arc"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// Extension is the file suffix written for the format.
func (f Format) Extension() string {
	if f == FormatArc {
		return ".arcm"
	}
	return ".txt"
}

func (f Format) description() string {
	if f == FormatArc {
		return "Arc Move XML"
	}
	return "Raw Move"
}
