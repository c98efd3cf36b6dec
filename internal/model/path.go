package model

// Path represents a file system path.
type Path string

// Format selects how evaluations are rendered.
type Format string

const (
	// FormatPlain prints only the message line of each evaluation.
	FormatPlain Format = "plain"
	// FormatTable renders inputs, intermediate sums, result and verdict as a table.
	FormatTable Format = "table"
)

// ParseFormat maps a user supplied format name to a Format.
// Unknown names fall back to FormatPlain.
func ParseFormat(s string) Format {
	switch Format(s) {
	case FormatTable:
		return FormatTable
	default:
		return FormatPlain
	}
}
