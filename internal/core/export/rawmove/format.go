package rawmove

import (
	"bytes"

	"github.com/zeusync/moco/internal/core/axis"
	"github.com/zeusync/moco/pkg/floatfmt"
	"github.com/zeusync/moco/pkg/generic"
)

var buffers = generic.NewPool(func() *bytes.Buffer { return new(bytes.Buffer) })

const (
	// FieldWidth is the fixed width of every value column.
	FieldWidth = 12
	// Separator follows every field, including the last one of a row.
	Separator = "    "

	padding = "                "
)

// Format renders the table as Raw Move text: one line per frame, rotation
// columns in degrees, length columns in scene units.
func Format(table Table) []byte {
	buf := buffers.Get()
	defer func() {
		buf.Reset()
		buffers.Put(buf)
	}()
	buf.Grow(len(table.Rows) * (len(table.Components)*(FieldWidth+len(Separator)) + 1))

	for _, row := range table.Rows {
		for c, v := range row {
			if c < len(table.Components) && table.Components[c].IsRotation() {
				v = axis.Degrees(v)
			}
			buf.WriteString(Field(v))
			buf.WriteString(Separator)
		}
		buf.WriteByte('\n')
	}
	return bytes.Clone(buf.Bytes())
}

// Field left-justifies v in FieldWidth characters, cutting longer text.
func Field(v float64) string {
	entry := floatfmt.Repr(v) + padding
	if len(entry) > FieldWidth {
		entry = entry[:FieldWidth]
	}
	return entry
}
