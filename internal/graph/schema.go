package graph

import (
	"bytes"

	"github.com/vektah/gqlparser/v2/formatter"
)

// FormatSchema renders the schema as SDL.
func FormatSchema() string {
	var buf bytes.Buffer
	f := formatter.NewFormatter(&buf, formatter.WithIndent("  "))
	f.FormatSchema(parsedSchema)
	return buf.String()
}
