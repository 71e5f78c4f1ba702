package machineprobe

import (
	"io"
	"strings"
)

// WriteReport renders results as plain text:
//
//	<label>:
//	<value>
//	(blank line)
//
// for block results, and "<label>: <value>" lines for inline results, with a
// blank line after an inline result marked Break.
func WriteReport(w io.Writer, results []Result) error {
	var sb strings.Builder

	for _, r := range results {
		switch r.Layout {
		case LayoutInline:
			sb.WriteString(r.Label)
			sb.WriteString(": ")
			sb.WriteString(r.Value)
			sb.WriteString("\n")

			if r.Break {
				sb.WriteString("\n")
			}
		default:
			sb.WriteString(r.Label)
			sb.WriteString(":\n")
			sb.WriteString(r.Value)
			sb.WriteString("\n\n")
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
