// Package table converts capability data into rows for CLI tables.
package table

import (
	"strconv"
	"strings"

	"github.com/agentstation/modelcaps/pkg/capabilities"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// maxDescription is the widest description shown in wide tables.
const maxDescription = 80

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// DescriptorsToTableData converts the capability table to rows sorted by id.
func DescriptorsToTableData(m capabilities.Map, wide bool) Data {
	headers := []string{"ID", "Provider", "Name", "Context", "Vision"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignCenter}
	if wide {
		headers = append(headers, "Inputs", "Outputs", "Description")
		align = append(align, AlignLeft, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, m.Len())
	for _, id := range m.Keys() {
		d := m[id]
		row := []string{
			orDash(id),
			orDash(d.Provider),
			orDash(d.Name),
			FormatContext(d.ContextLength),
			FormatBool(d.SupportsImage),
		}
		if wide {
			row = append(row,
				FormatModalities(d.Inputs),
				FormatModalities(d.Outputs),
				Truncate(d.Description, maxDescription),
			)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// DescriptorToTableData renders one descriptor as a property/value table.
func DescriptorToTableData(id string, d capabilities.Descriptor) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"ID", orDash(id)},
			{"Provider", orDash(d.Provider)},
			{"Name", orDash(d.Name)},
			{"Context Length", FormatContext(d.ContextLength)},
			{"Supports Image", FormatBool(d.SupportsImage)},
			{"Inputs", FormatModalities(d.Inputs)},
			{"Outputs", FormatModalities(d.Outputs)},
			{"Description", orDash(d.Description)},
		},
		ColumnAlignment: []Align{AlignLeft, AlignLeft},
	}
}

// FormatContext formats a context window, "-" when unknown.
func FormatContext(n int64) string {
	if n <= 0 {
		return "-"
	}
	return FormatNumber(n)
}

// FormatNumber formats large numbers with commas.
func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	sign := ""
	if strings.HasPrefix(str, "-") {
		sign, str = "-", str[1:]
	}
	if len(str) <= 3 {
		return sign + str
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatBool renders a flag as a check mark.
func FormatBool(v bool) string {
	if v {
		return "✓"
	}
	return "-"
}

// FormatModalities joins modality names, "-" when empty.
func FormatModalities(modalities []string) string {
	if len(modalities) == 0 {
		return "-"
	}
	return strings.Join(modalities, ", ")
}

// Truncate collapses whitespace and shortens s to at most limit runes.
func Truncate(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "-"
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
