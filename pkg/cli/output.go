package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/wolfi-dev/advid/pkg/cli/components/vulnid"
	"github.com/wolfi-dev/advid/pkg/cli/styles"
	"github.com/wolfi-dev/advid/pkg/vuln"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
)

var outputFormats = []string{string(outputTable), string(outputJSON), string(outputYAML)}

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string {
	return string(*f)
}

func (f *outputFormat) Set(v string) error {
	if !lo.Contains(outputFormats, v) {
		return fmt.Errorf("must be one of [%s]", strings.Join(outputFormats, ", "))
	}

	*f = outputFormat(v)
	return nil
}

func (f *outputFormat) Type() string {
	return "format"
}

func addOutputFlag(val *outputFormat, cmd *cobra.Command) {
	*val = outputTable
	cmd.Flags().VarP(val, "output", "o", fmt.Sprintf("output format [%s]", strings.Join(outputFormats, ", ")))
}

// idRecord is the structured form of an advisory ID used for output.
type idRecord struct {
	ID          vuln.ID `json:"id" yaml:"id"`
	Kind        string  `json:"kind" yaml:"kind"`
	Year        *uint32 `json:"year,omitempty" yaml:"year,omitempty"`
	Number      *uint32 `json:"number,omitempty" yaml:"number,omitempty"`
	URL         string  `json:"url,omitempty" yaml:"url,omitempty"`
	Placeholder bool    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

func newIDRecord(id vuln.ID) idRecord {
	r := idRecord{
		ID:          id,
		Kind:        id.Kind().String(),
		Placeholder: id.IsPlaceholder(),
	}

	if year, ok := id.Year(); ok {
		r.Year = lo.ToPtr(year)
	}
	if n, ok := id.NumericalPart(); ok {
		r.Number = lo.ToPtr(n)
	}
	r.URL, _ = id.URL()

	return r
}

func renderIDs(w io.Writer, format outputFormat, ids []vuln.ID) error {
	records := lo.Map(ids, func(id vuln.ID, _ int) idRecord {
		return newIDRecord(id)
	})

	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)

	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()

	default:
		return renderTable(w, records)
	}
}

const columnGap = "  "

func renderTable(w io.Writer, records []idRecord) error {
	rows := [][]string{
		lo.Map([]string{"ID", "KIND", "YEAR", "NUMBER", "URL"}, func(h string, _ int) string {
			return styles.Bold().Render(h)
		}),
	}

	for _, r := range records {
		rows = append(rows, []string{
			vulnid.Hyperlink(r.ID),
			styles.Kind(r.ID.Kind()).Render(r.Kind),
			renderOptionalNumber(r.Year),
			renderOptionalNumber(r.Number),
			renderOptional(r.URL),
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			sb.WriteString(cell)
			if i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
				sb.WriteString(columnGap)
			}
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func renderOptionalNumber(n *uint32) string {
	if n == nil {
		return renderOptional("")
	}
	return strconv.FormatUint(uint64(*n), 10)
}

func renderOptional(s string) string {
	if s == "" {
		return styles.Faint().Render("-")
	}
	return s
}
