package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"resource-converter/internal/domain"
)

// maxCellWidth keeps long localized texts from wrapping the table.
const maxCellWidth = 40

func newTable(w io.Writer, ascii bool) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	// Keep column names as written, e.g. objectID.
	table.Options(tablewriter.WithConfig(tablewriter.Config{
		Header: tw.CellConfig{
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
	}))
	if ascii {
		table.Options(tablewriter.WithSymbols(&tw.SymbolASCII{}))
	}
	return table
}

func renderTable(w io.Writer, ascii bool, headers []string, rows [][]string) error {
	table := newTable(w, ascii)

	h := make([]any, len(headers))
	for i, col := range headers {
		h[i] = col
	}
	table.Header(h...)

	for _, row := range rows {
		values := make([]any, len(row))
		for i, cell := range row {
			values[i] = cell
		}
		if err := table.Append(values...); err != nil {
			return fmt.Errorf("render row: %w", err)
		}
	}
	return table.Render()
}

func renderProfiles(w io.Writer, ascii bool, profiles []domain.ConnectionProfile, active string) error {
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		mark := ""
		if p.Name == active {
			mark = "*"
		}
		port := ""
		if p.EffectivePort() > 0 {
			port = strconv.Itoa(p.EffectivePort())
		}
		rows = append(rows, []string{mark, p.Name, string(p.DBType), p.Host, port, p.DBName, p.Username, languages(p)})
	}
	return renderTable(w, ascii, []string{"", "name", "dbType", "host", "port", "dbName", "username", "languages"}, rows)
}

func languages(p domain.ConnectionProfile) string {
	var parts []string
	for _, s := range p.AvailableSlots() {
		label := p.SlotLabel(s)
		if label == "" {
			label = "-"
		}
		parts = append(parts, string(s)+"="+label)
	}
	return strings.Join(parts, " ")
}

func checkbox(selected bool) string {
	if selected {
		return "[x]"
	}
	return "[ ]"
}

// cell flattens line breaks and shortens long text.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if r := []rune(s); len(r) > maxCellWidth {
		return string(r[:maxCellWidth-1]) + "…"
	}
	return s
}
