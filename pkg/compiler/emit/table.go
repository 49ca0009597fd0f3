package emit

import (
	"strings"
)

// TableKind classifies a parsed Markdown table for LLMD emission purposes.
type TableKind int

const (
	TableRaw TableKind = iota
	TableProperty
	TableKeyedMulti
)

var nonInformativeHeaders = map[string]bool{
	"value": true, "description": true, "details": true, "info": true,
	"notes": true, "default": true, "type": true,
}

var boolCellValues = map[string]byte{
	"yes": 'Y', "true": 'Y', "enabled": 'Y',
	"no": 'N', "false": 'N', "disabled": 'N',
}

// ClassifyTable classifies a parsed table as property (exactly 2 columns),
// keyed_multi (3+ columns), or raw, gated in both cases on the first column
// being unique and identifier-like across data rows.
func ClassifyTable(rows [][]string) TableKind {
	if len(rows) < 2 {
		return TableRaw
	}
	header, data := rows[0], rows[1:]
	cols := len(header)
	if !dataRowsUniform(data, cols) || !firstColumnIdentifierLike(data) {
		return TableRaw
	}
	switch {
	case cols == 2:
		return TableProperty
	case cols >= 3:
		return TableKeyedMulti
	default:
		return TableRaw
	}
}

func dataRowsUniform(data [][]string, cols int) bool {
	if len(data) == 0 {
		return false
	}
	for _, r := range data {
		if len(r) != cols {
			return false
		}
	}
	return true
}

func firstColumnIdentifierLike(data [][]string) bool {
	seen := map[string]bool{}
	for _, r := range data {
		v := r[0]
		if seen[v] {
			return false
		}
		seen[v] = true
		if !isIdentifierLike(v) {
			return false
		}
	}
	return true
}

func isIdentifierLike(v string) bool {
	if v == "" {
		return false
	}
	c := v[0]
	ok := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '.' || c == '_' || c == '-'
	if !ok {
		return false
	}
	return len(strings.Fields(v)) <= 4
}

// PropertyColumn reports the normalized header of a property table's value
// column and whether it is "informative" enough to emit a :_col directive.
func PropertyColumn(rows [][]string, compression int) (string, bool) {
	header := NormalizeKey(rows[0][1])
	return header, !nonInformativeHeaders[strings.ToLower(rows[0][1])]
}

// KeyedMultiLines renders a keyed_multi table as a :_cols directive followed
// by one ":key=value" line per data row, value cells joined with "¦".
func KeyedMultiLines(rows [][]string, boolCompress bool, compression int) []string {
	header := rows[0]
	data := rows[1:]
	boolCols := detectBoolColumns(header, data, boolCompress, compression)

	normHeader := make([]string, len(header))
	for i, h := range header {
		normHeader[i] = NormalizeKey(h)
	}
	lines := []string{":_cols=" + strings.Join(normHeader, "¦")}
	for _, r := range data {
		key := NormalizeKey(r[0])
		rest := make([]string, len(r)-1)
		for i, cell := range r[1:] {
			rest[i] = applyBoolCompress(cell, boolCols[i+1])
		}
		lines = append(lines, ":"+key+"="+strings.Join(rest, "¦"))
	}
	return lines
}

// RawTableLines renders a non-structured table as a :_cols= directive
// followed by every row (including the header) as a "¦"-joined content
// line.
func RawTableLines(rows [][]string) []string {
	lines := []string{":_cols="}
	for _, r := range rows {
		lines = append(lines, strings.Join(r, "¦"))
	}
	return lines
}

// detectBoolColumns reports, for each column index, whether every data cell
// in that column (case-insensitively) is a recognized boolean token. Column
// 0 (the key column) is never a boolean column.
func detectBoolColumns(header []string, data [][]string, boolCompress bool, compression int) []bool {
	cols := len(header)
	result := make([]bool, cols)
	if !boolCompress || compression < 2 {
		return result
	}
	for c := 1; c < cols; c++ {
		allBool := len(data) > 0
		for _, r := range data {
			if c >= len(r) {
				allBool = false
				break
			}
			if _, ok := boolCellValues[strings.ToLower(r[c])]; !ok {
				allBool = false
				break
			}
		}
		result[c] = allBool
	}
	return result
}

func applyBoolCompress(cell string, isBoolCol bool) string {
	if !isBoolCol {
		return cell
	}
	if v, ok := boolCellValues[strings.ToLower(cell)]; ok {
		return string(v)
	}
	return cell
}
