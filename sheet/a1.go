package sheet

import (
	"fmt"
	"strings"
)

// columnName converts a 1-indexed column number to its A1 letter form
// e.g. 1 becomes 'A', 27 becomes 'AA'.
func columnName(col int) string {
	name := ""

	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}

	return name
}

// cellRef formats a 1-indexed (column, row) pair as an A1 cell reference.
func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", columnName(col), row)
}

// rangeRef prefixes a cell or cell range with a quoted worksheet name.
func rangeRef(sheetName, cells string) string {
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(sheetName, "'", "''"), cells)
}
