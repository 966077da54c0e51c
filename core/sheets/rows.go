package sheets

import "intl-sheets/core/reconcile"

// BaseRange returns the two-column range of a base-language tab, below the header row.
func BaseRange(tab string) string {
	return tab + "!A2:B"
}

// SecondaryRange returns the three-column range of a secondary-language tab, below the header row.
func SecondaryRange(tab string) string {
	return tab + "!A2:C"
}

// BaseRowsFromValues converts raw base-language rows. The API omits
// trailing empty cells, so short rows are padded.
func BaseRowsFromValues(values [][]string) []reconcile.BaseRow {
	rows := make([]reconcile.BaseRow, 0, len(values))
	for _, v := range values {
		rows = append(rows, reconcile.BaseRow{
			ID:      cell(v, 0),
			Message: cell(v, 1),
		})
	}
	return rows
}

// TranslationRowsFromValues converts raw secondary-language rows.
func TranslationRowsFromValues(values [][]string) []reconcile.TranslationRow {
	rows := make([]reconcile.TranslationRow, 0, len(values))
	for _, v := range values {
		rows = append(rows, reconcile.TranslationRow{
			ID:      cell(v, 0),
			Ref:     cell(v, 1),
			Message: cell(v, 2),
		})
	}
	return rows
}

// BaseRowsToValues converts base-language rows to cells.
func BaseRowsToValues(rows []reconcile.BaseRow) [][]string {
	values := make([][]string, 0, len(rows))
	for _, r := range rows {
		values = append(values, []string{r.ID, r.Message})
	}
	return values
}

// TranslationRowsToValues converts secondary-language rows to cells.
func TranslationRowsToValues(rows []reconcile.TranslationRow) [][]string {
	values := make([][]string, 0, len(rows))
	for _, r := range rows {
		values = append(values, []string{r.ID, r.Ref, r.Message})
	}
	return values
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
