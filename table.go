package main

import "strings"

// Table is a LIMS export held as header plus rows keyed by column name.
// An empty cell is a missing value.
type Table struct {
	Title []string
	Rows  []map[string]string
}

func NewTable(title []string, rows []map[string]string) *Table {
	if rows == nil {
		rows = []map[string]string{}
	}
	return &Table{Title: title, Rows: rows}
}

func (t *Table) Shape() (rows, cols int) {
	return len(t.Rows), len(t.Title)
}

func (t *Table) HasColumn(name string) bool {
	for _, key := range t.Title {
		if key == name {
			return true
		}
	}
	return false
}

func (t *Table) Column(name string) []string {
	var values = make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}

// Filter keeps the rows for which keep returns true. Rows are shared, not copied.
func (t *Table) Filter(keep func(row map[string]string) bool) *Table {
	var rows []map[string]string
	for _, row := range t.Rows {
		if keep(row) {
			rows = append(rows, row)
		}
	}
	return NewTable(t.Title, rows)
}

// Equal keeps the rows whose column equals value.
func (t *Table) Equal(column, value string) *Table {
	return t.Filter(func(row map[string]string) bool {
		return row[column] == value
	})
}

// Prefix returns a copy with every column renamed to prefix+name.
func (t *Table) Prefix(prefix string) *Table {
	var title = make([]string, len(t.Title))
	for i, key := range t.Title {
		title[i] = prefix + key
	}
	var rows = make([]map[string]string, len(t.Rows))
	for i, row := range t.Rows {
		var item = make(map[string]string, len(row))
		for key, value := range row {
			item[prefix+key] = value
		}
		rows[i] = item
	}
	return NewTable(title, rows)
}

// AddColumn sets column name on every row, in place.
func (t *Table) AddColumn(name string, value func(row map[string]string) string) {
	if !t.HasColumn(name) {
		t.Title = append(t.Title, name)
	}
	for _, row := range t.Rows {
		row[name] = value(row)
	}
}

// LeftJoin keeps every row of t and copies in the columns of each right row
// where t[leftOn] == right[rightOn]. A row with several matches is repeated,
// a row without match keeps the right columns missing. Missing keys never match.
func (t *Table) LeftJoin(right *Table, leftOn, rightOn string) *Table {
	var index = make(map[string][]map[string]string)
	for _, row := range right.Rows {
		key := row[rightOn]
		if key == "" {
			continue
		}
		index[key] = append(index[key], row)
	}

	var title = mergeTitle(t.Title, right.Title)
	var rows []map[string]string
	for _, row := range t.Rows {
		matches := index[row[leftOn]]
		if row[leftOn] == "" || len(matches) == 0 {
			rows = append(rows, joinRow(row, nil))
			continue
		}
		for _, match := range matches {
			rows = append(rows, joinRow(row, match))
		}
	}
	return NewTable(title, rows)
}

// DropEmptyColumns removes the columns that are missing on every row.
func (t *Table) DropEmptyColumns() *Table {
	var title []string
	for _, key := range t.Title {
		var empty = true
		for _, row := range t.Rows {
			if strings.TrimSpace(row[key]) != "" {
				empty = false
				break
			}
		}
		if !empty {
			title = append(title, key)
		}
	}
	var rows = make([]map[string]string, len(t.Rows))
	for i, row := range t.Rows {
		var item = make(map[string]string, len(title))
		for _, key := range title {
			item[key] = row[key]
		}
		rows[i] = item
	}
	return NewTable(title, rows)
}

// DropMissing removes the rows where column is missing.
func (t *Table) DropMissing(column string) *Table {
	return t.Filter(func(row map[string]string) bool {
		return strings.TrimSpace(row[column]) != ""
	})
}

func mergeTitle(left, right []string) []string {
	var title = append([]string{}, left...)
	var seen = make(map[string]bool, len(left))
	for _, key := range left {
		seen[key] = true
	}
	for _, key := range right {
		if !seen[key] {
			title = append(title, key)
			seen[key] = true
		}
	}
	return title
}

func joinRow(left, right map[string]string) map[string]string {
	var item = make(map[string]string, len(left)+len(right))
	for key, value := range left {
		item[key] = value
	}
	for key, value := range right {
		if _, ok := item[key]; !ok || item[key] == "" {
			item[key] = value
		}
	}
	return item
}
