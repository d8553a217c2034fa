package models

import "strings"

// ColumnKey identifies a column of the transaction table
type ColumnKey string

const (
	ColumnID       ColumnKey = "id"
	ColumnType     ColumnKey = "tipo"
	ColumnClient   ColumnKey = "cliente"
	ColumnDocument ColumnKey = "documento"
	ColumnValue    ColumnKey = "valor"
	ColumnReceived ColumnKey = "recibido"
	ColumnStatus   ColumnKey = "status"
	ColumnDate     ColumnKey = "fecha"
)

// Column describes a table column and its header label
type Column struct {
	Key   ColumnKey `json:"key" yaml:"key"`
	Label string    `json:"label" yaml:"label"`
}

// AllColumns lists the transaction table columns in display order
var AllColumns = []Column{
	{Key: ColumnID, Label: "ID"},
	{Key: ColumnType, Label: "Tipo"},
	{Key: ColumnClient, Label: "Cliente"},
	{Key: ColumnDocument, Label: "Documento"},
	{Key: ColumnValue, Label: "Valor"},
	{Key: ColumnReceived, Label: "Recibido"},
	{Key: ColumnStatus, Label: "Status"},
	{Key: ColumnDate, Label: "Fecha"},
}

// DefaultVisibleColumns shows every column
func DefaultVisibleColumns() []ColumnKey {
	keys := make([]ColumnKey, len(AllColumns))
	for i, column := range AllColumns {
		keys[i] = column.Key
	}
	return keys
}

// IsKnownColumn reports whether key names a table column
func IsKnownColumn(key ColumnKey) bool {
	for _, column := range AllColumns {
		if column.Key == key {
			return true
		}
	}
	return false
}

// SanitizeColumns drops unknown keys; an empty result falls back to every column
func SanitizeColumns(keys []ColumnKey) []ColumnKey {
	valid := make([]ColumnKey, 0, len(keys))
	for _, key := range keys {
		if IsKnownColumn(key) {
			valid = append(valid, key)
		}
	}
	if len(valid) == 0 {
		return DefaultVisibleColumns()
	}
	return valid
}

// ToggleColumn removes key when present and appends it otherwise
func ToggleColumn(visible []ColumnKey, key ColumnKey) []ColumnKey {
	next := make([]ColumnKey, 0, len(visible)+1)
	found := false
	for _, current := range visible {
		if current == key {
			found = true
			continue
		}
		next = append(next, current)
	}
	if !found {
		next = append(next, key)
	}
	return next
}

func trimSpace(s string) string {
	return strings.TrimSpace(s)
}
