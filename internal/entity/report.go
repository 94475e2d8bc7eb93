package entity

import (
	"bytes"
	"encoding/json"
)

// service input model
type ReportColumn struct {
	Type        string // "vendor-stat" or "question"
	FieldName   string // vendor-stat only
	QuestionId  *int64 // question only
	DisplayName string
}

type ReportCell struct {
	Header string
	Value  string
}

// ReportRow holds one cell per column, in column order. Headers may repeat.
type ReportRow []ReportCell

// Get returns the value of the first cell with the given header.
func (r ReportRow) Get(header string) (string, bool) {
	for _, c := range r {
		if c.Header == header {
			return c.Value, true
		}
	}

	return "", false
}

// MarshalJSON writes the row as an object whose keys keep column order.
func (r ReportRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Header)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// controller model
type ReportResult struct {
	ColumnHeaders []string    `json:"columnHeaders"`
	Rows          []ReportRow `json:"rows"`
	TotalRows     int         `json:"totalRows"`
}

func NewReportResult(headers []string, rows []ReportRow) *ReportResult {
	if rows == nil {
		rows = make([]ReportRow, 0)
	}

	return &ReportResult{ColumnHeaders: headers, Rows: rows, TotalRows: len(rows)}
}
