// file: internals/features/people/export/persons_excel.go
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"careconnect_backend/internals/features/people/dto"
)

const (
	SheetName   = "Persons"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var Header = []string{
	"ID", "Name", "Age", "Gender", "Disability Type", "Disability Severity",
	"Contact Number", "Emergency Contact Name", "Emergency Contact Number",
	"Address", "Medical Conditions", "Resources",
}

// PersonsWorkbook renders one row per person below a frozen, styled header.
func PersonsWorkbook(persons []dto.PersonResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(Header))
	if err != nil {
		return nil, fmt.Errorf("header range: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", style); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", lastCol, 22); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}

	for i, p := range persons {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := personRow(p)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write person %d: %w", p.ID, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func personRow(p dto.PersonResponse) []interface{} {
	names := make([]string, 0, len(p.Resources))
	for _, r := range p.Resources {
		names = append(names, r.Name)
	}
	return []interface{}{
		p.ID,
		p.Name,
		p.Age,
		deref(p.Gender),
		p.DisabilityType,
		p.DisabilitySeverity,
		deref(p.ContactNumber),
		deref(p.EmergencyContactName),
		deref(p.EmergencyContactNumber),
		deref(p.Address),
		strings.Join(p.MedicalConditions, "; "),
		strings.Join(names, "; "),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
