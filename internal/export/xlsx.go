package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
)

const sheetName = "Documents"

var headers = []string{
	"ID", "Document Type", "File Name", "Status",
	"Valid", "Completeness %", "Model", "Extracted At", "Created At",
}

// DocumentsXLSX renders the document listing as an XLSX workbook.
func DocumentsXLSX(docs []domain.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("export.DocumentsXLSX: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("export.DocumentsXLSX: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DCE6F1"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("export.DocumentsXLSX: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("export.DocumentsXLSX: %w", err)
		}
	}
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheetName, "A1", endCell, headerStyle); err != nil {
		return nil, fmt.Errorf("export.DocumentsXLSX: %w", err)
	}

	for row, doc := range docs {
		values := []interface{}{
			doc.ID.String(),
			string(doc.DocumentType),
			doc.FileName,
			string(doc.Status),
			formatBool(doc.IsValid),
			formatInt(doc.Completeness),
			doc.ModelUsed,
			formatTime(doc.ExtractedAt),
			doc.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("export.DocumentsXLSX: %w", err)
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 38); err != nil {
		return nil, fmt.Errorf("export.DocumentsXLSX: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "I", 22); err != nil {
		return nil, fmt.Errorf("export.DocumentsXLSX: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export.DocumentsXLSX: %w", err)
	}
	return buf.Bytes(), nil
}

func formatBool(b *bool) string {
	if b == nil {
		return ""
	}
	if *b {
		return "yes"
	}
	return "no"
}

func formatInt(n *int) interface{} {
	if n == nil {
		return ""
	}
	return *n
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
