package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
)

func TestDocumentsXLSX(t *testing.T) {
	valid := true
	completeness := 85
	extractedAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	docs := []domain.Document{
		{
			ID:           uuid.New(),
			DocumentType: domain.DocTypeCommercialInvoice,
			FileName:     "inv.pdf",
			Status:       domain.ExtractionCompleted,
			IsValid:      &valid,
			Completeness: &completeness,
			ModelUsed:    "gpt-4o",
			ExtractedAt:  &extractedAt,
			CreatedAt:    time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC),
		},
		{
			ID:           uuid.New(),
			DocumentType: domain.DocTypePackingList,
			FileName:     "pl.pdf",
			Status:       domain.ExtractionPending,
			CreatedAt:    time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC),
		},
	}

	data, err := DocumentsXLSX(docs)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two document rows")

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Document Type", rows[0][1])

	assert.Equal(t, "commercial_invoice", rows[1][1])
	assert.Equal(t, "yes", rows[1][4])
	assert.Equal(t, "85", rows[1][5])
	assert.Equal(t, "gpt-4o", rows[1][6])

	assert.Equal(t, "packing_list", rows[2][1])
	assert.Equal(t, "pending", rows[2][3])
}

func TestDocumentsXLSX_Empty(t *testing.T) {
	data, err := DocumentsXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
