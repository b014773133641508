package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0pain01/Financial-Foresight/src/models"
)

func TestParseStatement(t *testing.T) {
	csvData := `date,description,amount,category,type,payment_method
2024-06-01,Salary Credit,50000,Income,income,Bank Transfer
15-06-2024,Cafe Mocha,120,,,UPI
2024-06-20,Misc Purchase,75
`

	p := NewStatementParser()
	rows, total, err := p.Parse(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, rows, 3)

	assert.Equal(t, "2024-06-01", rows[0].Date)
	assert.Equal(t, "Salary Credit", rows[0].Description)
	assert.Equal(t, "50000", rows[0].Amount)
	assert.Equal(t, "Income", rows[0].Category)
	assert.Equal(t, models.TypeIncome, rows[0].Type)
	assert.Equal(t, "Bank Transfer", rows[0].PaymentMethod)

	// DD-MM-YYYY exports are normalized, empty columns get defaults.
	assert.Equal(t, "2024-06-15", rows[1].Date)
	assert.Equal(t, "Other", rows[1].Category)
	assert.Equal(t, models.TypeExpense, rows[1].Type)
	assert.Equal(t, "UPI", rows[1].PaymentMethod)

	// Trailing columns may be missing entirely.
	assert.Equal(t, "Other", rows[2].Category)
	assert.Equal(t, models.TypeExpense, rows[2].Type)
	assert.Equal(t, "Unknown", rows[2].PaymentMethod)
}

func TestParseStatementSkipsShortRows(t *testing.T) {
	csvData := "date,description,amount\n2024-06-01,Lunch,100\njunk\n"

	p := NewStatementParser()
	rows, total, err := p.Parse(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Lunch", rows[0].Description)
}

func TestParseStatementEmptyFile(t *testing.T) {
	p := NewStatementParser()
	_, _, err := p.Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseStatementHeaderOnly(t *testing.T) {
	p := NewStatementParser()
	rows, total, err := p.Parse(strings.NewReader("date,description,amount\n"))
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rows)
}
