package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/0pain01/Financial-Foresight/src/models"
	"github.com/0pain01/Financial-Foresight/src/security/validation"
)

// StatementParser converts an exported statement CSV into transaction
// records. Expected columns: date, description, amount, category, type,
// payment method; category and later columns are optional per row.
type StatementParser struct{}

func NewStatementParser() *StatementParser {
	return &StatementParser{}
}

var dmyDatePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// Parse reads the CSV and maps each row to a Transaction. Rows with fewer
// than three usable columns are skipped rather than failing the whole file;
// total reports how many rows were seen including skipped ones.
func (p *StatementParser) Parse(file io.Reader) (rows []models.Transaction, total int, err error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // statement exports vary in trailing columns

	// Read and discard the header row
	if _, err := reader.Read(); err != nil {
		return nil, 0, fmt.Errorf("statement parser: failed to read CSV header: %w", err)
	}

	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, total, fmt.Errorf("statement parser: failed to read CSV record: %w", readErr)
		}
		total++
		if len(record) < 3 {
			continue
		}

		tx := models.Transaction{
			Date:          normalizeDate(strings.TrimSpace(record[0])),
			Description:   strings.TrimSpace(validation.StripUnprintable(record[1])),
			Amount:        strings.TrimSpace(record[2]),
			Category:      columnOr(record, 3, "Other"),
			Type:          columnOr(record, 4, models.TypeExpense),
			PaymentMethod: columnOr(record, 5, "Unknown"),
		}
		rows = append(rows, tx)
	}
	return rows, total, nil
}

// normalizeDate converts DD-MM-YYYY exports to the stored YYYY-MM-DD form.
// Anything else passes through; the enricher falls back to today for dates
// it cannot parse.
func normalizeDate(value string) string {
	if dmyDatePattern.MatchString(value) {
		parts := strings.Split(value, "-")
		return parts[2] + "-" + parts[1] + "-" + parts[0]
	}
	return value
}

func columnOr(record []string, index int, fallback string) string {
	if index < len(record) {
		if v := strings.TrimSpace(record[index]); v != "" {
			return v
		}
	}
	return fallback
}
