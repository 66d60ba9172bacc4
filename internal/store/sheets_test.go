package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
)

func TestRecordToRowSalaryIsNumeric(t *testing.T) {
	rec := &model.CandidateRecord{
		ID:             "c-1",
		Name:           "Jane Doe",
		ExpectedSalary: "$85,000 per year",
	}
	row := recordToRow(rec)

	assert.Equal(t, "c-1", row[0])
	assert.Equal(t, "Jane Doe", row[1])
	assert.Equal(t, "85000", row[8], "salary column must hold the parsed integer")
}

func TestRecordToRowUnparseableSalary(t *testing.T) {
	row := recordToRow(&model.CandidateRecord{ID: "c-1", ExpectedSalary: "negotiable"})
	assert.Equal(t, "", row[8])
}

func TestRowToRecord(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := &model.CandidateRecord{
		ID:                "c-1",
		Name:              "Jane Doe",
		Email:             "jane@example.com",
		CurrentJobTitle:   "Senior Software Engineer",
		YearsOfExperience: "5 years",
		ParsingMethod:     model.MethodPDFText,
		CreatedAt:         created,
		UpdatedAt:         created,
	}

	got := rowToRecord(recordToRow(rec))

	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Name, got.Name)
	assert.Equal(t, rec.Email, got.Email)
	assert.Equal(t, rec.CurrentJobTitle, got.CurrentJobTitle)
	assert.Equal(t, rec.YearsOfExperience, got.YearsOfExperience)
	assert.Equal(t, rec.ParsingMethod, got.ParsingMethod)
	assert.True(t, got.CreatedAt.Equal(created))
}

func TestRowToRecordShortRow(t *testing.T) {
	got := rowToRecord([]interface{}{"c-1", "Jane Doe"})
	assert.Equal(t, "c-1", got.ID)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Empty(t, got.Email)
	assert.True(t, got.CreatedAt.IsZero())
}

func TestSheetColumnsMatchLastColumn(t *testing.T) {
	// lastColumn is "T", the 20th column
	assert.Len(t, sheetColumns, 20)
}
