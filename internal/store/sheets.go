package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"google.golang.org/api/sheets/v4"

	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
)

// sheetColumns is the fixed, externally-defined column order of the
// candidates sheet. The header row is written once by EnsureHeader.
var sheetColumns = []string{
	"ID", "Name", "Email", "Phone", "Location", "LinkedinUrl",
	"CurrentJobTitle", "YearsOfExperience", "ExpectedSalary", "Skills",
	"Languages", "Summary", "AreasOfExpertise", "Qualifications",
	"Experience", "Education", "ResumeText", "ParsingMethod",
	"CreatedAt", "UpdatedAt",
}

const lastColumn = "T" // must track len(sheetColumns)

// SheetsStore implements Store on top of a Google Sheets spreadsheet, one
// candidate per row. Updates rewrite the whole row.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsStore creates a Sheets-backed store.
func NewSheetsStore(svc *sheets.Service, spreadsheetID, sheetName string) *SheetsStore {
	if sheetName == "" {
		sheetName = "Candidates"
	}
	return &SheetsStore{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName}
}

// EnsureHeader writes the header row when the sheet is empty.
func (s *SheetsStore) EnsureHeader(ctx context.Context) error {
	rng := fmt.Sprintf("%s!A1:%s1", s.sheetName, lastColumn)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if len(resp.Values) > 0 {
		return nil
	}

	header := make([]interface{}, len(sheetColumns))
	for i, c := range sheetColumns {
		header[i] = c
	}
	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, &sheets.ValueRange{
		Values: [][]interface{}{header},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

func (s *SheetsStore) CreateCandidate(ctx context.Context, rec *model.CandidateRecord) error {
	touch(rec, true)
	rng := fmt.Sprintf("%s!A:%s", s.sheetName, lastColumn)
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, rng, &sheets.ValueRange{
		Values: [][]interface{}{recordToRow(rec)},
	}).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append candidate row: %w", err)
	}
	return nil
}

func (s *SheetsStore) GetCandidate(ctx context.Context, id string) (*model.CandidateRecord, error) {
	rowIdx, row, err := s.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	if rowIdx == 0 {
		return nil, ErrNotFound
	}
	return rowToRecord(row), nil
}

func (s *SheetsStore) UpdateCandidate(ctx context.Context, rec *model.CandidateRecord) error {
	rowIdx, _, err := s.findRow(ctx, rec.ID)
	if err != nil {
		return err
	}
	if rowIdx == 0 {
		return ErrNotFound
	}

	touch(rec, false)
	rng := fmt.Sprintf("%s!A%d:%s%d", s.sheetName, rowIdx, lastColumn, rowIdx)
	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, &sheets.ValueRange{
		Values: [][]interface{}{recordToRow(rec)},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update candidate row: %w", err)
	}
	return nil
}

func (s *SheetsStore) ListCandidates(ctx context.Context, pageSize int32, pageToken string) ([]*model.CandidateRecord, string, error) {
	rows, err := s.readAllRows(ctx)
	if err != nil {
		return nil, "", err
	}

	byID := make(map[string]*model.CandidateRecord, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		rec := rowToRecord(row)
		if rec.ID == "" {
			continue
		}
		byID[rec.ID] = rec
		ids = append(ids, rec.ID)
	}

	page, next, err := paginateIDs(ids, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}
	out := make([]*model.CandidateRecord, 0, len(page))
	for _, id := range page {
		out = append(out, byID[id])
	}
	return out, next, nil
}

// findRow returns the 1-based sheet row holding the given candidate id,
// or 0 when absent.
func (s *SheetsStore) findRow(ctx context.Context, id string) (int, []interface{}, error) {
	rows, err := s.readAllRows(ctx)
	if err != nil {
		return 0, nil, err
	}
	for i, row := range rows {
		if len(row) > 0 && fmt.Sprint(row[0]) == id {
			return i + 2, row, nil // +2: header row plus 1-based indexing
		}
	}
	return 0, nil, nil
}

func (s *SheetsStore) readAllRows(ctx context.Context) ([][]interface{}, error) {
	rng := fmt.Sprintf("%s!A2:%s", s.sheetName, lastColumn)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read candidate rows: %w", err)
	}
	return resp.Values, nil
}

// recordToRow maps a record onto the fixed column order. ExpectedSalary is a
// numeric column in the external schema, so the currency-like string is
// pre-parsed to an integer here.
func recordToRow(rec *model.CandidateRecord) []interface{} {
	salary := ""
	if amount, ok := model.SalaryAmount(rec.ExpectedSalary); ok {
		salary = strconv.FormatInt(amount, 10)
	}
	return []interface{}{
		rec.ID, rec.Name, rec.Email, rec.Phone, rec.Location, rec.LinkedinURL,
		rec.CurrentJobTitle, rec.YearsOfExperience, salary, rec.Skills,
		rec.Languages, rec.Summary, rec.AreasOfExpertise, rec.Qualifications,
		rec.Experience, rec.Education, rec.ResumeText, rec.ParsingMethod,
		rec.CreatedAt.Format(time.RFC3339), rec.UpdatedAt.Format(time.RFC3339),
	}
}

func rowToRecord(row []interface{}) *model.CandidateRecord {
	cell := func(i int) string {
		if i < len(row) && row[i] != nil {
			return fmt.Sprint(row[i])
		}
		return ""
	}
	rec := &model.CandidateRecord{
		ID:                cell(0),
		Name:              cell(1),
		Email:             cell(2),
		Phone:             cell(3),
		Location:          cell(4),
		LinkedinURL:       cell(5),
		CurrentJobTitle:   cell(6),
		YearsOfExperience: cell(7),
		ExpectedSalary:    cell(8),
		Skills:            cell(9),
		Languages:         cell(10),
		Summary:           cell(11),
		AreasOfExpertise:  cell(12),
		Qualifications:    cell(13),
		Experience:        cell(14),
		Education:         cell(15),
		ResumeText:        cell(16),
		ParsingMethod:     cell(17),
	}
	if t, err := time.Parse(time.RFC3339, cell(18)); err == nil {
		rec.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, cell(19)); err == nil {
		rec.UpdatedAt = t
	}
	return rec
}
