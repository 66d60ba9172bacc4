// Package export produces XLSX workbooks of parsed candidates for download.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
	"github.com/Pavitra-programmers/Resume-Parser/internal/store"
)

// Service turns stored candidate records into XLSX bytes.
type Service struct {
	store  store.Store
	logger *slog.Logger
}

func NewService(st store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, logger: logger}
}

// ExportCandidatesXLSX returns a workbook with one row per candidate.
// All pages of the store are walked; the resume body is not exported.
func (s *Service) ExportCandidatesXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	var all []*model.CandidateRecord
	var pageToken string
	for {
		recs, next, err := s.store.ListCandidates(ctx, 500, pageToken)
		if err != nil {
			return nil, fmt.Errorf("list candidates: %w", err)
		}
		all = append(all, recs...)
		if next == "" {
			break
		}
		pageToken = next
	}

	f := excelize.NewFile()
	const sheet = "Candidates"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defIdx, _ := f.GetSheetIndex("Sheet1"); defIdx != -1 && defIdx != activeIndex {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Name",
		"Email",
		"Phone",
		"Location",
		"Current Job Title",
		"Years Of Experience",
		"Expected Salary",
		"Skills",
		"Languages",
		"Parsing Method",
		"Created At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, rec := range all {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, rec.Name)
		write(2, rec.Email)
		write(3, rec.Phone)
		write(4, rec.Location)
		write(5, rec.CurrentJobTitle)
		write(6, rec.YearsOfExperience)
		write(7, rec.ExpectedSalary)
		write(8, truncate(rec.Skills, 200))
		write(9, rec.Languages)
		write(10, rec.ParsingMethod)
		if !rec.CreatedAt.IsZero() {
			write(11, rec.CreatedAt.Format("2006-01-02"))
		} else {
			write(11, "")
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 24) // name
	_ = f.SetColWidth(sheet, "B", "B", 30) // email
	_ = f.SetColWidth(sheet, "C", "D", 20)
	_ = f.SetColWidth(sheet, "E", "E", 28) // title
	_ = f.SetColWidth(sheet, "F", "G", 16)
	_ = f.SetColWidth(sheet, "H", "H", 48) // skills
	_ = f.SetColWidth(sheet, "I", "K", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(all),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
