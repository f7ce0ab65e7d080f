package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kavinduUdhara/extract-document-data-automation/internal/entity"
)

// Service produces XLSX bytes summarizing a batch run: one summary sheet
// plus a row per (document, schema) outcome.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportReportXLSX returns an XLSX workbook (as bytes) for the report.
func (s *Service) ExportReportXLSX(report *entity.BatchReport) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Batch Report"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	// Run summary block
	write(1, 1, "Run ID")
	write(2, 1, report.RunID)
	write(1, 2, "Documents Attempted")
	write(2, 2, report.Attempted())
	write(1, 3, "Documents With Artifacts")
	write(2, 3, report.Succeeded())
	write(1, 4, "Documents Fully Failed")
	write(2, 4, report.Failed())

	headers := []string{
		"Document",
		"Extraction",
		"Schema",
		"Status",
		"Rows",
		"Bytes",
		"Output Path",
		"Error",
	}
	headerRow := 6
	for i, h := range headers {
		write(i+1, headerRow, h)
	}

	row := headerRow + 1
	for i := range report.Outcomes {
		o := &report.Outcomes[i]
		if len(o.Schemas) == 0 {
			write(1, row, o.Document.Name)
			write(2, row, string(o.Extraction))
			row++
			continue
		}
		for _, sc := range o.Schemas {
			write(1, row, o.Document.Name)
			write(2, row, string(o.Extraction))
			write(3, row, sc.SchemaName)
			write(4, row, string(sc.Status))
			write(5, row, sc.RowCount)
			write(6, row, sc.ByteSize)
			write(7, row, sc.OutputPath)
			write(8, row, sc.Error)
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		s.logger.Warn("export.close_failed", "error", err)
	}

	s.logger.Info("export.report_xlsx",
		"run_id", report.RunID,
		"rows", row-headerRow-1,
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
