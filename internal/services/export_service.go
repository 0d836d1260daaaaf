package services

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Avishake00/schl-scheduler-frontend/internal/models"
)

const (
	mimeTextPlain = "text/plain"
	mimeXLSX      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Saver isolates the environment-boundary "save a file" effect so the
// exporter stays testable outside a browser-like host.
type Saver interface {
	Save(filename, mimeType string, data []byte) error
}

// FileSaver writes exports into a directory on disk.
type FileSaver struct {
	Dir string
}

func (s FileSaver) Save(filename, _ string, data []byte) error {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return nil
}

// NopSaver discards exports; the double for hosts with no file surface.
type NopSaver struct{}

func (NopSaver) Save(string, string, []byte) error { return nil }

// RenderTimetableText renders a daily timetable as a flat text document:
// a header naming the day, then one block per entry separated by blank
// lines. An empty timetable still emits the header.
func RenderTimetableText(timetable models.DailyTimetable) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Timetable for %s, %s\n\n", dayOfWeek(timetable.Date), formatDate(timetable.Date))

	for _, entry := range timetable.Classes {
		room := entry.Room
		if room == "" {
			room = "TBD"
		}
		fmt.Fprintf(&b, "%s - %s (%d min)\n", entry.Time, entry.Subject, entry.Duration)
		fmt.Fprintf(&b, "Room: %s\n\n", room)
	}

	return b.String()
}

// RenderTimetableXLSX renders the same view as a single-sheet workbook.
func RenderTimetableXLSX(timetable models.DailyTimetable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Timetable"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []string{"Time", "Subject", "Duration (min)", "Room", "Teacher"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, entry := range timetable.Classes {
		row := i + 2
		values := []interface{}{entry.Time, entry.Subject, entry.Duration, entry.Room, entry.Teacher}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// TimetableExporter packages rendered timetables as downloadable files.
type TimetableExporter struct {
	saver  Saver
	logger *slog.Logger
}

func NewTimetableExporter(saver Saver, logger *slog.Logger) *TimetableExporter {
	return &TimetableExporter{
		saver:  saver,
		logger: logger,
	}
}

// ExportText saves "timetable-<date>.txt" with the rendered document.
func (e *TimetableExporter) ExportText(timetable models.DailyTimetable) error {
	filename := fmt.Sprintf("timetable-%s.txt", timetable.Date)
	content := RenderTimetableText(timetable)

	if err := e.saver.Save(filename, mimeTextPlain, []byte(content)); err != nil {
		return err
	}

	e.logger.Info("timetable exported", "file", filename, "entries", len(timetable.Classes))
	return nil
}

// ExportXLSX saves "timetable-<date>.xlsx".
func (e *TimetableExporter) ExportXLSX(timetable models.DailyTimetable) error {
	filename := fmt.Sprintf("timetable-%s.xlsx", timetable.Date)

	data, err := RenderTimetableXLSX(timetable)
	if err != nil {
		return err
	}
	if err := e.saver.Save(filename, mimeXLSX, data); err != nil {
		return err
	}

	e.logger.Info("timetable exported", "file", filename, "entries", len(timetable.Classes))
	return nil
}

func dayOfWeek(date string) string {
	parsed, err := ParseClassDate(date)
	if err != nil {
		return date
	}
	return parsed.Format("Monday")
}

func formatDate(date string) string {
	parsed, err := ParseClassDate(date)
	if err != nil {
		return date
	}
	return parsed.Format("Jan 2, 2006")
}
