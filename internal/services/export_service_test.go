package services

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Avishake00/schl-scheduler-frontend/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleTimetable() models.DailyTimetable {
	return models.DailyTimetable{
		Date: "2025-05-10",
		Classes: []models.TimetableEntry{
			{ID: "2", Subject: "Quantum Physics", Time: "09:00", Duration: 90, Room: "Lab 203", Teacher: "1"},
			{ID: "1", Subject: "Advanced Mathematics", Time: "11:00", Duration: 60, Room: "TBD", Teacher: "1"},
		},
	}
}

func TestRenderTimetableText(t *testing.T) {
	got := RenderTimetableText(sampleTimetable())

	want := "Timetable for Saturday, May 10, 2025\n\n" +
		"09:00 - Quantum Physics (90 min)\n" +
		"Room: Lab 203\n\n" +
		"11:00 - Advanced Mathematics (60 min)\n" +
		"Room: TBD\n\n"

	if got != want {
		t.Errorf("rendered text mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderTimetableText_EmptyStillEmitsHeader(t *testing.T) {
	got := RenderTimetableText(models.DailyTimetable{Date: "2025-05-12"})

	want := "Timetable for Monday, May 12, 2025\n\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderTimetableText_MissingRoomShowsTBD(t *testing.T) {
	timetable := models.DailyTimetable{
		Date: "2025-05-10",
		Classes: []models.TimetableEntry{
			{ID: "3", Subject: "Organic Chemistry", Time: "14:00", Duration: 60},
		},
	}

	got := RenderTimetableText(timetable)
	if !bytes.Contains([]byte(got), []byte("Room: TBD\n")) {
		t.Errorf("rendered text lacks the TBD room line:\n%q", got)
	}
}

func TestExportText_WritesNamedFile(t *testing.T) {
	dir := t.TempDir()
	exporter := NewTimetableExporter(FileSaver{Dir: dir}, discardLogger())

	if err := exporter.ExportText(sampleTimetable()); err != nil {
		t.Fatalf("ExportText: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "timetable-2025-05-10.txt"))
	if err != nil {
		t.Fatalf("expected export file: %v", err)
	}
	if string(data) != RenderTimetableText(sampleTimetable()) {
		t.Errorf("file content differs from rendered text")
	}
}

func TestExportText_NopSaver(t *testing.T) {
	exporter := NewTimetableExporter(NopSaver{}, discardLogger())
	if err := exporter.ExportText(sampleTimetable()); err != nil {
		t.Fatalf("ExportText with NopSaver: %v", err)
	}
}

func TestRenderTimetableXLSX(t *testing.T) {
	data, err := RenderTimetableXLSX(sampleTimetable())
	if err != nil {
		t.Fatalf("RenderTimetableXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell string
		want string
	}{
		{cell: "A1", want: "Time"},
		{cell: "B1", want: "Subject"},
		{cell: "A2", want: "09:00"},
		{cell: "B2", want: "Quantum Physics"},
		{cell: "D3", want: "TBD"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue("Timetable", tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("cell %s = %q, want %q", tt.cell, got, tt.want)
		}
	}
}
