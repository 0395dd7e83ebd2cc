// Package export writes dashboard data as spreadsheets
package export

import (
	"fmt"
	"io"
	"time"

	"datavault360/internal/client"

	"github.com/xuri/excelize/v2"
)

var RoomHeader = []string{"Room", "Type", "Speciality", "Status", "Patient", "Scheduled Discharge"}

const (
	roomSheet      = "Rooms"
	analyticsSheet = "Analytics"
	occupancySheet = "Occupancy"
	financialSheet = "Financials"
	inventorySheet = "Inventory"
	timeLayout     = "2006-01-02 15:04"
)

// Rooms writes one row per room in the order given
func Rooms(w io.Writer, rooms []client.Room) error {
	f, err := newWorkbook(roomSheet)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := writeHeader(f, roomSheet, RoomHeader, []float64{12, 12, 20, 12, 30, 22}); err != nil {
		return err
	}
	for i, r := range rooms {
		status, patient, discharge := "Available", "", ""
		if occ, ok := client.StateOf(r).(client.Occupied); ok {
			status = "Occupied"
			patient = fmt.Sprintf("#%d", occ.PatientID)
			if r.Patient != nil && r.Patient.User.ID != 0 {
				patient = r.Patient.User.FullName()
			}
			if occ.DischargeAt != nil {
				discharge = occ.DischargeAt.UTC().Format(timeLayout)
			}
		}
		if err := writeRow(f, roomSheet, i+2, r.RoomNumber, r.RoomType, r.Speciality, status, patient, discharge); err != nil {
			return err
		}
	}
	return write(f, w)
}

// Analytics writes the summary counts, per-type occupancy, the monthly ledger and stock levels on their own sheets
func Analytics(w io.Writer, a *client.Analytics) error {
	f, err := newWorkbook(analyticsSheet)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := writeHeader(f, analyticsSheet, []string{"Metric", "Value"}, []float64{28, 14}); err != nil {
		return err
	}
	metrics := []struct {
		name  string
		value int64
	}{
		{"Doctors", a.Doctors},
		{"Patients", a.Patients},
		{"Labs", a.Labs},
		{"Rooms", a.Rooms.Total},
		{"Rooms occupied", a.Rooms.Occupied},
		{"Rooms available", a.Rooms.Available},
		{"Discharges scheduled", a.Rooms.DischargeScheduled},
		{"Lab tests pending", a.LabTests.Pending},
		{"Lab tests completed", a.LabTests.Completed},
		{"Visits (last 30 days)", a.RecentVisits},
		{"Low stock items", a.LowStockItems},
	}
	for i, m := range metrics {
		if err := writeRow(f, analyticsSheet, i+2, m.name, m.value); err != nil {
			return err
		}
	}
	if err := writeRow(f, analyticsSheet, len(metrics)+3, "Generated at", a.GeneratedAt.UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	if _, err := f.NewSheet(occupancySheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := writeHeader(f, occupancySheet, []string{"Room Type", "Total", "Occupied"}, []float64{14, 10, 10}); err != nil {
		return err
	}
	for i, t := range a.ByRoomType {
		if err := writeRow(f, occupancySheet, i+2, t.RoomType, t.Total, t.Occupied); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(financialSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := writeHeader(f, financialSheet, []string{"Month", "Income", "Expense", "Net"}, []float64{12, 14, 14, 14}); err != nil {
		return err
	}
	for i, m := range a.Financials {
		if err := writeRow(f, financialSheet, i+2, m.Month, m.Income, m.Expense, m.Income-m.Expense); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(inventorySheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := writeHeader(f, inventorySheet, []string{"Item", "Category", "Quantity", "Unit", "Status"}, []float64{24, 16, 10, 10, 12}); err != nil {
		return err
	}
	for i, item := range a.Inventory {
		status := "In Stock"
		if item.LowStock {
			status = "Low Stock"
		}
		if err := writeRow(f, inventorySheet, i+2, item.Name, item.Category, item.Quantity, item.Unit, status); err != nil {
			return err
		}
	}
	return write(f, w)
}

func newWorkbook(sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(index)
	return f, nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, widths []float64) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := writeRow(f, sheet, 1, values...); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func write(f *excelize.File, w io.Writer) error {
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
