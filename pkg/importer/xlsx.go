package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/travigo/shuttle-planner/pkg/trips"
	"github.com/xuri/excelize/v2"
)

// 9999-12-31, the last date a workbook can hold
const maxExcelSerial = 2958465

// XLSX reads the first worksheet of a workbook, header row first.
type XLSX struct {
	table trips.TripTable
}

func (x *XLSX) ParseFile(reader io.Reader) error {
	workbook, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("could not open xlsx file: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return &trips.SchemaError{Missing: trips.RequiredColumns}
	}

	// Labels keep their displayed text, while dates and counts need the stored
	// number so date serials and thousands separators do not leak through
	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return fmt.Errorf("could not read worksheet %s: %w", sheets[0], err)
	}
	rawRows, err := workbook.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return fmt.Errorf("could not read worksheet %s: %w", sheets[0], err)
	}

	if len(rows) == 0 {
		return &trips.SchemaError{Missing: trips.RequiredColumns}
	}

	indexes, err := checkHeader(normaliseHeader(rows[0]))
	if err != nil {
		return err
	}

	rawRecords := make([]rawRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		var rawRow []string
		if i+1 < len(rawRows) {
			rawRow = rawRows[i+1]
		}

		rawRecords = append(rawRecords, rawRecord{
			Date:           serialToDate(cell(rawRow, indexes[trips.ColumnDate])),
			TimeBlock:      cell(row, indexes[trips.ColumnTimeBlock]),
			PickupLocation: cell(row, indexes[trips.ColumnPickupLocation]),
			PassengerCount: cell(rawRow, indexes[trips.ColumnPassengerCount]),
		})
	}

	x.table, err = buildTable(rawRecords)

	return err
}

func (x *XLSX) Table() trips.TripTable {
	return x.table
}

// Rows are trimmed of trailing empty cells, so short rows are expected
func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}

	return row[index]
}

// serialToDate converts date cells stored as Excel serial numbers into ISO dates.
// Anything that is not a plain number is left for the date parser to judge.
func serialToDate(value string) string {
	serial, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || serial <= 0 || serial > maxExcelSerial {
		return value
	}

	date, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return value
	}

	return date.Format("2006-01-02")
}
