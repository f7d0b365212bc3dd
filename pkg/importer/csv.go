package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/travigo/shuttle-planner/pkg/trips"
)

type CSV struct {
	Rows []*CSVRow

	table trips.TripTable
}

type CSVRow struct {
	Date           string `csv:"date"`
	TimeBlock      string `csv:"time_block"`
	PickupLocation string `csv:"pickup_location"`
	PassengerCount string `csv:"passenger_count"`
}

func (c *CSV) ParseFile(reader io.Reader) error {
	// Allow ragged rows, they are caught by the empty value checks instead
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return fmt.Errorf("could not read csv file: %w", err)
	}

	if len(records) == 0 {
		return &trips.SchemaError{Missing: trips.RequiredColumns}
	}

	records[0] = normaliseHeader(records[0])
	if _, err := checkHeader(records[0]); err != nil {
		return err
	}

	if len(records) > 1 {
		if err := gocsv.UnmarshalCSV(&recordsReader{records: records}, &c.Rows); err != nil {
			return fmt.Errorf("could not decode csv rows: %w", err)
		}
	}

	rawRecords := make([]rawRecord, len(c.Rows))
	for i, row := range c.Rows {
		rawRecords[i] = rawRecord{
			Date:           row.Date,
			TimeBlock:      row.TimeBlock,
			PickupLocation: row.PickupLocation,
			PassengerCount: row.PassengerCount,
		}
	}

	c.table, err = buildTable(rawRecords)

	return err
}

func (c *CSV) Table() trips.TripTable {
	return c.table
}

// recordsReader hands already read (and header normalised) records to gocsv.
type recordsReader struct {
	records  [][]string
	position int
}

func (r *recordsReader) Read() ([]string, error) {
	if r.position >= len(r.records) {
		return nil, io.EOF
	}

	record := r.records[r.position]
	r.position++

	return record, nil
}

func (r *recordsReader) ReadAll() ([][]string, error) {
	remaining := r.records[r.position:]
	r.position = len(r.records)

	return remaining, nil
}
