package importer

import (
	"io"

	"github.com/travigo/shuttle-planner/pkg/trips"
)

type Format interface {
	ParseFile(io.Reader) error
	Table() trips.TripTable
}

type FormatName string

const (
	FormatCSV  FormatName = "csv"
	FormatXLSX FormatName = "xlsx"
)

var registeredFormats = map[string]FormatName{
	".csv":  FormatCSV,
	".xlsx": FormatXLSX,
}

func newFormat(name FormatName) Format {
	switch name {
	case FormatXLSX:
		return &XLSX{}
	default:
		return &CSV{}
	}
}
