package importer

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/shuttle-planner/pkg/trips"
	"golang.org/x/exp/slices"
)

func SupportedExtensions() []string {
	extensions := make([]string, 0, len(registeredFormats))
	for extension := range registeredFormats {
		extensions = append(extensions, extension)
	}
	slices.Sort(extensions)

	return extensions
}

// DetectFormat picks the reader from the file extension alone.
func DetectFormat(filename string) (FormatName, error) {
	extension := strings.ToLower(filepath.Ext(filename))

	name, exists := registeredFormats[extension]
	if !exists {
		return "", &trips.FormatError{Extension: extension, Supported: SupportedExtensions()}
	}

	return name, nil
}

// Import parses an uploaded file into a trip table and reports the format it was
// read as. The data slice is only read.
func Import(filename string, data []byte) (trips.TripTable, FormatName, error) {
	formatName, err := DetectFormat(filename)
	if err != nil {
		return trips.TripTable{}, "", err
	}

	format := newFormat(formatName)
	if err := format.ParseFile(bytes.NewReader(data)); err != nil {
		log.Debug().Str("file", filename).Str("format", string(formatName)).Err(err).Msg("Failed to parse file")
		return trips.TripTable{}, formatName, err
	}

	table := format.Table()

	log.Info().Str("file", filename).Str("format", string(formatName)).Int("records", table.Len()).Msg("Imported trip records")
	if !table.IsEmpty() {
		log.Debug().Msg(pretty.Sprint(table.Records[0]))
	}

	return table, formatName, nil
}
