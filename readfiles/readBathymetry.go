package readfiles

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadBathymetry reads a bathymetry profile, the 4th column of each row of
// a CSV file. A leading row that does not parse as a number is a header.
func ReadBathymetry(filename string) (profile []float64, err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(filename); err != nil {
		return nil, fmt.Errorf("unable to open bathymetry file %s: %w", filename, err)
	}
	defer file.Close()
	if profile, err = ParseBathymetry(bufio.NewReader(file)); err != nil {
		err = fmt.Errorf("%s: %w", filename, err)
	}
	return
}

func ParseBathymetry(r io.Reader) (profile []float64, err error) {
	var (
		records [][]string
		value   float64
	)
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if records, err = cr.ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if len(rec) < 4 {
			return nil, fmt.Errorf("line %d has %d columns, need at least 4", i+1, len(rec))
		}
		if value, err = strconv.ParseFloat(strings.TrimSpace(rec[3]), 64); err != nil {
			if i == 0 {
				err = nil
				continue
			}
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		profile = append(profile, value)
	}
	if len(profile) == 0 {
		err = fmt.Errorf("no bathymetry values found")
	}
	return
}
