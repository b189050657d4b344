package snapshot

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Write emits one CSV row per cell of an nx by ny field at the cell centres
// ((ix+0.5)*dxy, (iy+0.5)*dxy). Fields are read at iy*stride+ix and nil fields
// are left out of the header and the rows.
func Write(w io.Writer, dxy float64, nx, ny, stride int, h, b, hu, hv []float64) (err error) {
	var (
		fields = []struct {
			name   string
			values []float64
		}{
			{"height", h},
			{"bathymetry", b},
			{"momentum_x", hu},
			{"momentum_y", hv},
		}
		header = []string{"x", "y"}
		cw     = csv.NewWriter(w)
	)
	for _, f := range fields {
		if f.values != nil {
			header = append(header, f.name)
		}
	}
	if err = cw.Write(header); err != nil {
		return
	}
	record := make([]string, len(header))
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			id := iy*stride + ix
			record[0] = formatFloat((float64(ix) + 0.5) * dxy)
			record[1] = formatFloat((float64(iy) + 0.5) * dxy)
			col := 2
			for _, f := range fields {
				if f.values == nil {
					continue
				}
				if id >= len(f.values) {
					return fmt.Errorf("cell %d is outside of the %s field of length %d",
						id, f.name, len(f.values))
				}
				record[col] = formatFloat(f.values[id])
				col++
			}
			if err = cw.Write(record); err != nil {
				return
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes a snapshot to the named file, replacing it
func WriteFile(filename string, dxy float64, nx, ny, stride int, h, b, hu, hv []float64) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(filename); err != nil {
		return fmt.Errorf("unable to create snapshot %s: %w", filename, err)
	}
	bw := bufio.NewWriter(file)
	if err = Write(bw, dxy, nx, ny, stride, h, b, hu, hv); err != nil {
		file.Close()
		return fmt.Errorf("unable to write snapshot %s: %w", filename, err)
	}
	if err = bw.Flush(); err != nil {
		file.Close()
		return
	}
	return file.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
