// Package writer serializes query results, close approaches joined to
// their NEOs, to CSV or JSON. Both writers consume the query's lazy
// sequence directly; the CSV writer streams rows as they arrive.
package writer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"

	"github.com/orbitalmech/neoscope/internal/neo"
)

// csvHeader lists the output columns, approach attributes first, then the
// joined NEO attributes.
var csvHeader = []string{
	"datetime_utc", "distance_au", "velocity_km_s",
	"designation", "name", "diameter_km", "potentially_hazardous",
}

// WriteCSV writes one row per approach with the header above. An unknown
// diameter is written as an empty cell, matching the source dataset.
func WriteCSV(w io.Writer, approaches iter.Seq[*neo.CloseApproach]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writer: csv header: %w", err)
	}

	for ca := range approaches {
		diameter := ""
		if ca.NEO.HasDiameter() {
			diameter = strconv.FormatFloat(ca.NEO.Diameter, 'f', -1, 64)
		}
		row := []string{
			ca.TimeString(),
			strconv.FormatFloat(ca.Distance, 'f', -1, 64),
			strconv.FormatFloat(ca.Velocity, 'f', -1, 64),
			ca.NEO.Designation,
			ca.NEO.Name,
			diameter,
			strconv.FormatBool(ca.NEO.Hazardous),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writer: csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writer: flush csv: %w", err)
	}
	return nil
}

// approachJSON is the JSON shape of one result row.
type approachJSON struct {
	DatetimeUTC string  `json:"datetime_utc"`
	DistanceAU  float64 `json:"distance_au"`
	VelocityKms float64 `json:"velocity_km_s"`
	NEO         neoJSON `json:"neo"`
}

type neoJSON struct {
	Designation string  `json:"designation"`
	Name        string  `json:"name"`
	DiameterKm  float64 `json:"diameter_km"`
	Hazardous   bool    `json:"potentially_hazardous"`
}

// WriteJSON writes the approaches as a JSON array with a nested neo object
// per row. JSON has no NaN, so an unknown diameter is written as -1.
func WriteJSON(w io.Writer, approaches iter.Seq[*neo.CloseApproach]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	var rows []approachJSON
	for ca := range approaches {
		diameter := ca.NEO.Diameter
		if math.IsNaN(diameter) {
			diameter = -1
		}
		rows = append(rows, approachJSON{
			DatetimeUTC: ca.TimeString(),
			DistanceAU:  ca.Distance,
			VelocityKms: ca.Velocity,
			NEO: neoJSON{
				Designation: ca.NEO.Designation,
				Name:        ca.NEO.Name,
				DiameterKm:  diameter,
				Hazardous:   ca.NEO.Hazardous,
			},
		})
	}
	if rows == nil {
		rows = []approachJSON{}
	}

	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("writer: encode json: %w", err)
	}
	return nil
}
