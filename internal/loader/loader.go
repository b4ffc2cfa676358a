// Package loader reads the two NASA flat files — the NEO CSV and the
// close-approach JSON — into typed collections for database construction.
// Columns are located by header name rather than position, so extra columns
// in either file are ignored.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/orbitalmech/neoscope/internal/neo"
)

// approachTimeLayout matches the "cd" field of the close-approach dataset,
// e.g. "2020-Jan-01 12:30". Times are UTC.
const approachTimeLayout = "2006-Jan-02 15:04"

// LoadNEOs reads near-Earth objects from a CSV file. The file must carry the
// pdes, name, diameter and pha columns; an empty name stays empty, an empty
// diameter becomes NaN, and pha "Y" marks the object hazardous.
func LoadNEOs(path string) ([]*neo.NearEarthObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open neo csv: %w", err)
	}
	defer f.Close()

	neos, err := ReadNEOs(f)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	return neos, nil
}

// ReadNEOs parses NEO CSV content from r.
func ReadNEOs(r io.Reader) ([]*neo.NearEarthObject, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"pdes", "name", "diameter", "pha"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv missing column %q", required)
		}
	}

	var neos []*neo.NearEarthObject
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		diameter := math.NaN()
		if raw := record[cols["diameter"]]; raw != "" {
			diameter, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("csv line %d: bad diameter %q: %w", line, raw, err)
			}
		}

		neos = append(neos, &neo.NearEarthObject{
			Designation: record[cols["pdes"]],
			Name:        record[cols["name"]],
			Diameter:    diameter,
			Hazardous:   record[cols["pha"]] == "Y",
		})
	}
	return neos, nil
}

// approachDocument mirrors the close-approach JSON envelope: a fields header
// naming the columns and a data array of rows in that column order.
type approachDocument struct {
	Fields []string   `json:"fields"`
	Data   [][]string `json:"data"`
}

// LoadApproaches reads close approaches from the NASA cad JSON file.
func LoadApproaches(path string) ([]*neo.CloseApproach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open approach json: %w", err)
	}
	defer f.Close()

	approaches, err := ReadApproaches(f)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	return approaches, nil
}

// ReadApproaches parses close-approach JSON content from r. The des, cd,
// dist and v_rel columns are required; their positions come from the fields
// header.
func ReadApproaches(r io.Reader) ([]*neo.CloseApproach, error) {
	var doc approachDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode approach json: %w", err)
	}

	cols := make(map[string]int, len(doc.Fields))
	for i, name := range doc.Fields {
		cols[name] = i
	}
	for _, required := range []string{"des", "cd", "dist", "v_rel"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("approach json missing field %q", required)
		}
	}

	approaches := make([]*neo.CloseApproach, 0, len(doc.Data))
	for i, row := range doc.Data {
		if len(row) < len(doc.Fields) {
			return nil, fmt.Errorf("approach row %d: %d values, want %d", i, len(row), len(doc.Fields))
		}

		t, err := time.ParseInLocation(approachTimeLayout, row[cols["cd"]], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("approach row %d: bad time %q: %w", i, row[cols["cd"]], err)
		}
		dist, err := strconv.ParseFloat(row[cols["dist"]], 64)
		if err != nil {
			return nil, fmt.Errorf("approach row %d: bad distance %q: %w", i, row[cols["dist"]], err)
		}
		vel, err := strconv.ParseFloat(row[cols["v_rel"]], 64)
		if err != nil {
			return nil, fmt.Errorf("approach row %d: bad velocity %q: %w", i, row[cols["v_rel"]], err)
		}

		approaches = append(approaches, &neo.CloseApproach{
			Designation: row[cols["des"]],
			Time:        t,
			Distance:    dist,
			Velocity:    vel,
		})
	}
	return approaches, nil
}
