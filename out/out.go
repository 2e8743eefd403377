// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out writes the results of MPM simulations to CSV files
//  Files are named after the simulation key:
//   <key>_summary.csv   -- one row per output time with global quantities
//   <key>_particles.csv -- one row per (step, particle, field, component)
//   <key>_forces.csv    -- one row per (step, force, item, field, component)
package out

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/cpmech/gompm/mpm"
	"github.com/cpmech/gosl/chk"
	"github.com/gocarina/gocsv"
)

// SummaryRow holds the global quantities at one output time
type SummaryRow struct {
	Step int     `csv:"step"`
	Time float64 `csv:"time"`
	Mass float64 `csv:"mass"`
	Px   float64 `csv:"px"`
	Py   float64 `csv:"py"`
	Pz   float64 `csv:"pz"`
	KE   float64 `csv:"ke"`
}

// FieldRow holds one component of a recorded field
type FieldRow struct {
	Step  int     `csv:"step"`
	Time  float64 `csv:"time"`
	Force int     `csv:"force"` // force index; -1 for material particles
	Id    int     `csv:"id"`    // particle index
	Field string  `csv:"field"`
	Comp  int     `csv:"comp"`
	Value float64 `csv:"value"`
}

// Filename returns the full path of a results file
func Filename(dir, key, kind string) string {
	return filepath.Join(dir, key+"_"+kind+".csv")
}

// WriteSummary writes <key>_summary.csv
func WriteSummary(dir, key string, sum *mpm.Summary) (err error) {
	rows := make([]*SummaryRow, len(sum.Steps))
	for i := range sum.Steps {
		rows[i] = &SummaryRow{Step: sum.Steps[i], Time: sum.Times[i], Mass: sum.Mass[i], KE: sum.KE[i]}
		P := [3]float64{}
		copy(P[:], sum.Momentum[i])
		rows[i].Px, rows[i].Py, rows[i].Pz = P[0], P[1], P[2]
	}
	return write(Filename(dir, key, "summary"), rows)
}

// ReadSummary reads <key>_summary.csv
func ReadSummary(dir, key string) (rows []*SummaryRow, err error) {
	f, err := os.Open(Filename(dir, key, "summary"))
	if err != nil {
		return nil, chk.Err("cannot open summary file:\n%v", err)
	}
	defer f.Close()
	if err = gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, chk.Err("cannot parse summary file:\n%v", err)
	}
	return
}

// WriteSnapshots writes <key>_particles.csv and, if any force field was recorded, <key>_forces.csv
func WriteSnapshots(dir, key string, snaps []*mpm.Snapshot) (err error) {
	var prows, frows []*FieldRow
	for _, snap := range snaps {
		prows = appendFields(prows, snap, -1, snap.Particles)
		for i, fields := range snap.Forces {
			frows = appendFields(frows, snap, i, fields)
		}
	}
	if err = write(Filename(dir, key, "particles"), prows); err != nil {
		return
	}
	if len(frows) == 0 {
		return
	}
	return write(Filename(dir, key, "forces"), frows)
}

// ReadFields reads <key>_particles.csv (kind = "particles") or <key>_forces.csv (kind = "forces")
func ReadFields(dir, key, kind string) (rows []*FieldRow, err error) {
	f, err := os.Open(Filename(dir, key, kind))
	if err != nil {
		return nil, chk.Err("cannot open %s file:\n%v", kind, err)
	}
	defer f.Close()
	if err = gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, chk.Err("cannot parse %s file:\n%v", kind, err)
	}
	return
}

// appendFields appends the rows of fields in alphabetical order
func appendFields(rows []*FieldRow, snap *mpm.Snapshot, force int, fields map[string][][]float64) []*FieldRow {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for id, vals := range fields[name] {
			for c, v := range vals {
				rows = append(rows, &FieldRow{snap.Step, snap.Time, force, id, name, c, v})
			}
		}
	}
	return rows
}

// write creates fn and marshals rows
func write(fn string, rows interface{}) (err error) {
	if err = os.MkdirAll(filepath.Dir(fn), 0777); err != nil {
		return chk.Err("cannot create directory for %s:\n%v", fn, err)
	}
	f, err := os.Create(fn)
	if err != nil {
		return chk.Err("cannot create file %s:\n%v", fn, err)
	}
	defer f.Close()
	if err = gocsv.MarshalFile(rows, f); err != nil {
		return chk.Err("cannot write %s:\n%v", fn, err)
	}
	return
}
