// SPDX-License-Identifier: GPL-2.0-or-later

package calc

import (
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"geoaux/cmd"
)

type registerRow struct {
	Name    string  `csv:"name"`
	Y       float64 `csv:"y"`
	X       float64 `csv:"x"`
	Tan     float64 `csv:"tan"`
	Degrees float64 `csv:"degrees"`
}

func (s *Session) rows() []*registerRow {
	var rows []*registerRow
	for _, n := range s.Names() {
		r := s.regs[n]
		rows = append(rows, &registerRow{
			Name:    n,
			Y:       r.Y(),
			X:       r.X(),
			Tan:     r.Tan(),
			Degrees: r.Degrees(),
		})
	}
	return rows
}

// dump writes all registers as CSV.
func (s *Session) dump(a cmd.Arguments) error {
	if err := wantArgs(a, 0, ""); err != nil {
		return err
	}
	rows := s.rows()
	if len(rows) == 0 {
		return nil
	}
	if err := gocsv.Marshal(rows, s.out); err != nil {
		return errors.Wrap(err, "dump")
	}
	return nil
}
