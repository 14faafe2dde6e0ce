// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/longwallgobs/gob/inp"
	"github.com/longwallgobs/gob/mdl/flow"
	"github.com/longwallgobs/gob/mdl/vsi"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Driver computes the material state of cells on the first solver pass and replays it afterwards
type Driver struct {
	Vsi     *vsi.Model         // VSI model
	Flow    *flow.Model        // porosity and resistance transforms
	Workers int                // number of concurrent workers
	Log     logrus.FieldLogger // logger
}

// NewDriver allocates a new driver with models built from the configuration
func NewDriver(cfg *inp.Config, log logrus.FieldLogger) (o *Driver, err error) {
	o = new(Driver)
	o.Vsi, err = cfg.NewVsi()
	if err != nil {
		return nil, err
	}
	o.Flow, err = cfg.NewFlow()
	if err != nil {
		return nil, err
	}
	o.Workers = cfg.Run.Workers
	o.Log = log
	if o.Log == nil {
		o.Log = logrus.StandardLogger()
	}
	return
}

// Evaluate computes the state of one cell
func (o *Driver) Evaluate(c Cell) (s State) {
	s.Vsi = o.Vsi.Vsi(c.X[0], c.X[1])
	s.Porosity = o.Flow.Porosity(s.Vsi)
	for dir := 0; dir < 3; dir++ {
		s.Resist[dir] = o.Flow.Resistance(dir, s.Porosity)
	}
	s.Inertia = o.Flow.InertiaResistance(s.Porosity)
	return
}

// Pass runs one solver pass over the cells of a region.
//  Input:
//   epoch  -- 1-based solver iteration counter; epoch ≤ 1 computes, epoch > 1 replays
//   mesh   -- host mesh
//   region -- name of the region
//   sto    -- host per-cell storage
//  Output:
//   states -- state of each cell, in the order given by mesh
//  Note: all centroids and ids are checked before any slot is written; ids must be unique.
//        In replaying mode nothing is evaluated; the states are read back from storage
func (o *Driver) Pass(epoch int, mesh Mesh, region string, sto Storage) (states []State, err error) {

	// cells
	cells, err := mesh.Cells(region)
	if err != nil {
		return nil, chk.Err("cannot get cells of region %q:\n%v", region, err)
	}
	mode := ModeFor(epoch)
	if mode == Computing {
		seen := make(map[int]bool, len(cells))
		for _, c := range cells {
			if err = c.Check(); err != nil {
				return nil, chk.Err("region %q: %v", region, err)
			}
			if seen[c.Id] {
				return nil, chk.Err("region %q: cell %d appears more than once", region, c.Id)
			}
			seen[c.Id] = true
		}
	}

	// run
	start := time.Now()
	states = make([]State, len(cells))
	nworkers := o.Workers
	if nworkers < 1 {
		nworkers = 1
	}
	var g errgroup.Group
	g.SetLimit(nworkers)
	for _, chunk := range split(len(cells), nworkers) {
		lo, hi := chunk[0], chunk[1]
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				c := cells[i]
				if mode == Replaying {
					s, e := sto.Load(c.Id)
					if e != nil {
						return chk.Err("cannot replay cell %d of region %q:\n%v", c.Id, region, e)
					}
					states[i] = s
					continue
				}
				states[i] = o.Evaluate(c)
				if e := sto.Save(c.Id, states[i]); e != nil {
					return chk.Err("cannot save cell %d of region %q:\n%v", c.Id, region, e)
				}
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	// report
	log := o.Log.WithFields(logrus.Fields{
		"epoch":  epoch,
		"mode":   mode.String(),
		"region": region,
		"cells":  len(cells),
		"time":   time.Since(start).String(),
	})
	if mode == Replaying {
		log.Debug("pass replayed")
		return
	}
	rep := NewReport(states)
	log.WithFields(rep.Fields()).Info("pass computed")
	if rep.Nonfinite > 0 {
		log.WithField("nonfinite", rep.Nonfinite).Warn("some cells have non-finite values")
	}
	return
}

// split splits n items into at most m contiguous chunks [lo, hi)
func split(n, m int) (chunks [][2]int) {
	if n == 0 {
		return
	}
	if m > n {
		m = n
	}
	size, rem := n/m, n%m
	lo := 0
	for i := 0; i < m; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		chunks = append(chunks, [2]int{lo, hi})
		lo = hi
	}
	return
}
