// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/longwallgobs/gob/field"
	"github.com/longwallgobs/gob/inp"
	"github.com/longwallgobs/gob/out"
	"github.com/sirupsen/logrus"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "gob", ".ini", true)
	verbose := io.ArgToBool(1, true)
	npass := io.ArgToInt(2, 3)
	nx := io.ArgToInt(3, 41)
	ny := io.ArgToInt(4, 201)
	doplot := io.ArgToBool(5, false)
	dirout := io.ArgToString(6, "/tmp/gob")

	// message
	if verbose {
		io.PfWhite("\nGob -- VSI-based porosity and resistance of longwall gobs\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"number of solver passes", "npass", npass,
			"number of cells across the grid", "nx", nx,
			"number of cells along the grid", "ny", ny,
			"plot profiles", "doplot", doplot,
			"output directory", "dirout", dirout,
		))
	}

	// configuration
	store, err := inp.NewStore(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	cfg, err := inp.Resolve(store)
	if err != nil {
		chk.Panic("%v", err)
	}
	if verbose {
		io.Pf("%s\n", cfg.Echo())
	}

	// logger
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if !verbose {
		log.SetLevel(logrus.WarnLevel)
	}

	// driver
	drv, err := field.NewDriver(cfg, log)
	if err != nil {
		chk.Panic("%v", err)
	}
	if verbose {
		io.Pf("%v\n", drv.Vsi.Bkp)
		io.Pf("%v\n\n", drv.Flow)
	}

	// grid over the panel and its surroundings
	xmin, xmax, ymin, ymax := drv.Vsi.Extent()
	margin := 0.1 * drv.Vsi.Hw
	mesh := field.NewGrid()
	err = mesh.AddRegion("gob", xmin-margin, xmax+margin, ymin-margin, ymax+margin, nx, ny)
	if err != nil {
		chk.Panic("%v", err)
	}
	sto := field.NewMemory(mesh.Ncells())

	// run solver passes
	var rep *field.Report
	for epoch := 1; epoch <= npass; epoch++ {
		states, err := drv.Pass(epoch, mesh, "gob", sto)
		if err != nil {
			chk.Panic("pass %d failed:\n%v", epoch, err)
		}
		if epoch == 1 {
			rep = field.NewReport(states)
		}
	}
	if rep != nil {
		io.Pf("\n%v", rep)
	}

	// raster
	if verbose {
		ras, err := out.NewRaster(drv.Vsi, 40, 60)
		if err != nil {
			chk.Panic("%v", err)
		}
		io.Pf("\nVSI map (top row at maximum y):\n%s", ras.Ascii(drv.Vsi.MaxVsi))
	}

	// profiles
	if doplot {
		along, err := out.Along(drv, 0, 201)
		if err != nil {
			chk.Panic("%v", err)
		}
		across, err := out.Across(drv, drv.Vsi.L/2, 101)
		if err != nil {
			chk.Panic("%v", err)
		}
		for _, p := range []struct {
			name string
			prof *out.Profile
		}{{"along", along}, {"across", across}} {
			fnk := fnkey + "_" + p.name
			if err = out.SavePlot(dirout, fnk+"_vsi.png", p.prof, "vsi", "n"); err != nil {
				chk.Panic("%v", err)
			}
			if err = out.SavePlot(dirout, fnk+"_resist.png", p.prof, "R1", "R2", "R3"); err != nil {
				chk.Panic("%v", err)
			}
			out.WriteTable(dirout, fnk+".dat", p.prof)
			if verbose {
				io.Pf("> file <%s> written\n", filepath.Join(dirout, fnk+".dat"))
			}
		}
	}
}
