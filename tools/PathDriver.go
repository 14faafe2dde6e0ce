// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"encoding/json"
	"path"

	"github.com/cpmech/gosl/io"
	"github.com/longwallgobs/gob/field"
	"github.com/longwallgobs/gob/inp"
	"github.com/longwallgobs/gob/out"
)

type Input struct {
	Dir     string      // directory with configuration file
	IniFn   string      // configuration filename (.ini or .json)
	Path    [][]float64 // vertices {xl, yl} in local panel coordinates
	Ndiv    int         // number of divisions of each segment
	PlotSet []string    // keys to be plotted
	DirOut  string      // output directory

	// derived
	inpfn string
}

func (o *Input) PostProcess() {
	if len(o.PlotSet) == 0 {
		o.PlotSet = []string{"vsi", "n"}
	}
	if o.Ndiv < 1 {
		o.Ndiv = 50
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/gob"
	}
}

func (o Input) String() (l string) {
	l = io.ArgsTable("INPUT ARGUMENTS",
		"input filename", "inpfn", o.inpfn,
		"directory with configuration file", "Dir", o.Dir,
		"configuration filename", "IniFn", o.IniFn,
		"path vertices", "Path", io.Sf("%v", o.Path),
		"divisions per segment", "Ndiv", o.Ndiv,
		"plot set", "PlotSet", io.Sf("%v", o.PlotSet),
		"output directory", "DirOut", o.DirOut,
	)
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data file
	var in Input
	in.inpfn, _ = io.ArgToFilename(0, "data/pathdrv1", ".inp", true)

	// read and parse input data
	b, err := inp.ReadFile(in.inpfn)
	if err != nil {
		io.PfRed("%v\n", err)
		return
	}
	err = json.Unmarshal(b, &in)
	if err != nil {
		io.PfRed("cannot parse %s\n", in.inpfn)
		return
	}
	in.PostProcess()

	// print input table
	io.Pf("%v\n", in)

	// load configuration
	store, err := inp.NewStore(path.Join(in.Dir, in.IniFn))
	if err != nil {
		io.PfRed("cannot load configuration: %v\n", err)
		return
	}
	cfg, err := inp.Resolve(store)
	if err != nil {
		io.PfRed("cannot resolve configuration: %v\n", err)
		return
	}
	io.Pf("%s\n", cfg.Echo())

	// driver
	drv, err := field.NewDriver(cfg, nil)
	if err != nil {
		io.PfRed("cannot allocate driver: %v\n", err)
		return
	}

	// run
	prof, err := out.Path(drv, in.Path, in.Ndiv)
	if err != nil {
		io.Pfred("driver: Path failed: %v\n", err)
		return
	}

	// output
	fnk := "pth_" + io.FnKey(in.IniFn)
	out.WriteTable(in.DirOut, fnk+".dat", prof)
	err = out.SavePlot(in.DirOut, fnk+".png", prof, in.PlotSet...)
	if err != nil {
		io.Pfred("cannot plot: %v\n", err)
		return
	}
	io.Pf("> files <%s.dat> and <%s.png> written to %s\n", fnk, fnk, in.DirOut)
}
