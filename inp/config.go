// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the configuration of gob models read from a host key-value store
package inp

import (
	"math"
	"runtime"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/longwallgobs/gob/mdl/flow"
	"github.com/longwallgobs/gob/mdl/vsi"
)

// MineKeys holds the keys of the mine type radio buttons in order of precedence
var MineKeys = []struct {
	Key  string
	Mine vsi.MineType
}{
	{"longwallgobs/mine_C_radio_button", vsi.SuperCriticalTypeA},
	{"longwallgobs/mine_E_radio_button", vsi.SuperCriticalTypeB},
	{"longwallgobs/mine_T_radio_button", vsi.SubCriticalSingleSeam},
}

// Aliases maps keys to the alternative keys also accepted for them. The key itself takes
// precedence when both are given
var Aliases = map[string]string{
	"vsi/maximum-porosity": "longwallgobs/max_porosity",
	"vsi/porosity-scaler":  "longwallgobs/initial_porosity",
}

// MaxWorkers is the largest accepted number of workers
const MaxWorkers = 4096

// PanelData holds the geometry of the panel
type PanelData struct {
	Mine          vsi.MineType // mine type
	HalfWidth     float64      // panel half-width
	Length        float64      // panel length
	Xoffset       float64      // x-coordinate of the panel centreline
	Yoffset       float64      // y-offset of the panel origin
	MaxVsi        float64      // maximum VSI
	GateroadWidth float64      // width of the gateroad strip (super-critical)
}

// FlowData holds the parameters of the porosity and resistance transforms
type FlowData struct {
	MaxPorosity      float64    // maximum porosity behind the shields
	PorosityScaler   float64    // porosity scaler
	InitialPorosity  float64    // initial porosity of the host rock
	ParticleDiameter float64    // mean particle diameter
	ResistScaler     [3]float64 // viscous resistance scaler in each direction
	MaxResist        float64    // maximum viscous resistance (before scaling)
	MinResist        float64    // minimum viscous resistance (before scaling)
	InertiaScaler    float64    // inertial resistance scaler
	MaxInertia       float64    // maximum inertial resistance (before scaling)
	MinInertia       float64    // minimum inertial resistance (before scaling)
}

// RunData holds options of the pass driver
type RunData struct {
	Workers int // number of concurrent workers in a pass
}

// Config holds all configuration variables resolved once from a store
type Config struct {
	Panel PanelData // panel geometry
	Flow  FlowData  // flow transforms
	Run   RunData   // driver options

	// auxiliary
	Given     map[string]bool // keys explicitly given in the store
	mineGiven bool            // mine type was selected by a radio button
	vars      []*variable     // resolved real variables in echo order
}

// variable describes one real configuration variable
type variable struct {
	key  string   // key in store
	desc string   // description
	val  *float64 // destination
	def  float64  // default value
}

// Resolve reads all configuration variables from store, applies defaults and validates the result
func Resolve(store Store) (o *Config, err error) {

	// mine type
	o = new(Config)
	o.Given = make(map[string]bool)
	o.Panel.Mine = vsi.SubCriticalSingleSeam
	for _, mk := range MineKeys {
		on, found, e := store.Bool(mk.Key)
		if e != nil {
			return nil, e
		}
		if found {
			o.Given[mk.Key] = true
		}
		if on && !o.mineGiven {
			o.Panel.Mine = mk.Mine
			o.mineGiven = true
		}
	}
	hw, length, maxvsi := o.Panel.Mine.Defaults()

	// real variables
	var rscal, rscal1, rscal2, rscal3 float64
	var workers float64
	o.vars = []*variable{
		{"longwallgobs/panel_half_width", "panel half-width", &o.Panel.HalfWidth, hw},
		{"longwallgobs/panel_length", "panel length", &o.Panel.Length, length},
		{"longwallgobs/panel_x_offset", "x-coordinate of panel centreline", &o.Panel.Xoffset, 0},
		{"longwallgobs/panel_y_offset", "y-offset of panel origin", &o.Panel.Yoffset, 0},
		{"longwallgobs/max_vsi", "maximum VSI", &o.Panel.MaxVsi, maxvsi},
		{"longwallgobs/gateroad_width", "gateroad strip width", &o.Panel.GateroadWidth, 100},
		{"vsi/maximum-porosity", "maximum porosity behind shields", &o.Flow.MaxPorosity, 0.40},
		{"vsi/porosity-scaler", "porosity scaler", &o.Flow.PorosityScaler, 1},
		{"vsi/initial-porosity", "initial porosity of host rock", &o.Flow.InitialPorosity, 0.25778},
		{"vsi/particle-diameter", "mean particle diameter", &o.Flow.ParticleDiameter, 0.2},
		{"vsi/resist-scaler", "resistance scaler", &rscal, 1},
		{"vsi/maximum-resist", "maximum resistance (before scaler)", &o.Flow.MaxResist, 5e6},
		{"vsi/minimum-resist", "minimum resistance (before scaler)", &o.Flow.MinResist, 1.45e5},
		{"vsi/resist-inertia-scaler", "inertial resistance scaler", &o.Flow.InertiaScaler, 1},
		{"vsi/maximum-inertia-resist", "maximum inertial resistance (before scaler)", &o.Flow.MaxInertia, 1.3e5},
		{"vsi/minimum-inertia-resist", "minimum inertial resistance (before scaler)", &o.Flow.MinInertia, 0},
		{"run/workers", "number of workers", &workers, float64(runtime.NumCPU())},
	}
	if err = o.read(store, o.vars); err != nil {
		return nil, err
	}

	// per-direction scalers default to the isotropic one
	dirs := []*variable{
		{"vsi/resist-scaler-1", "resistance scaler in direction 1", &rscal1, rscal},
		{"vsi/resist-scaler-2", "resistance scaler in direction 2", &rscal2, rscal},
		{"vsi/resist-scaler-3", "resistance scaler in direction 3", &rscal3, rscal},
	}
	if err = o.read(store, dirs); err != nil {
		return nil, err
	}
	o.vars = append(o.vars, dirs...)
	o.Flow.ResistScaler = [3]float64{rscal1, rscal2, rscal3}
	if workers != math.Trunc(workers) || workers < 1 || workers > MaxWorkers {
		return nil, chk.Err("number of workers must be an integer in [1, %d]. %g is invalid", MaxWorkers, workers)
	}
	o.Run.Workers = int(workers)

	// check
	err = o.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// Validate checks the configuration; e.g. the panel must be large enough for its blend bands
func (o *Config) Validate() (err error) {
	for _, v := range o.vars {
		if math.IsNaN(*v.val) || math.IsInf(*v.val, 0) {
			return chk.Err("variable %q must be finite. %g is invalid", v.key, *v.val)
		}
	}
	if o.Run.Workers < 1 {
		return chk.Err("number of workers must be at least 1. %d is invalid", o.Run.Workers)
	}
	_, err = o.NewVsi()
	if err != nil {
		return
	}
	_, err = o.NewFlow()
	return
}

// IsGiven tells whether key was explicitly given in the store
func (o *Config) IsGiven(key string) bool {
	return o.Given[key]
}

// Value returns the resolved value of a real variable
func (o *Config) Value(key string) (val float64, err error) {
	for _, v := range o.vars {
		if v.key == key {
			return *v.val, nil
		}
	}
	return 0, chk.Err("variable %q is not available", key)
}

// VsiPrms returns the parameters of the VSI model
func (o *Config) VsiPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "mine", V: float64(o.Panel.Mine)},
		&dbf.P{N: "hw", V: o.Panel.HalfWidth},
		&dbf.P{N: "L", V: o.Panel.Length},
		&dbf.P{N: "xoff", V: o.Panel.Xoffset},
		&dbf.P{N: "yoff", V: o.Panel.Yoffset},
		&dbf.P{N: "maxvsi", V: o.Panel.MaxVsi},
		&dbf.P{N: "gw", V: o.Panel.GateroadWidth},
	}
}

// FlowPrms returns the parameters of the flow model
func (o *Config) FlowPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "nmax", V: o.Flow.MaxPorosity},
		&dbf.P{N: "nscal", V: o.Flow.PorosityScaler},
		&dbf.P{N: "n0", V: o.Flow.InitialPorosity},
		&dbf.P{N: "dp", V: o.Flow.ParticleDiameter},
		&dbf.P{N: "rscal1", V: o.Flow.ResistScaler[0]},
		&dbf.P{N: "rscal2", V: o.Flow.ResistScaler[1]},
		&dbf.P{N: "rscal3", V: o.Flow.ResistScaler[2]},
		&dbf.P{N: "rmax", V: o.Flow.MaxResist},
		&dbf.P{N: "rmin", V: o.Flow.MinResist},
		&dbf.P{N: "iscal", V: o.Flow.InertiaScaler},
		&dbf.P{N: "imax", V: o.Flow.MaxInertia},
		&dbf.P{N: "imin", V: o.Flow.MinInertia},
	}
}

// NewVsi allocates and initialises the VSI model
func (o *Config) NewVsi() (mdl *vsi.Model, err error) {
	mdl = new(vsi.Model)
	err = mdl.Init(o.VsiPrms())
	if err != nil {
		return nil, chk.Err("cannot initialise VSI model:\n%v", err)
	}
	return
}

// NewFlow allocates and initialises the flow model
func (o *Config) NewFlow() (mdl *flow.Model, err error) {
	mdl = new(flow.Model)
	err = mdl.Init(o.FlowPrms())
	if err != nil {
		return nil, chk.Err("cannot initialise flow model:\n%v", err)
	}
	return
}

// Echo returns a report of all variables, stating whether each one was given or defaulted.
// Defaulted variables come with the command that defines them in the host
func (o *Config) Echo() (l string) {
	if o.mineGiven {
		l = io.Sf("%-46s = %v (%s) [given]\n", "mine type", o.Panel.Mine, o.Panel.Mine.Mine())
	} else {
		l = io.Sf("%-46s = %v (%s) [default]\n", "mine type", o.Panel.Mine, o.Panel.Mine.Mine())
		l += io.Sf("  You may select another with TUI Command: (rp-var-define '%s #t 'boolean #f)\n", MineKeys[0].Key)
	}
	for _, v := range o.vars {
		if o.Given[v.key] {
			l += io.Sf("%-46s = %g [given]\n", v.desc, *v.val)
			continue
		}
		l += io.Sf("%-46s = %g [default]\n", v.desc, *v.val)
		l += io.Sf("  You may set it with TUI Command: (rp-var-define '%s VALUE 'real #f)\n", v.key)
	}
	return
}

// read reads real variables from store, falling back to their defaults
func (o *Config) read(store Store, vars []*variable) (err error) {
	for _, v := range vars {
		val, found, e := store.Real(v.key)
		if e != nil {
			return e
		}
		if alias, ok := Aliases[v.key]; ok && !found {
			val, found, e = store.Real(alias)
			if e != nil {
				return e
			}
			if found {
				o.Given[alias] = true
			}
		}
		if found {
			*v.val = val
			o.Given[v.key] = true
			continue
		}
		*v.val = v.def
	}
	return
}
