// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"runtime"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/longwallgobs/gob/mdl/vsi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_config01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("config01")

	// all defaults
	cfg, err := Resolve(MapStore{})
	require.NoError(tst, err)
	assert.Equal(tst, vsi.SubCriticalSingleSeam, cfg.Panel.Mine)
	chk.Float64(tst, "hw", 1e-15, cfg.Panel.HalfWidth, 100)
	chk.Float64(tst, "L", 1e-15, cfg.Panel.Length, 3078.48)
	chk.Float64(tst, "maxvsi", 1e-15, cfg.Panel.MaxVsi, 0.22)
	chk.Float64(tst, "nmax", 1e-15, cfg.Flow.MaxPorosity, 0.40)
	chk.Float64(tst, "n0", 1e-15, cfg.Flow.InitialPorosity, 0.25778)
	chk.Float64(tst, "rmax", 1e-15, cfg.Flow.MaxResist, 5e6)
	chk.Float64(tst, "rmin", 1e-15, cfg.Flow.MinResist, 1.45e5)
	chk.Float64(tst, "imax", 1e-15, cfg.Flow.MaxInertia, 1.3e5)
	chk.Array(tst, "rscal", 1e-15, cfg.Flow.ResistScaler[:], []float64{1, 1, 1})
	assert.Equal(tst, runtime.NumCPU(), cfg.Run.Workers)
	assert.Empty(tst, cfg.Given)

	// echo
	echo := cfg.Echo()
	io.Pforan("%s", echo)
	assert.Contains(tst, echo, "(rp-var-define 'vsi/maximum-resist VALUE 'real #f)")
	assert.Contains(tst, echo, "SubCriticalSingleSeam (Trona) [default]")
	assert.NotContains(tst, echo, "[given]")

	// values
	val, err := cfg.Value("vsi/minimum-resist")
	require.NoError(tst, err)
	chk.Float64(tst, "minimum-resist", 1e-15, val, 1.45e5)
	_, err = cfg.Value("vsi/kozeny")
	assert.Error(tst, err)
}

func Test_config02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("config02")

	store, err := NewIniStore([]byte(`
[longwallgobs]
mine_C_radio_button = false
mine_E_radio_button = true
panel_length = 1200

[vsi]
resist-scaler = 2
resist-scaler-3 = 5
maximum-resist = 4e6

[run]
workers = 3
`))
	require.NoError(tst, err)

	cfg, err := Resolve(store)
	require.NoError(tst, err)
	assert.Equal(tst, vsi.SuperCriticalTypeB, cfg.Panel.Mine)
	chk.Float64(tst, "hw", 1e-15, cfg.Panel.HalfWidth, 151.4856)
	chk.Float64(tst, "L", 1e-15, cfg.Panel.Length, 1200)
	chk.Float64(tst, "maxvsi", 1e-15, cfg.Panel.MaxVsi, 0.179)
	chk.Float64(tst, "rmax", 1e-15, cfg.Flow.MaxResist, 4e6)
	chk.Array(tst, "rscal", 1e-15, cfg.Flow.ResistScaler[:], []float64{2, 2, 5})
	assert.Equal(tst, 3, cfg.Run.Workers)

	assert.True(tst, cfg.IsGiven("longwallgobs/panel_length"))
	assert.True(tst, cfg.IsGiven("vsi/resist-scaler-3"))
	assert.True(tst, cfg.IsGiven("longwallgobs/mine_C_radio_button"))
	assert.False(tst, cfg.IsGiven("longwallgobs/mine_T_radio_button"))
	assert.False(tst, cfg.IsGiven("vsi/resist-scaler-1"))
	assert.False(tst, cfg.IsGiven("longwallgobs/max_vsi"))

	echo := cfg.Echo()
	io.Pforan("%s", echo)
	assert.Contains(tst, echo, "SuperCriticalTypeB (mine E) [given]")
	assert.True(tst, strings.Contains(echo, "(rp-var-define 'vsi/resist-scaler-1 VALUE 'real #f)"))
	assert.False(tst, strings.Contains(echo, "(rp-var-define 'vsi/resist-scaler-3 VALUE 'real #f)"))

	// models
	mdl, err := cfg.NewVsi()
	require.NoError(tst, err)
	chk.Float64(tst, "model L", 1e-15, mdl.L, 1200)
	chk.Float64(tst, "model gw", 1e-15, mdl.Gw, 100)
	fl, err := cfg.NewFlow()
	require.NoError(tst, err)
	chk.Array(tst, "model rscal", 1e-15, fl.Rscal[:], []float64{2, 2, 5})
	chk.Float64(tst, "model rmax", 1e-15, fl.Rmax, 4e6)
}

func Test_config03(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("config03")

	// first true radio button wins
	cfg, err := Resolve(MapStore{
		"longwallgobs/mine_T_radio_button": true,
		"longwallgobs/mine_C_radio_button": true,
		"longwallgobs/mine_E_radio_button": true,
	})
	require.NoError(tst, err)
	assert.Equal(tst, vsi.SuperCriticalTypeA, cfg.Panel.Mine)
	chk.Float64(tst, "maxvsi", 1e-15, cfg.Panel.MaxVsi, 0.2623)

	// no radio button set
	cfg, err = Resolve(MapStore{
		"longwallgobs/mine_C_radio_button": false,
		"longwallgobs/panel_x_offset":      25,
	})
	require.NoError(tst, err)
	assert.Equal(tst, vsi.SubCriticalSingleSeam, cfg.Panel.Mine)
	chk.Float64(tst, "xoff", 1e-15, cfg.Panel.Xoffset, 25)
	assert.Contains(tst, cfg.Echo(), "SubCriticalSingleSeam (Trona) [default]")
}

func Test_config04(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("config04")

	bad := []Store{
		MapStore{"longwallgobs/panel_length": "long"},
		MapStore{"longwallgobs/mine_C_radio_button": 1},
		MapStore{"longwallgobs/panel_length": 100.0},
		MapStore{"longwallgobs/panel_half_width": -1.0},
		MapStore{"longwallgobs/max_vsi": 0.0},
		MapStore{"vsi/initial-porosity": 1.0},
		MapStore{"vsi/minimum-resist": 1e7},
		MapStore{"run/workers": 0},
		MapStore{"longwallgobs/mine_C_radio_button": true, "longwallgobs/gateroad_width": 151.0},
	}
	for i, store := range bad {
		_, err := Resolve(store)
		assert.Error(tst, err, "test %d", i)
		io.Pforan("%d: %v\n", i, err)
	}

	// malformed ini value
	store, err := NewIniStore([]byte("[vsi]\nmaximum-resist = lots\n"))
	require.NoError(tst, err)
	_, err = Resolve(store)
	assert.Error(tst, err)

	// missing file
	_, err = NewIniStore("/tmp/longwallgobs/does-not-exist.ini")
	assert.Error(tst, err)
}

func Test_config05(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("config05")

	// keys without section go to the default section
	store, err := NewIniStore([]byte("answer = 42\nflag = yes\n[vsi]\nporosity-scaler = 0.5\n"))
	require.NoError(tst, err)

	v, found, err := store.Real("answer")
	require.NoError(tst, err)
	assert.True(tst, found)
	chk.Float64(tst, "answer", 1e-15, v, 42)

	b, found, err := store.Bool("flag")
	require.NoError(tst, err)
	assert.True(tst, found)
	assert.True(tst, b)

	_, found, err = store.Real("vsi/maximum-porosity")
	require.NoError(tst, err)
	assert.False(tst, found)

	_, found, err = store.Real("nosection/key")
	require.NoError(tst, err)
	assert.False(tst, found)

	m := MapStore{"b": true, "a": 1}
	assert.Equal(tst, []string{"a", "b"}, m.Keys())
}

func Test_config06(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("config06")

	// json and ini files with the same contents
	sj, err := NewStore("data/minec.json")
	require.NoError(tst, err)
	si, err := NewStore("data/minec.ini")
	require.NoError(tst, err)
	cj, err := Resolve(sj)
	require.NoError(tst, err)
	ci, err := Resolve(si)
	require.NoError(tst, err)
	io.Pforan("%s\n", cj.Echo())
	assert.Equal(tst, vsi.SuperCriticalTypeA, cj.Panel.Mine)
	chk.Float64(tst, "L", 1e-17, cj.Panel.Length, 1200)
	chk.Float64(tst, "xoff", 1e-17, cj.Panel.Xoffset, 50)
	chk.Array(tst, "rscal", 1e-17, cj.Flow.ResistScaler[:], []float64{1, 1, 2})
	chk.IntAssert(cj.Run.Workers, 3)
	assert.Equal(tst, ci.Panel, cj.Panel)
	assert.Equal(tst, ci.Flow, cj.Flow)
	assert.Equal(tst, ci.Run, cj.Run)
	assert.Equal(tst, ci.Given, cj.Given)

	// errors
	_, err = NewStore("data/minec.yaml")
	assert.Error(tst, err)
	_, err = NewStore("data/does-not-exist.json")
	assert.Error(tst, err)
	_, err = ReadJson("data", "nested.json")
	assert.Error(tst, err)
	_, err = ReadJson("data", "minec.ini")
	assert.Error(tst, err)

	// values without section and malformed values
	store := MapStore{"vsi/maximum-resist": "lots"}
	_, err = Resolve(store)
	assert.Error(tst, err)
}

func Test_config07(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("config07")

	// unreadable files are returned as errors
	_, err := ReadFile("data/does-not-exist.json")
	assert.Error(tst, err)
	io.Pforan("%v\n", err)
	_, err = ReadJson("data", "does-not-exist.json")
	assert.Error(tst, err)
	b, err := ReadFile("data/minec.json")
	require.NoError(tst, err)
	assert.NotEmpty(tst, b)

	// porosity keys under longwallgobs
	cfg, err := Resolve(MapStore{"longwallgobs/max_porosity": 0.35, "longwallgobs/initial_porosity": 0.5})
	require.NoError(tst, err)
	chk.Float64(tst, "nmax", 1e-17, cfg.Flow.MaxPorosity, 0.35)
	chk.Float64(tst, "nscal", 1e-17, cfg.Flow.PorosityScaler, 0.5)
	assert.True(tst, cfg.IsGiven("vsi/maximum-porosity"))
	assert.True(tst, cfg.IsGiven("longwallgobs/max_porosity"))
	assert.Contains(tst, cfg.Echo(), "maximum porosity behind shields")

	// the vsi keys take precedence
	cfg, err = Resolve(MapStore{"longwallgobs/max_porosity": 0.35, "vsi/maximum-porosity": 0.30})
	require.NoError(tst, err)
	chk.Float64(tst, "nmax", 1e-17, cfg.Flow.MaxPorosity, 0.30)
	assert.False(tst, cfg.IsGiven("longwallgobs/max_porosity"))

	_, err = Resolve(MapStore{"longwallgobs/initial_porosity": "high"})
	assert.Error(tst, err)

	// number of workers
	for _, w := range []interface{}{2.5, -1.0, 1e30, math.NaN(), float64(MaxWorkers + 1)} {
		_, err = Resolve(MapStore{"run/workers": w})
		assert.Error(tst, err, "workers = %v", w)
	}
	cfg, err = Resolve(MapStore{"run/workers": float64(MaxWorkers)})
	require.NoError(tst, err)
	assert.Equal(tst, MaxWorkers, cfg.Run.Workers)
}
