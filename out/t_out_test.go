// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/longwallgobs/gob/field"
	"github.com/longwallgobs/gob/inp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDriver returns a quiet driver for the given configuration
func newDriver(tst *testing.T, store inp.MapStore) *field.Driver {
	cfg, err := inp.Resolve(store)
	require.NoError(tst, err)
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	drv, err := field.NewDriver(cfg, log)
	require.NoError(tst, err)
	return drv
}

func Test_out01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("out01")

	drv := newDriver(tst, inp.MapStore{})
	L := drv.Vsi.L

	// along the centreline
	p, err := Along(drv, 0, 3)
	require.NoError(tst, err)
	chk.Array(tst, "s", 1e-15, p.S, []float64{0, L / 2, L})
	chk.Float64(tst, "vsi @ L/2", 1e-14, p.Get("vsi")[1], 0.21030622008726335)
	chk.Float64(tst, "n @ L/2", 1e-14, p.Get("n")[1], 0.40-0.21030622008726335)
	for _, key := range Keys {
		assert.Len(tst, p.Get(key), 3)
	}
	assert.Panics(tst, func() { p.Get("temperature") })

	// across the panel
	q, err := Across(drv, L/2, 5)
	require.NoError(tst, err)
	chk.Array(tst, "s", 1e-15, q.S, []float64{-100, -50, 0, 50, 100})
	chk.Float64(tst, "vsi @ x=0", 1e-14, q.Get("vsi")[2], 0.21030622008726335)
	chk.Float64(tst, "symmetry", 1e-15, q.Get("vsi")[1], q.Get("vsi")[3])

	// bad input
	_, err = Along(drv, 0, 1)
	assert.Error(tst, err)
	_, err = Across(drv, 0, 0)
	assert.Error(tst, err)

	// table
	tab := q.Table()
	io.Pforan("%s", tab)
	lines := strings.Split(strings.TrimSpace(tab), "\n")
	require.Len(tst, lines, 7)
	assert.Equal(tst, "# across panel @ y=1539.24", lines[0])
	for _, key := range Keys {
		assert.Contains(tst, lines[1], key)
	}
}

func Test_out02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("out02")

	for _, store := range []inp.MapStore{
		{},
		{"longwallgobs/mine_C_radio_button": true},
		{"longwallgobs/mine_E_radio_button": true},
	} {
		drv := newDriver(tst, store)
		r, err := NewRaster(drv.Vsi, 21, 41)
		require.NoError(tst, err)
		ny, nx := r.V.Dims()
		assert.Equal(tst, 41, ny)
		assert.Equal(tst, 21, nx)
		rng := r.Range()
		assert.True(tst, rng.Min >= 0)
		assert.True(tst, rng.Max > 0 && rng.Max <= drv.Vsi.MaxVsi)
		assert.True(tst, r.Y[0] < r.Y[ny-1])

		art := r.Ascii(drv.Vsi.MaxVsi)
		rows := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
		assert.Len(tst, rows, ny)
		assert.Len(tst, rows[0], nx)
		io.Pf("%s\n", art)
	}

	drv := newDriver(tst, inp.MapStore{})
	_, err := NewRaster(drv.Vsi, 0, 3)
	assert.Error(tst, err)
}

func Test_out03(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("out03")

	drv := newDriver(tst, inp.MapStore{"longwallgobs/mine_C_radio_button": true})
	p, err := Along(drv, 0, 101)
	require.NoError(tst, err)

	// png signature
	var buf bytes.Buffer
	require.NoError(tst, PlotProfile(&buf, p, "vsi", "n"))
	assert.True(tst, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	// constant values
	q, err := Across(drv, 2*drv.Vsi.L, 11)
	require.NoError(tst, err)
	buf.Reset()
	require.NoError(tst, PlotProfile(&buf, q, "vsi"))

	// bad key
	assert.Error(tst, PlotProfile(&buf, p, "temperature"))

	// files
	dir := tst.TempDir()
	require.NoError(tst, SavePlot(filepath.Join(dir, "charts"), "along.png", p, "R1", "R2", "R3"))
	info, err := os.Stat(filepath.Join(dir, "charts", "along.png"))
	require.NoError(tst, err)
	assert.True(tst, info.Size() > 0)
	WriteTable(dir, "along.dat", p)
	b, err := os.ReadFile(filepath.Join(dir, "along.dat"))
	require.NoError(tst, err)
	assert.Equal(tst, p.Table(), string(b))

	// directory cannot be created over a file
	blocker := filepath.Join(dir, "blocker")
	require.NoError(tst, os.WriteFile(blocker, []byte("x"), 0644))
	assert.Error(tst, SavePlot(blocker, "along.png", p, "vsi"))
}

func Test_out04(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("out04")

	drv := newDriver(tst, inp.MapStore{})
	L := drv.Vsi.L

	// straight path along the centreline
	p, err := Path(drv, [][]float64{{0, 0}, {0, L}}, 2)
	require.NoError(tst, err)
	chk.Array(tst, "s", 1e-15, p.S, []float64{0, L / 2, L})
	chk.Float64(tst, "vsi @ L/2", 1e-14, p.Get("vsi")[1], 0.21030622008726335)

	// L-shaped path
	q, err := Path(drv, [][]float64{{0, L / 2}, {50, L / 2}, {50, L/2 + 100}}, 2)
	require.NoError(tst, err)
	chk.Array(tst, "s", 1e-12, q.S, []float64{0, 25, 50, 100, 150})
	r, err := Across(drv, L/2, 5)
	require.NoError(tst, err)
	chk.Float64(tst, "vsi @ corner", 1e-15, q.Get("vsi")[2], r.Get("vsi")[3])
	chk.Float64(tst, "vsi @ start", 1e-15, q.Get("vsi")[0], r.Get("vsi")[2])

	// bad input
	_, err = Path(drv, [][]float64{{0, 0}}, 2)
	assert.Error(tst, err)
	_, err = Path(drv, [][]float64{{0, 0}, {0, 1}}, 0)
	assert.Error(tst, err)
	_, err = Path(drv, [][]float64{{0, 0}, {0}}, 1)
	assert.Error(tst, err)
}
