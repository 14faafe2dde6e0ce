// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/io"
)

// Table returns the profile as a text table with one row per point
func (o *Profile) Table() string {
	var buf bytes.Buffer
	io.Ff(&buf, "# %s\n", o.Title)
	io.Ff(&buf, "%14s", "s")
	for _, key := range Keys {
		io.Ff(&buf, "%23s", key)
	}
	io.Ff(&buf, "\n")
	for i, s := range o.S {
		io.Ff(&buf, "%14.6f", s)
		for _, key := range Keys {
			io.Ff(&buf, "%23.15e", o.Vals[key][i])
		}
		io.Ff(&buf, "\n")
	}
	return buf.String()
}

// WriteTable writes the table of a profile to dirout/fn
func WriteTable(dirout, fn string, p *Profile) {
	io.WriteStringToFileD(dirout, fn, p.Table())
}
