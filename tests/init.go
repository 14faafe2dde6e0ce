// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"io/ioutil"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sirupsen/logrus"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// Logger returns a logger that only writes when running in verbose mode
func Logger() *logrus.Logger {
	log := logrus.New()
	if !chk.Verbose {
		log.SetOutput(ioutil.Discard)
	}
	log.SetLevel(logrus.DebugLevel)
	return log
}
