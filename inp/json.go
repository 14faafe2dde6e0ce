// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ReadJson reads configuration variables from a JSON file. Top-level objects are sections;
// e.g. {"longwallgobs": {"panel_length": 1200}, "run": {"workers": 2}}. Top-level values
// without section are stored under their own name
func ReadJson(dir, fn string) (o MapStore, err error) {

	// read file
	b, err := ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return
	}

	// decode
	var data map[string]interface{}
	err = json.Unmarshal(b, &data)
	if err != nil {
		return nil, chk.Err("cannot decode %q:\n%v", fn, err)
	}

	// flatten
	o = make(MapStore)
	for name, val := range data {
		section, ok := val.(map[string]interface{})
		if !ok {
			o[name] = val
			continue
		}
		for key, v := range section {
			if _, nested := v.(map[string]interface{}); nested {
				return nil, chk.Err("%q: section %q cannot have nested sections. %q is invalid", fn, name, key)
			}
			o[name+"/"+key] = v
		}
	}
	return
}

// ReadFile reads a whole file, returning an error instead of panicking when the file
// cannot be read
func ReadFile(fnpath string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("cannot read %q:\n%v", fnpath, r)
		}
	}()
	b = io.ReadFile(fnpath)
	return
}

// NewStore allocates a store by reading a .ini or .json file
func NewStore(fnamepath string) (store Store, err error) {
	switch strings.ToLower(filepath.Ext(fnamepath)) {
	case ".json":
		return ReadJson(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	case ".ini":
		return NewIniStore(fnamepath)
	}
	return nil, chk.Err("configuration file must have extension .ini or .json. %q is invalid", fnamepath)
}
