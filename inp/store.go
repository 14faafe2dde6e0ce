// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/ini.v1"
)

// Store defines a host key-value store with configuration variables. Keys have the form
// "section/name"; e.g. "longwallgobs/panel_length" or "vsi/maximum-resist".
// found is false if the key is absent; err is set if the key is present but malformed
type Store interface {
	Real(key string) (v float64, found bool, err error) // returns a real value
	Bool(key string) (v bool, found bool, err error)    // returns a boolean value
}

// MapStore implements Store with values held in memory.
// Values must be float64, int or bool
type MapStore map[string]interface{}

// Real returns a real value
func (o MapStore) Real(key string) (v float64, found bool, err error) {
	val, found := o[key]
	if !found {
		return
	}
	switch x := val.(type) {
	case float64:
		return x, true, nil
	case int:
		return float64(x), true, nil
	}
	return 0, true, chk.Err("variable %q must be a real number. %v is invalid", key, val)
}

// Bool returns a boolean value
func (o MapStore) Bool(key string) (v bool, found bool, err error) {
	val, found := o[key]
	if !found {
		return
	}
	if x, ok := val.(bool); ok {
		return x, true, nil
	}
	return false, true, chk.Err("variable %q must be a boolean. %v is invalid", key, val)
}

// Keys returns the sorted keys in the store
func (o MapStore) Keys() (keys []string) {
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}

// IniStore implements Store with an ini file. The section of "a/b" is [a] and the key is b;
// keys without section are read from the default section
type IniStore struct {
	File *ini.File // ini data
}

// NewIniStore loads ini data from a file name or a []byte with contents
func NewIniStore(source interface{}) (o *IniStore, err error) {
	file, err := ini.Load(source)
	if err != nil {
		return nil, chk.Err("cannot load configuration:\n%v", err)
	}
	return &IniStore{File: file}, nil
}

// Real returns a real value
func (o *IniStore) Real(key string) (v float64, found bool, err error) {
	k := o.key(key)
	if k == nil {
		return
	}
	v, err = k.Float64()
	if err != nil {
		return 0, true, chk.Err("variable %q must be a real number. %q is invalid", key, k.String())
	}
	return v, true, nil
}

// Bool returns a boolean value
func (o *IniStore) Bool(key string) (v bool, found bool, err error) {
	k := o.key(key)
	if k == nil {
		return
	}
	v, err = k.Bool()
	if err != nil {
		return false, true, chk.Err("variable %q must be a boolean. %q is invalid", key, k.String())
	}
	return v, true, nil
}

// key returns the ini key corresponding to "section/name" or nil if absent
func (o *IniStore) key(key string) *ini.Key {
	section, name := "", key
	if i := strings.Index(key, "/"); i >= 0 {
		section, name = key[:i], key[i+1:]
	}
	sec, err := o.File.GetSection(section)
	if err != nil || !sec.HasKey(name) {
		return nil
	}
	return sec.Key(name)
}
