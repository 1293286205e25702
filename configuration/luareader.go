// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"bytes"
	"os"
	"reflect"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avltree/fault"
)

// ParseConfigurationFile - read and execute a Lua file and assign
// the results to a configuration structure
func ParseConfigurationFile(fs afero.Fs, fileName string, config interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	data, err := afero.ReadFile(fs, fileName)
	if os.IsNotExist(err) {
		return fault.ErrNotFoundConfigFile
	}
	if nil != err {
		return errors.Wrapf(err, "read configuration: %q", fileName)
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	// execute configuration
	fn, err := L.Load(bytes.NewReader(data), fileName)
	if nil != err {
		return errors.Wrapf(err, "load configuration: %q", fileName)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); nil != err {
		return errors.Wrapf(err, "execute configuration: %q", fileName)
	}

	table, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return errors.Errorf("configuration: %q did not return a table", fileName)
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	if err := mapper.Map(table, config); nil != err {
		return errors.Wrapf(err, "map configuration: %q", fileName)
	}
	return nil
}
