// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "."

	defaultTree    = "avl"
	defaultRemoval = "copy"
	defaultKeys    = "int"
	defaultOrder   = "in"

	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - configuration file data
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Tree          string               `gluamapper:"tree" json:"tree"`
	Removal       string               `gluamapper:"removal" json:"removal"`
	Keys          string               `gluamapper:"keys" json:"keys"`
	Order         string               `gluamapper:"order" json:"order"`
	Insert        []string             `gluamapper:"insert" json:"insert"`
	Remove        []string             `gluamapper:"remove" json:"remove"`
	Operations    []string             `gluamapper:"operations" json:"operations"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// default configuration, used as is when no file is given
func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Tree:          defaultTree,
		Removal:       defaultRemoval,
		Keys:          defaultKeys,
		Order:         defaultOrder,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// will read decode and verify the configuration
// an empty file name selects the defaults
func getConfiguration(fs afero.Fs, configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	if "" != configurationFileName {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		if err := configuration.ParseConfigurationFile(fs, configurationFileName, options); nil != err {
			return nil, err
		}

		// "." is the same directory as the configuration file
		if "." == options.DataDirectory {
			options.DataDirectory, _ = filepath.Split(configurationFileName)
		}
	}

	if err := options.check(); nil != err {
		return nil, err
	}

	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, errors.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	}
	dataDirectory, err := filepath.Abs(filepath.Clean(options.DataDirectory))
	if nil != err {
		return nil, err
	}
	options.DataDirectory = dataDirectory

	// log file must be a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, errors.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = configuration.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := fs.MkdirAll(options.Logging.Directory, 0o700); nil != err {
		return nil, err
	}

	return options, nil
}

// validate the tree selection items; names are normalised to lower case
func (options *Configuration) check() error {
	options.Tree = strings.ToLower(options.Tree)
	switch options.Tree {
	case "avl", "bst":
	default:
		return fault.ErrInvalidTreeType
	}

	options.Keys = strings.ToLower(options.Keys)
	switch options.Keys {
	case "int", "string":
	default:
		return fault.ErrInvalidKeyType
	}

	if _, err := avl.ParseStrategy(options.Removal); nil != err {
		return err
	}
	if _, err := avl.ParseOrder(options.Order); nil != err {
		return err
	}
	return nil
}

// the operations requested by the configuration file, in the form
// accepted on the command line
func (options *Configuration) script() []string {
	s := make([]string, 0, 2*len(options.Insert)+2*len(options.Remove)+len(options.Operations))
	for _, key := range options.Insert {
		s = append(s, "insert", key)
	}
	for _, key := range options.Remove {
		s = append(s, "remove", key)
	}
	return append(s, options.Operations...)
}

// apply command-line selections on top of the configuration file
func (options *Configuration) override(flags map[string][]string) error {
	last := func(name string, value *string) {
		if n := len(flags[name]); n > 0 {
			*value = flags[name][n-1]
		}
	}
	last("tree", &options.Tree)
	last("removal", &options.Removal)
	last("keys", &options.Keys)
	last("order", &options.Order)

	return options.check()
}
