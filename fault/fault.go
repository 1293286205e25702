// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCountMismatch        = ProcessError("node count does not match tree")
	ErrEmptyTree            = NotFoundError("tree is empty")
	ErrHeightMismatch       = InvalidError("stored height is incorrect")
	ErrInvalidKey           = InvalidError("key cannot be parsed")
	ErrInvalidKeyType       = InvalidError("key type is invalid")
	ErrInvalidLoggerChannel = ProcessError("invalid logger channel")
	ErrInvalidOrder         = InvalidError("traversal order is invalid")
	ErrInvalidStrategy      = InvalidError("removal strategy is invalid")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidTreeType      = InvalidError("tree type is invalid")
	ErrKeyExists            = ExistsError("key already exists")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrMissingArgument      = InvalidError("operation argument is missing")
	ErrNodeReleased         = ProcessError("node already released")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrOrderViolation       = InvalidError("keys are out of order")
	ErrUnbalanced           = InvalidError("node is out of balance")
	ErrUnknownOperation     = InvalidError("unknown operation")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
