// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ProcessError("already initialised")
	ErrInvalidChain             = InvalidError("invalid chain")
	ErrInvalidContractAddress   = InvalidError("invalid settlement contract address")
	ErrInvalidDuration          = InvalidError("duration must be non-zero")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidPoolConfiguration = InvalidError("invalid pool configuration")
	ErrMissingSignerKey         = InvalidError("settlement signer key is missing")
	ErrNotAvailable             = ProcessError("not available during resynchronise")
	ErrNotInitialised           = ProcessError("not initialised")
	ErrRateLimited              = ProcessError("submission rate limit exceeded")
	ErrTransactionAlreadyExists = ExistsError("transaction already exists")
	ErrTransactionNotFound      = NotFoundError("transaction not found")
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
