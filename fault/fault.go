// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError   GenericError
	InvalidError  GenericError
	LengthError   GenericError
	NotFoundError GenericError
	ProcessError  GenericError
	RecordError   GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised            = ExistsError("already initialised")
	BoxNotFound                   = NotFoundError("box not found")
	CannotDecodeAccount           = RecordError("cannot decode account")
	CannotDecodePrivateKey        = RecordError("cannot decode private key")
	CarAlreadyRegistered          = ExistsError("car already registered")
	CarNotFound                   = NotFoundError("car not found")
	CertificateFileAlreadyExists  = ExistsError("certificate file already exists")
	ChecksumMismatch              = InvalidError("checksum mismatch")
	ColorTooLong                  = LengthError("color too long")
	CryptoFailed                  = ProcessError("crypto failed")
	DuplicateInputBox             = InvalidError("duplicate input box")
	IdentityNameAlreadyExists     = ExistsError("identity name already exists")
	IdentityNameNotFound          = NotFoundError("identity name not found")
	IncompatibleOptions           = InvalidError("incompatible options")
	IncorrectProof                = InvalidError("incorrect proof")
	InsufficientFunds             = InvalidError("insufficient funds")
	InvalidAmount                 = InvalidError("invalid amount")
	InvalidChain                  = InvalidError("invalid chain")
	InvalidCount                  = LengthError("invalid count")
	InvalidIpAddress              = InvalidError("invalid ip address")
	InvalidItem                   = InvalidError("invalid item")
	InvalidKeyLength              = InvalidError("invalid key length")
	InvalidKeyType                = InvalidError("invalid key type")
	InvalidOwnerOrBuyer           = InvalidError("invalid owner or buyer")
	InvalidPasswordLength         = InvalidError("invalid password length")
	InvalidPrice                  = InvalidError("invalid price")
	InvalidSalt                   = InvalidError("invalid salt")
	InvalidSignature              = InvalidError("invalid signature")
	KeyFileAlreadyExists          = ExistsError("key file already exists")
	MissingLedger                 = ProcessError("missing ledger")
	MissingParameters             = ProcessError("missing parameters")
	ModelTooLong                  = LengthError("model too long")
	NotAvailableDuringSynchronise = ProcessError("not available during synchronise")
	NotAvailableInReadOnlyMode    = ProcessError("not available in read only mode")
	NotBoxPack                    = RecordError("not box pack")
	NotCarBox                     = InvalidError("not car box")
	NotCarId                      = RecordError("not car id")
	NotCoinBox                    = InvalidError("not coin box")
	NotDigest                     = RecordError("not digest")
	NotInitialised                = ProcessError("not initialised")
	NotOwnerProposition           = InvalidError("not owner proposition")
	NotPrivateKey                 = InvalidError("not private key")
	NotProofPack                  = RecordError("not proof pack")
	NotPropositionPack            = RecordError("not proposition pack")
	NotPublicKey                  = InvalidError("not public key")
	NotSellOrderBox               = InvalidError("not sell order box")
	NotSellOrderProposition       = InvalidError("not sell order proposition")
	NotTransactionPack            = RecordError("not transaction pack")
	OutOfDateDatabase             = ProcessError("out of date database")
	PasswordMismatch              = InvalidError("password mismatch")
	RateLimiting                  = ProcessError("rate limiting")
	SellOrderAlreadyExists        = ExistsError("sell order already exists")
	SellOrderNotFound             = NotFoundError("sell order not found")
	SignatureTooLong              = LengthError("signature too long")
	TooManyInputBoxes             = LengthError("too many input boxes")
	TransactionNotFound           = NotFoundError("transaction not found")
	TransactionTooLarge           = LengthError("transaction too large")
	UnknownInputBox               = NotFoundError("unknown input box")
	VinTooLong                    = LengthError("vin too long")
	VinTooShort                   = LengthError("vin too short")
	WrongNetworkForPrivateKey     = InvalidError("wrong network for private key")
	WrongNetworkForPublicKey      = InvalidError("wrong network for public key")
	WrongPassword                 = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// IsErrExists - determine if an error is of the exists class
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if an error is of the invalid class
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - determine if an error is of the length class
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - determine if an error is of the not found class
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine if an error is of the process class
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrRecord - determine if an error is of the record class
func IsErrRecord(e error) bool { _, ok := e.(RecordError); return ok }
