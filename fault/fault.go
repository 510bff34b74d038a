// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError // a builder or validation failure
type DecodeError GenericError  // malformed wire input
type ProcessError GenericError // a text transport or conversion failure

// validation errors - keep in alphabetic order
var (
	ErrAssetCodeIsEmpty        = InvalidError("asset code is empty")
	ErrAssetCodeNotPrintable   = InvalidError("asset code contains non-printable characters")
	ErrAssetCodeTooLong        = InvalidError("asset code too long")
	ErrAssetIssuerRequired     = InvalidError("asset issuer is required")
	ErrBalanceOutOfRange       = InvalidError("starting balance out of range")
	ErrBaseFeeTooLow           = InvalidError("base fee below protocol minimum")
	ErrBuilderAlreadyConsumed  = InvalidError("builder already consumed")
	ErrBumpToOutOfRange        = InvalidError("bump to must be non-negative")
	ErrBumpToRequired          = InvalidError("bump to is required")
	ErrDataNameRequired        = InvalidError("data name is required")
	ErrDataNameTooLong         = InvalidError("data name too long")
	ErrDataValueTooLong        = InvalidError("data value too long")
	ErrDestinationRequired     = InvalidError("destination is required")
	ErrFeeOverflow             = InvalidError("total fee exceeds protocol maximum")
	ErrMemoHashLength          = InvalidError("memo hash must be thirty two bytes")
	ErrMemoTextTooLong         = InvalidError("memo text too long")
	ErrNoOperations            = InvalidError("transaction needs at least one operation")
	ErrPaymentAmountOutOfRange = InvalidError("payment amount must be positive")
	ErrPaymentAmountRequired   = InvalidError("payment amount is required")
	ErrPaymentAssetRequired    = InvalidError("payment asset is required")
	ErrSourceAccountRequired   = InvalidError("source account is required")
	ErrStartingBalanceRequired = InvalidError("starting balance is required")
	ErrTooManyOperations       = InvalidError("too many operations for one transaction")
	ErrTooManySignatures       = InvalidError("too many signatures for one envelope")
	ErrTrustAssetIsNative      = InvalidError("cannot change trust for the native asset")
	ErrTrustAssetRequired      = InvalidError("trust asset is required")
	ErrTrustLimitOutOfRange    = InvalidError("trust limit must be non-negative")
)

// decode errors - keep in alphabetic order
var (
	ErrBufferTooShort          = DecodeError("buffer too short")
	ErrInvalidBoolean          = DecodeError("boolean discriminant is not zero or one")
	ErrInvalidEnvelopeType     = DecodeError("unknown envelope type")
	ErrInvalidMemoType         = DecodeError("unknown memo type")
	ErrInvalidPresenceFlag     = DecodeError("optional presence flag is not zero or one")
	ErrLengthOutOfRange        = DecodeError("length prefix out of range")
	ErrNonZeroPadding          = DecodeError("padding bytes are not zero")
	ErrTrailingBytes           = DecodeError("extra bytes after end of record")
	ErrUnknownAccountType      = DecodeError("unknown account type")
	ErrUnknownAssetType        = DecodeError("unknown asset type")
	ErrUnknownOperationType    = DecodeError("unknown operation type")
	ErrUnsupportedExtension    = DecodeError("unsupported extension version")
	ErrValueOutOfRangeOnDecode = DecodeError("decoded value violates a protocol invariant")
)

// process errors - keep in alphabetic order
var (
	ErrCannotDecodeAccount = ProcessError("cannot decode account")
	ErrCannotDecodeBase64  = ProcessError("cannot decode base64")
	ErrCannotDecodeSeed    = ProcessError("cannot decode seed")
	ErrChecksumMismatch    = ProcessError("checksum mismatch")
	ErrInvalidKeyLength    = ProcessError("key length is invalid")
	ErrInvalidSignature    = ProcessError("invalid signature")
	ErrNotPublicKey        = ProcessError("encoded text is not a public key")
	ErrNotSeed             = ProcessError("encoded text is not a seed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string { return string(e) }
func (e DecodeError) Error() string  { return string(e) }
func (e ProcessError) Error() string { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }
func IsErrDecode(e error) bool  { _, ok := e.(DecodeError); return ok }
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
