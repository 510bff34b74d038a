// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Lumen Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"github.com/lumenlabs/lumend/account"
	"github.com/lumenlabs/lumend/fault"
	"github.com/lumenlabs/lumend/xdr"
)

// AssetType - wire discriminant for asset kinds
type AssetType uint32

// enumerate the asset kinds
const (
	NativeAssetTag     AssetType = 0
	CreditAsset4Tag    AssetType = 1 // code of one to four characters
	CreditAsset12Tag   AssetType = 2 // code of five to twelve characters
	shortAssetCodeSize           = 4
	longAssetCodeSize            = 12
)

// Asset - a ledger asset as carried inside operations
//
// a plain value: amount and price arithmetic is out of scope here
type Asset struct {
	Code   string           `json:"code,omitempty"`   // empty for the native asset
	Issuer *account.Account `json:"issuer,omitempty"` // nil for the native asset
}

// NativeAsset - the network's own asset
func NativeAsset() *Asset {
	return &Asset{}
}

// CreditAsset - an issued asset
//
// the code must be one to twelve characters drawn from [a-zA-Z0-9]
func CreditAsset(code string, issuer *account.Account) (*Asset, error) {
	if 0 == len(code) {
		return nil, fault.ErrAssetCodeIsEmpty
	}
	if len(code) > longAssetCodeSize {
		return nil, fault.ErrAssetCodeTooLong
	}
	for _, c := range code {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		default:
			return nil, fault.ErrAssetCodeNotPrintable
		}
	}
	if nil == issuer {
		return nil, fault.ErrAssetIssuerRequired
	}
	return &Asset{Code: code, Issuer: issuer}, nil
}

// IsNative - true for the network's own asset
func (asset *Asset) IsNative() bool {
	return nil == asset.Issuer && 0 == len(asset.Code)
}

// Type - the wire discriminant for this asset
func (asset *Asset) Type() AssetType {
	switch {
	case asset.IsNative():
		return NativeAssetTag
	case len(asset.Code) <= shortAssetCodeSize:
		return CreditAsset4Tag
	default:
		return CreditAsset12Tag
	}
}

// pack - append the asset to a buffer
//
// wire form: discriminant, then for credit assets the zero right-padded
// code at its fixed width followed by the issuer account id
func (asset *Asset) pack(buffer xdr.Packed) (xdr.Packed, error) {
	assetType := asset.Type()
	buffer = xdr.AppendUint32(buffer, uint32(assetType))
	if NativeAssetTag == assetType {
		return buffer, nil
	}

	size := shortAssetCodeSize
	if CreditAsset12Tag == assetType {
		size = longAssetCodeSize
	}
	code := make([]byte, size)
	copy(code, asset.Code)
	buffer = xdr.AppendFixedOpaque(buffer, code)
	return asset.Issuer.Pack(buffer), nil
}

// unpackAsset - read an asset from a reader
func unpackAsset(r *xdr.Reader) (*Asset, error) {
	assetType, err := r.Uint32()
	if nil != err {
		return nil, err
	}

	size := 0
	switch AssetType(assetType) {
	case NativeAssetTag:
		return NativeAsset(), nil
	case CreditAsset4Tag:
		size = shortAssetCodeSize
	case CreditAsset12Tag:
		size = longAssetCodeSize
	default:
		return nil, fault.ErrUnknownAssetType
	}

	paddedCode, err := r.FixedOpaque(size)
	if nil != err {
		return nil, err
	}
	code := trimAssetCode(paddedCode)
	if nil == code {
		return nil, fault.ErrValueOutOfRangeOnDecode
	}

	issuer, err := account.UnpackAccount(r)
	if nil != err {
		return nil, err
	}
	asset, err := CreditAsset(string(code), issuer)
	if nil != err {
		return nil, fault.ErrValueOutOfRangeOnDecode
	}
	if asset.Type() != AssetType(assetType) {
		// a short code padded out to the long width would re-encode
		// differently and break the round-trip law
		return nil, fault.ErrValueOutOfRangeOnDecode
	}
	return asset, nil
}

// strip the zero padding from a fixed width code
//
// returns nil for a non-canonical code (zero byte before a non-zero one
// or an all-zero code)
func trimAssetCode(padded []byte) []byte {
	end := len(padded)
	for end > 0 && 0 == padded[end-1] {
		end -= 1
	}
	if 0 == end {
		return nil
	}
	for _, c := range padded[:end] {
		if 0 == c {
			return nil
		}
	}
	return padded[:end]
}
