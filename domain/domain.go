package domain

import (
	"strconv"
	"strings"
)

// AssetId is the numeric identifier of an asset on the ledger.
type AssetId uint64

func (id AssetId) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func ParseAssetId(s string) (AssetId, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ErrBadParamInput
	}
	return AssetId(v), nil
}

// Address is a base32 account address on the ledger.
type Address string

func (a Address) ToUpper() Address {
	return Address(strings.ToUpper(string(a)))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToUpper() == b.ToUpper()
}

// Short returns a truncated display form, e.g. "WGSHC4TY..." for n = 8.
func (a Address) Short(n int) string {
	s := string(a)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
