package gallery

import (
	"strings"

	"github.com/algogallery/goapi/domain"
)

// Classify decides whether a raw search string denotes a single asset id or
// an account address. Whitespace is trimmed; a blank input yields
// domain.ErrEmptyInput and the caller must not run the pipeline. Anything
// non-numeric is treated as an upper-cased address with no checksum
// validation, malformed addresses surface later through the indexer's
// failure path.
func Classify(input string) (*SearchTarget, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, domain.ErrEmptyInput
	}

	if isNumeric(trimmed) {
		id, err := domain.ParseAssetId(trimmed)
		if err != nil {
			return nil, err
		}
		return &SearchTarget{Kind: TargetAssetId, AssetId: id}, nil
	}

	return &SearchTarget{
		Kind:    TargetAddress,
		Address: domain.Address(trimmed).ToUpper(),
	}, nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
