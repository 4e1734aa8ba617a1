package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "too short",
			address:    "WGSHC4TY",
			expIsValid: false,
		},
		{
			desc:       "valid address",
			address:    "WGSHC4TYXRIJAGGENJBGHBK3G47NFAUPYBBSFD5ZBEFVL3MZREB62E4TQA",
			expIsValid: true,
		},
		{
			desc:       "lower case rejected",
			address:    "wgshc4tyxrijaggenjbghbk3g47nfaupybbsfd5zbefvl3mzreb62e4tqa",
			expIsValid: false,
		},
		{
			desc:       "invalid base32 characters",
			address:    "WGSHC4TYXRIJAGGENJBGHBK3G47NFAUPYBBSFD5ZBEFVL3MZREB62E4T18",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
