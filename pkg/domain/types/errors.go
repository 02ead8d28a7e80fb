package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")
)

// Error tags classify failures of the refresh pipeline. Tags survive
// goerr wrapping, so callers can decide whether to absorb or retry
// without matching on messages.
var (
	// CredentialTag marks bad, missing or unparsable key material.
	CredentialTag = goerr.NewTag("credential")

	// TokenExchangeTag marks a failed installation token issuance.
	TokenExchangeTag = goerr.NewTag("token_exchange")

	// FetchTag marks an upstream pull request listing failure.
	FetchTag = goerr.NewTag("fetch")

	// ConversionTag marks malformed pull request metadata.
	ConversionTag = goerr.NewTag("conversion")
)

func IsCredentialError(err error) bool {
	return goerr.HasTag(err, CredentialTag)
}

func IsTokenExchangeError(err error) bool {
	return goerr.HasTag(err, TokenExchangeTag)
}

func IsFetchError(err error) bool {
	return goerr.HasTag(err, FetchTag)
}

func IsConversionError(err error) bool {
	return goerr.HasTag(err, ConversionTag)
}
