package ghapp

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/derynLeigh/dependabot-service/pkg/domain/types"
	"github.com/golang-jwt/jwt/v4"
	"github.com/m-mizutani/goerr/v2"
)

// assertionTTL is the validity window of a minted app credential. The
// upstream authority rejects assertions valid for longer.
const assertionTTL = 10 * time.Minute

const (
	pemTypePKCS1 = "RSA PRIVATE KEY"
	pemTypePKCS8 = "PRIVATE KEY"
)

// credentialSource mints short-lived signed app assertions from the
// configured key material. The key is resolved and parsed on every
// mint; nothing is cached and the key never leaves this type.
type credentialSource struct {
	appID   types.GitHubAppID
	pem     types.GitHubAppPrivateKey
	pemFile string
}

// mintJWT produces a three-segment RS256 assertion with issuer set to
// the App ID, valid from now to now plus the assertion TTL.
func (x *credentialSource) mintJWT(now time.Time) (string, error) {
	key, err := x.privateKey()
	if err != nil {
		return "", err
	}

	claims := jwt.RegisteredClaims{
		Issuer:    strconv.FormatInt(int64(x.appID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(assertionTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign app credential", goerr.T(types.CredentialTag))
	}

	return signed, nil
}

func (x *credentialSource) privateKey() (*rsa.PrivateKey, error) {
	raw, err := x.resolvePEM()
	if err != nil {
		return nil, err
	}
	return parsePrivateKey(raw)
}

// resolvePEM picks the inline key when present, otherwise reads the
// configured key file. Having neither is a credential error.
func (x *credentialSource) resolvePEM() ([]byte, error) {
	if x.pem != "" {
		return []byte(x.pem), nil
	}

	if x.pemFile != "" {
		raw, err := os.ReadFile(filepath.Clean(x.pemFile))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read private key file",
				goerr.T(types.CredentialTag),
				goerr.V("path", x.pemFile),
			)
		}
		return raw, nil
	}

	return nil, goerr.New("no private key configured", goerr.T(types.CredentialTag))
}

// parsePrivateKey accepts both PEM encodings GitHub hands out for App
// keys: PKCS#1 ("RSA PRIVATE KEY", the download default) and PKCS#8
// ("PRIVATE KEY"). PKCS#1 DER is rewrapped into a PKCS#8 envelope so a
// single parser handles both.
func parsePrivateKey(raw []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, goerr.New("failed to decode private key PEM", goerr.T(types.CredentialTag))
	}

	der := block.Bytes
	if block.Type == pemTypePKCS1 {
		der = wrapPKCS1(der)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse private key",
			goerr.T(types.CredentialTag),
			goerr.V("pemType", block.Type),
		)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, goerr.New("private key is not RSA", goerr.T(types.CredentialTag))
	}

	return key, nil
}

// wrapPKCS1 converts PKCS#1 DER bytes into PKCS#8 by prepending the
// fixed outer structure: SEQUENCE, version INTEGER 0, the rsaEncryption
// AlgorithmIdentifier, and an OCTET STRING wrapping the original bytes.
// Both long-form length fields must match the wrapped and inner byte
// counts exactly; an off-by-one here invalidates every signature made
// with the key.
func wrapPKCS1(pkcs1 []byte) []byte {
	inner := len(pkcs1)
	total := inner + 22

	header := []byte{
		0x30, 0x82, byte(total >> 8), byte(total), // SEQUENCE
		0x02, 0x01, 0x00, // INTEGER 0 (version)
		0x30, 0x0d, 0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01, 0x05, 0x00, // rsaEncryption AlgorithmIdentifier
		0x04, 0x82, byte(inner >> 8), byte(inner), // OCTET STRING
	}

	return append(header, pkcs1...)
}
