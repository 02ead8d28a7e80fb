package ghapp_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/derynLeigh/dependabot-service/pkg/domain/types"
	"github.com/derynLeigh/dependabot-service/pkg/infra/ghapp"
	"github.com/golang-jwt/jwt/v4"
	"github.com/m-mizutani/gt"
)

func genTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	gt.NoError(t, err)
	return key
}

func encodePKCS1(t *testing.T, key *rsa.PrivateKey) types.GitHubAppPrivateKey {
	t.Helper()
	raw := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	return types.GitHubAppPrivateKey(raw)
}

func encodePKCS8(t *testing.T, key *rsa.PrivateKey) types.GitHubAppPrivateKey {
	t.Helper()
	der, err := x509.MarshalPKCS8PrivateKey(key)
	gt.NoError(t, err)
	raw := pem.EncodeToMemory(&pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: der,
	})
	return types.GitHubAppPrivateKey(raw)
}

func verifyAssertion(t *testing.T, assertion string, key *rsa.PrivateKey, now time.Time) {
	t.Helper()

	segments := strings.Split(assertion, ".")
	gt.A(t, segments).Length(3)
	for _, seg := range segments {
		gt.V(t, len(seg) > 0).Equal(true)
		_, err := base64.RawURLEncoding.DecodeString(seg)
		gt.NoError(t, err)
	}

	jwt.TimeFunc = func() time.Time { return now }
	defer func() { jwt.TimeFunc = time.Now }()

	parsed, err := jwt.Parse(assertion, func(token *jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	gt.NoError(t, err)
	gt.True(t, parsed.Valid)

	claims := gt.Cast[jwt.MapClaims](t, parsed.Claims)
	gt.V(t, claims["iss"]).Equal("12345")

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	gt.V(t, iat).Equal(now.Unix())
	gt.V(t, exp-iat).Equal(int64(600))
}

func TestMintAppJWT(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("mint with PKCS1 key", func(t *testing.T) {
		key := genTestKey(t)
		client := gt.R1(ghapp.New(12345, 67890, ghapp.WithPrivateKey(encodePKCS1(t, key)))).NoError(t)

		assertion, err := client.MintAppJWT(now)
		gt.NoError(t, err)
		verifyAssertion(t, assertion, key, now)
	})

	t.Run("mint with PKCS8 key", func(t *testing.T) {
		key := genTestKey(t)
		client := gt.R1(ghapp.New(12345, 67890, ghapp.WithPrivateKey(encodePKCS8(t, key)))).NoError(t)

		assertion, err := client.MintAppJWT(now)
		gt.NoError(t, err)
		verifyAssertion(t, assertion, key, now)
	})

	t.Run("mint with key file", func(t *testing.T) {
		key := genTestKey(t)
		path := filepath.Join(t.TempDir(), "app.pem")
		gt.NoError(t, os.WriteFile(path, []byte(encodePKCS1(t, key)), 0600))

		client := gt.R1(ghapp.New(12345, 67890, ghapp.WithPrivateKeyFile(path))).NoError(t)

		assertion, err := client.MintAppJWT(now)
		gt.NoError(t, err)
		verifyAssertion(t, assertion, key, now)
	})

	t.Run("inline key takes precedence over file", func(t *testing.T) {
		key := genTestKey(t)
		client := gt.R1(ghapp.New(12345, 67890,
			ghapp.WithPrivateKey(encodePKCS1(t, key)),
			ghapp.WithPrivateKeyFile(filepath.Join(t.TempDir(), "missing.pem")),
		)).NoError(t)

		assertion, err := client.MintAppJWT(now)
		gt.NoError(t, err)
		verifyAssertion(t, assertion, key, now)
	})
}

func TestMintAppJWTErrors(t *testing.T) {
	now := time.Now()

	t.Run("no key configured", func(t *testing.T) {
		client := gt.R1(ghapp.New(12345, 67890)).NoError(t)

		_, err := client.MintAppJWT(now)
		gt.Error(t, err)
		gt.True(t, types.IsCredentialError(err))
	})

	t.Run("key file does not exist", func(t *testing.T) {
		client := gt.R1(ghapp.New(12345, 67890,
			ghapp.WithPrivateKeyFile(filepath.Join(t.TempDir(), "missing.pem")),
		)).NoError(t)

		_, err := client.MintAppJWT(now)
		gt.Error(t, err)
		gt.True(t, types.IsCredentialError(err))
	})

	t.Run("key is not valid PEM", func(t *testing.T) {
		client := gt.R1(ghapp.New(12345, 67890,
			ghapp.WithPrivateKey("not a pem key"),
		)).NoError(t)

		_, err := client.MintAppJWT(now)
		gt.Error(t, err)
		gt.True(t, types.IsCredentialError(err))
	})

	t.Run("PEM body is not a private key", func(t *testing.T) {
		bogus := pem.EncodeToMemory(&pem.Block{
			Type:  "PRIVATE KEY",
			Bytes: []byte("garbage key material"),
		})
		client := gt.R1(ghapp.New(12345, 67890,
			ghapp.WithPrivateKey(types.GitHubAppPrivateKey(bogus)),
		)).NoError(t)

		_, err := client.MintAppJWT(now)
		gt.Error(t, err)
		gt.True(t, types.IsCredentialError(err))
	})
}
