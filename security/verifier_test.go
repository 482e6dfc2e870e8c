package security

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	URL := filepath.Join(t.TempDir(), "public.pem")
	require.NoError(t, os.WriteFile(URL, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), 0o600))
	return key, URL
}

func sign(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestVerifier_Verify(t *testing.T) {
	key, URL := newKey(t)
	otherKey, _ := newKey(t)
	verifier, err := NewVerifier(context.Background(), &Config{
		PublicKeyURL:   URL,
		Issuer:         "https://idp.example.com",
		Audience:       "mifos-mcp",
		RequiredScopes: []string{"banking"},
	})
	require.NoError(t, err)
	valid := func() jwt.MapClaims {
		return jwt.MapClaims{
			"iss":   "https://idp.example.com",
			"aud":   "mifos-mcp",
			"sub":   "alice",
			"scope": "openid banking",
			"exp":   time.Now().Add(time.Hour).Unix(),
		}
	}

	var testCases = []struct {
		description string
		token       string
		expectErr   bool
	}{
		{description: "valid token", token: sign(t, key, valid())},
		{description: "foreign key", token: sign(t, otherKey, valid()), expectErr: true},
		{description: "expired", token: sign(t, key, func() jwt.MapClaims {
			c := valid()
			c["exp"] = time.Now().Add(-time.Minute).Unix()
			return c
		}()), expectErr: true},
		{description: "no expiry", token: sign(t, key, func() jwt.MapClaims {
			c := valid()
			delete(c, "exp")
			return c
		}()), expectErr: true},
		{description: "wrong issuer", token: sign(t, key, func() jwt.MapClaims {
			c := valid()
			c["iss"] = "https://other.example.com"
			return c
		}()), expectErr: true},
		{description: "wrong audience", token: sign(t, key, func() jwt.MapClaims {
			c := valid()
			c["aud"] = "other"
			return c
		}()), expectErr: true},
		{description: "missing scope", token: sign(t, key, func() jwt.MapClaims {
			c := valid()
			c["scope"] = "openid"
			return c
		}()), expectErr: true},
		{description: "garbage", token: "not-a-token", expectErr: true},
	}
	for _, testCase := range testCases {
		claims, err := verifier.Verify(testCase.token)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, "alice", claims["sub"], testCase.description)
	}
}

func TestVerifier_Middleware(t *testing.T) {
	key, URL := newKey(t)
	verifier, err := NewVerifier(context.Background(), &Config{PublicKeyURL: URL})
	require.NoError(t, err)
	handler := verifier.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	token := sign(t, key, jwt.MapClaims{"sub": "alice", "exp": time.Now().Add(time.Hour).Unix()})

	var testCases = []struct {
		description   string
		authorization string
		expectStatus  int
	}{
		{description: "no token passes", expectStatus: http.StatusNoContent},
		{description: "basic header passes", authorization: "Basic YWxpY2U6c2VjcmV0", expectStatus: http.StatusNoContent},
		{description: "valid token", authorization: "Bearer " + token, expectStatus: http.StatusNoContent},
		{description: "invalid token", authorization: "Bearer forged", expectStatus: http.StatusUnauthorized},
	}
	for _, testCase := range testCases {
		request := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		if testCase.authorization != "" {
			request.Header.Set("Authorization", testCase.authorization)
		}
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.Equal(t, testCase.expectStatus, recorder.Code, testCase.description)
	}
}

func TestNewVerifier_Invalid(t *testing.T) {
	_, err := NewVerifier(context.Background(), &Config{PublicKeyURL: filepath.Join(t.TempDir(), "missing.pem")})
	assert.Error(t, err)

	URL := filepath.Join(t.TempDir(), "key.pem")
	require.NoError(t, os.WriteFile(URL, []byte("not a key"), 0o600))
	_, err = NewVerifier(context.Background(), &Config{PublicKeyURL: URL})
	assert.Error(t, err)
}

func TestConfig(t *testing.T) {
	config := &Config{
		Resource:             "https://bank-mcp.example.com",
		AuthorizationServers: []string{"https://idp.example.com"},
		RequiredScopes:       []string{"banking"},
		PublicKeyURL:         "/etc/mifos/public.pem",
		BackendForFrontend: &BackendForFrontend{
			ClientID:    "mifos",
			AuthURL:     "https://idp.example.com/authorize",
			TokenURL:    "https://idp.example.com/token",
			RedirectURI: "https://bank-mcp.example.com/callback",
			Scopes:      []string{"openid"},
		},
	}
	require.NoError(t, config.Validate())

	policy := config.Policy()
	require.NotNil(t, policy.Global)
	assert.Equal(t, "https://bank-mcp.example.com", policy.Global.ProtectedResourceMetadata.Resource)
	assert.Equal(t, []string{"https://idp.example.com"}, policy.Global.ProtectedResourceMetadata.AuthorizationServers)
	assert.Equal(t, []string{"banking"}, policy.Global.RequiredScopes)

	bff := config.AuthBackendForFrontend()
	require.NotNil(t, bff)
	assert.Equal(t, "https://bank-mcp.example.com/callback", bff.RedirectURI)
	assert.Equal(t, "mifos", bff.Client.ClientID)
	assert.Equal(t, "https://idp.example.com/token", bff.Client.Endpoint.TokenURL)
	assert.Equal(t, "https://bank-mcp.example.com/callback", bff.Client.RedirectURL)

	var testCases = []struct {
		description string
		mutate      func(c *Config)
	}{
		{description: "missing resource", mutate: func(c *Config) { c.Resource = "" }},
		{description: "missing authorization servers", mutate: func(c *Config) { c.AuthorizationServers = nil }},
		{description: "missing public key", mutate: func(c *Config) { c.PublicKeyURL = "" }},
		{description: "incomplete client", mutate: func(c *Config) { c.BackendForFrontend.TokenURL = "" }},
	}
	for _, testCase := range testCases {
		invalid := *config
		bffCopy := *config.BackendForFrontend
		invalid.BackendForFrontend = &bffCopy
		testCase.mutate(&invalid)
		assert.Error(t, invalid.Validate(), testCase.description)
	}
}
