package security

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/viant/afs"
)

// Verifier verifies RSA signed bearer tokens
type Verifier struct {
	key      *rsa.PublicKey
	issuer   string
	audience string
	scopes   []string
}

// Verify parses and verifies token, returning its claims
func (v *Verifier) Verify(token string) (jwt.MapClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		options = append(options, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		options = append(options, jwt.WithAudience(v.audience))
	}
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.key, nil
	}, options...); err != nil {
		return nil, err
	}
	granted, _ := claims["scope"].(string)
	for _, scope := range v.scopes {
		if !hasScope(granted, scope) {
			return nil, fmt.Errorf("token is missing scope: %v", scope)
		}
	}
	return claims, nil
}

// Middleware rejects requests carrying a bearer token that fails verification.
// Requests without a token are passed on, the authorization policy decides whether they need one.
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r.Header.Get("Authorization"))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		if _, err := v.Verify(token); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// BearerToken extracts token from Authorization header value
func BearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[7:])
	return token, token != ""
}

func hasScope(granted, scope string) bool {
	for _, candidate := range strings.Fields(granted) {
		if candidate == scope {
			return true
		}
	}
	return false
}

// NewVerifier creates a verifier with public key loaded from config.PublicKeyURL
func NewVerifier(ctx context.Context, config *Config) (*Verifier, error) {
	data, err := afs.New().DownloadWithURL(ctx, config.PublicKeyURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load public key %v: %w", config.PublicKeyURL, err)
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM(data)
	if err != nil {
		return nil, fmt.Errorf("invalid public key %v: %w", config.PublicKeyURL, err)
	}
	return &Verifier{key: key, issuer: config.Issuer, audience: config.Audience, scopes: config.RequiredScopes}, nil
}
