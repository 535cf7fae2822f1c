package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"

	"github.com/zbutler/habit-api/internal/errs"
)

// jwksFetchesPerMinute bounds calls to the identity provider's keyset endpoint.
const jwksFetchesPerMinute = 5

// keysetMaxAge bounds how long a fetched keyset is trusted before a periodic
// refresh, so a revoked key with an unchanged kid does not stay valid for the
// process lifetime.
const keysetMaxAge = 10 * time.Minute

// JWKSVerifier validates RS256 bearer tokens against the identity provider's
// published key set. Keys are cached by kid; an unknown kid triggers a
// refresh, and refreshes are rate-limited so a flood of bad tokens cannot
// hammer the provider.
type JWKSVerifier struct {
	jwksURL  string
	issuer   string
	audience string
	client   *http.Client
	limiter  *rate.Limiter

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

// NewJWKSVerifier constructs a verifier for the given keyset endpoint with the
// expected issuer and audience.
func NewJWKSVerifier(jwksURL, issuer, audience string) *JWKSVerifier {
	return &JWKSVerifier{
		jwksURL:  jwksURL,
		issuer:   issuer,
		audience: audience,
		client:   &http.Client{Timeout: 10 * time.Second},
		limiter:  rate.NewLimiter(rate.Every(time.Minute/jwksFetchesPerMinute), jwksFetchesPerMinute),
		keys:     make(map[string]*rsa.PublicKey),
	}
}

// Verify checks signature, issuer, audience and expiry, and returns the
// token's subject. Every failure mode maps to errs.ErrUnauthorized; the
// underlying cause is carried in the message for server-side logs only.
func (v *JWKSVerifier) Verify(ctx context.Context, token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("token has no kid header")
		}
		return v.key(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%w: verify token: %v", errs.ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: token has no subject", errs.ErrUnauthorized)
	}
	return claims.Subject, nil
}

// key returns the cached public key for kid, refreshing the keyset if the
// kid is unknown or the cache is older than keysetMaxAge.
func (v *JWKSVerifier) key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	k := v.keys[kid]
	fresh := time.Since(v.fetchedAt) < keysetMaxAge
	v.mu.RUnlock()
	if k != nil && fresh {
		return k, nil
	}

	if err := v.refresh(ctx); err != nil {
		// A known key outlives a failed or rate-limited refresh.
		if k != nil {
			return k, nil
		}
		return nil, err
	}

	v.mu.RLock()
	k = v.keys[kid]
	v.mu.RUnlock()
	if k == nil {
		return nil, fmt.Errorf("no key for kid %q", kid)
	}
	return k, nil
}

// refresh replaces the key cache with the provider's current key set.
func (v *JWKSVerifier) refresh(ctx context.Context) error {
	if !v.limiter.Allow() {
		return errors.New("keyset fetch rate limited")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return err
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch keyset: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch keyset: unexpected status %d", resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("decode keyset: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || (k.Use != "" && k.Use != "sig") {
			continue
		}
		pub, err := k.publicKey()
		if err != nil {
			continue
		}
		keys[k.Kid] = pub
	}

	v.mu.Lock()
	v.keys = keys
	v.fetchedAt = time.Now()
	v.mu.Unlock()
	return nil
}

// jwksDocument mirrors the well-known JWKS endpoint response.
type jwksDocument struct {
	Keys []jwk `json:"keys"`
}

type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// publicKey builds an rsa.PublicKey from the base64url modulus and exponent.
func (k jwk) publicKey() (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("jwk %q: bad modulus: %w", k.Kid, err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("jwk %q: bad exponent: %w", k.Kid, err)
	}
	e := 0
	for _, b := range eb {
		e = e<<8 | int(b)
	}
	if e == 0 {
		return nil, fmt.Errorf("jwk %q: zero exponent", k.Kid)
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nb), E: e}, nil
}
