package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-video-accounts/internal/models"
)

// Cookie names carrying the session tokens.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

var (
	// ErrInvalidToken is returned when a token fails signature, expiry or claim checks.
	ErrInvalidToken = errors.New("invalid token")
	// ErrNoToken is returned when a request carries no token.
	ErrNoToken = errors.New("token missing")
)

// Config holds the token secrets and lifetimes.
type Config struct {
	AccessSecret  string        // HMAC secret for access tokens
	AccessExp     time.Duration // Access token lifetime
	RefreshSecret string        // HMAC secret for refresh tokens
	RefreshExp    time.Duration // Refresh token lifetime
	Issuer        string        // iss claim, optional
}

const (
	defaultAccessExp  = 15 * time.Minute
	defaultRefreshExp = 240 * time.Hour
)

// Option configures a JWT.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// WithAccessSecret sets the access token secret.
func WithAccessSecret(secret string) Option {
	return func(c *Config) { c.AccessSecret = secret }
}

// WithRefreshSecret sets the refresh token secret.
func WithRefreshSecret(secret string) Option {
	return func(c *Config) { c.RefreshSecret = secret }
}

// WithAccessExpiration sets the access token lifetime.
func WithAccessExpiration(d time.Duration) Option {
	return func(c *Config) { c.AccessExp = d }
}

// WithRefreshExpiration sets the refresh token lifetime.
func WithRefreshExpiration(d time.Duration) Option {
	return func(c *Config) { c.RefreshExp = d }
}

// WithIssuer sets the iss claim.
func WithIssuer(issuer string) Option {
	return func(c *Config) { c.Issuer = issuer }
}

// JWT issues and verifies access and refresh tokens.
type JWT struct {
	cfg Config
	now func() time.Time
}

// New creates a JWT. Defaults: 15m access tokens, 10 day refresh tokens.
func New(opts ...Option) *JWT {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.AccessExp <= 0 {
		cfg.AccessExp = defaultAccessExp
	}
	if cfg.RefreshExp <= 0 {
		cfg.RefreshExp = defaultRefreshExp
	}
	return &JWT{cfg: cfg, now: time.Now}
}

type accessClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Type     string `json:"typ"`
}

type refreshClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"_id"`
	Type   string `json:"typ"`
}

func (j *JWT) registered(exp time.Duration) jwt.RegisteredClaims {
	now := j.now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    j.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
	}
}

// IssueAccessToken signs an access token carrying the user's identity.
func (j *JWT) IssueAccessToken(ctx context.Context, claims models.AccessClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		RegisteredClaims: j.registered(j.cfg.AccessExp),
		UserID:           claims.UserID.String(),
		Email:            claims.Email,
		Username:         claims.Username,
		FullName:         claims.FullName,
		Type:             typeAccess,
	})
	return token.SignedString([]byte(j.cfg.AccessSecret))
}

// IssueRefreshToken signs a refresh token for userID. Every call yields a
// distinct token because of the random jti.
func (j *JWT) IssueRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims{
		RegisteredClaims: j.registered(j.cfg.RefreshExp),
		UserID:           userID.String(),
		Type:             typeRefresh,
	})
	return token.SignedString([]byte(j.cfg.RefreshSecret))
}

func (j *JWT) parse(tokenString, secret string, claims jwt.Claims) error {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	}
	if j.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.cfg.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// VerifyRefreshToken checks a refresh token and returns the user ID it was issued for.
func (j *JWT) VerifyRefreshToken(ctx context.Context, tokenString string) (uuid.UUID, error) {
	var claims refreshClaims
	if err := j.parse(tokenString, j.cfg.RefreshSecret, &claims); err != nil {
		return uuid.Nil, err
	}
	if claims.Type != typeRefresh {
		return uuid.Nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}

// VerifyAccessToken checks an access token and returns its claims.
func (j *JWT) VerifyAccessToken(ctx context.Context, tokenString string) (*models.AccessClaims, error) {
	var claims accessClaims
	if err := j.parse(tokenString, j.cfg.AccessSecret, &claims); err != nil {
		return nil, err
	}
	if claims.Type != typeAccess {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &models.AccessClaims{
		UserID:   userID,
		Email:    claims.Email,
		Username: claims.Username,
		FullName: claims.FullName,
	}, nil
}

// GetTokenFromRequest extracts the access token from the accessToken cookie,
// falling back to the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if c, err := r.Cookie(AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoToken
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
