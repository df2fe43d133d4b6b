package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-video-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-video-accounts/internal/jwt"
	"github.com/sbilibin2017/gw-video-accounts/internal/media"
	"github.com/sbilibin2017/gw-video-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
	"github.com/sbilibin2017/gw-video-accounts/internal/respond"
)

const maxJSONBody = 1 << 20

// CookieConfig controls the session cookies.
type CookieConfig struct {
	Secure bool
}

func (c CookieConfig) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (c CookieConfig) setSession(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, c.cookie(jwt.AccessTokenCookie, accessToken, 0))
	http.SetCookie(w, c.cookie(jwt.RefreshTokenCookie, refreshToken, 0))
}

func (c CookieConfig) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie(jwt.AccessTokenCookie, "", -1))
	http.SetCookie(w, c.cookie(jwt.RefreshTokenCookie, "", -1))
}

// UploadConfig controls multipart spooling.
type UploadConfig struct {
	Dir      string // temp directory, os.TempDir() when empty
	MaxBytes int64  // whole request body limit
}

var safeExt = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

// parseMultipart reads the form. The caller must call the returned cleanup.
func (u UploadConfig) parseMultipart(w http.ResponseWriter, r *http.Request) (func(), error) {
	if u.MaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, u.MaxBytes)
	}
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return func() {}, apperr.Validation("Request is too large")
		}
		return func() {}, apperr.Validation("Invalid multipart form")
	}
	return func() { _ = r.MultipartForm.RemoveAll() }, nil
}

// spool copies the named multipart file to a temp file and returns its path,
// or "" when the field is absent.
func (u UploadConfig) spool(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", apperr.Validation("Invalid " + field + " file")
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !safeExt.MatchString(ext) {
		ext = ""
	}

	tmp, err := os.CreateTemp(u.Dir, "upload-*"+ext)
	if err != nil {
		return "", apperr.Internal("failed to create temp file", err)
	}
	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		media.Discard(tmp.Name())
		return "", apperr.Internal("failed to store upload", err)
	}
	if err := tmp.Close(); err != nil {
		media.Discard(tmp.Name())
		return "", apperr.Internal("failed to store upload", err)
	}
	return tmp.Name(), nil
}

// authenticatedUser returns the caller's ID, answering 401 when there is none.
func authenticatedUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		respond.Error(w, r, apperr.Auth("Unauthorized request"))
		return uuid.Nil, false
	}
	return userID, true
}

// EnvelopeUser documents the envelope around a user payload.
// swagger:model EnvelopeUser
type EnvelopeUser struct {
	StatusCode int          `json:"statusCode" example:"200"`
	Data       *models.User `json:"data"`
	Message    string       `json:"message"`
	Success    bool         `json:"success" example:"true"`
}

// EnvelopeError documents a failed response.
// swagger:model EnvelopeError
type EnvelopeError struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Data       any    `json:"data"`
	Message    string `json:"message" example:"All fields are required"`
	Success    bool   `json:"success" example:"false"`
}
