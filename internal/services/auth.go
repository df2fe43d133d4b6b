package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-video-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-video-accounts/internal/logger"
	"github.com/sbilibin2017/gw-video-accounts/internal/media"
	"github.com/sbilibin2017/gw-video-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
	"github.com/sbilibin2017/gw-video-accounts/internal/password"
	"github.com/sbilibin2017/gw-video-accounts/internal/repositories"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.UserDB) error
	SetRefreshToken(ctx context.Context, userID uuid.UUID, token *string) error
	SetPasswordHash(ctx context.Context, userID uuid.UUID, hash string) error
	UpdateAccount(ctx context.Context, userID uuid.UUID, fullName, email string) (*models.UserDB, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, url string) (*models.UserDB, error)
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, url string) (*models.UserDB, error)
}

// UserCache holds sanitized users between requests.
type UserCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// TokenIssuer creates and checks session tokens.
type TokenIssuer interface {
	IssueAccessToken(ctx context.Context, claims models.AccessClaims) (string, error)
	IssueRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)
	VerifyRefreshToken(ctx context.Context, token string) (uuid.UUID, error)
}

// PasswordHasher hashes new passwords and checks candidates against stored hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, stored string) bool
}

// MediaUploader relays a spooled local file to the media host and deletes it.
type MediaUploader interface {
	Upload(ctx context.Context, localPath string) (*models.UploadResult, error)
}

// RegisterInput is the data collected by the registration form.
type RegisterInput struct {
	Username       string
	FullName       string
	Email          string
	Password       string
	AvatarPath     string
	CoverImagePath string
}

// AuthService handles registration, sessions and profile updates.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	cache       UserCache
	tokens      TokenIssuer
	hasher      PasswordHasher
	uploader    MediaUploader
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService. cache and kafkaWriter may be nil.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	cache UserCache,
	tokens TokenIssuer,
	hasher PasswordHasher,
	uploader MediaUploader,
	kafkaWriter KafkaWriter,
) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		tokens:      tokens,
		hasher:      hasher,
		uploader:    uploader,
		kafkaWriter: kafkaWriter,
	}
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Register creates a user after the uniqueness and avatar checks.
// Spooled files are deleted on every path.
func (svc *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	email := strings.ToLower(strings.TrimSpace(in.Email))
	fullName := strings.TrimSpace(in.FullName)

	discard := func() {
		media.Discard(in.AvatarPath)
		media.Discard(in.CoverImagePath)
	}

	if blank(username, email, fullName, in.Password) {
		discard()
		return nil, apperr.Validation("All fields are required")
	}

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		discard()
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, apperr.Internal("failed to check user exists", err)
	}
	if existing != nil {
		discard()
		logger.Log.Infow("user already exists", "username", username, "email", email)
		return nil, apperr.Conflict("User with email or username already exists")
	}

	if in.AvatarPath == "" {
		discard()
		return nil, apperr.Validation("Avatar file is required")
	}

	hash, err := svc.hasher.Hash(in.Password)
	if err != nil {
		discard()
		if errors.Is(err, password.ErrPasswordTooLong) {
			return nil, apperr.Validation("Password is too long")
		}
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, apperr.Internal("failed to hash password", err)
	}

	avatar, err := svc.uploader.Upload(ctx, in.AvatarPath)
	if err != nil || avatar == nil || avatar.URL == "" {
		media.Discard(in.CoverImagePath)
		logger.Log.Errorw("avatar upload failed", "username", username, "err", err)
		return nil, apperr.Upload("Avatar upload failed", err)
	}

	coverImage := ""
	if in.CoverImagePath != "" {
		cover, err := svc.uploader.Upload(ctx, in.CoverImagePath)
		if err != nil || cover == nil {
			logger.Log.Warnw("cover image upload failed, continuing without it", "username", username, "err", err)
		} else {
			coverImage = cover.URL
		}
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        email,
		FullName:     fullName,
		Avatar:       avatar.URL,
		CoverImage:   coverImage,
		PasswordHash: hash,
	}
	if err := svc.writer.Create(ctx, user); err != nil {
		// uploaded objects stay in the bucket; keep their URLs for cleanup
		logger.Log.Warnw("orphaned media after failed registration",
			"username", username,
			"avatar", user.Avatar,
			"coverImage", user.CoverImage,
			"error", err,
		)
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperr.Conflict("User with email or username already exists")
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, apperr.Internal("Something went wrong while registering the user", err)
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventUserRegistered, user.UserID, nil)
	return user.ToUser(), nil
}

// issueTokens creates a new token pair and stores the refresh token, replacing the previous one.
func (svc *AuthService) issueTokens(ctx context.Context, user *models.UserDB) (*models.TokenPair, error) {
	access, err := svc.tokens.IssueAccessToken(ctx, models.AccessClaims{
		UserID:   user.UserID,
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
	})
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "userID", user.UserID, "err", err)
		return nil, apperr.Internal("Something went wrong while generating tokens", err)
	}

	refresh, err := svc.tokens.IssueRefreshToken(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "userID", user.UserID, "err", err)
		return nil, apperr.Internal("Something went wrong while generating tokens", err)
	}

	if err := svc.writer.SetRefreshToken(ctx, user.UserID, &refresh); err != nil {
		logger.Log.Errorw("failed to store refresh token", "userID", user.UserID, "err", err)
		return nil, apperr.Internal("Something went wrong while generating tokens", err)
	}
	svc.invalidate(ctx, user.UserID)

	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Login authenticates by username or email and rotates the refresh token.
func (svc *AuthService) Login(ctx context.Context, username, email, pass string) (*models.LoginResult, error) {
	u, e := optional(username), optional(email)
	if u == nil && e == nil {
		return nil, apperr.Validation("username or email is required")
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, u, e)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, apperr.Internal("failed to get user", err)
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "username", username, "email", email)
		return nil, apperr.NotFound("User does not exist")
	}

	if !svc.hasher.Verify(pass, user.PasswordHash) {
		logger.Log.Infow("invalid credentials", "userID", user.UserID)
		return nil, apperr.Auth("Invalid user credentials")
	}

	pair, err := svc.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventUserLoggedIn, user.UserID, nil)
	return &models.LoginResult{
		User:         user.ToUser(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Logout clears the stored refresh token so it can no longer be exchanged.
func (svc *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := svc.writer.SetRefreshToken(ctx, userID, nil); err != nil {
		logger.Log.Errorw("failed to clear refresh token", "userID", userID, "err", err)
		return apperr.Internal("failed to log out", err)
	}
	svc.invalidate(ctx, userID)

	publishEvent(ctx, svc.kafkaWriter, models.EventUserLoggedOut, userID, nil)
	return nil
}

// RefreshAccessToken exchanges the current refresh token for a new pair.
// A superseded token is rejected.
func (svc *AuthService) RefreshAccessToken(ctx context.Context, token string) (*models.TokenPair, error) {
	if token == "" {
		return nil, apperr.Auth("unauthorized request")
	}

	userID, err := svc.tokens.VerifyRefreshToken(ctx, token)
	if err != nil {
		logger.Log.Infow("refresh token rejected", "err", err)
		return nil, apperr.Auth("Invalid refresh token")
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, apperr.Internal("failed to get user", err)
	}
	if user == nil {
		return nil, apperr.Auth("Invalid refresh token")
	}

	if token != user.StoredRefreshToken() {
		logger.Log.Warnw("stale refresh token presented", "userID", userID)
		return nil, apperr.Auth("Refresh token is expired or used")
	}

	pair, err := svc.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.EventUserTokenRefreshed, user.UserID, nil)
	return pair, nil
}

// ChangePassword replaces the password after checking the current one.
func (svc *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	if blank(newPassword) {
		return apperr.Validation("New password is required")
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return apperr.Internal("failed to get user", err)
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}

	if !svc.hasher.Verify(oldPassword, user.PasswordHash) {
		return apperr.Auth("Invalid old password")
	}

	hash, err := svc.hasher.Hash(newPassword)
	if err != nil {
		if errors.Is(err, password.ErrPasswordTooLong) {
			return apperr.Validation("Password is too long")
		}
		logger.Log.Errorw("failed to hash password", "err", err)
		return apperr.Internal("failed to hash password", err)
	}

	if err := svc.writer.SetPasswordHash(ctx, userID, hash); err != nil {
		logger.Log.Errorw("failed to save password", "userID", userID, "err", err)
		return apperr.Internal("failed to save password", err)
	}
	svc.invalidate(ctx, userID)

	publishEvent(ctx, svc.kafkaWriter, models.EventUserPasswordChanged, userID, nil)
	return nil
}

// GetCurrentUser returns the sanitized user, from cache when possible.
func (svc *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, userID)
		if err != nil {
			logger.Log.Warnw("user cache read failed", "userID", userID, "err", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, apperr.Internal("failed to get user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	public := user.ToUser()
	if svc.cache != nil {
		if err := svc.cache.Set(ctx, public); err != nil {
			logger.Log.Warnw("user cache write failed", "userID", userID, "err", err)
		}
	}
	return public, nil
}

// UpdateAccountDetails changes full name and email.
func (svc *AuthService) UpdateAccountDetails(ctx context.Context, userID uuid.UUID, fullName, email string) (*models.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	if blank(fullName, email) {
		return nil, apperr.Validation("All fields are required")
	}

	owner, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return nil, apperr.Internal("failed to check email", err)
	}
	if owner != nil && owner.UserID != userID {
		return nil, apperr.Conflict("Email is already in use")
	}

	user, err := svc.writer.UpdateAccount(ctx, userID, fullName, email)
	return svc.afterUpdate(ctx, userID, user, err)
}

// UpdateAvatar relays a new avatar and stores its URL.
func (svc *AuthService) UpdateAvatar(ctx context.Context, userID uuid.UUID, localPath string) (*models.User, error) {
	url, err := svc.upload(ctx, localPath, "Avatar")
	if err != nil {
		return nil, err
	}

	user, err := svc.writer.UpdateAvatar(ctx, userID, url)
	return svc.afterUpdate(ctx, userID, user, err)
}

// UpdateCoverImage relays a new cover image and stores its URL.
func (svc *AuthService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, localPath string) (*models.User, error) {
	url, err := svc.upload(ctx, localPath, "Cover image")
	if err != nil {
		return nil, err
	}

	user, err := svc.writer.UpdateCoverImage(ctx, userID, url)
	return svc.afterUpdate(ctx, userID, user, err)
}

func (svc *AuthService) upload(ctx context.Context, localPath, what string) (string, error) {
	if localPath == "" {
		return "", apperr.Validation(what + " file is missing")
	}

	res, err := svc.uploader.Upload(ctx, localPath)
	if err != nil || res == nil || res.URL == "" {
		logger.Log.Errorw("media upload failed", "what", what, "err", err)
		return "", apperr.Validation("Error while uploading " + strings.ToLower(what))
	}
	return res.URL, nil
}

func (svc *AuthService) afterUpdate(ctx context.Context, userID uuid.UUID, user *models.UserDB, err error) (*models.User, error) {
	switch {
	case errors.Is(err, repositories.ErrDuplicate):
		return nil, apperr.Conflict("Email is already in use")
	case err != nil:
		logger.Log.Errorw("failed to update user", "userID", userID, "err", err)
		return nil, apperr.Internal("failed to update user", err)
	case user == nil:
		return nil, apperr.NotFound("User not found")
	}
	svc.invalidate(ctx, userID)

	publishEvent(ctx, svc.kafkaWriter, models.EventUserProfileUpdated, userID, nil)
	return user.ToUser(), nil
}

func (svc *AuthService) invalidate(ctx context.Context, userID uuid.UUID) {
	if svc.cache == nil {
		return
	}
	// a delete before commit lets a concurrent read re-cache the old row
	middlewares.AfterCommit(ctx, func() {
		if err := svc.cache.Delete(ctx, userID); err != nil {
			logger.Log.Warnw("user cache invalidation failed", "userID", userID, "err", err)
		}
	})
}
