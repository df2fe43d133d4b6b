package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-video-accounts/internal/models"
	"github.com/sbilibin2017/gw-video-accounts/internal/respond"
)

// AvatarUpdater replaces a user's avatar with an uploaded file.
type AvatarUpdater interface {
	UpdateAvatar(ctx context.Context, userID uuid.UUID, localPath string) (*models.User, error)
}

// CoverImageUpdater replaces a user's cover image with an uploaded file.
type CoverImageUpdater interface {
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, localPath string) (*models.User, error)
}

type imageUpdateFunc func(ctx context.Context, userID uuid.UUID, localPath string) (*models.User, error)

func imageUpdateHandler(update imageUpdateFunc, uploads UploadConfig, field, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r)
		if !ok {
			return
		}

		cleanup, err := uploads.parseMultipart(w, r)
		defer cleanup()
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		localPath, err := uploads.spool(r, field)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		user, err := update(r.Context(), userID, localPath)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, user, message)
	}
}

// NewUpdateAvatarHandler returns an HTTP handler that replaces the avatar.
// @Summary Update avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} handlers.EnvelopeUser "Updated user"
// @Failure 400 {object} handlers.EnvelopeError "Avatar file is missing or upload failed"
// @Router /users/avatar [patch]
func NewUpdateAvatarHandler(svc AvatarUpdater, uploads UploadConfig) http.HandlerFunc {
	return imageUpdateHandler(svc.UpdateAvatar, uploads, "avatar", "Avatar image updated successfully")
}

// NewUpdateCoverImageHandler returns an HTTP handler that replaces the cover image.
// @Summary Update cover image
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param coverImage formData file true "Cover image"
// @Success 200 {object} handlers.EnvelopeUser "Updated user"
// @Failure 400 {object} handlers.EnvelopeError "Cover image file is missing or upload failed"
// @Router /users/cover-image [patch]
func NewUpdateCoverImageHandler(svc CoverImageUpdater, uploads UploadConfig) http.HandlerFunc {
	return imageUpdateHandler(svc.UpdateCoverImage, uploads, "coverImage", "Cover image updated successfully")
}
