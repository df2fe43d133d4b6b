package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-video-accounts/internal/media"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
	"github.com/sbilibin2017/gw-video-accounts/internal/respond"
	"github.com/sbilibin2017/gw-video-accounts/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user from a multipart form. Username and email must be unique; an avatar is required, a cover image is optional.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Username"
// @Param fullName formData string true "Full name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param avatar formData file true "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} handlers.EnvelopeUser "User registered"
// @Failure 400 {object} handlers.EnvelopeError "Missing field or avatar"
// @Failure 409 {object} handlers.EnvelopeError "Username or email already exists"
// @Failure 500 {object} handlers.EnvelopeError "Upload or internal failure"
// @Router /users/register [post]
func NewRegisterHandler(svc Registerer, uploads UploadConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cleanup, err := uploads.parseMultipart(w, r)
		defer cleanup()
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		avatarPath, err := uploads.spool(r, "avatar")
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		coverPath, err := uploads.spool(r, "coverImage")
		if err != nil {
			media.Discard(avatarPath)
			respond.Error(w, r, err)
			return
		}

		user, err := svc.Register(r.Context(), services.RegisterInput{
			Username:       r.FormValue("username"),
			FullName:       r.FormValue("fullName"),
			Email:          r.FormValue("email"),
			Password:       r.FormValue("password"),
			AvatarPath:     avatarPath,
			CoverImagePath: coverPath,
		})
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusCreated, user, "User registered Successfully")
	}
}
