package services_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/gw-video-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-video-accounts/internal/logger"
	"github.com/sbilibin2017/gw-video-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
	"github.com/sbilibin2017/gw-video-accounts/internal/password"
	"github.com/sbilibin2017/gw-video-accounts/internal/repositories"
	"github.com/sbilibin2017/gw-video-accounts/internal/services"
)

type authMocks struct {
	reader   *services.MockUserReader
	writer   *services.MockUserWriter
	cache    *services.MockUserCache
	tokens   *services.MockTokenIssuer
	hasher   *services.MockPasswordHasher
	uploader *services.MockMediaUploader
	kafka    *services.MockKafkaWriter
}

func newAuthService(t *testing.T) (*services.AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		reader:   services.NewMockUserReader(ctrl),
		writer:   services.NewMockUserWriter(ctrl),
		cache:    services.NewMockUserCache(ctrl),
		tokens:   services.NewMockTokenIssuer(ctrl),
		hasher:   services.NewMockPasswordHasher(ctrl),
		uploader: services.NewMockMediaUploader(ctrl),
		kafka:    services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewAuthService(m.reader, m.writer, m.cache, m.tokens, m.hasher, m.uploader, m.kafka)
	return svc, m
}

func tempFile(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte("data"), 0o600))
	return p
}

func assertRemoved(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		_, err := os.Stat(p)
		assert.True(t, os.IsNotExist(err), "%s should be removed", p)
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		svc, m := newAuthService(t)
		username, email := "alice", "alice@x.com"

		m.reader.EXPECT().GetByUsernameOrEmail(ctx, &username, &email).Return(nil, nil)
		m.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
		m.uploader.EXPECT().Upload(ctx, "/tmp/avatar.png").Return(&models.UploadResult{URL: "http://media/a.png"}, nil)
		m.uploader.EXPECT().Upload(ctx, "/tmp/cover.png").Return(&models.UploadResult{URL: "http://media/c.png"}, nil)
		m.writer.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.UserDB) error {
			assert.Equal(t, "alice", u.Username)
			assert.Equal(t, "alice@x.com", u.Email)
			assert.Equal(t, "Alice A", u.FullName)
			assert.Equal(t, "hashed", u.PasswordHash)
			assert.Equal(t, "http://media/c.png", u.CoverImage)
			assert.Nil(t, u.RefreshToken)
			return nil
		})
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		user, err := svc.Register(ctx, services.RegisterInput{
			Username:       "  Alice ",
			FullName:       " Alice A ",
			Email:          "ALICE@x.com",
			Password:       "secret1",
			AvatarPath:     "/tmp/avatar.png",
			CoverImagePath: "/tmp/cover.png",
		})
		require.NoError(t, err)
		assert.Equal(t, "http://media/a.png", user.Avatar)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("cover upload failure degrades to empty", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		m.hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
		m.uploader.EXPECT().Upload(ctx, "avatar").Return(&models.UploadResult{URL: "http://media/a.png"}, nil)
		m.uploader.EXPECT().Upload(ctx, "cover").Return(nil, errors.New("host down"))
		m.writer.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.UserDB) error {
			assert.Empty(t, u.CoverImage)
			return nil
		})
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		user, err := svc.Register(ctx, services.RegisterInput{
			Username: "bob", FullName: "Bob", Email: "bob@x.com", Password: "pw",
			AvatarPath: "avatar", CoverImagePath: "cover",
		})
		require.NoError(t, err)
		assert.Empty(t, user.CoverImage)
	})

	t.Run("blank field", func(t *testing.T) {
		svc, _ := newAuthService(t)
		avatar := tempFile(t, "a.png")
		cover := tempFile(t, "c.png")

		_, err := svc.Register(ctx, services.RegisterInput{
			Username: "bob", FullName: "   ", Email: "bob@x.com", Password: "pw",
			AvatarPath: avatar, CoverImagePath: cover,
		})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assertRemoved(t, avatar, cover)
	})

	t.Run("user already exists", func(t *testing.T) {
		svc, m := newAuthService(t)
		avatar := tempFile(t, "a.png")

		m.reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).
			Return(&models.UserDB{UserID: uuid.New()}, nil)

		_, err := svc.Register(ctx, services.RegisterInput{
			Username: "bob", FullName: "Bob", Email: "bob@x.com", Password: "pw", AvatarPath: avatar,
		})
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		assertRemoved(t, avatar)
	})

	t.Run("missing avatar", func(t *testing.T) {
		svc, m := newAuthService(t)
		cover := tempFile(t, "c.png")

		m.reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := svc.Register(ctx, services.RegisterInput{
			Username: "bob", FullName: "Bob", Email: "bob@x.com", Password: "pw", CoverImagePath: cover,
		})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.EqualError(t, err, "Avatar file is required")
		assertRemoved(t, cover)
	})

	t.Run("avatar upload fails", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		m.hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
		m.uploader.EXPECT().Upload(ctx, "avatar").Return(&models.UploadResult{}, nil)

		_, err := svc.Register(ctx, services.RegisterInput{
			Username: "bob", FullName: "Bob", Email: "bob@x.com", Password: "pw", AvatarPath: "avatar",
		})
		assert.Equal(t, apperr.KindUpload, apperr.KindOf(err))
	})

	t.Run("password too long", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		m.hasher.EXPECT().Hash(gomock.Any()).Return("", password.ErrPasswordTooLong)

		_, err := svc.Register(ctx, services.RegisterInput{
			Username: "bob", FullName: "Bob", Email: "bob@x.com", Password: "pw", AvatarPath: "avatar",
		})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("reader error", func(t *testing.T) {
		svc, m := newAuthService(t)
		dbErr := errors.New("db error")

		m.reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, err := svc.Register(ctx, services.RegisterInput{
			Username: "bob", FullName: "Bob", Email: "bob@x.com", Password: "pw", AvatarPath: "avatar",
		})
		assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("duplicate on insert", func(t *testing.T) {
		svc, m := newAuthService(t)

		m.reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		m.hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
		m.uploader.EXPECT().Upload(ctx, "avatar").Return(&models.UploadResult{URL: "u"}, nil)
		m.writer.EXPECT().Create(ctx, gomock.Any()).Return(repositories.ErrDuplicate)

		_, err := svc.Register(ctx, services.RegisterInput{
			Username: "bob", FullName: "Bob", Email: "bob@x.com", Password: "pw", AvatarPath: "avatar",
		})
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("insert failure logs uploaded media", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		original := logger.Log
		logger.Log = zap.New(core).Sugar()
		t.Cleanup(func() { logger.Log = original })

		svc, m := newAuthService(t)
		dbErr := errors.New("connection reset")

		m.reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		m.hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
		m.uploader.EXPECT().Upload(ctx, "avatar").Return(&models.UploadResult{URL: "http://media/a.png"}, nil)
		m.uploader.EXPECT().Upload(ctx, "cover").Return(&models.UploadResult{URL: "http://media/c.png"}, nil)
		m.writer.EXPECT().Create(ctx, gomock.Any()).Return(dbErr)

		_, err := svc.Register(ctx, services.RegisterInput{
			Username: "bob", FullName: "Bob", Email: "bob@x.com", Password: "pw",
			AvatarPath: "avatar", CoverImagePath: "cover",
		})
		assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))

		entries := logs.FilterMessage("orphaned media after failed registration").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "http://media/a.png", fields["avatar"])
		assert.Equal(t, "http://media/c.png", fields["coverImage"])
		assert.Equal(t, "bob", fields["username"])
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	stored := &models.UserDB{UserID: userID, Username: "alice", Email: "alice@x.com", FullName: "Alice", PasswordHash: "hashed"}

	tests := []struct {
		name     string
		username string
		email    string
		setup    func(m authMocks)
		wantKind apperr.Kind
		wantErr  bool
	}{
		{
			name:     "successful login by username",
			username: "alice",
			setup: func(m authMocks) {
				username := "alice"
				m.reader.EXPECT().GetByUsernameOrEmail(ctx, &username, nil).Return(stored, nil)
				m.hasher.EXPECT().Verify("secret1", "hashed").Return(true)
				m.tokens.EXPECT().IssueAccessToken(ctx, models.AccessClaims{
					UserID: userID, Email: "alice@x.com", Username: "alice", FullName: "Alice",
				}).Return("access", nil)
				m.tokens.EXPECT().IssueRefreshToken(ctx, userID).Return("refresh", nil)
				refresh := "refresh"
				m.writer.EXPECT().SetRefreshToken(ctx, userID, &refresh).Return(nil)
				m.cache.EXPECT().Delete(ctx, userID).Return(nil)
				m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "no identifier",
			username: " ",
			wantErr:  true,
			wantKind: apperr.KindValidation,
		},
		{
			name:  "user does not exist",
			email: "ghost@x.com",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsernameOrEmail(ctx, nil, gomock.Any()).Return(nil, nil)
			},
			wantErr:  true,
			wantKind: apperr.KindNotFound,
		},
		{
			name:     "wrong password",
			username: "alice",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(stored, nil)
				m.hasher.EXPECT().Verify("secret1", "hashed").Return(false)
			},
			wantErr:  true,
			wantKind: apperr.KindAuth,
		},
		{
			name:     "token signing fails",
			username: "alice",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(stored, nil)
				m.hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true)
				m.tokens.EXPECT().IssueAccessToken(ctx, gomock.Any()).Return("", errors.New("sign error"))
			},
			wantErr:  true,
			wantKind: apperr.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			res, err := svc.Login(ctx, tt.username, tt.email, "secret1")
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "access", res.AccessToken)
			assert.Equal(t, "refresh", res.RefreshToken)
			assert.Equal(t, userID, res.User.UserID)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	svc, m := newAuthService(t)
	m.writer.EXPECT().SetRefreshToken(ctx, userID, nil).Return(nil)
	m.cache.EXPECT().Delete(ctx, userID).Return(errors.New("redis down"))
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
	assert.NoError(t, svc.Logout(ctx, userID))

	svc, m = newAuthService(t)
	m.writer.EXPECT().SetRefreshToken(ctx, userID, nil).Return(errors.New("db down"))
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(svc.Logout(ctx, userID)))
}

func TestAuthService_RefreshAccessToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	current := "current-refresh"
	stored := &models.UserDB{UserID: userID, Username: "alice", RefreshToken: &current}

	tests := []struct {
		name     string
		token    string
		setup    func(m authMocks)
		wantKind *apperr.Kind
	}{
		{
			name:  "success rotates",
			token: current,
			setup: func(m authMocks) {
				m.tokens.EXPECT().VerifyRefreshToken(ctx, current).Return(userID, nil)
				m.reader.EXPECT().GetByID(ctx, userID).Return(stored, nil)
				m.tokens.EXPECT().IssueAccessToken(ctx, gomock.Any()).Return("new-access", nil)
				m.tokens.EXPECT().IssueRefreshToken(ctx, userID).Return("new-refresh", nil)
				next := "new-refresh"
				m.writer.EXPECT().SetRefreshToken(ctx, userID, &next).Return(nil)
				m.cache.EXPECT().Delete(ctx, userID).Return(nil)
				m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{name: "empty token", token: "", wantKind: ptrKind(apperr.KindAuth)},
		{
			name:  "invalid signature",
			token: "tampered",
			setup: func(m authMocks) {
				m.tokens.EXPECT().VerifyRefreshToken(ctx, "tampered").Return(uuid.Nil, errors.New("bad sig"))
			},
			wantKind: ptrKind(apperr.KindAuth),
		},
		{
			name:  "user gone",
			token: current,
			setup: func(m authMocks) {
				m.tokens.EXPECT().VerifyRefreshToken(ctx, current).Return(userID, nil)
				m.reader.EXPECT().GetByID(ctx, userID).Return(nil, nil)
			},
			wantKind: ptrKind(apperr.KindAuth),
		},
		{
			name:  "superseded token",
			token: "old-refresh",
			setup: func(m authMocks) {
				m.tokens.EXPECT().VerifyRefreshToken(ctx, "old-refresh").Return(userID, nil)
				m.reader.EXPECT().GetByID(ctx, userID).Return(stored, nil)
			},
			wantKind: ptrKind(apperr.KindAuth),
		},
		{
			name:  "store error",
			token: current,
			setup: func(m authMocks) {
				m.tokens.EXPECT().VerifyRefreshToken(ctx, current).Return(userID, nil)
				m.reader.EXPECT().GetByID(ctx, userID).Return(nil, errors.New("db down"))
			},
			wantKind: ptrKind(apperr.KindInternal),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			pair, err := svc.RefreshAccessToken(ctx, tt.token)
			if tt.wantKind != nil {
				assert.Error(t, err)
				assert.Equal(t, *tt.wantKind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "new-access", pair.AccessToken)
			assert.Equal(t, "new-refresh", pair.RefreshToken)
		})
	}
}

func ptrKind(k apperr.Kind) *apperr.Kind { return &k }

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	stored := &models.UserDB{UserID: userID, PasswordHash: "old-hash"}

	t.Run("success", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByID(ctx, userID).Return(stored, nil)
		m.hasher.EXPECT().Verify("old", "old-hash").Return(true)
		m.hasher.EXPECT().Hash("new").Return("new-hash", nil)
		m.writer.EXPECT().SetPasswordHash(ctx, userID, "new-hash").Return(nil)
		m.cache.EXPECT().Delete(ctx, userID).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.ChangePassword(ctx, userID, "old", "new"))
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByID(ctx, userID).Return(stored, nil)
		m.hasher.EXPECT().Verify("bad", "old-hash").Return(false)

		err := svc.ChangePassword(ctx, userID, "bad", "new")
		assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
	})

	t.Run("blank new password", func(t *testing.T) {
		svc, _ := newAuthService(t)
		err := svc.ChangePassword(ctx, userID, "old", "  ")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByID(ctx, userID).Return(nil, nil)
		err := svc.ChangePassword(ctx, userID, "old", "new")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	public := &models.User{UserID: userID, Username: "alice"}

	t.Run("cache hit", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.cache.EXPECT().Get(ctx, userID).Return(public, nil)

		got, err := svc.GetCurrentUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, public, got)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.cache.EXPECT().Get(ctx, userID).Return(nil, nil)
		m.reader.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, Username: "alice", PasswordHash: "h"}, nil)
		m.cache.EXPECT().Set(ctx, public).Return(nil)

		got, err := svc.GetCurrentUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, public, got)
	})

	t.Run("cache error falls back to store", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.cache.EXPECT().Get(ctx, userID).Return(nil, errors.New("redis down"))
		m.reader.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, Username: "alice"}, nil)
		m.cache.EXPECT().Set(ctx, gomock.Any()).Return(errors.New("redis down"))

		got, err := svc.GetCurrentUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("no cache configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockUserReader(ctrl)
		svc := services.NewAuthService(reader, nil, nil, nil, nil, nil, nil)
		reader.EXPECT().GetByID(ctx, userID).Return(nil, nil)

		_, err := svc.GetCurrentUser(ctx, userID)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestAuthService_UpdateAccountDetails(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, m := newAuthService(t)
		email := "new@x.com"
		m.reader.EXPECT().GetByUsernameOrEmail(ctx, nil, &email).Return(&models.UserDB{UserID: userID}, nil)
		m.writer.EXPECT().UpdateAccount(ctx, userID, "New Name", "new@x.com").
			Return(&models.UserDB{UserID: userID, FullName: "New Name", Email: "new@x.com"}, nil)
		m.cache.EXPECT().Delete(ctx, userID).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		user, err := svc.UpdateAccountDetails(ctx, userID, " New Name ", "NEW@x.com")
		require.NoError(t, err)
		assert.Equal(t, "New Name", user.FullName)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByUsernameOrEmail(ctx, nil, gomock.Any()).Return(&models.UserDB{UserID: uuid.New()}, nil)

		_, err := svc.UpdateAccountDetails(ctx, userID, "Name", "taken@x.com")
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := newAuthService(t)
		_, err := svc.UpdateAccountDetails(ctx, userID, "", "a@x.com")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestAuthService_UpdateAccountDetails_InTransaction(t *testing.T) {
	userID := uuid.New()
	stored := &models.UserDB{UserID: userID, FullName: "New Name", Email: "new@x.com"}

	setup := func(t *testing.T, status int) (authMocks, sqlmock.Sqlmock, http.Handler) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		svc, m := newAuthService(t)
		m.reader.EXPECT().GetByUsernameOrEmail(gomock.Any(), nil, gomock.Any()).Return(nil, nil)
		m.writer.EXPECT().UpdateAccount(gomock.Any(), userID, "New Name", "new@x.com").Return(stored, nil)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := svc.UpdateAccountDetails(r.Context(), userID, "New Name", "new@x.com")
			require.NoError(t, err)
			w.WriteHeader(status)
		})
		return m, mock, middlewares.TxMiddleware(sqlx.NewDb(db, "sqlmock"))(next)
	}

	t.Run("cache dropped and event sent after commit", func(t *testing.T) {
		m, mock, handler := setup(t, http.StatusOK)
		mock.ExpectBegin()
		mock.ExpectCommit()

		var order []string
		m.cache.EXPECT().Delete(gomock.Any(), userID).DoAndReturn(func(context.Context, uuid.UUID) error {
			assert.NoError(t, mock.ExpectationsWereMet(), "cache must be invalidated after commit")
			order = append(order, "invalidate")
			return nil
		})
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, ...kafka.Message) error {
			assert.NoError(t, mock.ExpectationsWereMet(), "event must follow commit")
			order = append(order, "event")
			return nil
		})

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/update-account", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, []string{"invalidate", "event"}, order)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolled back request keeps cache and sends nothing", func(t *testing.T) {
		_, mock, handler := setup(t, http.StatusConflict)
		mock.ExpectBegin()
		mock.ExpectRollback()

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/update-account", nil))

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAuthService_UpdateAvatarAndCover(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("avatar success", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.uploader.EXPECT().Upload(ctx, "avatar").Return(&models.UploadResult{URL: "http://media/new.png"}, nil)
		m.writer.EXPECT().UpdateAvatar(ctx, userID, "http://media/new.png").
			Return(&models.UserDB{UserID: userID, Avatar: "http://media/new.png"}, nil)
		m.cache.EXPECT().Delete(ctx, userID).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		user, err := svc.UpdateAvatar(ctx, userID, "avatar")
		require.NoError(t, err)
		assert.Equal(t, "http://media/new.png", user.Avatar)
	})

	t.Run("avatar missing file", func(t *testing.T) {
		svc, _ := newAuthService(t)
		_, err := svc.UpdateAvatar(ctx, userID, "")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("cover relay yields no url", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.uploader.EXPECT().Upload(ctx, "cover").Return(nil, errors.New("host down"))

		_, err := svc.UpdateCoverImage(ctx, userID, "cover")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.EqualError(t, err, "Error while uploading cover image")
	})

	t.Run("cover success", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.uploader.EXPECT().Upload(ctx, "cover").Return(&models.UploadResult{URL: "http://media/c.png"}, nil)
		m.writer.EXPECT().UpdateCoverImage(ctx, userID, "http://media/c.png").
			Return(&models.UserDB{UserID: userID, CoverImage: "http://media/c.png"}, nil)
		m.cache.EXPECT().Delete(ctx, userID).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		user, err := svc.UpdateCoverImage(ctx, userID, "cover")
		require.NoError(t, err)
		assert.Equal(t, "http://media/c.png", user.CoverImage)
	})
}
