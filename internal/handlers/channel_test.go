package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-video-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestChannelProfileHandler(t *testing.T) {
	viewerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		profile := &models.ChannelProfile{
			UserID:           uuid.New(),
			Username:         "bob",
			SubscribersCount: 3,
			IsSubscribed:     true,
		}
		mockSvc := NewMockChannelProfileGetter(ctrl)
		mockSvc.EXPECT().GetChannelProfile(gomock.Any(), viewerID, "bob").Return(profile, nil)

		req := withURLParam(withUser(httptest.NewRequest(http.MethodGet, "/c/bob", nil), viewerID), "username", "bob")
		rr := httptest.NewRecorder()
		NewChannelProfileHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope(t, rr)

		var got models.ChannelProfile
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, *profile, got)
	})

	t.Run("unknown channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockChannelProfileGetter(ctrl)
		mockSvc.EXPECT().GetChannelProfile(gomock.Any(), viewerID, "ghost").
			Return(nil, apperr.NotFound("channel does not exist"))

		req := withURLParam(withUser(httptest.NewRequest(http.MethodGet, "/c/ghost", nil), viewerID), "username", "ghost")
		rr := httptest.NewRecorder()
		NewChannelProfileHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "channel does not exist", decodeEnvelope(t, rr).Message)
	})
}

func TestSubscriptionHandlers(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name            string
		unsubscribe     bool
		mockSetup       func(m *MockSubscriber)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "subscribe",
			mockSetup: func(m *MockSubscriber) {
				m.EXPECT().Subscribe(gomock.Any(), userID, "bob").Return(nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Subscribed successfully",
		},
		{
			name: "subscribe to self",
			mockSetup: func(m *MockSubscriber) {
				m.EXPECT().Subscribe(gomock.Any(), userID, "bob").
					Return(apperr.Validation("cannot subscribe to your own channel"))
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "cannot subscribe to your own channel",
		},
		{
			name:        "unsubscribe",
			unsubscribe: true,
			mockSetup: func(m *MockSubscriber) {
				m.EXPECT().Unsubscribe(gomock.Any(), userID, "bob").Return(nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Unsubscribed successfully",
		},
		{
			name:        "unsubscribe unknown channel",
			unsubscribe: true,
			mockSetup: func(m *MockSubscriber) {
				m.EXPECT().Unsubscribe(gomock.Any(), userID, "bob").
					Return(apperr.NotFound("channel does not exist"))
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "channel does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockSubscriber(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewSubscribeHandler(mockSvc)
			method := http.MethodPost
			if tt.unsubscribe {
				handler = NewUnsubscribeHandler(mockSvc)
				method = http.MethodDelete
			}

			req := withURLParam(withUser(httptest.NewRequest(method, "/c/bob/subscription", nil), userID), "username", "bob")
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMessage, decodeEnvelope(t, rr).Message)
		})
	}
}
