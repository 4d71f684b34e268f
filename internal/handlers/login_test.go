package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sergioruizlaf/user-service/internal/models"
	"github.com/sergioruizlaf/user-service/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	tests := []struct {
		name         string
		username     string
		password     string
		mockSetup    func()
		expectedCode int
		expectedErrs []string
	}{
		{
			name:     "success",
			username: "john",
			password: "pass123",
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "pass123").
					Return(&models.User{ID: 1, Username: "john", Token: "Bearer JWT_TOKEN"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "unknown username leaks the name",
			username: "ghost",
			password: "whatever",
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "ghost", "whatever").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusBadRequest,
			expectedErrs: []string{"User - ghost - does not exist"},
		},
		{
			name:     "bad password",
			username: "john",
			password: "wrongpass",
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "wrongpass").
					Return(nil, services.ErrInvalidPassword)
			},
			expectedCode: http.StatusBadRequest,
			expectedErrs: []string{"Password not valid"},
		},
		{
			name:     "internal error",
			username: "john",
			password: "pass123",
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "pass123").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErrs: []string{"database error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			params := url.Values{}
			params.Set("username", tt.username)
			params.Set("password", tt.password)

			req := httptest.NewRequest(http.MethodPost, "/auth/login?"+params.Encode(), nil)
			w := httptest.NewRecorder()

			handler := NewLoginHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var user models.User
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
				assert.Equal(t, "Bearer JWT_TOKEN", user.Token)
			} else {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErrs, resp.Errors)
			}
		})
	}
}
