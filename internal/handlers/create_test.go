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
	"github.com/sergioruizlaf/user-service/internal/validation"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserCreator(ctrl)

	age := 30

	tests := []struct {
		name         string
		params       url.Values
		mockSetup    func()
		expectedCode int
		check        func(t *testing.T, body []byte)
	}{
		{
			name:   "success",
			params: url.Values{"username": {"alice"}, "password": {"pass1234"}, "age": {"30"}, "active": {"true"}},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), "alice", "pass1234", gomock.Nil(), gomock.Nil(), gomock.Nil(), true, &age).
					Return(&models.User{ID: 1, Username: "alice", Age: &age, Active: true}, nil, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var user models.User
				assert.NoError(t, json.Unmarshal(body, &user))
				assert.Equal(t, int64(1), user.ID)
				assert.Equal(t, 30, *user.Age)
			},
		},
		{
			name:   "username already exists",
			params: url.Values{"username": {"alice"}, "password": {"pass1234"}},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), "alice", "pass1234", gomock.Nil(), gomock.Nil(), gomock.Nil(), false, gomock.Nil()).
					Return(nil, nil, services.ErrUsernameExists)
			},
			expectedCode: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, []string{"Username already exists"}, resp.Errors)
			},
		},
		{
			name:   "validation violations returned as-is",
			params: url.Values{"username": {"alice"}, "password": {"abc"}},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), "alice", "abc", gomock.Nil(), gomock.Nil(), gomock.Nil(), false, gomock.Nil()).
					Return(nil, []validation.Violation{
						{Field: "password", Message: "Minimum length: 4 characters"},
					}, nil)
			},
			expectedCode: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				var violations []validation.Violation
				assert.NoError(t, json.Unmarshal(body, &violations))
				assert.Equal(t, []validation.Violation{
					{Field: "password", Message: "Minimum length: 4 characters"},
				}, violations)
			},
		},
		{
			name:         "non-numeric age",
			params:       url.Values{"username": {"alice"}, "password": {"pass1234"}, "age": {"old"}},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "unexpected persistence failure",
			params: url.Values{"username": {"alice"}, "password": {"pass1234"}},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), "alice", "pass1234", gomock.Nil(), gomock.Nil(), gomock.Nil(), false, gomock.Nil()).
					Return(nil, nil, errors.New("connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
			check: func(t *testing.T, body []byte) {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, []string{"connection refused"}, resp.Errors)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/user/create?"+tt.params.Encode(), nil)
			w := httptest.NewRecorder()

			handler := NewCreateUserHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.check != nil {
				tt.check(t, w.Body.Bytes())
			}
		})
	}
}

func TestCreateUserHandler_OptionalFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserCreator(ctrl)

	name := "Alice"
	surname := "Smith"
	email := "alice@example.com"

	mockSvc.EXPECT().
		Create(gomock.Any(), "alice", "pass1234", &name, &surname, &email, false, gomock.Nil()).
		Return(&models.User{ID: 2, Username: "alice", Name: &name, Surname: &surname, Email: &email}, nil, nil)

	params := url.Values{
		"username": {"alice"},
		"password": {"pass1234"},
		"name":     {"Alice"},
		"surname":  {"Smith"},
		"email":    {"alice@example.com"},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/user/create?"+params.Encode(), nil)
	w := httptest.NewRecorder()

	NewCreateUserHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
