package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/middleware"
	"github.com/trashtrack/trashtrack-api/internal/models"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
)

type userServiceMock struct {
	user      *models.User
	getErr    error
	createID  int64
	createErr error
	updated   *dto.UserRequest
	updateErr error
	getCalls  int
}

func (m *userServiceMock) List(ctx context.Context) ([]models.User, error) {
	return []models.User{}, nil
}

func (m *userServiceMock) Get(ctx context.Context, id int64) (*models.User, error) {
	m.getCalls++
	return m.user, m.getErr
}

func (m *userServiceMock) Create(ctx context.Context, req dto.UserRequest) (int64, error) {
	return m.createID, m.createErr
}

func (m *userServiceMock) Update(ctx context.Context, id int64, req dto.UserRequest) error {
	m.updated = &req
	return m.updateErr
}

func (m *userServiceMock) Delete(ctx context.Context, id int64) error {
	return nil
}

func TestUserHandlerGetNonNumericID(t *testing.T) {
	svc := &userServiceMock{}
	h := NewUserHandler(svc)

	c, w := newGinContext(http.MethodGet, "/users/abc", nil)
	withID(c, "abc")
	h.Get(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
	assert.Zero(t, svc.getCalls)
}

func TestUserHandlerGetOmitsCredential(t *testing.T) {
	svc := &userServiceMock{user: &models.User{ID: 7, FirstName: "Ada", Email: "ada@example.com", PasswordHash: "$2a$10$secret", Role: models.RoleReporter}}
	h := NewUserHandler(svc)

	c, w := newGinContext(http.MethodGet, "/users/7", nil)
	withID(c, "7")
	h.Get(c)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(7), body["user_id"])
	assert.NotContains(t, body, "hashed_password")
	assert.Contains(t, body, "address_line1")
	assert.Nil(t, body["address_line1"])
}

func TestUserHandlerCreate(t *testing.T) {
	h := NewUserHandler(&userServiceMock{createID: 12})

	c, w := newGinContext(http.MethodPost, "/users", []byte(`{"first_name":"Ada","email":"ada@example.com","hashed_password":"pw"}`))
	h.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"user_id":12,"message":"User created successfully"}`, w.Body.String())
}

func TestUserHandlerCreateDuplicateEmail(t *testing.T) {
	h := NewUserHandler(&userServiceMock{createErr: appErrors.ErrDuplicateEmail})

	c, w := newGinContext(http.MethodPost, "/users", []byte(`{"email":"dup@example.com"}`))
	h.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email already exists"}`, w.Body.String())
}

func TestUserHandlerUpdatePassesOmittedFieldsAsNil(t *testing.T) {
	svc := &userServiceMock{}
	h := NewUserHandler(svc)

	c, w := newGinContext(http.MethodPut, "/users/3", []byte(`{"first_name":"Grace"}`))
	withID(c, "3")
	h.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"User updated successfully"}`, w.Body.String())
	require.NotNil(t, svc.updated)
	assert.Equal(t, "Grace", *svc.updated.FirstName)
	assert.Nil(t, svc.updated.City)
	assert.Nil(t, svc.updated.Password)
}

func TestUserHandlerDeleteAlwaysAcknowledges(t *testing.T) {
	h := NewUserHandler(&userServiceMock{})

	c, w := newGinContext(http.MethodDelete, "/users/999", nil)
	withID(c, "999")
	h.Delete(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"User deleted successfully"}`, w.Body.String())
}

type authServiceMock struct {
	loginResp *models.LoginResponse
	loginErr  error
	meUser    *models.User
	meErr     error
	loggedOut bool
}

func (m *authServiceMock) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	return m.loginResp, m.loginErr
}

func (m *authServiceMock) Me(ctx context.Context, claims *models.JWTClaims) (*models.User, error) {
	return m.meUser, m.meErr
}

func (m *authServiceMock) Logout(ctx context.Context, claims *models.JWTClaims) error {
	m.loggedOut = true
	return nil
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&authServiceMock{loginErr: appErrors.ErrInvalidCredentials})

	c, w := newGinContext(http.MethodPost, "/users/login", []byte(`{"email":"a@b.c","password":"nope"}`))
	h.Login(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
}

func TestAuthHandlerLoginMalformedBody(t *testing.T) {
	h := NewAuthHandler(&authServiceMock{})

	c, w := newGinContext(http.MethodPost, "/users/login", []byte(`{`))
	h.Login(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email and password are required"}`, w.Body.String())
}

func TestAuthHandlerLoginSuccess(t *testing.T) {
	resp := &models.LoginResponse{
		UserInfo:  models.UserInfo{ID: 1, Email: "admin@trashtrack.com", Role: models.RoleAdmin},
		Token:     "token",
		ExpiresIn: 3600,
	}
	h := NewAuthHandler(&authServiceMock{loginResp: resp})

	c, w := newGinContext(http.MethodPost, "/users/login", []byte(`{"email":"admin@trashtrack.com","password":"password123"}`))
	h.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Admin", body["user_role"])
	assert.Equal(t, "token", body["token"])
	assert.NotContains(t, body, "hashed_password")
}

func TestAuthHandlerMeRequiresClaims(t *testing.T) {
	h := NewAuthHandler(&authServiceMock{})

	c, w := newGinContext(http.MethodGet, "/users/me", nil)
	h.Me(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerMeDeletedUser(t *testing.T) {
	h := NewAuthHandler(&authServiceMock{meErr: appErrors.Clone(appErrors.ErrUnauthorized, "User no longer exists")})

	c, w := newGinContext(http.MethodGet, "/users/me", nil)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: 4, Role: models.RoleReporter})
	h.Me(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"User no longer exists"}`, w.Body.String())
}

func TestAuthHandlerLogout(t *testing.T) {
	svc := &authServiceMock{}
	h := NewAuthHandler(svc)

	c, w := newGinContext(http.MethodPost, "/users/logout", nil)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: 4})
	h.Logout(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.loggedOut)
}
