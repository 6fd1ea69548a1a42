package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/trashtrack/trashtrack-api/internal/dto"
	"github.com/trashtrack/trashtrack-api/internal/models"
	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
)

type mockUserRepo struct {
	users     map[int64]*models.User
	byEmail   map[string]*models.User
	nextID    int64
	created   []dto.UserInput
	updated   []dto.UserInput
	createErr error
	updateErr error
	listErr   error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[int64]*models.User{}, byEmail: map[string]*models.User{}, nextID: 1}
}

func (m *mockUserRepo) add(u models.User) {
	m.users[u.ID] = &u
	m.byEmail[u.Email] = &u
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) Create(ctx context.Context, in dto.UserInput) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.created = append(m.created, in)
	id := m.nextID
	m.nextID++
	return id, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, in dto.UserInput) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = append(m.updated, in)
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	delete(m.users, id)
	return nil
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestUserServiceCreateHashesCredential(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo, nil, bcrypt.MinCost)

	id, err := svc.Create(context.Background(), dto.UserRequest{
		FirstName: strPtr("Ann"),
		Email:     strPtr("ann@x.com"),
		Password:  strPtr("secret"),
		Role:      strPtr("Reporter"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.Len(t, repo.created, 1)

	stored := repo.created[0].PasswordHash
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret", *stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored), []byte("secret")))
	assert.Nil(t, repo.created[0].City)
}

func TestUserServiceCreateDuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	repo.createErr = errors.Join(errors.New("create user"), &pq.Error{Code: "23505"})
	svc := NewUserService(repo, nil, bcrypt.MinCost)

	_, err := svc.Create(context.Background(), dto.UserRequest{Email: strPtr("dup@x.com"), Password: strPtr("x")})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Email already exists", appErr.Message)
}

func TestUserServiceUpdateDuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	repo.updateErr = &pq.Error{Code: "23505"}
	svc := NewUserService(repo, nil, bcrypt.MinCost)

	err := svc.Update(context.Background(), 1, dto.UserRequest{Email: strPtr("dup@x.com")})
	assert.ErrorIs(t, err, appErrors.ErrDuplicateEmail)
}

func TestUserServiceUpdateEmptyCredentialKeepsHash(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo, nil, bcrypt.MinCost)

	require.NoError(t, svc.Update(context.Background(), 1, dto.UserRequest{FirstName: strPtr("Ann"), Password: strPtr("")}))
	require.NoError(t, svc.Update(context.Background(), 1, dto.UserRequest{FirstName: strPtr("Ann")}))
	require.Len(t, repo.updated, 2)
	assert.Nil(t, repo.updated[0].PasswordHash)
	assert.Nil(t, repo.updated[1].PasswordHash)

	require.NoError(t, svc.Update(context.Background(), 1, dto.UserRequest{Password: strPtr("new")}))
	require.NotNil(t, repo.updated[2].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*repo.updated[2].PasswordHash), []byte("new")))
}

func TestUserServiceGetNotFound(t *testing.T) {
	svc := NewUserService(newMockUserRepo(), nil, bcrypt.MinCost)

	_, err := svc.Get(context.Background(), 42)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "User not found", appErr.Message)
}

func TestUserServiceListFailure(t *testing.T) {
	repo := newMockUserRepo()
	repo.listErr = errors.New("connection refused")
	svc := NewUserService(repo, nil, bcrypt.MinCost)

	_, err := svc.List(context.Background())
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "Failed to fetch users", appErr.Message)
	assert.EqualError(t, appErr.Unwrap(), "connection refused")
}
