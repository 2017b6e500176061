package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tradejournal/internal/domain"
)

// fakeUserRepo is an in-memory UserRepository with the same uniqueness
// behavior as the real store.
type fakeUserRepo struct {
	byID    map[uuid.UUID]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return domain.ErrEmailTaken
	}
	stored := *user
	f.byID[stored.ID] = &stored
	f.byEmail[stored.Email] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	auth := NewAuthService(repo, bcrypt.MinCost)
	ctx := context.Background()

	user, err := auth.Register(ctx, "jane@example.com", "hunter22", "Jane Doe")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "Jane Doe", user.FullName)
	assert.False(t, user.CreatedAt.IsZero())

	// The stored hash must verify the password but never equal it.
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))

	logged, err := auth.Login(ctx, "jane@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	auth := NewAuthService(repo, bcrypt.MinCost)
	ctx := context.Background()

	_, err := auth.Register(ctx, "jane@example.com", "hunter22", "Jane Doe")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "jane@example.com", "other-pass", "Impostor")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Len(t, repo.byID, 1, "no duplicate record may be created")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	auth := NewAuthService(repo, bcrypt.MinCost)
	ctx := context.Background()

	_, err := auth.Register(ctx, "jane@example.com", "hunter22", "Jane Doe")
	require.NoError(t, err)

	_, wrongPassword := auth.Login(ctx, "jane@example.com", "wrong")
	_, unknownEmail := auth.Login(ctx, "nobody@example.com", "hunter22")

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestDistinctRegistrationsYieldDistinctUsers(t *testing.T) {
	repo := newFakeUserRepo()
	auth := NewAuthService(repo, bcrypt.MinCost)
	ctx := context.Background()

	first, err := auth.Register(ctx, "a@example.com", "password1", "A")
	require.NoError(t, err)
	second, err := auth.Register(ctx, "b@example.com", "password2", "B")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
