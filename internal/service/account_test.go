package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/accountsvc/internal/auth"
	"github.com/yourorg/accountsvc/internal/models"
	"github.com/yourorg/accountsvc/internal/store"
)

// memStore is an in-memory UserStore for exercising the service without a
// database. Save mimics the real store's validation and duplicate guard.
type memStore struct {
	users     map[string]*models.User
	findCalls int
	saveCalls int
	nextID    int
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]*models.User), nextID: 1}
}

func (m *memStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.findCalls++
	u, ok := m.users[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) FindByUsernameProjected(_ context.Context, username string) (*models.PublicUser, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u.Public(), nil
}

func (m *memStore) Save(_ context.Context, u *models.User) (*models.User, error) {
	m.saveCalls++
	if err := store.ValidateUser(u); err != nil {
		return nil, err
	}
	if _, ok := m.users[u.Username]; ok {
		return nil, store.ErrDuplicateUsername
	}
	u.ID = "user-" + strconv.Itoa(m.nextID)
	m.nextID++
	u.CreatedAt = time.Now().UTC()
	m.users[u.Username] = u
	return u, nil
}

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestService(st UserStore, ttl time.Duration) *AccountService {
	return NewAccountService(st, auth.NewHasher(), auth.NewTokenIssuer(testSecret, ttl))
}

func aliceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Username:    "alice1",
		Password:    "secretpw",
		FullName:    "Alice Smith",
		Gender:      "Female",
		DateOfBirth: "1990-01-01",
		Country:     "US",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	st := newMemStore()
	svc := newTestService(st, 5*time.Minute)

	created, err := svc.Register(context.Background(), aliceRequest())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "alice1", created.Username)
	assert.Equal(t, "Alice Smith", created.FullName)
	assert.NotEmpty(t, created.ID)

	token, err := svc.Login(context.Background(), "alice1", "secretpw")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.NewTokenIssuer(testSecret, 5*time.Minute).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice1", claims.Username)
	assert.Equal(t, "Alice Smith", claims.FullName)
	assert.Equal(t, created.ID, claims.UserID)
}

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	st := newMemStore()
	svc := newTestService(st, 5*time.Minute)

	_, err := svc.Register(context.Background(), aliceRequest())
	require.NoError(t, err)

	stored := st.users["alice1"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secretpw", stored.PasswordHash)
	assert.True(t, auth.NewHasher().Verify("secretpw", stored.PasswordHash))
}

func TestRegisterShortPasswordSkipsStore(t *testing.T) {
	st := newMemStore()
	svc := newTestService(st, 5*time.Minute)

	req := aliceRequest()
	req.Password = "short"
	_, err := svc.Register(context.Background(), req)

	assert.ErrorIs(t, err, ErrPasswordTooShort)
	assert.Zero(t, st.findCalls, "short password must not reach the store")
	assert.Zero(t, st.saveCalls)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	st := newMemStore()
	svc := newTestService(st, 5*time.Minute)

	_, err := svc.Register(context.Background(), aliceRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), aliceRequest())
	assert.ErrorIs(t, err, ErrUserExists)
	assert.Len(t, st.users, 1, "second attempt must not create a record")
}

func TestRegisterBadDateOfBirth(t *testing.T) {
	st := newMemStore()
	svc := newTestService(st, 5*time.Minute)

	req := aliceRequest()
	req.DateOfBirth = "01/01/1990"
	_, err := svc.Register(context.Background(), req)

	var verr *store.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "dateOfBirth", verr.Field)
	assert.Zero(t, st.saveCalls)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService(newMemStore(), 5*time.Minute)

	token, err := svc.Login(context.Background(), "nobody1", "secretpw")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	st := newMemStore()
	svc := newTestService(st, 5*time.Minute)

	_, err := svc.Register(context.Background(), aliceRequest())
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "alice1", "wrong-password")
	assert.ErrorIs(t, err, ErrIncorrectPassword)
	assert.Empty(t, token, "no token may be issued on a failed login")
}

func TestSearchUserWithValidToken(t *testing.T) {
	st := newMemStore()
	svc := newTestService(st, 5*time.Minute)

	created, err := svc.Register(context.Background(), aliceRequest())
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "alice1", "secretpw")
	require.NoError(t, err)

	claims, profile, err := svc.SearchUser(context.Background(), token, "alice1")
	require.NoError(t, err)
	require.NotNil(t, claims)
	require.NotNil(t, profile)
	assert.Equal(t, "alice1", claims.Username)
	assert.Equal(t, created.ID, profile.ID)
	assert.Equal(t, "US", profile.Country)
}

func TestSearchUserUnknownUsername(t *testing.T) {
	st := newMemStore()
	svc := newTestService(st, 5*time.Minute)

	_, err := svc.Register(context.Background(), aliceRequest())
	require.NoError(t, err)
	token, err := svc.Login(context.Background(), "alice1", "secretpw")
	require.NoError(t, err)

	claims, profile, err := svc.SearchUser(context.Background(), token, "bob42")
	require.NoError(t, err)
	assert.NotNil(t, claims, "token claims still come back when the profile is missing")
	assert.Nil(t, profile)
}

func TestSearchUserExpiredToken(t *testing.T) {
	st := newMemStore()
	// Issue already-expired tokens to simulate a clock 300+ seconds ahead.
	svc := newTestService(st, -time.Minute)

	_, err := svc.Register(context.Background(), aliceRequest())
	require.NoError(t, err)
	token, err := svc.Login(context.Background(), "alice1", "secretpw")
	require.NoError(t, err)

	claims, profile, err := svc.SearchUser(context.Background(), token, "alice1")
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
	assert.Nil(t, claims)
	assert.Nil(t, profile)
}

func TestSearchUserForgedToken(t *testing.T) {
	st := newMemStore()
	svc := newTestService(st, 5*time.Minute)

	_, err := svc.Register(context.Background(), aliceRequest())
	require.NoError(t, err)

	forged, _, err := auth.NewTokenIssuer([]byte("ffffffffffffffffffffffffffffffff"), 5*time.Minute).
		Issue("user-1", "alice1", "Alice Smith")
	require.NoError(t, err)

	_, _, err = svc.SearchUser(context.Background(), forged, "alice1")
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}
