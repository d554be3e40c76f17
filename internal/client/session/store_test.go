package session

import (
	"context"
	"testing"
	"time"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory state.Repository.
type fakeRepo struct {
	data    map[string][]byte
	getErr  error
	deletes int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{data: map[string][]byte{}}
}

func (f *fakeRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.data[key], nil
}

func (f *fakeRepo) Set(ctx context.Context, key string, value []byte) error {
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, key string) error {
	f.deletes++
	delete(f.data, key)
	return nil
}

func (f *fakeRepo) Clear(ctx context.Context) error {
	f.data = map[string][]byte{}
	return nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestStore_LoginCurrentLogout(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeRepo())

	require.Nil(t, store.Current(ctx))

	sess := models.Session{
		ID:    "u1",
		Name:  "Satinder",
		Email: "satinder@example.com",
		Role:  models.RoleAdmin,
		Token: signedToken(t, time.Now().Add(time.Hour)),
	}
	require.NoError(t, store.Login(ctx, sess))

	got := store.Current(ctx)
	require.NotNil(t, got)
	require.Equal(t, sess, *got)
	require.Equal(t, sess.Token, store.Token())

	require.NoError(t, store.Logout(ctx))
	require.Nil(t, store.Current(ctx))
	require.Equal(t, "", store.Token())
}

func TestStore_LoginReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeRepo())

	first := models.Session{ID: "u1", Email: "a@b.com", Role: models.RoleUser, Token: "tok-a"}
	second := models.Session{ID: "u2", Email: "c@d.com", Role: models.RoleAdmin, Token: "tok-c"}
	require.NoError(t, store.Login(ctx, first))
	require.NoError(t, store.Login(ctx, second))

	got := store.Current(ctx)
	require.NotNil(t, got)
	require.Equal(t, second, *got)
}

func TestStore_CorruptDataIsAbsent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		raw  []byte
	}{
		{"not json", []byte("{{{")},
		{"missing token", []byte(`{"_id":"u1","email":"a@b.com"}`)},
		{"missing email", []byte(`{"_id":"u1","token":"tok"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.data[storageKey] = tt.raw
			store := NewStore(repo)

			require.Nil(t, store.Current(ctx))
			// corrupt data is purged, not kept around
			require.NotContains(t, repo.data, storageKey)
		})
	}
}

func TestStore_ExpiredCredentialIsAbsent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	store := NewStore(repo)

	sess := models.Session{
		ID:    "u1",
		Email: "a@b.com",
		Role:  models.RoleUser,
		Token: signedToken(t, time.Now().Add(-time.Minute)),
	}
	require.NoError(t, store.Login(ctx, sess))

	require.Nil(t, store.Current(ctx))
	require.NotContains(t, repo.data, storageKey)
}

func TestStore_OpaqueTokenIsKept(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeRepo())

	sess := models.Session{ID: "u1", Email: "a@b.com", Role: models.RoleUser, Token: "not-a-jwt"}
	require.NoError(t, store.Login(ctx, sess))
	require.NotNil(t, store.Current(ctx))
}
