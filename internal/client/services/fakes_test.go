package services

import (
	"context"

	"github.com/SatinderSinghSall/poetry-cli/internal/client/models"
)

// fakeClient implements client.Client for unit tests. Each method records
// its call and returns the configured result.
type fakeClient struct {
	Calls []string

	RegisterErr error

	LoginRet *models.Session
	LoginErr error

	PoemsRet []models.Poem
	PoemsErr error

	PoemRet *models.Poem
	PoemErr error

	CreateRet *models.Poem
	CreateErr error

	UpdateRet *models.Poem
	UpdateErr error

	DeletePoemErr error

	UsersRet []models.User
	UsersErr error

	UserCountRet int
	UserCountErr error

	DeleteUserErr error

	ProfileRet *models.User
	ProfileErr error

	SubsRet []models.Subscriber
	SubsErr error

	SubCountRet int
	SubCountErr error

	StatusRet *models.SubscriptionStatus
	StatusErr error

	SubscribeErr   error
	UnsubscribeErr error

	LastLoginEmail     string
	LastSubscribeEmail string
	LastPoemInput      models.PoemInput
	LastID             string
}

func (f *fakeClient) record(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeClient) count(name string) int {
	n := 0
	for _, c := range f.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeClient) Register(ctx context.Context, name, email, password string) error {
	f.record("register")
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	f.record("login")
	f.LastLoginEmail = email
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) ListPoems(ctx context.Context) ([]models.Poem, error) {
	f.record("listPoems")
	return f.PoemsRet, f.PoemsErr
}

func (f *fakeClient) GetPoem(ctx context.Context, id string) (*models.Poem, error) {
	f.record("getPoem")
	f.LastID = id
	return f.PoemRet, f.PoemErr
}

func (f *fakeClient) CreatePoem(ctx context.Context, in models.PoemInput) (*models.Poem, error) {
	f.record("createPoem")
	f.LastPoemInput = in
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdatePoem(ctx context.Context, id string, in models.PoemInput) (*models.Poem, error) {
	f.record("updatePoem")
	f.LastID = id
	f.LastPoemInput = in
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeletePoem(ctx context.Context, id string) error {
	f.record("deletePoem")
	f.LastID = id
	return f.DeletePoemErr
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) {
	f.record("listUsers")
	return f.UsersRet, f.UsersErr
}

func (f *fakeClient) UserCount(ctx context.Context) (int, error) {
	f.record("userCount")
	return f.UserCountRet, f.UserCountErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, id string) error {
	f.record("deleteUser")
	f.LastID = id
	return f.DeleteUserErr
}

func (f *fakeClient) Profile(ctx context.Context) (*models.User, error) {
	f.record("profile")
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) ListSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	f.record("listSubscribers")
	return f.SubsRet, f.SubsErr
}

func (f *fakeClient) SubscriberCount(ctx context.Context) (int, error) {
	f.record("subscriberCount")
	return f.SubCountRet, f.SubCountErr
}

func (f *fakeClient) SubscriptionStatus(ctx context.Context) (*models.SubscriptionStatus, error) {
	f.record("subscriptionStatus")
	return f.StatusRet, f.StatusErr
}

func (f *fakeClient) Subscribe(ctx context.Context, email string) error {
	f.record("subscribe")
	f.LastSubscribeEmail = email
	return f.SubscribeErr
}

func (f *fakeClient) Unsubscribe(ctx context.Context, id string) error {
	f.record("unsubscribe")
	f.LastID = id
	return f.UnsubscribeErr
}

// fakeStateRepo is an in-memory state.Repository.
type fakeStateRepo struct {
	data map[string][]byte
}

func newFakeStateRepo() *fakeStateRepo {
	return &fakeStateRepo{data: map[string][]byte{}}
}

func (f *fakeStateRepo) Get(ctx context.Context, key string) ([]byte, error) {
	return f.data[key], nil
}

func (f *fakeStateRepo) Set(ctx context.Context, key string, value []byte) error {
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeStateRepo) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeStateRepo) Clear(ctx context.Context) error {
	f.data = map[string][]byte{}
	return nil
}
