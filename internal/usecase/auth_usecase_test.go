package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipeforjobs-ireland/swipeforjobs/internal/domain/user"
	"github.com/swipeforjobs-ireland/swipeforjobs/internal/pkg/jwt"
	ucauth "github.com/swipeforjobs-ireland/swipeforjobs/internal/usecase/auth"
	ucuser "github.com/swipeforjobs-ireland/swipeforjobs/internal/usecase/user"
)

type fakeUserRepo struct {
	mu   sync.Mutex
	byID map[uuid.UUID]user.User
	// err fails every read when set.
	err error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[uuid.UUID]user.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return user.User{}, r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return user.User{}, r.err
	}
	for _, u := range r.byID {
		if u.Email == strings.ToLower(email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		return false, err
	}
	return err == nil, nil
}

func (r *fakeUserRepo) UpdateDetails(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[u.ID]
	if !ok {
		return user.ErrNotFound
	}
	existing.FirstName = u.FirstName
	existing.LastName = u.LastName
	existing.Phone = u.Phone
	r.byID[u.ID] = existing
	return nil
}

func newAuthFixture() (*Auth, *fakeUserRepo, *fakeProfileRepo, *jwt.HMACService) {
	users := newFakeUserRepo()
	profiles := &fakeProfileRepo{byUser: map[uuid.UUID]user.Profile{}}
	tokens := jwt.NewHMACService("access", "refresh", time.Hour, 24*time.Hour)
	return NewAuthUsecase(users, profiles, tokens), users, profiles, tokens
}

func TestAuth_RegisterCreatesUserAndProfile(t *testing.T) {
	uc, users, profiles, tokens := newAuthFixture()
	first := "Aoife"

	usr, pair, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Email:     "  Aoife@Example.ie ",
		Password:  "correct-horse",
		FirstName: &first,
	})
	require.NoError(t, err)
	assert.Equal(t, "aoife@example.ie", usr.Email)
	assert.Equal(t, user.TierFree, usr.SubscriptionTier)
	assert.Empty(t, usr.PasswordHash)
	require.NotNil(t, usr.FirstName)
	assert.Equal(t, "Aoife", *usr.FirstName)

	stored := users.byID[usr.ID]
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)

	_, ok := profiles.byUser[usr.ID]
	assert.True(t, ok)

	claims, err := tokens.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, usr.ID, claims.UserID)
	assert.Equal(t, user.TierFree, claims.SubscriptionTier)
}

func TestAuth_RegisterValidation(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	_, _, err := uc.Register(context.Background(), ucauth.RegisterInput{Email: "not-an-email", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = uc.Register(context.Background(), ucauth.RegisterInput{Email: "a@b.ie", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	uc, _, _, _ := newAuthFixture()
	in := ucauth.RegisterInput{Email: "sean@example.ie", Password: "password123"}

	_, _, err := uc.Register(context.Background(), in)
	require.NoError(t, err)

	in.Email = "SEAN@example.ie"
	_, _, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuth_Login(t *testing.T) {
	uc, _, _, _ := newAuthFixture()
	_, _, err := uc.Register(context.Background(), ucauth.RegisterInput{Email: "ciara@example.ie", Password: "password123"})
	require.NoError(t, err)

	usr, pair, err := uc.Login(context.Background(), ucauth.LoginInput{Email: "Ciara@example.ie", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "ciara@example.ie", usr.Email)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	_, _, err = uc.Login(context.Background(), ucauth.LoginInput{Email: "ciara@example.ie", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, _, err = uc.Login(context.Background(), ucauth.LoginInput{Email: "nobody@example.ie", Password: "password123"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuth_Refresh(t *testing.T) {
	uc, _, _, tokens := newAuthFixture()
	usr, pair, err := uc.Register(context.Background(), ucauth.RegisterInput{Email: "eoin@example.ie", Password: "password123"})
	require.NoError(t, err)

	rotated, err := uc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	claims, err := tokens.ValidateAccessToken(rotated.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, usr.ID, claims.UserID)

	_, err = uc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = uc.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	orphan, err := tokens.GenerateRefreshToken(uuid.New())
	require.NoError(t, err)
	_, err = uc.Refresh(context.Background(), orphan)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestUser_ProfileRoundTrip(t *testing.T) {
	auth, users, profiles, _ := newAuthFixture()
	usr, _, err := auth.Register(context.Background(), ucauth.RegisterInput{Email: "orla@example.ie", Password: "password123"})
	require.NoError(t, err)

	uc := NewUserUsecase(users, profiles)
	phone := "+353 1 555 0100"
	loc := "Galway"
	blank := "   "

	p, err := uc.UpdateProfile(context.Background(), usr.ID, ucuser.UpdateProfileInput{
		Phone:     &phone,
		Location:  &loc,
		FirstName: &blank,
	})
	require.NoError(t, err)
	require.NotNil(t, p.User.Phone)
	assert.Equal(t, phone, *p.User.Phone)
	assert.Nil(t, p.User.FirstName)
	require.NotNil(t, p.Profile.Location)
	assert.Equal(t, "Galway", *p.Profile.Location)

	got, err := uc.GetProfile(context.Background(), usr.ID)
	require.NoError(t, err)
	assert.Equal(t, usr.ID, got.User.ID)
	assert.Empty(t, got.User.PasswordHash)
}

func TestUser_ProfileErrors(t *testing.T) {
	users := newFakeUserRepo()
	profiles := &fakeProfileRepo{byUser: map[uuid.UUID]user.Profile{}}
	uc := NewUserUsecase(users, profiles)

	_, err := uc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	id := uuid.New()
	require.NoError(t, users.Create(context.Background(), user.User{ID: id, Email: "x@example.ie"}))
	bad := "linkedin"
	_, err = uc.UpdateProfile(context.Background(), id, ucuser.UpdateProfileInput{LinkedInURL: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuth_StoreFailureKeepsCause(t *testing.T) {
	uc, users, profiles, _ := newAuthFixture()
	storeErr := errors.New("conn refused")
	users.err = storeErr

	_, _, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Email:    "niamh@example.ie",
		Password: "correct-horse",
	})
	require.ErrorIs(t, err, ErrInternal)
	require.ErrorIs(t, err, storeErr)

	_, _, err = uc.Login(context.Background(), ucauth.LoginInput{
		Email:    "niamh@example.ie",
		Password: "correct-horse",
	})
	require.ErrorIs(t, err, ErrInternal)
	require.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "conn refused")

	profile := NewUserUsecase(users, profiles)
	_, err = profile.GetProfile(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrInternal)
	require.ErrorIs(t, err, storeErr)
}
