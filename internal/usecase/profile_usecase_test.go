package usecase

import (
	"context"
	"net/http"
	"testing"

	"markethub/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type ReviewRepoMock struct{ mock.Mock }

func (m *ReviewRepoMock) Create(ctx context.Context, r model.Review) (model.Review, error) {
	args := m.Called(ctx, r)
	rev, _ := args.Get(0).(model.Review)
	return rev, args.Error(1)
}

func (m *ReviewRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.Review, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.Review)
	return items, args.Error(1)
}

func (m *ReviewRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Review, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.Review)
	return items, args.Error(1)
}

func (m *ReviewRepoMock) FindByID(ctx context.Context, reviewID int64) (model.Review, error) {
	args := m.Called(ctx, reviewID)
	rev, _ := args.Get(0).(model.Review)
	return rev, args.Error(1)
}

func (m *ReviewRepoMock) Update(ctx context.Context, r model.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ReviewRepoMock) DeleteByID(ctx context.Context, reviewID int64) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

func newProfileTestDeps() (*ProfileUsecase, *UserRepoMock, *ReviewRepoMock) {
	users := &UserRepoMock{}
	reviews := &ReviewRepoMock{}
	return NewProfileUsecase(users, reviews), users, reviews
}

func TestGetProfile_HidesPasswordHash(t *testing.T) {
	uc, users, _ := newProfileTestDeps()

	users.On("FindByID", mock.Anything, int64(1)).Return(&model.User{
		ID:           1,
		Name:         "Taro",
		Username:     "taro123",
		PasswordHash: "$2a$10$secret",
		Email:        "taro@example.com",
		Role:         model.RoleUser,
	}, nil)

	out, err := uc.GetProfile(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "taro123", out.Username)
	//返却DTOにハッシュのフィールド自体が無い
	assert.Equal(t, "taro@example.com", out.Email)
}

func TestGetProfile_UnknownUser(t *testing.T) {
	uc, users, _ := newProfileTestDeps()

	users.On("FindByID", mock.Anything, int64(9)).Return((*model.User)(nil), nil)

	_, err := uc.GetProfile(context.Background(), 9)

	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestUpdateProfile_KeepsUsernameAndRole(t *testing.T) {
	uc, users, _ := newProfileTestDeps()

	users.On("FindByID", mock.Anything, int64(1)).Return(&model.User{
		ID:           1,
		Name:         "Taro",
		Username:     "taro123",
		PasswordHash: "old-hash",
		Role:         model.RoleUser,
	}, nil)

	var saved *model.User
	users.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.User)
		}).
		Return(nil)

	err := uc.UpdateProfile(context.Background(), 1, ProfileUpdateInput{
		Name:        "Taro Yamada",
		Email:       "new@example.com",
		Address:     "Osaka",
		PhoneNumber: "090-1111-2222",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Taro Yamada", saved.Name)
	assert.Equal(t, "new@example.com", saved.Email)

	//username・role・（password未指定なら）ハッシュは据え置き
	assert.Equal(t, "taro123", saved.Username)
	assert.Equal(t, model.RoleUser, saved.Role)
	assert.Equal(t, "old-hash", saved.PasswordHash)
}

func TestUpdateProfile_RehashesPassword(t *testing.T) {
	uc, users, _ := newProfileTestDeps()

	users.On("FindByID", mock.Anything, int64(1)).Return(&model.User{
		ID:           1,
		Name:         "Taro",
		Username:     "taro123",
		PasswordHash: "old-hash",
		Role:         model.RoleUser,
	}, nil)

	var saved *model.User
	users.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.User)
		}).
		Return(nil)

	err := uc.UpdateProfile(context.Background(), 1, ProfileUpdateInput{
		Name:     "Taro",
		Password: "new-password-123",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotEqual(t, "old-hash", saved.PasswordHash)
	assert.NotEqual(t, "new-password-123", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("new-password-123")))
}

func TestUpdateProfile_RejectsShortPassword(t *testing.T) {
	uc, users, _ := newProfileTestDeps()

	err := uc.UpdateProfile(context.Background(), 1, ProfileUpdateInput{
		Name:     "Taro",
		Password: "short",
	})

	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReviewHistory(t *testing.T) {
	uc, _, reviews := newProfileTestDeps()

	reviews.On("ListByUserID", mock.Anything, int64(1)).Return([]model.Review{
		{ID: 2, ProductID: 3, UserID: 1, Rating: 5, Comment: "good"},
		{ID: 1, ProductID: 7, UserID: 1, Rating: 3, Comment: "so so"},
	}, nil)

	items, err := uc.ReviewHistory(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(3), items[0].ProductID)
}
