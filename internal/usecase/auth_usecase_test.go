package usecase

import (
	"context"
	"testing"

	"markethub/internal/config"
	"markethub/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// validatorは素通しにしてusecase側の分岐だけ見る
type passValidator struct{}

func (passValidator) ValidateRegister(ctx context.Context, req AuthRegisterRequest) error { return nil }
func (passValidator) ValidateLogin(ctx context.Context, username, password string) error  { return nil }

func newAuthTestDeps() (*AuthUsecase, *UserRepoMock) {
	users := &UserRepoMock{}
	cfg := config.Config{Port: "8080", JWTSecret: "test-secret"}
	return NewAuthUsecase(cfg, users, passValidator{}), users
}

func TestRegister_HashesPassword(t *testing.T) {
	uc, users := newAuthTestDeps()

	users.On("FindByUsername", mock.Anything, "taro123").Return((*model.User)(nil), nil)

	var saved *model.User
	users.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.User)
		}).
		Return(nil)

	err := uc.Register(context.Background(), AuthRegisterRequest{
		Name:     "Taro",
		Username: "taro123",
		Password: "password123",
		Email:    "taro@example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)

	//平文は保存されない
	assert.NotEqual(t, "password123", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("password123")))
	assert.Equal(t, model.RoleUser, saved.Role)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	uc, users := newAuthTestDeps()

	users.On("FindByUsername", mock.Anything, "taro123").
		Return(&model.User{ID: 1, Username: "taro123"}, nil)

	err := uc.Register(context.Background(), AuthRegisterRequest{
		Name:     "Taro",
		Username: "taro123",
		Password: "password123",
		Email:    "taro@example.com",
	})

	assert.ErrorIs(t, err, ErrConflict)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	uc, users := newAuthTestDeps()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users.On("FindByUsername", mock.Anything, "admin1").Return(&model.User{
		ID:           7,
		Username:     "admin1",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}, nil)

	out, err := uc.Login(context.Background(), AuthLoginRequest{
		Username: "admin1",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.True(t, out.IsAdmin)
	require.NotEmpty(t, out.Token)

	//発行したtokenが自分のsecretで検証でき、subとroleが入っている
	parsed, err := jwt.Parse(out.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(7), claims["sub"])
	assert.Equal(t, "ADMIN", claims["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, users := newAuthTestDeps()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users.On("FindByUsername", mock.Anything, "taro123").Return(&model.User{
		ID:           1,
		Username:     "taro123",
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}, nil)

	_, err = uc.Login(context.Background(), AuthLoginRequest{
		Username: "taro123",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	uc, users := newAuthTestDeps()

	users.On("FindByUsername", mock.Anything, "nobody").Return((*model.User)(nil), nil)

	_, err := uc.Login(context.Background(), AuthLoginRequest{
		Username: "nobody",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrUnauthorized)
}
