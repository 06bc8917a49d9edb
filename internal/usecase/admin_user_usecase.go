package usecase

import (
	"context"
	"net/http"
	"strings"

	"markethub/internal/domain/model"
	repo "markethub/internal/repository"
)

type AdminUserUsecase struct {
	users repo.UserRepository
}

func NewAdminUserUsecase(users repo.UserRepository) *AdminUserUsecase {
	return &AdminUserUsecase{users: users}
}

// パスワードハッシュを外に出さないための返却用DTO。
type UserOutput struct {
	ID       int64  `json:"user_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Phone    string `json:"phone_number"`
	Role     string `json:"role"`
}

type AdminUpdateUserInput struct {
	Name        string
	Email       string
	Address     string
	PhoneNumber string
	Role        string
}

func (u *AdminUserUsecase) ListUsers(ctx context.Context) ([]UserOutput, error) {
	users, err := u.users.ListAll(ctx)
	if err != nil {
		return []UserOutput{}, dbError(err)
	}

	outs := make([]UserOutput, 0, len(users))
	for i := range users {
		outs = append(outs, toUserOutput(&users[i]))
	}
	return outs, nil
}

func (u *AdminUserUsecase) GetUser(ctx context.Context, userID int64) (UserOutput, error) {
	if userID <= 0 {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return UserOutput{}, dbError(err)
	}
	if user == nil {
		return UserOutput{}, NewHTTPError(http.StatusNotFound, "User not found")
	}
	return toUserOutput(user), nil
}

func (u *AdminUserUsecase) UpdateUser(ctx context.Context, userID int64, in AdminUpdateUserInput) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}

	role := model.Role(in.Role)
	switch role {
	case model.RoleUser, model.RoleAdmin:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return dbError(err)
	}
	if user == nil {
		return NewHTTPError(http.StatusNotFound, "User not found")
	}

	user.Name = strings.TrimSpace(in.Name)
	user.Email = in.Email
	user.Address = in.Address
	user.Phone = in.PhoneNumber
	user.Role = role

	if err := u.users.Update(ctx, user); err != nil {
		return dbError(err)
	}
	return nil
}

func (u *AdminUserUsecase) DeleteUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	err := u.users.DeleteByID(ctx, userID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return dbError(err)
	}
	return nil
}

func toUserOutput(u *model.User) UserOutput {
	return UserOutput{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Address:  u.Address,
		Phone:    u.Phone,
		Role:     string(u.Role),
	}
}
