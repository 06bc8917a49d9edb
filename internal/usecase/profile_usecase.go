package usecase

import (
	"context"
	"net/http"
	"strings"

	"markethub/internal/domain/model"
	repo "markethub/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 自分自身のプロフィール操作。対象ユーザーは常にtokenのuser_id。
type ProfileUsecase struct {
	users   repo.UserRepository
	reviews repo.ReviewRepository
}

func NewProfileUsecase(users repo.UserRepository, reviews repo.ReviewRepository) *ProfileUsecase {
	return &ProfileUsecase{users: users, reviews: reviews}
}

type ProfileUpdateInput struct {
	Name        string
	Email       string
	Address     string
	PhoneNumber string
	//空なら据え置き
	Password string
}

func (u *ProfileUsecase) GetProfile(ctx context.Context, userID int64) (UserOutput, error) {
	if userID <= 0 {
		return UserOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
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

// UpdateProfile はname/email/address/phoneと（指定があれば）passwordを更新する。
// usernameとroleは本人からは変えられない。
func (u *ProfileUsecase) UpdateProfile(ctx context.Context, userID int64, in ProfileUpdateInput) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Password != "" && len(in.Password) < 8 {
		return NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
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

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		user.PasswordHash = string(hash)
	}

	if err := u.users.Update(ctx, user); err != nil {
		return dbError(err)
	}
	return nil
}

// ReviewHistory は自分が書いたレビュー一覧（新しい順）。
func (u *ProfileUsecase) ReviewHistory(ctx context.Context, userID int64) ([]model.Review, error) {
	if userID <= 0 {
		return []model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.reviews.ListByUserID(ctx, userID)
	if err != nil {
		return []model.Review{}, dbError(err)
	}
	return items, nil
}
