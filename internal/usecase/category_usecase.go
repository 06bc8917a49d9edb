package usecase

import (
	"context"
	"net/http"
	"strings"

	"markethub/internal/domain/model"
	repo "markethub/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

func (u *CategoryUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	items, err := u.categoryRepo.ListAll(ctx)
	if err != nil {
		return []model.Category{}, dbError(err)
	}
	return items, nil
}

func (u *CategoryUsecase) GetCategory(ctx context.Context, categoryID int64) (model.Category, error) {
	if categoryID <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	c, err := u.categoryRepo.FindByID(ctx, categoryID)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return model.Category{}, dbError(err)
	}
	return c, nil
}

func (u *CategoryUsecase) AdminCreateCategory(ctx context.Context, name string) (model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	c, err := u.categoryRepo.Create(ctx, model.Category{Name: strings.TrimSpace(name)})
	if err != nil {
		return model.Category{}, dbError(err)
	}
	return c, nil
}

func (u *CategoryUsecase) AdminUpdateCategory(ctx context.Context, categoryID int64, name string) error {
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category id")
	}
	if strings.TrimSpace(name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}

	err := u.categoryRepo.Update(ctx, model.Category{ID: categoryID, Name: strings.TrimSpace(name)})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return dbError(err)
	}
	return nil
}

func (u *CategoryUsecase) AdminDeleteCategory(ctx context.Context, categoryID int64) error {
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	err := u.categoryRepo.DeleteByID(ctx, categoryID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return dbError(err)
	}
	return nil
}
