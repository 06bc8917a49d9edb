package usecase

import (
	"context"
	"net/http"
	"strings"

	"markethub/internal/domain/model"
	repo "markethub/internal/repository"
)

type ReviewUsecase struct {
	reviewRepo  repo.ReviewRepository
	productRepo repo.ProductRepository
}

func NewReviewUsecase(reviewRepo repo.ReviewRepository, productRepo repo.ProductRepository) *ReviewUsecase {
	return &ReviewUsecase{reviewRepo: reviewRepo, productRepo: productRepo}
}

type ReviewInput struct {
	ProductID int64
	Rating    int
	Comment   string
}

func (u *ReviewUsecase) CreateReview(ctx context.Context, userID int64, in ReviewInput) (model.Review, error) {
	if userID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be 1-5")
	}

	//商品の存在確認
	if _, err := u.productRepo.FindByID(ctx, in.ProductID); err != nil {
		if err == repo.ErrNotFound {
			return model.Review{}, NewHTTPError(http.StatusNotFound, "Product not found")
		}
		return model.Review{}, dbError(err)
	}

	rev, err := u.reviewRepo.Create(ctx, model.Review{
		ProductID: in.ProductID,
		UserID:    userID,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
	})
	if err != nil {
		return model.Review{}, dbError(err)
	}
	return rev, nil
}

func (u *ReviewUsecase) ListProductReviews(ctx context.Context, productID int64) ([]model.Review, error) {
	if productID <= 0 {
		return []model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	items, err := u.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return []model.Review{}, dbError(err)
	}
	return items, nil
}

func (u *ReviewUsecase) UpdateReview(ctx context.Context, userID int64, reviewID int64, rating int, comment string) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if reviewID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid review id")
	}
	if rating < 1 || rating > 5 {
		return NewHTTPError(http.StatusBadRequest, "rating must be 1-5")
	}

	rev, err := u.reviewRepo.FindByID(ctx, reviewID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Review not found")
	}
	if err != nil {
		return dbError(err)
	}
	if rev.UserID != userID {
		//他人のレビューは存在しない扱い
		return NewHTTPError(http.StatusNotFound, "Review not found")
	}

	rev.Rating = rating
	rev.Comment = strings.TrimSpace(comment)

	if err := u.reviewRepo.Update(ctx, rev); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Review not found")
		}
		return dbError(err)
	}
	return nil
}

func (u *ReviewUsecase) DeleteReview(ctx context.Context, userID int64, reviewID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if reviewID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid review id")
	}

	rev, err := u.reviewRepo.FindByID(ctx, reviewID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Review not found")
	}
	if err != nil {
		return dbError(err)
	}
	if rev.UserID != userID {
		return NewHTTPError(http.StatusNotFound, "Review not found")
	}

	if err := u.reviewRepo.DeleteByID(ctx, reviewID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Review not found")
		}
		return dbError(err)
	}
	return nil
}
