package usecase

import (
	"context"

	"markethub/internal/domain/model"
	repo "markethub/internal/repository"
)

// assembleOrder はスナップショットから注文と明細を作る。
// 在庫にもカートにも触らない。引き当て済みの行だけが渡ってくる前提。
func (u *OrderUsecase) assembleOrder(ctx context.Context, r repo.TxRepos, userID int64, lines []model.CartSnapshotLine) (model.Order, error) {
	now := u.clock.Now()

	items := make([]model.OrderItem, 0, len(lines))
	var total int64 = 0

	for _, ln := range lines {
		subtotal := ln.Quantity * ln.UnitPrice
		items = append(items, model.OrderItem{
			ProductID: ln.ProductID,
			Quantity:  ln.Quantity,
			UnitPrice: ln.UnitPrice,
			Subtotal:  subtotal,
			CreatedAt: now,
		})
		total += subtotal
	}

	order := model.Order{
		Number:     u.idGen.NewID(),
		UserID:     userID,
		OrderDate:  now,
		Status:     model.OrderStatusPending,
		TotalPrice: total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	orderID, err := r.Orders().Create(ctx, order)
	if err != nil {
		return model.Order{}, dbError(err)
	}
	order.ID = orderID

	if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
		return model.Order{}, dbError(err)
	}

	return order, nil
}
