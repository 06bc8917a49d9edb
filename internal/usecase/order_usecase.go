package usecase

import (
	"context"
	"net/http"
	"sort"
	"time"

	"markethub/internal/domain/model"
	repo "markethub/internal/repository"
)

type OrderUsecase struct {
	tx    repo.TransactionManager
	clock Clock
	idGen IDGenerator
}

func NewOrderUsecase(tx repo.TransactionManager, clock Clock, idGen IDGenerator) *OrderUsecase {
	return &OrderUsecase{tx: tx, clock: clock, idGen: idGen}
}

type PlaceOrderOutput struct {
	OrderID     int64  `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

type OrderItemOutput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
	UnitPrice int64 `json:"unit_price"`
	Subtotal  int64 `json:"subtotal"`
}

type OrderOutput struct {
	OrderID     int64             `json:"order_id"`
	OrderNumber string            `json:"order_number"`
	UserID      int64             `json:"user_id"`
	Status      string            `json:"status"`
	TotalPrice  int64             `json:"total_price"`
	OrderDate   time.Time         `json:"order_date"`
	Items       []OrderItemOutput `json:"items"`
}

// PlaceOrder は注文確定。全手順を1つのトランザクションで行う。
//  1. カートのスナップショット取得（空なら400）
//  2. 明細ごとに条件付きUPDATEで在庫を引き当て（失敗で全ロールバック）
//  3. 注文＋明細を作成
//  4. スナップショットに含まれていたカート行だけを削除
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64) (PlaceOrderOutput, error) {
	if userID <= 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var out PlaceOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		lines, err := r.Carts().SnapshotByUserID(ctx, userID)
		if err != nil {
			return dbError(err)
		}
		if len(lines) == 0 {
			return NewHTTPError(http.StatusBadRequest, "Cart is empty")
		}

		//引き当てはproduct_id昇順に固定（ロック順序を揃えてデッドロック回避）
		sort.Slice(lines, func(i, j int) bool {
			return lines[i].ProductID < lines[j].ProductID
		})

		for _, ln := range lines {
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, ln.ProductID, ln.Quantity)
			if err != nil {
				return dbError(err)
			}
			if !ok {
				//行が無いのか在庫不足なのかを区別する
				_, ferr := r.Products().FindByID(ctx, ln.ProductID)
				if ferr == repo.ErrNotFound {
					return NewHTTPError(http.StatusNotFound, "Product not found")
				}
				if ferr != nil {
					return dbError(ferr)
				}
				return NewHTTPError(http.StatusConflict, "Insufficient stock")
			}
		}

		order, err := u.assembleOrder(ctx, r, userID, lines)
		if err != nil {
			return err
		}

		//スナップショットの行だけを消す。その後に追加された行は残す。
		ids := make([]int64, 0, len(lines))
		for _, ln := range lines {
			ids = append(ids, ln.CartItemID)
		}
		deleted, err := r.Carts().DeleteByIDs(ctx, userID, ids)
		if err != nil {
			return dbError(err)
		}
		if deleted != int64(len(ids)) {
			//並行した注文が先にカートを消費していた
			return NewHTTPError(http.StatusBadRequest, "Cart is empty")
		}

		out = PlaceOrderOutput{
			OrderID:     order.ID,
			OrderNumber: order.Number,
		}
		return nil
	})

	if err != nil {
		//fnの外（Begin/Commit）で失敗することもあるので重ねて変換する
		return PlaceOrderOutput{}, dbError(err)
	}
	return out, nil
}

// OrderHistory は自分の注文一覧（明細つき、新しい順）。
func (u *OrderUsecase) OrderHistory(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return dbError(err)
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return dbError(err)
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, dbError(err)
	}
	return outs, nil
}

// CancelOrder は自分のPENDING注文を取り消す。
// 注文と明細を消すだけで、在庫は戻さない。
func (u *OrderUsecase) CancelOrder(ctx context.Context, userID int64, orderID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return dbError(err)
		}
		if o.UserID != userID {
			//他人の注文は存在しない扱い
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if o.Status != model.OrderStatusPending {
			return NewHTTPError(http.StatusConflict, "Order cannot be canceled")
		}

		if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
			return dbError(err)
		}
		if err := r.Orders().DeleteByID(ctx, orderID); err != nil {
			return dbError(err)
		}
		return nil
	})
	if err != nil {
		return dbError(err)
	}
	return nil
}

// AdminListOrders は全注文（明細つき）。
func (u *OrderUsecase) AdminListOrders(ctx context.Context) ([]OrderOutput, error) {
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListAll(ctx)
		if err != nil {
			return dbError(err)
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return dbError(err)
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, dbError(err)
	}
	return outs, nil
}

// AdminGetOrder は任意ユーザーの注文1件（明細つき）。
func (u *OrderUsecase) AdminGetOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return dbError(err)
		}

		items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
		if err != nil {
			return dbError(err)
		}
		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, dbError(err)
	}
	return out, nil
}

// AdminDeleteOrder は注文を明細ごと削除する。状態は問わない。在庫は戻さない。
func (u *OrderUsecase) AdminDeleteOrder(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "Order not found")
			}
			return dbError(err)
		}

		if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
			return dbError(err)
		}
		if err := r.Orders().DeleteByID(ctx, orderID); err != nil {
			return dbError(err)
		}
		return nil
	})
	if err != nil {
		return dbError(err)
	}
	return nil
}

func (u *OrderUsecase) AdminUpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	s := model.OrderStatus(status)
	switch s {
	case model.OrderStatusPending, model.OrderStatusPaid, model.OrderStatusShipped, model.OrderStatusCanceled:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		err := r.Orders().UpdateStatus(ctx, orderID, s)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return dbError(err)
		}
		return nil
	})
	if err != nil {
		return dbError(err)
	}
	return nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}

	return OrderOutput{
		OrderID:     o.ID,
		OrderNumber: o.Number,
		UserID:      o.UserID,
		Status:      string(o.Status),
		TotalPrice:  o.TotalPrice,
		OrderDate:   o.OrderDate,
		Items:       outItems,
	}
}
