package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"markethub/internal/config"
	"markethub/internal/events"
	"markethub/internal/middleware"
	"markethub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ロック競合などで延びた注文確定は途中で打ち切って全ロールバックさせる
var placeOrderTimeout = 5 * time.Second

type OrderHandler struct {
	uc       *usecase.OrderUsecase
	producer *events.Producer
}

func NewOrderHandler(uc *usecase.OrderUsecase, producer *events.Producer) *OrderHandler {
	return &OrderHandler{uc: uc, producer: producer}
}

type PlaceOrderResponse struct {
	Message     string `json:"message"`
	OrderID     int64  `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

type orderPlacedEvent struct {
	Type        string `json:"type"`
	OrderID     int64  `json:"order_id"`
	OrderNumber string `json:"order_number"`
	UserID      int64  `json:"user_id"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("/place-order", h.placeOrder)
	g.GET("/order/history", h.history)
	g.DELETE("/order/:order_id", h.cancel)
}

func (h *OrderHandler) placeOrder(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), placeOrderTimeout)
	defer cancel()

	//user_idはtokenから取る。bodyのuser_idは見ない。
	out, err := h.uc.PlaceOrder(ctx, userID)
	if err != nil {
		return writeError(c, err)
	}

	//コミット後のベストエフォート通知。失敗はログだけ残す。
	if err := h.producer.PublishEvent(ctx, out.OrderNumber, orderPlacedEvent{
		Type:        "order_placed",
		OrderID:     out.OrderID,
		OrderNumber: out.OrderNumber,
		UserID:      userID,
	}); err != nil {
		c.Logger().Warnf("order event publish failed: %v", err)
	}

	return c.JSON(http.StatusCreated, PlaceOrderResponse{
		Message:     "Order Placed Successfully",
		OrderID:     out.OrderID,
		OrderNumber: out.OrderNumber,
	})
}

func (h *OrderHandler) history(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.OrderHistory(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) cancel(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.CancelOrder(c.Request().Context(), userID, orderID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Order canceled"})
}
