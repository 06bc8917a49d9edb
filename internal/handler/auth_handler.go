package handler

import (
	"net/http"

	"markethub/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DIコンストラクタ
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req usecase.AuthRegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.Register(c.Request().Context(), req); err != nil {
		switch err {
		case usecase.ErrValidation:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
		case usecase.ErrConflict:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "Username already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Message: "User Registered Successfully"})
}

func (h *AuthHandler) login(c echo.Context) error {
	var req usecase.AuthLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Login(c.Request().Context(), req)
	if err != nil {
		switch err {
		case usecase.ErrValidation:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
		case usecase.ErrUnauthorized:
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.JSON(http.StatusOK, out)
}
