package middleware

import (
	"net/http"

	"markethub/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// AdminRoleGuard はAuthJWTが積んだroleを見て、ADMIN以外を弾く。
// role未設定（AuthJWTを通っていない）は401、一般ユーザーは403。
func AdminRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxUserRoleKey).(string)
			switch model.Role(role) {
			case model.RoleAdmin:
				return next(c)
			case "":
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			default:
				return c.JSON(http.StatusForbidden, errorJSON("admin only"))
			}
		}
	}
}
