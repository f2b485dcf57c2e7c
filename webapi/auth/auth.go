// Package auth exposes the login and token check endpoints.
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parfin-app/parfin/pkg/config"
	"github.com/parfin-app/parfin/pkg/middleware"
	"github.com/parfin-app/parfin/pkg/service"
	"github.com/parfin-app/parfin/webapi/common"
)

func Routes(app *fiber.App, authSvc *service.AuthService, cfg config.JwtConfig) {
	app.Post("/api/auth/login", Login(authSvc))
	app.Get("/api/auth/check", middleware.JwtProtected(cfg), Check())
}

// Login authenticates a household member and returns a bearer token.
func Login(authSvc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		token, user, err := authSvc.Login(c.Context(), input.Username, input.Password)
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login", fiber.Map{
			"token":    token,
			"username": user.Username,
			"role":     user.Role,
		})
	}
}

// Check reports whether the presented token is still valid.
func Check() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := common.TokenClaims(c)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Token valid", fiber.Map{
			"username": claims["username"],
			"role":     claims["role"],
		})
	}
}
