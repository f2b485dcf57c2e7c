// Package user exposes the admin-only member management endpoints.
package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/parfin-app/parfin/pkg/config"
	"github.com/parfin-app/parfin/pkg/domain"
	"github.com/parfin-app/parfin/pkg/middleware"
	"github.com/parfin-app/parfin/pkg/service"
	"github.com/parfin-app/parfin/webapi/common"
)

func Routes(app *fiber.App, userSvc *service.UserService, cfg config.JwtConfig) {
	g := app.Group("/api/users", middleware.JwtProtected(cfg))
	g.Get("/", List(userSvc))
	g.Post("/create", Create(userSvc))
	g.Post("/delete", Delete(userSvc))
}

func List(userSvc *service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !common.RequireAdmin(c) {
			return nil
		}
		users, err := userSvc.List(c.Context())
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		out := make([]fiber.Map, len(users))
		for i, u := range users {
			out[i] = fiber.Map{
				"id":         u.ID,
				"username":   u.Username,
				"role":       u.Role,
				"created_at": u.CreatedAt,
			}
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Users", out)
	}
}

func Create(userSvc *service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !common.RequireAdmin(c) {
			return nil
		}
		input, err := common.BindAndValidate[CreateInput](c)
		if input == nil {
			return err
		}
		u, err := userSvc.Create(c.Context(), input.Username, input.Password, domain.Role(input.Role))
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User created", fiber.Map{
			"id":       u.ID,
			"username": u.Username,
			"role":     u.Role,
		})
	}
}

func Delete(userSvc *service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !common.RequireAdmin(c) {
			return nil
		}
		input, err := common.BindAndValidate[DeleteInput](c)
		if input == nil {
			return err
		}
		id, err := uuid.Parse(input.ID)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid user id", err.Error())
		}
		if err := userSvc.Delete(c.Context(), id); err != nil {
			return common.ProblemJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User deleted", nil)
	}
}
