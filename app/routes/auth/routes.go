package auth

import (
	"strings"

	"factory-kpi/app/config"
	"factory-kpi/app/database"
	"factory-kpi/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/auth/login", ShowLoginPage)
	app.Post("/api/auth/login", LoginAPI)
	app.Post("/api/auth/logout", LogoutAPI)

	api := app.Group("/api/auth")
	api.Use(AuthMiddleware)
	api.Post("/change-password", ChangePasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Factory KPI",
	}, "")
}

// AuthMiddleware validates the JWT and loads the user into request context.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	tokenString = c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"ok": false, "error": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"ok": false, "error": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	user, err := database.GetUserByID(config.GetDB(), claims.UserID)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"ok": false, "error": "User not found"})
		}
		return c.Redirect("/auth/login")
	}

	roles, err := database.GetUserRoles(config.GetDB(), user.ID)
	if err == nil {
		user.Roles = roles
	}

	c.Locals("user", user)
	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	return c.Next()
}

// RequireApprover gates the approval endpoints.
func RequireApprover(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	if !user.CanApprove() {
		return c.Status(403).JSON(fiber.Map{"ok": false, "error": "Approver role required"})
	}
	return c.Next()
}

// RequireAdmin gates the rule editor.
func RequireAdmin(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	if !user.CanManageRules() {
		return c.Status(403).JSON(fiber.Map{"ok": false, "error": "Admin role required"})
	}
	return c.Next()
}

// RequireReports gates the reporting endpoints.
func RequireReports(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	if !user.CanViewReports() {
		return c.Status(403).JSON(fiber.Map{"ok": false, "error": "Manager role required"})
	}
	return c.Next()
}
