package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wb-dev/mayoreo-api/internal/application/dto"
	"github.com/wb-dev/mayoreo-api/internal/domain"
	"github.com/wb-dev/mayoreo-api/pkg/jwt"
)

// Locals keys para UserID, CompanyID y grupos en Fiber.
const (
	LocalUserID    = "user_id"
	LocalCompanyID = "company_id"
	LocalGroups    = "groups"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID, CompanyID y
// grupos a c.Locals. Los grupos viajan en el token: autorizar los botones del
// flujo de mayoreo no requiere consultar la DB.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, companyID, groups, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalCompanyID, companyID)
		c.Locals(LocalGroups, groups)
		return c.Next()
	}
}

// RequireGroup autoriza solo a actores que pertenezcan a alguno de los grupos
// dados (admin siempre pasa). Usar después de AuthMiddleware.
func RequireGroup(groups ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor.HasGroup("admin") || actor.HasAnyGroup(groups...) {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "grupo sin permiso para esta operación"})
	}
}

// GetActor arma el contexto explícito del actor desde c.Locals (después del
// middleware de auth).
func GetActor(c *fiber.Ctx) domain.Actor {
	actor := domain.Actor{
		UserID:    GetUserID(c),
		CompanyID: GetCompanyID(c),
	}
	if v := c.Locals(LocalGroups); v != nil {
		if groups, ok := v.([]string); ok {
			actor.Groups = groups
		}
	}
	return actor
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCompanyID devuelve el CompanyID del contexto (después del middleware de auth).
func GetCompanyID(c *fiber.Ctx) string {
	v := c.Locals(LocalCompanyID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
