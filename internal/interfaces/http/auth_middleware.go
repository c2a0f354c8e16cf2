package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/donnatureza/pdv-api/internal/application/dto"
	"github.com/donnatureza/pdv-api/pkg/jwt"
)

// Locals keys preenchidas pelo middleware de auth.
const (
	LocalUserID = "user_id"
	LocalNome   = "nome"
	LocalPapel  = "papel"
)

// AuthMiddleware valida o Bearer Token JWT e põe user_id, nome e papel em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, nome, papel, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalNome, nome)
		c.Locals(LocalPapel, papel)
		return c.Next()
	}
}

// RequirePapel autoriza apenas os papéis listados. Usar depois do AuthMiddleware.
func RequirePapel(papeis ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		papel := GetPapel(c)
		if papel == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_PAPEL", Message: "token sem papel"})
		}
		for _, p := range papeis {
			if p == papel {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "papel sem permissão para esta rota"})
	}
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetUsuarioNome devolve o nome do operador autenticado; é o rótulo de ator
// gravado nos movimentos de estoque que ele dispara.
func GetUsuarioNome(c *fiber.Ctx) string {
	return localString(c, LocalNome)
}

// GetPapel devolve o papel (admin | vendedor) do operador autenticado.
func GetPapel(c *fiber.Ctx) string {
	return localString(c, LocalPapel)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
