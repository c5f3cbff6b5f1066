package serverutils

import (
	"expert-session-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	LocalUserId   = "user_id"
	LocalUserRole = "user_role"

	RoleHeader = "X-User-Role"
)

// RoleMiddleware resolves who is calling. A bearer token (when a secret is
// configured) wins, then the X-User-Role header, then CLIENT. Anonymous
// calls are allowed; only a bad token is rejected.
func RoleMiddleware(jwtSecret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role := entity.UserRoleClient

		if r, ok := entity.ParseUserRole(ctx.Get(RoleHeader)); ok {
			role = r
		}

		authHeader := ctx.Get("Authorization")
		if jwtSecret != "" && len(authHeader) >= 7 && authHeader[:7] == "Bearer " {
			tokenStr := authHeader[7:]

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				return []byte(jwtSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid claims"))
			}

			if userId, ok := claims["user_id"].(string); ok {
				ctx.Locals(LocalUserId, userId)
			}
			if claimRole, ok := claims["role"].(string); ok {
				if r, ok := entity.ParseUserRole(claimRole); ok {
					role = r
				}
			}
		}

		ctx.Locals(LocalUserRole, role)
		return ctx.Next()
	}
}

// RoleFromCtx returns the role resolved by RoleMiddleware, CLIENT otherwise.
func RoleFromCtx(ctx *fiber.Ctx) entity.UserRole {
	if r, ok := ctx.Locals(LocalUserRole).(entity.UserRole); ok {
		return r
	}
	return entity.UserRoleClient
}

// UserIdFromCtx returns the token's user id, or fallback for anonymous calls.
func UserIdFromCtx(ctx *fiber.Ctx, fallback string) string {
	if id, ok := ctx.Locals(LocalUserId).(string); ok && id != "" {
		return id
	}
	return fallback
}
