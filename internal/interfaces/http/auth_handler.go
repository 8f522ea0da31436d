package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/commodities-dashboard/internal/application/dto"
	"github.com/jhoicas/commodities-dashboard/internal/application/session"
	"github.com/jhoicas/commodities-dashboard/internal/domain"
	"github.com/jhoicas/commodities-dashboard/pkg/token"
)

// AuthHandler maneja login, logout y consulta de sesión.
type AuthHandler struct {
	manager *session.Manager
	jwtCfg  JWTSettings
}

// JWTSettings parámetros para emitir el token de sesión HTTP.
type JWTSettings struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(manager *session.Manager, jwtCfg JWTSettings) *AuthHandler {
	return &AuthHandler{manager: manager, jwtCfg: jwtCfg}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	user, err := h.manager.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado; pruebe manager@commodities.com o keeper@commodities.com"})
		case errors.Is(err, domain.ErrInvalidPassword):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_PASSWORD", Message: "contraseña incorrecta"})
		case errors.Is(err, domain.ErrLoginInFlight):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOGIN_IN_FLIGHT", Message: "ya hay una autenticación en curso"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	tok, err := token.Generate(h.jwtCfg.Secret, user.ID, user.Email, user.Name, user.Role, h.jwtCfg.Issuer, h.jwtCfg.ExpMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.LoginResponse{Token: tok, User: *user})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      204  "sin contenido"
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.manager.Logout(); err != nil {
		if errors.Is(err, domain.ErrLoginInFlight) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOGIN_IN_FLIGHT", Message: "ya hay una autenticación en curso"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Session godoc
// @Summary      Estado de la sesión activa
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(h.manager.Session())
}
