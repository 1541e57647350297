package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/accountsvc/internal/auth"
	"github.com/yourorg/accountsvc/internal/debug"
	"github.com/yourorg/accountsvc/internal/models"
	"github.com/yourorg/accountsvc/internal/service"
	"github.com/yourorg/accountsvc/internal/store"
)

// Response messages, preserved verbatim from the original API contract.
const (
	msgRegistered       = "Registration successful"
	msgPasswordTooShort = "Password must be at least 8 characters"
	msgUserExists       = "User already exists, try signing in"
	msgLoginOK          = "Login Successful"
	msgUserNotFound     = "User Not Found, Create an Account"
	msgWrongPassword    = "Incorrect Password"
	msgNoToken          = "Unauthorized, no token provided"
	msgInvalidToken     = "Invalid Token"
	msgSearchFound      = "User Found"
	msgSearchNotFound   = "User Not Found"
)

// AuthHandler exposes the three account operations over HTTP.
type AuthHandler struct {
	svc *service.AccountService
}

func NewAuthHandler(svc *service.AccountService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid request body"})
	}

	created, err := h.svc.Register(c.UserContext(), &req)
	switch {
	case err == nil:
		debug.Event("register", created.Username, "success")
		c.Set("Cache-Control", "no-store")
		return c.Status(fiber.StatusCreated).JSON(models.RegisterResponse{
			Msg:      msgRegistered,
			UserInfo: created,
		})

	case errors.Is(err, service.ErrPasswordTooShort):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"msg": msgPasswordTooShort})

	case errors.Is(err, service.ErrUserExists):
		debug.Event("register", req.Username, "conflict")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"msg": msgUserExists})

	default:
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"msg": verr.Error()})
		}
		log.Printf("❌ register error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "internal error"})
	}
}

// Login handles POST /login. Failure responses keep the original `token:
// false` marker alongside the message.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid request body"})
	}

	token, err := h.svc.Login(c.UserContext(), req.Username, req.Password)
	switch {
	case err == nil:
		debug.Event("login", req.Username, "success")
		c.Set("Cache-Control", "no-store")
		return c.JSON(fiber.Map{"msg": msgLoginOK, "Token": token})

	case errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": msgUserNotFound, "token": false})

	case errors.Is(err, service.ErrIncorrectPassword):
		debug.Event("login", req.Username, "wrong_password")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": msgWrongPassword, "token": false})

	default:
		log.Printf("❌ login error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "internal error"})
	}
}

// SearchUser handles GET /searchuser?username=X with a bearer token.
// A missing or malformed Authorization header is a hard 401 before the
// token is ever inspected.
func (h *AuthHandler) SearchUser(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": msgNoToken})
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	claims, profile, err := h.svc.SearchUser(c.UserContext(), token, c.Query("username"))
	switch {
	case errors.Is(err, auth.ErrTokenExpired), errors.Is(err, auth.ErrTokenInvalid):
		// One message for both, so callers can't probe which check failed.
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"msg": msgInvalidToken, "user": nil})

	case err != nil:
		log.Printf("❌ searchuser error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "internal error"})

	case profile == nil:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"msg": msgSearchNotFound, "user": claims})

	default:
		debug.Event("search", profile.Username, "found")
		return c.JSON(fiber.Map{"msg": msgSearchFound, "user": claims, "queriedUser_Info": profile})
	}
}
