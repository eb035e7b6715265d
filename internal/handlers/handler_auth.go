package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/gstnote/gstnote_backend/internal/apperrors"
	portssvc "github.com/gstnote/gstnote_backend/internal/core/ports/services"
	"github.com/gstnote/gstnote_backend/internal/dto"
	"github.com/gstnote/gstnote_backend/internal/middleware"
	"github.com/gstnote/gstnote_backend/internal/platform/config"
)

// AuthHandler handles authentication and signup related requests.
type AuthHandler struct {
	authService    portssvc.AuthSvcFacade
	companyService portssvc.CompanySvcFacade
	userService    portssvc.UserSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(services *portssvc.ServiceContainer) *AuthHandler {
	return &AuthHandler{
		authService:    services.Auth,
		companyService: services.Company,
		userService:    services.User,
	}
}

// registerAuthRoutes sets up the public routes: login, signup and the
// signup existence probes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services)

	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
		auth.POST("/register", h.Register)
		auth.GET("/check-email", h.CheckEmail)
		auth.GET("/check-company", h.CheckCompany)
	}
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			// Deliberately identical for unknown email and wrong password.
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		respondError(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register godoc
// @Summary Register a company
// @Description Creates a company together with its first admin user.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.RegisterRequest true "Company and first user"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for register request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register company")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CheckEmail godoc
// @Summary Check email availability
// @Description Reports whether any account already uses the email.
// @Tags auth
// @Produce json
// @Param email query string true "Email to probe"
// @Success 200 {object} dto.ExistsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/check-email [get]
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email query parameter is required"})
		return
	}

	exists, err := h.userService.EmailExists(c.Request.Context(), email)
	if err != nil {
		respondError(c, err, "Failed to check email")
		return
	}
	c.JSON(http.StatusOK, dto.ExistsResponse{Exists: exists})
}

// CheckCompany godoc
// @Summary Check company name availability
// @Description Reports whether a company name is already registered.
// @Tags auth
// @Produce json
// @Param name query string true "Company name to probe"
// @Success 200 {object} dto.ExistsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/check-company [get]
func (h *AuthHandler) CheckCompany(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name query parameter is required"})
		return
	}

	exists, companyID, err := h.companyService.CompanyNameExists(c.Request.Context(), name)
	if err != nil {
		respondError(c, err, "Failed to check company name")
		return
	}
	resp := dto.ExistsResponse{Exists: exists}
	if exists {
		resp.CompanyID = &companyID
	}
	c.JSON(http.StatusOK, resp)
}
