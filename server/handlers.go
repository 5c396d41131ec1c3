package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tech-arch1tect/signup/services/logging"
	"github.com/tech-arch1tect/signup/services/signup"
	"go.uber.org/zap"
)

// Handler translates HTTP requests into workflow calls and workflow
// outcomes into responses. All field validation happens inside the
// workflows; the handlers only bind raw strings.
type Handler struct {
	signup *signup.Service
	logger *logging.Service
}

func NewHandler(signupSvc *signup.Service, logger *logging.Service) *Handler {
	return &Handler{
		signup: signupSvc,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(srv *Server) {
	srv.Post("/signup", h.Signup)
	srv.Post("/signup/resend", h.Resend)
	srv.Get("/verify/:token", h.Verify)
}

type signupRequest struct {
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	Password    string `json:"password" form:"password"`
	AccountType string `json:"account_type" form:"account_type"`
}

type resendRequest struct {
	Email string `json:"email" form:"email"`
}

func (h *Handler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}

	err := h.signup.Signup(req.Name, req.Email, req.Password, req.AccountType)

	var verr *signup.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"code":  verr.Code,
			"error": verr.Message,
		})
	case errors.Is(err, signup.ErrNameTaken):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case err != nil:
		h.logger.Error("signup failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "signup failed")
	}

	// Fresh signups and duplicate-email attempts produce the same response.
	return c.JSON(http.StatusCreated, map[string]string{
		"message": "account created, check your email for a verification link",
	})
}

func (h *Handler) Resend(c echo.Context) error {
	var req resendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}

	err := h.signup.Resend(req.Email)

	var verr *signup.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"code":  verr.Code,
			"error": verr.Message,
		})
	case errors.Is(err, signup.ErrNoSuchAccount):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, signup.ErrAlreadyVerified):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case err != nil:
		h.logger.Error("resend failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "resend failed")
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"message": "a new verification link is on its way",
	})
}

func (h *Handler) Verify(c echo.Context) error {
	account, err := h.signup.Verify(c.Param("token"))

	switch {
	case errors.Is(err, signup.ErrTokenNotApplicable):
		// Malformed and unknown tokens both fall through to a plain 404.
		return echo.ErrNotFound
	case errors.Is(err, signup.ErrTokenExpired):
		return c.JSON(http.StatusGone, map[string]string{
			"error": "verification link is no longer valid, request a new one",
		})
	case err != nil:
		h.logger.Error("verification failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "verification failed")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "email verified",
		"name":    account.Name,
	})
}
