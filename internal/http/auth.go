package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jessbook/internal/auth"
	"jessbook/internal/service"
)

type registerRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	ConfirmPswd string `json:"confirmPswd"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type recoverRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Password    string `json:"password"`
	ConfirmPswd string `json:"confirmPswd"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}

	err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPswd,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"message": "An account with this email address already exists."})
		case errors.As(err, &verr):
			c.JSON(http.StatusUnauthorized, gin.H{"errors": verr.Fields})
		default:
			h.serverError(c, err, "An unknown error occurred while creating new user.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "New user created"})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please, fill in all required fields."})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Invalid email or password"})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		default:
			h.serverError(c, err, "An unknown error occurred while fetching user data.")
		}
		return
	}

	auth.SetTokenCookie(c.Writer, auth.SessionCookie, token, h.auth.SessionTTL())
	c.JSON(http.StatusCreated, userToResponse(user))
}

func (h *Handler) connect(c *gin.Context) {
	user, err := h.auth.Connect(c.Request.Context(), loggedInUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.serverError(c, err, "An unknown error occurred while fetching user data.")
		return
	}

	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) logout(c *gin.Context) {
	auth.ClearTokenCookie(c.Writer, auth.SessionCookie)
	c.JSON(http.StatusOK, gin.H{"message": "User is logged out."})
}

func (h *Handler) recoverAccount(c *gin.Context) {
	var req recoverRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please, provide an email."})
		return
	}

	token, err := h.auth.IssueResetToken(c.Request.Context(), req.Email)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "There is no account associated with this email address."})
		default:
			h.serverError(c, err, "An unknown error occurred while fetching user data.")
		}
		return
	}

	// cookie first, then the email; the cookie is the secret, the link is not
	auth.SetTokenCookie(c.Writer, auth.ResetCookie, token, h.auth.ResetTTL())

	if err := h.auth.SendResetEmail(c.Request.Context(), req.Email); err != nil {
		h.serverError(c, err, "An unknown error occurred while sending email.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "A link to reset your password has been sent to your email."})
}

func (h *Handler) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}
	if strings.TrimSpace(req.Password) == "" || strings.TrimSpace(req.ConfirmPswd) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please, fill in all required fields."})
		return
	}

	token, _ := c.Cookie(auth.ResetCookie)

	if err := h.auth.ResetPassword(c.Request.Context(), token, req.Password, req.ConfirmPswd); err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusUnauthorized, gin.H{"message": resetValidationMessage(verr)})
		case errors.Is(err, service.ErrInvalidAuth):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authentication"})
		default:
			// keep the reset cookie so the client can retry with the same token
			h.serverError(c, err, "An unknown error occurred while updating password.")
		}
		return
	}

	auth.ClearTokenCookie(c.Writer, auth.ResetCookie)
	c.JSON(http.StatusOK, gin.H{"message": "Your password has been successfully reset."})
}

func resetValidationMessage(verr *service.ValidationError) string {
	if msg, ok := verr.Fields["password"]; ok {
		return msg
	}
	if msg, ok := verr.Fields["confirmPswd"]; ok {
		return msg
	}
	return "Invalid input."
}
