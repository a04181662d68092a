package handlers

import (
	"net/http"

	"production_scheduler/internal/adapter/http/dto/request"
	"production_scheduler/internal/adapter/http/dto/response"
	"production_scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary      Customer password login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "credentials"
// @Success      200   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	tok, err := h.usecase.LoginCustomer(payload.Username, payload.Password)
	if err != nil {
		abortWith(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSessionToken(tok))
}

// ExchangeLinkToken godoc
// @Summary      Exchange a customer link token for a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.LinkTokenRequest  true  "link token"
// @Success      200   {object}  response.SessionResponse
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/token [post]
func (h *AuthHandler) ExchangeLinkToken(c *gin.Context) {
	var payload request.LinkTokenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	tok, err := h.usecase.ExchangeLinkToken(payload.Token)
	if err != nil {
		abortWith(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSessionToken(tok))
}

// AdminLogin godoc
// @Summary      Operator login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "credentials"
// @Success      200   {object}  response.SessionResponse
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/admin [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	tok, err := h.usecase.LoginAdmin(payload.Username, payload.Password)
	if err != nil {
		abortWith(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSessionToken(tok))
}
