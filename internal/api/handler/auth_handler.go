package handler

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/core/ports"
	"github.com/modeboutique/storefront/internal/core/service"
)

type AuthHandler struct {
	accounts ports.AccountService
	sessions ports.SessionIssuer
	gate     ports.CredentialDisclosure
}

func NewAuthHandler(accounts ports.AccountService, sessions ports.SessionIssuer, gate ports.CredentialDisclosure) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions, gate: gate}
}

// RegisterClient creates a buyer account and opens a session for it.
//
// @Summary      Register a client
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerClientRequest  true  "Client registration details"
// @Success      201   {object}  clientSessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/clients/register [post]
func (h *AuthHandler) RegisterClient(c echo.Context) error {
	var req registerClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, err := h.accounts.RegisterClient(c.Request().Context(), domain.ClientInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}
	return h.clientSession(c, http.StatusCreated, client)
}

// LoginClient authenticates a buyer by phone and password.
//
// @Summary      Client login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginClientRequest  true  "Phone and password"
// @Success      200   {object}  clientSessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/clients/login [post]
func (h *AuthHandler) LoginClient(c echo.Context) error {
	var req loginClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, err := h.accounts.LoginClient(c.Request().Context(), req.Phone, req.Password)
	if err != nil {
		return err
	}
	return h.clientSession(c, http.StatusOK, client)
}

// RecoverPassword returns the stored password of a buyer. Deployments that
// hash passwords answer 501.
//
// @Summary      Recover a client password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      recoverPasswordRequest  true  "Registered phone"
// @Success      200   {object}  recoverPasswordResponse
// @Failure      404   {object}  errorResponse
// @Failure      501   {object}  errorResponse
// @Router       /auth/clients/recover [post]
func (h *AuthHandler) RecoverPassword(c echo.Context) error {
	var req recoverPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	password, err := h.accounts.RecoverPassword(c.Request().Context(), req.Phone)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recoverPasswordResponse{Password: password})
}

// LoginAdmin authenticates the administrator. Every call also counts as one
// press toward credential disclosure for the calling address: the press that
// completes the sequence answers with the credentials, whatever it carries.
//
// @Summary      Administrator login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  false  "Username and password"
// @Success      200   {object}  adminLoginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/admin/login [post]
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	caller := c.RealIP()
	revealed, disclosed := h.gate.Click(caller)

	if disclosed {
		return c.JSON(http.StatusOK, adminLoginResponse{
			Credentials:    revealed,
			DisplaySeconds: int(service.DisclosureDisplay.Seconds()),
		})
	}

	if req.Username != "" && h.accounts.LoginAdmin(c.Request().Context(), req.Username, req.Password) {
		h.gate.Reset(caller)
		token, err := h.sessions.ForAdmin(req.Username)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, adminLoginResponse{Token: token})
	}
	return domain.ErrInvalidCredentials
}

// DisclosedCredentials reads back the credentials disclosed to the calling
// address while they are still on display.
//
// @Summary      Disclosed administrator credentials
// @Tags         auth
// @Produce      json
// @Success      200   {object}  adminLoginResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/admin/login [get]
func (h *AuthHandler) DisclosedCredentials(c echo.Context) error {
	revealed, remaining, ok := h.gate.Revealed(c.RealIP())
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "nothing disclosed")
	}
	return c.JSON(http.StatusOK, adminLoginResponse{
		Credentials:    revealed,
		DisplaySeconds: int(math.Ceil(remaining.Seconds())),
	})
}

func (h *AuthHandler) clientSession(c echo.Context, status int, client *domain.Client) error {
	token, err := h.sessions.ForClient(client)
	if err != nil {
		return err
	}
	return c.JSON(status, clientSessionResponse{Token: token, Client: toClientResponse(client)})
}
