package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ciberseguria/sgsi-express/internal/database"
	"github.com/ciberseguria/sgsi-express/internal/middleware"
	"github.com/ciberseguria/sgsi-express/internal/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type registerRequest struct {
	CompanyName     string `json:"company_name" validate:"required"`
	TaxID           string `json:"tax_id" validate:"required"`
	ContactEmail    string `json:"contact_email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

type loginRequest struct {
	TaxID    string `json:"tax_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type accountView struct {
	ID           string `json:"id"`
	CompanyName  string `json:"company_name"`
	TaxID        string `json:"tax_id"`
	ContactEmail string `json:"contact_email"`
}

type authResponse struct {
	Token   string      `json:"token"`
	Account accountView `json:"account"`
}

func newAccountView(a *database.Account) accountView {
	return accountView{ID: a.ID, CompanyName: a.CompanyName, TaxID: a.TaxID, ContactEmail: a.ContactEmail}
}

// Register creates a company account and logs it in right away: the
// response carries a bearer token and the cookie session is opened.
func (ac *AuthController) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "cuerpo de la solicitud no válido"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": fieldProblems(err)})
	}

	result, err := ac.auth.Register(services.RegisterRequest{
		CompanyName:     req.CompanyName,
		TaxID:           req.TaxID,
		ContactEmail:    req.ContactEmail,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return writeError(c, err)
	}
	if err := middleware.OpenSession(c, result.Account.ID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, authResponse{Token: result.Token, Account: newAccountView(result.Account)})
}

func (ac *AuthController) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "cuerpo de la solicitud no válido"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": fieldProblems(err)})
	}

	result, err := ac.auth.Authenticate(req.TaxID, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	if err := middleware.OpenSession(c, result.Account.ID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, authResponse{Token: result.Token, Account: newAccountView(result.Account)})
}

func (ac *AuthController) Logout(c echo.Context) error {
	if err := middleware.ClearSession(c); err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}
