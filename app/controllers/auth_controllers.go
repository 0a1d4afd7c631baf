package controllers

import (
	"errors"
	"net/http"

	"github.com/ctrlz-wear/ctrlz-api/app/services"
	"github.com/ctrlz-wear/ctrlz-api/pkg/bind"
	"github.com/ctrlz-wear/ctrlz-api/pkg/middleware"
	"github.com/ctrlz-wear/ctrlz-api/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Login handles POST /api/auth/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result, err := c.service.Login(body.Email, body.Password)
	if errors.Is(err, services.ErrCredentialsRequired) {
		response.Error(w, http.StatusBadRequest, "Email and password required")
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Me handles GET /api/auth/me, guarded by the demo-token middleware.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	response.JSON(w, http.StatusOK, services.UserView{Email: claims.Email, Name: claims.Name})
}
