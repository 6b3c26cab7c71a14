package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mahmudhasan/clothing-shop/constant"
	"github.com/mahmudhasan/clothing-shop/model"
	"github.com/mahmudhasan/clothing-shop/utils/errors"
	validatorx "github.com/mahmudhasan/clothing-shop/utils/validator"
)

// Login handler
// @Summary Admin login
// @Description Login with the admin credential and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 422 {object} transport.messageResponse
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Admin logout
// @Description Invalidate the session behind the presented token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.LogoutResponse
// @Failure 401 {object} transport.messageResponse
// @Router /logout [get]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.AuthApp.Logout(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
