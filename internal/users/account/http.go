// Copyright (c) 2026 Stocktells. All rights reserved.

/*
HTTP delivery layer for account self-service.

It implements the RESTful interface for users to view their profile, rotate
their password, and delete their account.

# Security

All endpoints in this package require an active authentication session provided
by the RequireAuth middleware.
*/
package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/akankshakuwar/stocktells/internal/platform/request"
	"github.com/akankshakuwar/stocktells/internal/platform/respond"
	"github.com/akankshakuwar/stocktells/internal/platform/validate"
	"github.com/akankshakuwar/stocktells/internal/users/auth"
)

// Handler implements the HTTP layer for account self-service.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with the account domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/me", handler.getMe)
	router.Put("/me/password", handler.changePassword)
	router.Delete("/me", handler.deleteMe)

	return router
}

// # Profile Endpoints

/*
GET /api/v1/me.

Description: Retrieves the profile of the authenticated user.

Response:
  - 200: Profile: Username and email
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Account deleted mid-session
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	username, err := requestutil.RequiredUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.accountService.Profile(request.Context(), username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

// # Credential Endpoints

// changePasswordRequest defines the expected JSON payload for password rotation.
type changePasswordRequest struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

/*
PUT /api/v1/me/password.

Description: Rotates the authenticated user's password after validating the
confirmation pair.

Request:
  - Body: changePasswordRequest (NewPassword, ConfirmPassword)

Response:
  - 200: Success: Password changed
  - 400: ErrInvalidJSON: Weak password or confirmation mismatch
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Account no longer exists
*/
func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	username, err := requestutil.RequiredUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input changePasswordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	v.Required(auth.FieldNewPassword, input.NewPassword).
		MinLen(auth.FieldNewPassword, input.NewPassword, auth.PasswordMinLength).
		Equals(auth.FieldConfirmPassword, input.NewPassword, input.ConfirmPassword, "Passwords do not match")

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.accountService.ChangePassword(
		request.Context(),
		username,
		input.NewPassword,
		input.ConfirmPassword,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		auth.FieldMessage: "Password changed successfully",
	})
}

// # Deletion Endpoints

/*
DELETE /api/v1/me.

Description: Permanently deletes the authenticated user's account and
terminates every active session across all devices.

Response:
  - 204: No Content: Account deleted successfully
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) deleteMe(writer http.ResponseWriter, request *http.Request) {
	username, err := requestutil.RequiredUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.DeleteAccount(request.Context(), username); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
