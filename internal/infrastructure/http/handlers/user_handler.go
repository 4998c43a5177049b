package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/account"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/domain"
	domerrors "github.com/Chetan-Warad-CSYE6225/webapp/internal/domain/errors"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/infrastructure/http/middleware"
)

// UserHandler handles /v1/user and /v1/user/self.
type UserHandler struct {
	create   *account.CreateUser
	update   *account.UpdateUser
	get      *account.GetUser
	verify   *account.IssueVerification
	validate *validator.Validate
	log      zerolog.Logger
}

func NewUserHandler(create *account.CreateUser, update *account.UpdateUser, get *account.GetUser, verify *account.IssueVerification, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		create:   create,
		update:   update,
		get:      get,
		verify:   verify,
		validate: validator.New(),
		log:      log,
	}
}

// userResponse is the outward representation. The password never appears.
type userResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	AccountCreated time.Time `json:"account_created"`
	AccountUpdated time.Time `json:"account_updated"`
	IsVerified     bool      `json:"is_verified"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:             u.ID.String(),
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		AccountCreated: u.AccountCreated,
		AccountUpdated: u.AccountUpdated,
		IsVerified:     u.IsVerified,
	}
}

// Create handles POST /v1/user.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
		Email     string `json:"email" validate:"required,email,max=254"`
		Password  string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeValidation, "invalid request body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeValidation, "missing or invalid required field")
		return
	}
	user, err := h.create.Execute(r.Context(), account.CreateUserInput{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
	})
	if err != nil {
		middleware.RecordAccountEvent("create", false)
		switch {
		case errors.Is(err, domerrors.ErrEmailExists):
			writeErr(w, http.StatusBadRequest, ErrCodeEmailExists, err.Error())
		case errors.Is(err, domerrors.ErrValidation):
			writeErr(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
		default:
			h.log.Error().Err(err).Msg("create user failed")
			writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
		}
		return
	}
	middleware.RecordAccountEvent("create", true)
	// The user row is committed; a failure from here on is a partial
	// failure and is surfaced as such, not rolled back.
	if err := h.verify.Execute(r.Context(), user.Email); err != nil {
		h.log.Error().Err(err).Str("email", user.Email).Msg("verification notify failed after commit")
		if errors.Is(err, domerrors.ErrNotificationFailed) {
			writeErr(w, http.StatusInternalServerError, ErrCodeNotifyFailed, "user created but verification notification failed")
		} else {
			writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "user created but verification token could not be issued")
		}
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

// Get handles GET /v1/user/self.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	authed := middleware.UserFromContext(r.Context())
	if authed == nil {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "unauthorized")
		return
	}
	user, err := h.get.Execute(r.Context(), authed.ID)
	if err != nil {
		if errors.Is(err, domerrors.ErrUserNotFound) {
			writeErr(w, http.StatusNotFound, ErrCodeNotFound, "user not found")
			return
		}
		h.log.Error().Err(err).Msg("get user failed")
		writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Update handles PUT /v1/user/self.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	authed := middleware.UserFromContext(r.Context())
	if authed == nil {
		writeErr(w, http.StatusUnauthorized, ErrCodeUnauthorized, "unauthorized")
		return
	}
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeValidation, "invalid request body")
		return
	}
	input, err := decodeUpdateInput(raw)
	if err != nil {
		var forbidden *domerrors.ForbiddenFieldsError
		if errors.As(err, &forbidden) {
			writeErr(w, http.StatusBadRequest, ErrCodeForbiddenField, forbidden.Error())
			return
		}
		writeErr(w, http.StatusBadRequest, ErrCodeValidation, "invalid request body")
		return
	}
	if _, err := h.update.Execute(r.Context(), authed.ID, input); err != nil {
		middleware.RecordAccountEvent("update", false)
		switch {
		case errors.Is(err, domerrors.ErrValidation):
			writeErr(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
		case errors.Is(err, domerrors.ErrUserNotFound):
			writeErr(w, http.StatusNotFound, ErrCodeNotFound, "user not found")
		default:
			h.log.Error().Err(err).Msg("update user failed")
			writeErr(w, http.StatusInternalServerError, ErrCodeInternal, "internal error")
		}
		return
	}
	middleware.RecordAccountEvent("update", true)
	w.WriteHeader(http.StatusNoContent)
}
