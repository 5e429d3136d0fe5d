package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/phrazzld/demo-api/internal/api/shared"
	"github.com/phrazzld/demo-api/internal/domain"
	"github.com/phrazzld/demo-api/internal/platform/logger"
	"github.com/phrazzld/demo-api/internal/store"
)

const authHandlerComponent = "auth_handler"

// tokenPrefix precedes the user ID in the placeholder login token.
const tokenPrefix = "dummy-token-"

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userStore store.UserStore, logger *slog.Logger) *AuthHandler {
	if userStore == nil {
		// ALLOW-PANIC: constructor wiring error
		panic("userStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userStore: userStore,
		logger:    logger,
	}
}

// Register handles the /auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, authHandlerComponent)

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	user := &domain.User{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
	}
	if err := user.Validate(); err != nil {
		HandleError(w, r, err)
		return
	}

	exists, err := h.userStore.ExistsByUsername(r.Context(), user.Username)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if exists {
		log.Debug("registration rejected, username taken", slog.String("username", user.Username))
		shared.RespondWithMessage(w, r, http.StatusConflict, MessageUsernameExists)
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		// lost a race against a concurrent registration
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithMessage(w, r, http.StatusConflict, MessageUsernameExists)
			return
		}
		HandleError(w, r, err)
		return
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Message:  MessageUserRegistered,
	})
}

// Login handles the /auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, authHandlerComponent)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleError(w, r, err)
		return
	}

	if req.Username == nil || req.Password == nil {
		shared.RespondWithMessage(w, r, http.StatusUnauthorized, MessageInvalidCredential)
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), *req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithMessage(w, r, http.StatusUnauthorized, MessageInvalidCredential)
			return
		}
		HandleError(w, r, err)
		return
	}

	if !user.PasswordMatches(*req.Password) {
		log.Debug("login rejected, password mismatch", slog.Int64("user_id", user.ID))
		shared.RespondWithMessage(w, r, http.StatusUnauthorized, MessageInvalidCredential)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Message:  MessageLoginSuccessful,
		Token:    tokenPrefix + strconv.FormatInt(user.ID, 10),
		Username: user.Username,
		FullName: user.FullName,
	})
}
