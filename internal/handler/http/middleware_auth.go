package http

import (
	"context"
	"net/http"

	"github.com/mnpat/go-portfolio/internal/logger"
	"github.com/mnpat/go-portfolio/internal/utils"
	"github.com/mnpat/go-portfolio/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via [service.AuthService.ParseToken], and — on
// success — stores the authenticated user's ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value does not follow the exact "Bearer <token>" format
//     ([ErrInvalidAuthorizationHeader]). The scheme is matched
//     case-sensitively; "bearer" or "Token" prefixes are rejected.
//   - The token is expired, malformed, carries a wrong issuer, or fails
//     signature verification ([service.ErrTokenIsExpiredOrInvalid]).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: "authorization required"}, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(ErrInvalidAuthorizationHeader).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: "authorization required"}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("token rejected")
			utils.WriteJSON(w, models.MessageResponse{Message: "token is expired or invalid"}, http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's ID in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin is an HTTP middleware that restricts a route to admin users.
// It must run after [Handler.auth]: the user id is taken from the request
// context and the role is loaded fresh from the database, so a role change
// takes effect on the next request rather than at next token issuance.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		userID, ok := utils.GetUserIDFromContext(ctx)
		if !ok {
			log.Error().Msg("admin check before authentication")
			utils.WriteJSON(w, models.MessageResponse{Message: "authorization required"}, http.StatusUnauthorized)
			return
		}

		user, err := h.services.AuthService.GetUser(ctx, userID)
		if err != nil {
			log.Err(err).Int64("id", userID).Msg("loading user for admin check failed")
			utils.WriteJSON(w, models.MessageResponse{Message: "authorization required"}, http.StatusUnauthorized)
			return
		}

		if !user.IsAdmin() {
			log.Warn().Int64("id", userID).Msg("admin access denied")
			writeError(w, r, ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
