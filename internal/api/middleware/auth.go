package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ucsb-cs156/campus-records-api/internal/api/shared"
	"github.com/ucsb-cs156/campus-records-api/internal/domain"
	"github.com/ucsb-cs156/campus-records-api/internal/platform/logger"
	"github.com/ucsb-cs156/campus-records-api/internal/service/auth"
)

// AccessDeniedMessage is the body of every 403 response.
const AccessDeniedMessage = "Access denied"

// AuthMiddleware resolves the caller of each request from its bearer token.
type AuthMiddleware struct {
	jwtService auth.JWTService
	resolver   *auth.RoleResolver
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, resolver *auth.RoleResolver) *AuthMiddleware {
	if resolver == nil {
		resolver = auth.NewRoleResolver(nil)
	}
	return &AuthMiddleware{
		jwtService: jwtService,
		resolver:   resolver,
	}
}

// Authenticate stores the caller's shared.Principal in the request context.
// It never rejects a request: a missing, malformed, expired or otherwise
// invalid token yields the anonymous principal, and RequireRole decides
// whether that is enough.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		principal := shared.Anonymous

		token, ok := bearerToken(r)
		switch {
		case !ok:
			if r.Header.Get("Authorization") != "" {
				log.Debug("ignoring malformed authorization header")
			}
		default:
			claims, err := m.jwtService.ValidateToken(r.Context(), token)
			if err != nil {
				log.Debug("treating caller as anonymous", "reason", err.Error())
				break
			}
			principal = shared.Principal{
				Email: claims.Email,
				Role:  m.resolver.Resolve(claims),
			}
			log = log.With(slog.String("role", principal.Role.String()))
		}

		ctx := shared.WithPrincipal(r.Context(), principal)
		ctx = logger.WithLogger(ctx, log)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects requests whose principal holds a role below min with
// 403 before the wrapped handler runs.
func RequireRole(min domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := shared.GetPrincipal(r.Context())
			if !principal.Role.AtLeast(min) {
				err := fmt.Errorf("%w: role %s is below required role %s",
					domain.ErrUnauthorized, principal.Role, min)
				shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, AccessDeniedMessage, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
