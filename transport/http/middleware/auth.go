package middleware

import (
	"context"
	"errors"
	"net/http"

	"chefbook/config"
	"chefbook/infras/jwt"
	"chefbook/infras/otel"
	"chefbook/permissions"
	"chefbook/shared/constant"
	"chefbook/shared/failure"
	"chefbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// Auth validates bearer tokens and puts the actor id, email and role in the request context.
// Public endpoints accept anonymous callers but still resolve an identity when a token is sent.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		if skip, _ := ctx.Value(SkipAuthKey("skip")).(bool); skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		path := RoutePath(request)
		public := m.permission != nil && m.permission.FindPermissions(path, request.Method).Skip

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
			"auth.public":     public,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" && public {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		claims, err := m.claims(authHeader)
		if err != nil {
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authRoleImpl) claims(authHeader string) (*jwt.Claims, error) {
	if authHeader == "" {
		return nil, failure.Unauthorized("Missing authorization header")
	}

	tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return nil, failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateToken(tokenString)
	if err != nil {
		message := "Token validation failed"

		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			message = "Token has expired"
		case errors.Is(err, jwt.ErrInvalidToken):
			message = "Invalid token"
		}

		return nil, failure.Unauthorized(message)
	}

	if claims.UserID == "" || claims.Role == "" {
		log.Error().Str("user_id", claims.UserID).Str("role", claims.Role).Msg("JWT claims are incomplete")

		return nil, failure.Unauthorized("Invalid token claims")
	}

	return claims, nil
}

// RBAC checks if user has required role
// Requires prior authentication via Auth middleware
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if skip, _ := ctx.Value(SkipAuthKey("skip")).(bool); skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		if m.permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		permission := m.permission.FindPermissions(RoutePath(request), request.Method)
		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if !permission.Allows(userRole) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

// APIKey for internal service-to-service authentication using API key
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

		ctx = context.WithValue(ctx, SkipAuthKey("skip"), false)
		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if apiKey == "" {
			scope.SetAttribute("http.source", "client")
			scope.End()
			next.ServeHTTP(writer, request.WithContext(ctx))

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == "" || apiKey != m.cfg.App.APIKey {
			err := failure.ForbiddenError

			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, SkipAuthKey("skip"), true)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.SystemUser)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RoutePath resolves the chi route pattern the request will hit, which is what permissions are keyed on.
func RoutePath(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}
