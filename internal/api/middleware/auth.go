package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

const (
	// HeaderUserName имя пользователя, проставляется внешним identity-провайдером
	HeaderUserName = "X-User-Name"
	// HeaderUserRole роль пользователя; при отсутствии считается customer
	HeaderUserRole = "X-User-Role"
)

type identityCtxKey struct{}

// Identity аутентифицированный пользователь запроса
type Identity struct {
	Username string
	Role     domain.Role
}

// Auth извлекает личность пользователя из доверенных заголовков.
// Запросы без X-User-Name отклоняются с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := r.Header.Get(HeaderUserName)
		if username == "" {
			handlers.RespondUnauthorized(w, "требуется заголовок X-User-Name")
			return
		}

		role := domain.Role(r.Header.Get(HeaderUserRole))
		if role == "" {
			role = domain.RoleCustomer
		}
		if !role.Valid() {
			handlers.RespondUnauthorized(w, "неизвестная роль в X-User-Role")
			return
		}

		ctx := context.WithValue(r.Context(), identityCtxKey{}, Identity{
			Username: username,
			Role:     role,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext возвращает личность пользователя, положенную Auth
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityCtxKey{}).(Identity)
	return id, ok
}
