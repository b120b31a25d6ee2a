package api

import (
	"net/http"

	"github.com/nmarkovic/magacin/internal/model"
	"github.com/nmarkovic/magacin/internal/warehouse"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(store *warehouse.Store, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Store: store, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{Store: store}
	reservationsHandler := &ReservationsHandler{Store: store}
	pickupsHandler := &PickupsHandler{Store: store}
	usersHandler := &UsersHandler{Store: store}
	projectsHandler := &ProjectsHandler{Store: store}
	importHandler := &ImportHandler{Store: store}

	authMW := AuthMiddleware(jwtSecret)
	requireAdmin := RequireRole(model.RoleAdmin)
	requireReservation := RequireRole(model.RoleReservation)
	requirePickup := RequireRole(model.RolePickup)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Items: read (all roles), registry writes (admin).
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("GET /api/items/low-stock", authMW(http.HandlerFunc(itemsHandler.LowStock)))
	mux.Handle("POST /api/items", authMW(requireAdmin(http.HandlerFunc(itemsHandler.Create))))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("PUT /api/items/{id}", authMW(requireAdmin(http.HandlerFunc(itemsHandler.Update))))
	mux.Handle("DELETE /api/items/{id}", authMW(requireAdmin(http.HandlerFunc(itemsHandler.Delete))))
	mux.Handle("GET /api/items/{id}/deliveries", authMW(http.HandlerFunc(itemsHandler.GetDeliveries)))
	mux.Handle("GET /api/deliveries", authMW(http.HandlerFunc(itemsHandler.ListDeliveries)))

	// Reservations: read (all roles), write (reservation dashboard).
	mux.Handle("GET /api/reservations", authMW(http.HandlerFunc(reservationsHandler.List)))
	mux.Handle("POST /api/reservations", authMW(requireReservation(http.HandlerFunc(reservationsHandler.Create))))

	// Pickups: read (all roles), write (pickup dashboard).
	mux.Handle("GET /api/pickups", authMW(http.HandlerFunc(pickupsHandler.List)))
	mux.Handle("POST /api/pickups", authMW(requirePickup(http.HandlerFunc(pickupsHandler.Create))))

	// Users (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("POST /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("PUT /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Update))))
	mux.Handle("DELETE /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Delete))))

	// Projects: read (all roles), write (admin).
	mux.Handle("GET /api/projects", authMW(http.HandlerFunc(projectsHandler.List)))
	mux.Handle("POST /api/projects", authMW(requireAdmin(http.HandlerFunc(projectsHandler.Create))))
	mux.Handle("PUT /api/projects/{id}", authMW(requireAdmin(http.HandlerFunc(projectsHandler.Update))))
	mux.Handle("DELETE /api/projects/{id}", authMW(requireAdmin(http.HandlerFunc(projectsHandler.Delete))))

	// Maintenance (admin only).
	mux.Handle("POST /api/import", authMW(requireAdmin(http.HandlerFunc(importHandler.Import))))
	mux.Handle("POST /api/refresh", authMW(requireAdmin(http.HandlerFunc(itemsHandler.Refresh))))

	return LoggingMiddleware(mux)
}
