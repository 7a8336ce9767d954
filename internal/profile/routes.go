package profile

import (
    "github.com/gorilla/mux"

    "github.com/zekkencito/CineMatch-sub000/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
    api := router.PathPrefix("/api/v1").Subrouter()
    api.Use(authMiddleware.Authenticate)

    api.HandleFunc("/profile", handler.GetMyProfile).Methods("GET")
    api.HandleFunc("/profile", handler.UpdateProfile).Methods("PUT")
    api.HandleFunc("/profile/location", handler.UpdateLocation).Methods("PUT")
    api.HandleFunc("/users/{id}/profile", handler.GetUserProfile).Methods("GET")
}
