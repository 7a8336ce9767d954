package preferences

import (
    "github.com/gorilla/mux"

    "github.com/zekkencito/CineMatch-sub000/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
    api := router.PathPrefix("/api/v1/preferences").Subrouter()
    api.Use(authMiddleware.Authenticate)

    api.HandleFunc("/genres", handler.GetGenres).Methods("GET")
    api.HandleFunc("/genres", handler.SyncGenres).Methods("POST")
    api.HandleFunc("/directors", handler.GetDirectors).Methods("GET")
    api.HandleFunc("/directors", handler.SyncDirectors).Methods("POST")
    api.HandleFunc("/movies", handler.GetMovies).Methods("GET")
    api.HandleFunc("/movies", handler.SyncMovies).Methods("POST")
}
