package matching

import (
    "github.com/gorilla/mux"

    "github.com/zekkencito/CineMatch-sub000/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
    api := router.PathPrefix("/api/v1").Subrouter()
    api.Use(authMiddleware.Authenticate)

    api.HandleFunc("/users", handler.GetCandidates).Methods("GET")
    api.HandleFunc("/matches/like", handler.Like).Methods("POST")
    api.HandleFunc("/matches", handler.GetMatches).Methods("GET")
}
