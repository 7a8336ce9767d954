package messages

import (
    "github.com/gorilla/mux"

    "github.com/zekkencito/CineMatch-sub000/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
    api := router.PathPrefix("/api/v1/messages").Subrouter()
    api.Use(authMiddleware.Authenticate)

    api.HandleFunc("", handler.SendMessage).Methods("POST")
    api.HandleFunc("/{userID:[0-9]+}", handler.GetConversation).Methods("GET")
}
