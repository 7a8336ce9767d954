package auth

import (
    "encoding/json"
    "errors"
    "net/http"

    "github.com/gorilla/mux"

    "github.com/zekkencito/CineMatch-sub000/internal/common/utils"
)

type Handler struct {
    service Service
}

func NewHandler(service Service) *Handler {
    return &Handler{service: service}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
    var req RegisterRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
        return
    }

    resp, err := h.service.Register(r.Context(), &req)
    if err != nil {
        if errors.Is(err, ErrEmailAlreadyExists) {
            utils.RespondWithError(w, http.StatusConflict, err.Error())
            return
        }
        utils.RespondWithError(w, http.StatusBadRequest, err.Error())
        return
    }

    utils.RespondWithData(w, http.StatusCreated, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
    var req LoginRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
        return
    }

    resp, err := h.service.Login(r.Context(), &req)
    if err != nil {
        if errors.Is(err, ErrInvalidCredentials) {
            utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
            return
        }
        utils.RespondWithError(w, http.StatusBadRequest, err.Error())
        return
    }

    utils.RespondWithData(w, http.StatusOK, resp)
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
    var req RefreshRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
        return
    }

    resp, err := h.service.RefreshToken(r.Context(), req.RefreshToken)
    if err != nil {
        utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
        return
    }

    utils.RespondWithData(w, http.StatusOK, resp)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
    var req RefreshRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
        return
    }

    if err := h.service.Logout(r.Context(), req.RefreshToken); err != nil {
        utils.RespondWithError(w, http.StatusUnauthorized, "Invalid refresh token")
        return
    }

    utils.MessageResponse(w, "Logged out", http.StatusOK)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
    userID, ok := GetUserIDFromContext(r.Context())
    if !ok {
        utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
        return
    }

    user, err := h.service.GetUserByID(r.Context(), userID)
    if err != nil {
        utils.RespondWithError(w, http.StatusNotFound, "User not found")
        return
    }

    utils.RespondWithData(w, http.StatusOK, user)
}

// RegisterRoutes wires the public auth endpoints and the protected /me route
func (h *Handler) RegisterRoutes(router *mux.Router, authMiddleware *Middleware) {
    api := router.PathPrefix("/api/auth").Subrouter()

    api.HandleFunc("/register", h.Register).Methods("POST")
    api.HandleFunc("/login", h.Login).Methods("POST")
    api.HandleFunc("/refresh", h.Refresh).Methods("POST")
    api.HandleFunc("/logout", h.Logout).Methods("POST")

    protected := router.PathPrefix("/api/v1").Subrouter()
    protected.Use(authMiddleware.Authenticate)
    protected.HandleFunc("/me", h.Me).Methods("GET")
}
