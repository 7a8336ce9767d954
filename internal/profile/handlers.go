package profile

import (
    "encoding/json"
    "errors"
    "net/http"
    "strconv"

    "github.com/gorilla/mux"

    "github.com/zekkencito/CineMatch-sub000/internal/auth"
    "github.com/zekkencito/CineMatch-sub000/internal/common/utils"
)

type Handler struct {
    service Service
}

func NewHandler(service Service) *Handler {
    return &Handler{service: service}
}

func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.GetUserIDFromContext(r.Context())
    if !ok {
        utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
        return
    }

    profile, err := h.service.GetProfile(r.Context(), userID)
    if err != nil {
        if errors.Is(err, ErrProfileNotFound) {
            utils.RespondWithError(w, http.StatusNotFound, err.Error())
            return
        }
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get profile")
        return
    }

    utils.RespondWithData(w, http.StatusOK, profile)
}

func (h *Handler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
    vars := mux.Vars(r)
    targetID, err := strconv.ParseInt(vars["id"], 10, 64)
    if err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
        return
    }

    profile, err := h.service.GetProfile(r.Context(), targetID)
    if err != nil {
        if errors.Is(err, ErrProfileNotFound) {
            utils.RespondWithError(w, http.StatusNotFound, err.Error())
            return
        }
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get profile")
        return
    }

    utils.RespondWithData(w, http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.GetUserIDFromContext(r.Context())
    if !ok {
        utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
        return
    }

    var req UpdateProfileRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
        return
    }

    profile, err := h.service.UpdateProfile(r.Context(), userID, &req)
    if err != nil {
        if errors.Is(err, ErrProfileNotFound) {
            utils.RespondWithError(w, http.StatusNotFound, err.Error())
            return
        }
        utils.RespondWithError(w, http.StatusBadRequest, err.Error())
        return
    }

    utils.RespondWithData(w, http.StatusOK, profile)
}

func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.GetUserIDFromContext(r.Context())
    if !ok {
        utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
        return
    }

    var req UpdateLocationRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
        return
    }

    loc, err := h.service.UpdateLocation(r.Context(), userID, &req)
    if err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, err.Error())
        return
    }

    utils.RespondWithData(w, http.StatusOK, loc)
}
