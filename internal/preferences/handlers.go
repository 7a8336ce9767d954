package preferences

import (
    "encoding/json"
    "errors"
    "net/http"

    "github.com/zekkencito/CineMatch-sub000/internal/auth"
    "github.com/zekkencito/CineMatch-sub000/internal/common/utils"
)

type Handler struct {
    service Service
}

func NewHandler(service Service) *Handler {
    return &Handler{service: service}
}

func (h *Handler) GetGenres(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.GetUserIDFromContext(r.Context())
    if !ok {
        utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
        return
    }

    genres, err := h.service.GetFavoriteGenres(r.Context(), userID)
    if err != nil {
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get favorite genres")
        return
    }

    utils.RespondWithData(w, http.StatusOK, genres)
}

func (h *Handler) SyncGenres(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.GetUserIDFromContext(r.Context())
    if !ok {
        utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
        return
    }

    var req SyncGenresRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
        return
    }

    genres, err := h.service.SyncFavoriteGenres(r.Context(), userID, &req)
    if err != nil {
        h.respondSyncError(w, err)
        return
    }

    utils.RespondWithData(w, http.StatusOK, genres)
}

func (h *Handler) GetDirectors(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.GetUserIDFromContext(r.Context())
    if !ok {
        utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
        return
    }

    directors, err := h.service.GetFavoriteDirectors(r.Context(), userID)
    if err != nil {
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get favorite directors")
        return
    }

    utils.RespondWithData(w, http.StatusOK, directors)
}

func (h *Handler) SyncDirectors(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.GetUserIDFromContext(r.Context())
    if !ok {
        utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
        return
    }

    var req SyncDirectorsRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
        return
    }

    directors, err := h.service.SyncFavoriteDirectors(r.Context(), userID, &req)
    if err != nil {
        h.respondSyncError(w, err)
        return
    }

    utils.RespondWithData(w, http.StatusOK, directors)
}

func (h *Handler) GetMovies(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.GetUserIDFromContext(r.Context())
    if !ok {
        utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
        return
    }

    movies, err := h.service.GetWatchedMovies(r.Context(), userID)
    if err != nil {
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get watched movies")
        return
    }

    utils.RespondWithData(w, http.StatusOK, movies)
}

func (h *Handler) SyncMovies(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.GetUserIDFromContext(r.Context())
    if !ok {
        utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
        return
    }

    var req SyncMoviesRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
        return
    }

    movies, err := h.service.SyncWatchedMovies(r.Context(), userID, &req)
    if err != nil {
        h.respondSyncError(w, err)
        return
    }

    utils.RespondWithData(w, http.StatusOK, movies)
}

// respondSyncError maps sync failures to client errors; replace operations
// only fail server-side on storage errors
func (h *Handler) respondSyncError(w http.ResponseWriter, err error) {
    if errors.Is(err, ErrTooManyItems) {
        utils.RespondWithError(w, http.StatusRequestEntityTooLarge, err.Error())
        return
    }
    utils.RespondWithError(w, http.StatusBadRequest, err.Error())
}
