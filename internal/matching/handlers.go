package matching

import (
    "encoding/json"
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

// GetCandidates handles GET /api/v1/users
func (h *Handler) GetCandidates(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.GetUserIDFromContext(r.Context())
    if !ok {
        utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
        return
    }

    ranked, err := h.service.GetCandidates(r.Context(), userID)
    if err == ErrUserNotFound {
        utils.RespondWithError(w, http.StatusNotFound, "User not found")
        return
    }
    if err != nil {
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load candidates")
        return
    }

    users := make([]*CandidateResponse, len(ranked))
    for i, sc := range ranked {
        users[i] = toCandidateResponse(sc)
    }

    utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
        "success": true,
        "users":   users,
    })
}

// Like handles POST /api/v1/matches/like
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.GetUserIDFromContext(r.Context())
    if !ok {
        utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
        return
    }

    var req LikeRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
        return
    }
    if err := utils.ValidateStruct(&req); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, err.Error())
        return
    }

    result, err := h.service.ProcessSwipe(r.Context(), userID, req.ToUserID, req.Type)
    switch err {
    case nil:
    case ErrSelfInteraction:
        utils.RespondWithError(w, http.StatusBadRequest, "Cannot swipe on yourself")
        return
    case ErrInvalidSwipeKind:
        utils.RespondWithError(w, http.StatusBadRequest, "Swipe type must be 'like' or 'dislike'")
        return
    case ErrUserNotFound:
        utils.RespondWithError(w, http.StatusNotFound, "User not found")
        return
    default:
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process swipe")
        return
    }

    utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
        "success": true,
        "like":    result.Interaction,
        "matched": result.Matched,
    })
}

// GetMatches handles GET /api/v1/matches
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.GetUserIDFromContext(r.Context())
    if !ok {
        utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
        return
    }

    matches, err := h.service.GetMatches(r.Context(), userID)
    if err != nil {
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load matches")
        return
    }
    if matches == nil {
        matches = []*Match{}
    }

    utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
        "success": true,
        "matches": matches,
    })
}
