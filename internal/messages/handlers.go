package messages

import (
    "encoding/json"
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

// SendMessage handles POST /api/v1/messages
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.GetUserIDFromContext(r.Context())
    if !ok {
        utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
        return
    }

    var req SendMessageRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
        return
    }
    if err := utils.ValidateStruct(&req); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, err.Error())
        return
    }

    message, err := h.service.SendMessage(r.Context(), userID, req.ToUserID, req.Content)
    switch err {
    case nil:
    case ErrNotMatched:
        utils.RespondWithError(w, http.StatusForbidden, "You can only message users you matched with")
        return
    case ErrMessageTooLong:
        utils.RespondWithError(w, http.StatusBadRequest, "Message content too long")
        return
    default:
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send message")
        return
    }

    utils.RespondWithData(w, http.StatusCreated, message)
}

// GetConversation handles GET /api/v1/messages/{userID}
func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.GetUserIDFromContext(r.Context())
    if !ok {
        utils.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
        return
    }

    otherID, err := strconv.ParseInt(mux.Vars(r)["userID"], 10, 64)
    if err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
        return
    }

    msgs, err := h.service.GetConversation(r.Context(), userID, otherID)
    if err == ErrNotMatched {
        utils.RespondWithError(w, http.StatusForbidden, "You can only view conversations with matched users")
        return
    }
    if err != nil {
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load conversation")
        return
    }
    if msgs == nil {
        msgs = []*Message{}
    }

    utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
        "success":  true,
        "messages": msgs,
    })
}
