package api

import (
	"net/http"
	"regexp"

	service "github.com/okian/skycard/internal/app"
	"github.com/okian/skycard/pkg/logger"
)

// usernamePattern accepts 1 to 16 ASCII word characters.
var usernamePattern = regexp.MustCompile(`^\w{1,16}$`)

// Messages returned to clients. Details stay in the server log.
const (
	msgBadRequest = "Bad Request"
	msgIdentity   = "Could not fetch player"
	msgProfile    = "Could not fetch player's profile"
	msgWeight     = "Could not fetch player's weight"
	msgAvatar     = "Could not fetch player's avatar"
	msgInternal   = "Internal Server Error"
)

// CardHandler serves stat cards.
type CardHandler struct {
	builder        CardBuilder
	forumUserAgent string
	logger         logger.Logger
}

// NewCardHandler creates a new card handler.
func NewCardHandler(builder CardBuilder, forumUserAgent string, l logger.Logger) *CardHandler {
	return &CardHandler{builder: builder, forumUserAgent: forumUserAgent, logger: l}
}

// HandleCard handles GET /{name} requests.
func (h *CardHandler) HandleCard(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !ValidUsername(name) {
		http.Error(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	card, err := h.builder.Card(r.Context(), name)
	if err != nil {
		status, msg := failureResponse(err)
		h.logger.Error(r.Context(), "could not build card",
			logger.String("request_id", RequestID(r.Context())),
			logger.String("username", name),
			logger.Int("status", status),
			logger.Error(err),
		)
		http.Error(w, msg, status)
		return
	}

	h.writeCard(w, r, card)
}

// ValidUsername reports whether name may be looked up.
func ValidUsername(name string) bool {
	return usernamePattern.MatchString(name)
}

// failureResponse maps a pipeline failure to a status and a short message.
func failureResponse(err error) (int, string) {
	switch service.Stage(err) {
	case service.StageIdentity:
		return http.StatusBadRequest, msgIdentity
	case service.StageProfile:
		return http.StatusInternalServerError, msgProfile
	case service.StageWeight:
		return http.StatusInternalServerError, msgWeight
	case service.StageAvatar:
		return http.StatusInternalServerError, msgAvatar
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
