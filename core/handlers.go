package core

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handlers interface {
	PostEvents(gctx *gin.Context)
	GetEvents(gctx *gin.Context)
	GetEvent(gctx *gin.Context)
	GetArchivedEvent(gctx *gin.Context)
	DeleteEvent(gctx *gin.Context)
	PostResponse(gctx *gin.Context)
	GetTemplates(gctx *gin.Context)
	GetContacts(gctx *gin.Context)
}

type handlers struct {
	store      *EventStore
	directory  *Directory
	repository Repository // nil when the archive mirror is disabled
}

func NewHandlers(store *EventStore, directory *Directory, repository Repository) Handlers {
	return &handlers{store: store, directory: directory, repository: repository}
}

// CreatedEvents is the creation response: the materialized events plus
// the invite count the success notification reports.
type CreatedEvents struct {
	Events       []CalendarEvent `json:"events"`
	InvitedCount int             `json:"invited_count"`
}

func (h *handlers) PostEvents(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var draft EventDraft

	// Accepts a JSON draft: template id, detail fields, invitees and
	// the recurrence config.
	err := gctx.ShouldBindJSON(&draft)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to bind JSON")
		gctx.AbortWithStatusJSON(http.StatusBadRequest, NewError("failed to bind JSON", err))

		return
	}

	// A selected template seeds the draft; user edits win.
	if draft.TemplateId != "" {
		tpl, err := FindTemplate(draft.TemplateId)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("template_id", draft.TemplateId).Msg("template lookup failed")
			gctx.AbortWithStatusJSON(http.StatusBadRequest, NewError("template lookup failed", err))

			return
		}

		draft = ApplyTemplate(draft, tpl)
	}

	err = ValidateDraft(draft)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("draft validation failed")
		gctx.AbortWithStatusJSON(http.StatusBadRequest, NewError("draft validation failed", err))

		return
	}

	inputs := BuildEventInputs(draft, h.directory)

	events := make([]CalendarEvent, 0, len(inputs))
	for _, input := range inputs {
		events = append(events, MaterializeEvent(input))
	}

	h.store.AddEvents(events)

	log.Ctx(ctx).Info().
		Int("events", len(events)).
		Int("invited", InvitedCount(inputs)).
		Str("type", string(draft.Type)).
		Msg("events created")

	gctx.JSON(http.StatusCreated, CreatedEvents{Events: events, InvitedCount: InvitedCount(inputs)})
}

func (h *handlers) GetEvents(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, h.store.Events())
}

func (h *handlers) GetEvent(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	// Checks that in GET requests there is no body
	body, err := io.ReadAll(gctx.Request.Body)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to read request body")
		gctx.AbortWithStatusJSON(http.StatusBadRequest, NewError("failed to read request body", err))

		return
	}

	if len(body) != 0 {
		log.Ctx(ctx).Error().Msg("request body is not empty")
		gctx.AbortWithStatusJSON(http.StatusBadRequest, NewError("request body is not empty"))

		return
	}

	id := gctx.Param("id")
	if len(id) == 0 {
		log.Ctx(ctx).Error().Msg("parameter 'id' is required")
		gctx.AbortWithStatusJSON(http.StatusBadRequest, NewError("parameter 'id' is required"))

		return
	}

	event, ok := h.store.Event(id)
	if !ok {
		log.Ctx(ctx).Info().Str("event_id", id).Msg("event not found")
		gctx.AbortWithStatusJSON(http.StatusNotFound, NewError("event not found", ErrEventNotFound))

		return
	}

	gctx.JSON(http.StatusOK, event)
}

// GetArchivedEvent reads an event back from the relational archive,
// which retains events independently of the in-memory store.
func (h *handlers) GetArchivedEvent(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id := gctx.Param("id")
	if len(id) == 0 {
		log.Ctx(ctx).Error().Msg("parameter 'id' is required")
		gctx.AbortWithStatusJSON(http.StatusBadRequest, NewError("parameter 'id' is required"))

		return
	}

	if h.repository == nil {
		log.Ctx(ctx).Info().Str("event_id", id).Msg("archive is disabled")
		gctx.AbortWithStatusJSON(http.StatusNotFound, NewError("event not found", ErrEventNotFound))

		return
	}

	event, err := h.repository.GetEventById(ctx, id)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			log.Ctx(ctx).Info().Str("event_id", id).Msg("event not found")
			gctx.AbortWithStatusJSON(http.StatusNotFound, NewError("event not found", err))

			return
		}

		log.Ctx(ctx).Error().Err(err).Msg("loading archived event failed")
		gctx.AbortWithStatusJSON(http.StatusBadRequest, NewError("loading archived event failed", err))

		return
	}

	gctx.JSON(http.StatusOK, event)
}

func (h *handlers) DeleteEvent(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id := gctx.Param("id")
	if len(id) == 0 {
		log.Ctx(ctx).Error().Msg("parameter 'id' is required")
		gctx.AbortWithStatusJSON(http.StatusBadRequest, NewError("parameter 'id' is required"))

		return
	}

	// Removal of an absent id is a no-op, so deletion is idempotent.
	h.store.DeleteEvent(id)

	gctx.Status(http.StatusNoContent)
}

type invitationResponse struct {
	Status AttendeeStatus `json:"status"`
}

func (h *handlers) PostResponse(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id := gctx.Param("id")
	if len(id) == 0 {
		log.Ctx(ctx).Error().Msg("parameter 'id' is required")
		gctx.AbortWithStatusJSON(http.StatusBadRequest, NewError("parameter 'id' is required"))

		return
	}

	var response invitationResponse

	err := gctx.ShouldBindJSON(&response)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to bind JSON")
		gctx.AbortWithStatusJSON(http.StatusBadRequest, NewError("failed to bind JSON", err))

		return
	}

	if response.Status != AttendeeStatusAccepted && response.Status != AttendeeStatusDeclined {
		log.Ctx(ctx).Error().Str("status", string(response.Status)).Msg("invalid invitation response")
		gctx.AbortWithStatusJSON(http.StatusBadRequest, NewError("invalid invitation response"))

		return
	}

	event, ok := h.store.RespondToInvitation(id, response.Status)
	if !ok {
		log.Ctx(ctx).Info().Str("event_id", id).Msg("event not found")
		gctx.AbortWithStatusJSON(http.StatusNotFound, NewError("event not found", ErrEventNotFound))

		return
	}

	gctx.JSON(http.StatusOK, event)
}

func (h *handlers) GetTemplates(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, Templates())
}

func (h *handlers) GetContacts(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, h.directory.Contacts())
}
