package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/hydra-paging/internal/hydra"
	"github.com/maxviazov/hydra-paging/internal/model"
	"github.com/maxviazov/hydra-paging/internal/pageurl"
	"github.com/maxviazov/hydra-paging/internal/paging"
	"github.com/maxviazov/hydra-paging/internal/service"
	"github.com/maxviazov/hydra-paging/pkg/response"
)

type EventHandler struct {
	svc   service.EventService
	links LinkSettings
}

func NewEventHandler(svc service.EventService, links LinkSettings) *EventHandler {
	if links.PageParam == "" {
		links.PageParam = pageurl.DefaultParam
	}
	if links.ItemsPerPageParam == "" {
		links.ItemsPerPageParam = "itemsPerPage"
	}
	return &EventHandler{svc: svc, links: links}
}

func (h *EventHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/events")
	{
		g.POST("", h.create)
		g.GET("", h.list)
		g.GET("/:id", h.getByID)
	}
}

// eventResource is an Event as a collection member, addressable through @id.
type eventResource struct {
	ID   string `json:"@id"`
	Type string `json:"@type"`
	model.Event
}

type createEventRequest struct {
	Name     string    `json:"name"`
	Location string    `json:"location"`
	StartsAt time.Time `json:"starts_at"`
}

func (h *EventHandler) create(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "body", Message: "must be a valid JSON event"}}))
		return
	}
	ev, err := h.svc.CreateEvent(c.Request.Context(), req.Name, req.Location, req.StartsAt)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, ev)
}

func (h *EventHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}}))
		return
	}
	ev, err := h.svc.GetEvent(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, ev)
}

// list renders one page as a Hydra PagedCollection. Page links point back at
// this endpoint with the page param replaced and every other param kept.
func (h *EventHandler) list(c *gin.Context) {
	req, err := paging.ParseRequest(c.Query(h.links.PageParam), c.Query(h.links.ItemsPerPageParam))
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "query", Message: err.Error()}}))
		return
	}
	gen := pageurl.FromRequest(c.Request, h.links.PageParam, h.links.TrustForwarded)
	coll, err := h.svc.ListEvents(c.Request.Context(), req, gen)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	base := strings.TrimSuffix(c.Request.URL.Path, "/")
	page := hydra.MapMembers(coll, func(e model.Event) eventResource {
		return eventResource{ID: base + "/" + strconv.FormatInt(e.ID, 10), Type: "Event", Event: e}
	})
	response.WriteLD(c, http.StatusOK, page)
}
