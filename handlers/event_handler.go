package handlers

import (
	"mime/multipart"

	"orgsite-cms/helper"
	"orgsite-cms/models"
	"orgsite-cms/services"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService services.EventService
	Helper       *helper.HTTPHelper
}

func NewEventHandler(eventService services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService, Helper: &helper.HTTPHelper{}}
}

// GetEvents lists upcoming events (paginated, soonest first) together
// with the most recent past events.
func (h *EventHandler) GetEvents(c *gin.Context) {
	upcoming, past, err := h.eventService.ListEvents(pageQuery(c), eventsPerPage)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"upcoming":    upcoming,
		"past_events": past,
	})
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid event ID", h.Helper.EmptyJsonMap())
		return
	}

	event, err := h.eventService.GetEvent(id)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", event)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var form models.EventForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	event, err := h.eventService.CreateEvent(form, eventImage(c))
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Event created successfully", event)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid event ID", h.Helper.EmptyJsonMap())
		return
	}

	var form models.EventForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	event, err := h.eventService.UpdateEvent(id, form, eventImage(c))
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Event updated successfully", event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid event ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.eventService.DeleteEvent(id); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Event deleted successfully", h.Helper.EmptyJsonMap())
}

// eventImage pulls the optional single cover image off the form.
func eventImage(c *gin.Context) *multipart.FileHeader {
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}
