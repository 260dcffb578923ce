package handlers

import (
	"orgsite-cms/helper"
	"orgsite-cms/models"
	"orgsite-cms/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService services.ContactService
	Helper         *helper.HTTPHelper
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService, Helper: &helper.HTTPHelper{}}
}

// SubmitContact forwards a contact message to the site mailbox. A
// failed send is the one error we deliberately swallow: the visitor
// gets a retry-later message and the request itself still succeeds.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.contactService.Send(req); err != nil {
		h.Helper.SendSuccess(c, "We could not send your message right now. Please try again later.", gin.H{
			"delivered": false,
		})
		return
	}

	h.Helper.SendSuccess(c, "Your message has been sent", gin.H{
		"delivered": true,
	})
}
