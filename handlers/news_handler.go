package handlers

import (
	"mime/multipart"

	"orgsite-cms/helper"
	"orgsite-cms/models"
	"orgsite-cms/services"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	newsService services.NewsService
	Helper      *helper.HTTPHelper
}

func NewNewsHandler(newsService services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService, Helper: &helper.HTTPHelper{}}
}

// GetNewsList is the public paginated news feed, newest first.
func (h *NewsHandler) GetNewsList(c *gin.Context) {
	page, err := h.newsService.ListNews(pageQuery(c), newsPerPage)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", page)
}

// GetNewsDetail returns one news item with its gallery and videos
// plus a page of its comments.
func (h *NewsHandler) GetNewsDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid news ID", h.Helper.EmptyJsonMap())
		return
	}

	news, err := h.newsService.GetNews(id)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	comments, err := h.newsService.ListComments(id, pageQuery(c), commentsPerPage)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"news":     news,
		"comments": comments,
	})
}

// AddComment accepts a visitor comment on a news item. Deliberately
// unauthenticated.
func (h *NewsHandler) AddComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid news ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CommentRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	comment, err := h.newsService.AddComment(id, req)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment added", comment)
}

// CreateNews handles the admin multipart form: the news fields, an
// optional multi-file images field and the parallel video entry
// fields.
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var form models.NewsForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	images, videoFiles := newsUploads(c)
	news, err := h.newsService.CreateNews(form, images, videoFiles)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "News created successfully", news)
}

func (h *NewsHandler) UpdateNews(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid news ID", h.Helper.EmptyJsonMap())
		return
	}

	var form models.NewsForm
	if err := c.ShouldBind(&form); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	images, videoFiles := newsUploads(c)
	news, err := h.newsService.UpdateNews(id, form, images, videoFiles)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "News updated successfully", news)
}

func (h *NewsHandler) DeleteNews(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid news ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.newsService.DeleteNews(id); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "News deleted successfully", h.Helper.EmptyJsonMap())
}

func (h *NewsHandler) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid comment ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.newsService.DeleteComment(id); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment deleted successfully", h.Helper.EmptyJsonMap())
}

func (h *NewsHandler) DeleteNewsImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid image ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.newsService.DeleteNewsImage(id); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Image deleted successfully", h.Helper.EmptyJsonMap())
}

func (h *NewsHandler) DeleteNewsVideo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid video ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.newsService.DeleteNewsVideo(id); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Video deleted successfully", h.Helper.EmptyJsonMap())
}

func newsUploads(c *gin.Context) (images, videoFiles []*multipart.FileHeader) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}
	return form.File["images"], form.File["video_files"]
}
