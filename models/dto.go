package models

type RegisterRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
	IsAdmin  bool   `json:"is_admin" form:"is_admin"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// NewsForm is the multipart form for creating or editing a news item.
// Files ride alongside these fields and are pulled off the multipart
// reader by the handler; the parallel video_* slices describe one
// video entry per index, matching the admin form markup.
type NewsForm struct {
	Title       string   `form:"title" binding:"required,max=100"`
	Content     string   `form:"content" binding:"required"`
	VideoTypes  []string `form:"video_types"`
	VideoURLs   []string `form:"video_urls"`
	VideoTitles []string `form:"video_titles"`
}

type CommentRequest struct {
	Author  string `json:"author" form:"author" binding:"required,max=50"`
	Content string `json:"content" form:"content" binding:"required"`
}

type EventForm struct {
	Title       string `form:"title" binding:"required,max=100"`
	Description string `form:"description" binding:"required"`
	EventDate   string `form:"event_date" binding:"required"`
	Location    string `form:"location"`
}

type ContactRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Message string `json:"message" form:"message" binding:"required"`
}

type ListParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit"`
}

// Page is a bounded slice of an ordered result set plus the metadata
// the templates need to draw pager links.
type Page struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	TotalPages int         `json:"total_pages"`
	HasPrev    bool        `json:"has_prev"`
	HasNext    bool        `json:"has_next"`
}
