package models

import (
	"time"

	"gorm.io/gorm"
)

type VideoType string

const (
	// VideoUploaded marks a video stored on our own disk. Any other
	// value is a link-provider tag (youtube, vimeo, ...) and the row
	// carries a URL instead of a path.
	VideoUploaded VideoType = "uploaded"
)

type News struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Title     string         `json:"title" gorm:"not null"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	Images    []NewsImage    `json:"images,omitempty" gorm:"foreignKey:NewsID"`
	Videos    []NewsVideo    `json:"videos,omitempty" gorm:"foreignKey:NewsID"`
	Comments  []Comment      `json:"comments,omitempty" gorm:"foreignKey:NewsID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

type NewsImage struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	NewsID    uint      `json:"news_id" gorm:"not null;index"`
	ImagePath string    `json:"image_path" gorm:"not null"`
	Order     int       `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt time.Time `json:"created_at"`
}

// NewsVideo holds exactly one of VideoPath or VideoURL, selected by
// VideoType: "uploaded" rows have a path, provider rows have a URL.
type NewsVideo struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	NewsID    uint      `json:"news_id" gorm:"not null;index"`
	VideoPath string    `json:"video_path,omitempty"`
	VideoURL  string    `json:"video_url,omitempty"`
	VideoType VideoType `json:"video_type" gorm:"not null"`
	Title     string    `json:"title"`
	Order     int       `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt time.Time `json:"created_at"`
}
