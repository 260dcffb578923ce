package models

import "time"

// Comment is posted by anonymous visitors on a news detail page and
// never outlives its parent news item.
type Comment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	NewsID    uint      `json:"news_id" gorm:"not null;index"`
	Author    string    `json:"author" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}
