package repositories

import (
	"strings"
	"time"

	"orgsite-cms/models"

	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id uint) (*models.Event, error)
	GetUpcoming(now time.Time, page, limit int) ([]models.Event, int64, error)
	GetPast(now time.Time, limit int) ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id uint) error
	Search(terms []string, limit int) ([]models.Event, int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	return &event, err
}

// GetUpcoming returns events at or after now, soonest first.
func (r *eventRepository) GetUpcoming(now time.Time, page, limit int) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	query := r.db.Model(&models.Event{}).Where("event_date >= ?", now)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("event_date asc").Offset(offset).Limit(limit).Find(&events).Error
	return events, total, err
}

// GetPast returns the most recent past events, capped rather than
// paginated.
func (r *eventRepository) GetPast(now time.Time, limit int) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("event_date < ?", now).
		Order("event_date desc").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *eventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *eventRepository) Delete(id uint) error {
	return r.db.Delete(&models.Event{}, id).Error
}

// Search matches any term against title, description or location,
// case-insensitively, most recent event first.
func (r *eventRepository) Search(terms []string, limit int) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	var clauses []string
	var args []interface{}
	for _, term := range terms {
		pattern := "%" + term + "%"
		clauses = append(clauses, "title ILIKE ?", "description ILIKE ?", "location ILIKE ?")
		args = append(args, pattern, pattern, pattern)
	}

	query := r.db.Model(&models.Event{}).Where(strings.Join(clauses, " OR "), args...)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("event_date desc").Limit(limit).Find(&events).Error
	return events, total, err
}
