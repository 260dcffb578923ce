package services

import (
	"mime/multipart"
	"time"

	"orgsite-cms/helper"
	"orgsite-cms/media"
	"orgsite-cms/models"
	"orgsite-cms/repositories"
)

// eventDateLayout matches the value of an HTML datetime-local input.
const eventDateLayout = "2006-01-02T15:04"

// pastEventsLimit caps the past-events list; it is not paginated.
const pastEventsLimit = 10

type EventService interface {
	CreateEvent(form models.EventForm, image *multipart.FileHeader) (*models.Event, error)
	GetEvent(id uint) (*models.Event, error)
	ListEvents(page, perPage int) (models.Page, []models.Event, error)
	UpdateEvent(id uint, form models.EventForm, image *multipart.FileHeader) (*models.Event, error)
	DeleteEvent(id uint) error
}

type eventService struct {
	eventRepo  repositories.EventRepository
	mediaStore *media.Store
}

func NewEventService(eventRepo repositories.EventRepository, mediaStore *media.Store) EventService {
	return &eventService{
		eventRepo:  eventRepo,
		mediaStore: mediaStore,
	}
}

func (s *eventService) CreateEvent(form models.EventForm, image *multipart.FileHeader) (*models.Event, error) {
	eventDate, err := time.Parse(eventDateLayout, form.EventDate)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:       form.Title,
		Description: form.Description,
		EventDate:   eventDate,
		Location:    form.Location,
	}

	path, err := s.ingestEventImage(image)
	if err != nil {
		return nil, err
	}
	if path != "" {
		event.ImagePath = path
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetEvent(id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return event, nil
}

// ListEvents splits by event date relative to now: upcoming soonest
// first and paginated, past most recent first and capped.
func (s *eventService) ListEvents(page, perPage int) (models.Page, []models.Event, error) {
	now := time.Now()

	page = helper.NormalizePage(page)
	upcoming, total, err := s.eventRepo.GetUpcoming(now, page, perPage)
	if err != nil {
		return models.Page{}, nil, err
	}

	past, err := s.eventRepo.GetPast(now, pastEventsLimit)
	if err != nil {
		return models.Page{}, nil, err
	}

	return helper.BuildPage(upcoming, total, page, perPage), past, nil
}

func (s *eventService) UpdateEvent(id uint, form models.EventForm, image *multipart.FileHeader) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	eventDate, err := time.Parse(eventDateLayout, form.EventDate)
	if err != nil {
		return nil, err
	}

	event.Title = form.Title
	event.Description = form.Description
	event.EventDate = eventDate
	event.Location = form.Location

	path, err := s.ingestEventImage(image)
	if err != nil {
		return nil, err
	}
	if path != "" {
		event.ImagePath = path
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) DeleteEvent(id uint) error {
	if _, err := s.eventRepo.GetByID(id); err != nil {
		return notFoundOr(err)
	}
	return s.eventRepo.Delete(id)
}

// ingestEventImage stores the optional cover image. A rejected or
// absent file just means no image is attached, never an error; a
// failure reading or writing an accepted file does surface.
func (s *eventService) ingestEventImage(image *multipart.FileHeader) (string, error) {
	if image == nil || image.Filename == "" || !media.AllowedImageFile(image.Filename) {
		return "", nil
	}
	f, err := image.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return s.mediaStore.SaveImage(f, image.Filename)
}
