package services

import (
	"sort"
	"strings"
	"time"

	"orgsite-cms/models"

	"gorm.io/gorm"
)

// In-memory repository fakes. They honor the same contracts as the
// gorm implementations, including gorm.ErrRecordNotFound for missing
// rows, so service behavior can be exercised without a database.

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return &models.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return &models.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) AdminExists() (bool, error) {
	for _, u := range r.users {
		if u.IsAdmin {
			return true, nil
		}
	}
	return false, nil
}

type fakeCommentRepo struct {
	comments []models.Comment
	nextID   uint
}

func (r *fakeCommentRepo) Create(comment *models.Comment) error {
	r.nextID++
	comment.ID = r.nextID
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeCommentRepo) GetByID(id uint) (*models.Comment, error) {
	for i := range r.comments {
		if r.comments[i].ID == id {
			return &r.comments[i], nil
		}
	}
	return &models.Comment{}, gorm.ErrRecordNotFound
}

func (r *fakeCommentRepo) GetByNews(newsID uint, page, limit int) ([]models.Comment, int64, error) {
	var matched []models.Comment
	for _, c := range r.comments {
		if c.NewsID == newsID {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return pageOf(matched, page, limit), int64(len(matched)), nil
}

func (r *fakeCommentRepo) Delete(id uint) error {
	for i := range r.comments {
		if r.comments[i].ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeNewsRepo struct {
	news     []models.News
	images   []models.NewsImage
	videos   []models.NewsVideo
	comments *fakeCommentRepo

	nextNewsID  uint
	nextImageID uint
	nextVideoID uint
}

func newFakeNewsRepo(comments *fakeCommentRepo) *fakeNewsRepo {
	return &fakeNewsRepo{comments: comments}
}

func (r *fakeNewsRepo) CreateWithMedia(news *models.News, images []models.NewsImage, videos []models.NewsVideo) error {
	r.nextNewsID++
	news.ID = r.nextNewsID
	if news.CreatedAt.IsZero() {
		news.CreatedAt = time.Now()
	}
	r.news = append(r.news, *news)

	for i := range images {
		images[i].NewsID = news.ID
	}
	if err := r.AddImages(images); err != nil {
		return err
	}
	for i := range videos {
		videos[i].NewsID = news.ID
	}
	return r.AddVideos(videos)
}

func (r *fakeNewsRepo) GetByID(id uint) (*models.News, error) {
	for _, n := range r.news {
		if n.ID == id {
			loaded := n
			loaded.Images = r.imagesOf(id)
			loaded.Videos = r.videosOf(id)
			return &loaded, nil
		}
	}
	return &models.News{}, gorm.ErrRecordNotFound
}

func (r *fakeNewsRepo) GetList(page, limit int) ([]models.News, int64, error) {
	items := append([]models.News(nil), r.news...)
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return pageOf(items, page, limit), int64(len(items)), nil
}

func (r *fakeNewsRepo) Update(news *models.News) error {
	for i := range r.news {
		if r.news[i].ID == news.ID {
			stored := *news
			stored.Images = nil
			stored.Videos = nil
			r.news[i] = stored
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeNewsRepo) DeleteCascade(id uint) error {
	idx := -1
	for i := range r.news {
		if r.news[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return gorm.ErrRecordNotFound
	}

	r.news = append(r.news[:idx], r.news[idx+1:]...)

	var keptImages []models.NewsImage
	for _, img := range r.images {
		if img.NewsID != id {
			keptImages = append(keptImages, img)
		}
	}
	r.images = keptImages

	var keptVideos []models.NewsVideo
	for _, v := range r.videos {
		if v.NewsID != id {
			keptVideos = append(keptVideos, v)
		}
	}
	r.videos = keptVideos

	if r.comments != nil {
		var kept []models.Comment
		for _, c := range r.comments.comments {
			if c.NewsID != id {
				kept = append(kept, c)
			}
		}
		r.comments.comments = kept
	}
	return nil
}

func (r *fakeNewsRepo) AddImages(images []models.NewsImage) error {
	for i := range images {
		r.nextImageID++
		images[i].ID = r.nextImageID
		r.images = append(r.images, images[i])
	}
	return nil
}

func (r *fakeNewsRepo) AddVideos(videos []models.NewsVideo) error {
	for i := range videos {
		r.nextVideoID++
		videos[i].ID = r.nextVideoID
		r.videos = append(r.videos, videos[i])
	}
	return nil
}

func (r *fakeNewsRepo) CountImages(newsID uint) (int64, error) {
	return int64(len(r.imagesOf(newsID))), nil
}

func (r *fakeNewsRepo) CountVideos(newsID uint) (int64, error) {
	return int64(len(r.videosOf(newsID))), nil
}

func (r *fakeNewsRepo) GetImageByID(id uint) (*models.NewsImage, error) {
	for i := range r.images {
		if r.images[i].ID == id {
			return &r.images[i], nil
		}
	}
	return &models.NewsImage{}, gorm.ErrRecordNotFound
}

func (r *fakeNewsRepo) GetVideoByID(id uint) (*models.NewsVideo, error) {
	for i := range r.videos {
		if r.videos[i].ID == id {
			return &r.videos[i], nil
		}
	}
	return &models.NewsVideo{}, gorm.ErrRecordNotFound
}

func (r *fakeNewsRepo) DeleteImage(id uint) error {
	for i := range r.images {
		if r.images[i].ID == id {
			r.images = append(r.images[:i], r.images[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeNewsRepo) DeleteVideo(id uint) error {
	for i := range r.videos {
		if r.videos[i].ID == id {
			r.videos = append(r.videos[:i], r.videos[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeNewsRepo) Search(terms []string, page, limit int) ([]models.News, int64, error) {
	var matched []models.News
	for _, n := range r.news {
		if anyTermMatches(terms, n.Title, n.Content) {
			matched = append(matched, n)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return pageOf(matched, page, limit), int64(len(matched)), nil
}

func (r *fakeNewsRepo) imagesOf(newsID uint) []models.NewsImage {
	var out []models.NewsImage
	for _, img := range r.images {
		if img.NewsID == newsID {
			out = append(out, img)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *fakeNewsRepo) videosOf(newsID uint) []models.NewsVideo {
	var out []models.NewsVideo
	for _, v := range r.videos {
		if v.NewsID == newsID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

type fakeEventRepo struct {
	events []models.Event
	nextID uint
}

func (r *fakeEventRepo) Create(event *models.Event) error {
	r.nextID++
	event.ID = r.nextID
	r.events = append(r.events, *event)
	return nil
}

func (r *fakeEventRepo) GetByID(id uint) (*models.Event, error) {
	for i := range r.events {
		if r.events[i].ID == id {
			return &r.events[i], nil
		}
	}
	return &models.Event{}, gorm.ErrRecordNotFound
}

func (r *fakeEventRepo) GetUpcoming(now time.Time, page, limit int) ([]models.Event, int64, error) {
	var upcoming []models.Event
	for _, e := range r.events {
		if !e.EventDate.Before(now) {
			upcoming = append(upcoming, e)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].EventDate.Before(upcoming[j].EventDate)
	})
	return pageOf(upcoming, page, limit), int64(len(upcoming)), nil
}

func (r *fakeEventRepo) GetPast(now time.Time, limit int) ([]models.Event, error) {
	var past []models.Event
	for _, e := range r.events {
		if e.EventDate.Before(now) {
			past = append(past, e)
		}
	}
	sort.Slice(past, func(i, j int) bool {
		return past[i].EventDate.After(past[j].EventDate)
	})
	if len(past) > limit {
		past = past[:limit]
	}
	return past, nil
}

func (r *fakeEventRepo) Update(event *models.Event) error {
	for i := range r.events {
		if r.events[i].ID == event.ID {
			r.events[i] = *event
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeEventRepo) Delete(id uint) error {
	for i := range r.events {
		if r.events[i].ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeEventRepo) Search(terms []string, limit int) ([]models.Event, int64, error) {
	var matched []models.Event
	for _, e := range r.events {
		if anyTermMatches(terms, e.Title, e.Description, e.Location) {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].EventDate.After(matched[j].EventDate)
	})
	total := int64(len(matched))
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func anyTermMatches(terms []string, fields ...string) bool {
	for _, term := range terms {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field), strings.ToLower(term)) {
				return true
			}
		}
	}
	return false
}

func pageOf[T any](items []T, page, limit int) []T {
	offset := (page - 1) * limit
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
