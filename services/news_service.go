package services

import (
	"errors"
	"mime/multipart"

	"orgsite-cms/helper"
	"orgsite-cms/media"
	"orgsite-cms/models"
	"orgsite-cms/repositories"

	"gorm.io/gorm"
)

type NewsService interface {
	CreateNews(form models.NewsForm, images []*multipart.FileHeader, videoFiles []*multipart.FileHeader) (*models.News, error)
	GetNews(id uint) (*models.News, error)
	ListNews(page, perPage int) (models.Page, error)
	UpdateNews(id uint, form models.NewsForm, images []*multipart.FileHeader, videoFiles []*multipart.FileHeader) (*models.News, error)
	DeleteNews(id uint) error
	AddComment(newsID uint, req models.CommentRequest) (*models.Comment, error)
	ListComments(newsID uint, page, perPage int) (models.Page, error)
	DeleteComment(id uint) error
	DeleteNewsImage(id uint) error
	DeleteNewsVideo(id uint) error
}

type newsService struct {
	newsRepo    repositories.NewsRepository
	commentRepo repositories.CommentRepository
	mediaStore  *media.Store
}

func NewNewsService(newsRepo repositories.NewsRepository, commentRepo repositories.CommentRepository, mediaStore *media.Store) NewsService {
	return &newsService{
		newsRepo:    newsRepo,
		commentRepo: commentRepo,
		mediaStore:  mediaStore,
	}
}

// CreateNews inserts the news item together with its accepted media
// in one transaction, so the new id and the child rows land as a
// single unit of work. Rejected upload files are skipped, never a
// reason to fail the submission.
func (s *newsService) CreateNews(form models.NewsForm, images []*multipart.FileHeader, videoFiles []*multipart.FileHeader) (*models.News, error) {
	imagePaths, err := s.mediaStore.IngestImages(images)
	if err != nil {
		return nil, err
	}

	ingested, err := s.mediaStore.IngestVideoEntries(assembleVideoEntries(form, videoFiles))
	if err != nil {
		return nil, err
	}

	news := &models.News{
		Title:   form.Title,
		Content: form.Content,
	}

	if err := s.newsRepo.CreateWithMedia(news, imageRows(imagePaths, 0), videoRows(ingested, 0)); err != nil {
		return nil, err
	}

	return s.newsRepo.GetByID(news.ID)
}

func (s *newsService) GetNews(id uint) (*models.News, error) {
	news, err := s.newsRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return news, nil
}

func (s *newsService) ListNews(page, perPage int) (models.Page, error) {
	page = helper.NormalizePage(page)
	items, total, err := s.newsRepo.GetList(page, perPage)
	if err != nil {
		return models.Page{}, err
	}
	return helper.BuildPage(items, total, page, perPage), nil
}

// UpdateNews applies a partial update of the mutable fields and
// appends any newly uploaded media. Order values continue from the
// number of existing children so previously displayed media never
// changes position.
func (s *newsService) UpdateNews(id uint, form models.NewsForm, images []*multipart.FileHeader, videoFiles []*multipart.FileHeader) (*models.News, error) {
	news, err := s.newsRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	news.Title = form.Title
	news.Content = form.Content
	// Save only the parent row; the preloaded children are appended
	// separately below.
	news.Images = nil
	news.Videos = nil
	if err := s.newsRepo.Update(news); err != nil {
		return nil, err
	}

	imagePaths, err := s.mediaStore.IngestImages(images)
	if err != nil {
		return nil, err
	}
	if len(imagePaths) > 0 {
		imageBase, err := s.newsRepo.CountImages(id)
		if err != nil {
			return nil, err
		}
		rows := imageRows(imagePaths, int(imageBase))
		for i := range rows {
			rows[i].NewsID = id
		}
		if err := s.newsRepo.AddImages(rows); err != nil {
			return nil, err
		}
	}

	ingested, err := s.mediaStore.IngestVideoEntries(assembleVideoEntries(form, videoFiles))
	if err != nil {
		return nil, err
	}
	if len(ingested) > 0 {
		videoBase, err := s.newsRepo.CountVideos(id)
		if err != nil {
			return nil, err
		}
		rows := videoRows(ingested, int(videoBase))
		for i := range rows {
			rows[i].NewsID = id
		}
		if err := s.newsRepo.AddVideos(rows); err != nil {
			return nil, err
		}
	}

	return s.newsRepo.GetByID(id)
}

// DeleteNews removes the item and all of its comments, images and
// videos atomically. Media files stay on disk; cleanup is out of
// scope.
func (s *newsService) DeleteNews(id uint) error {
	return notFoundOr(s.newsRepo.DeleteCascade(id))
}

// AddComment is a public operation: visitors comment without an
// account. That is a product decision, accepted as an abuse surface.
func (s *newsService) AddComment(newsID uint, req models.CommentRequest) (*models.Comment, error) {
	if _, err := s.newsRepo.GetByID(newsID); err != nil {
		return nil, notFoundOr(err)
	}

	comment := &models.Comment{
		NewsID:  newsID,
		Author:  req.Author,
		Content: req.Content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *newsService) ListComments(newsID uint, page, perPage int) (models.Page, error) {
	if _, err := s.newsRepo.GetByID(newsID); err != nil {
		return models.Page{}, notFoundOr(err)
	}

	page = helper.NormalizePage(page)
	items, total, err := s.commentRepo.GetByNews(newsID, page, perPage)
	if err != nil {
		return models.Page{}, err
	}
	return helper.BuildPage(items, total, page, perPage), nil
}

func (s *newsService) DeleteComment(id uint) error {
	if _, err := s.commentRepo.GetByID(id); err != nil {
		return notFoundOr(err)
	}
	return s.commentRepo.Delete(id)
}

func (s *newsService) DeleteNewsImage(id uint) error {
	if _, err := s.newsRepo.GetImageByID(id); err != nil {
		return notFoundOr(err)
	}
	return s.newsRepo.DeleteImage(id)
}

func (s *newsService) DeleteNewsVideo(id uint) error {
	if _, err := s.newsRepo.GetVideoByID(id); err != nil {
		return notFoundOr(err)
	}
	return s.newsRepo.DeleteVideo(id)
}

// assembleVideoEntries zips the parallel video form fields into
// entries. The file slice may be shorter than the others when link
// rows carry no upload.
func assembleVideoEntries(form models.NewsForm, files []*multipart.FileHeader) []media.VideoEntry {
	entries := make([]media.VideoEntry, 0, len(form.VideoTypes))
	for i, vtype := range form.VideoTypes {
		entry := media.VideoEntry{Type: vtype}
		if i < len(form.VideoURLs) {
			entry.URL = form.VideoURLs[i]
		}
		if i < len(form.VideoTitles) {
			entry.Title = form.VideoTitles[i]
		}
		if i < len(files) {
			entry.File = files[i]
		}
		entries = append(entries, entry)
	}
	return entries
}

func imageRows(paths []string, base int) []models.NewsImage {
	rows := make([]models.NewsImage, 0, len(paths))
	for i, p := range paths {
		rows = append(rows, models.NewsImage{
			ImagePath: p,
			Order:     base + i,
		})
	}
	return rows
}

func videoRows(ingested []media.IngestedVideo, base int) []models.NewsVideo {
	rows := make([]models.NewsVideo, 0, len(ingested))
	for i, v := range ingested {
		rows = append(rows, models.NewsVideo{
			VideoPath: v.Path,
			VideoURL:  v.URL,
			VideoType: models.VideoType(v.Type),
			Title:     v.Title,
			Order:     base + i,
		})
	}
	return rows
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}
