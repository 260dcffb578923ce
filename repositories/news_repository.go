package repositories

import (
	"strings"

	"orgsite-cms/models"

	"gorm.io/gorm"
)

type NewsRepository interface {
	CreateWithMedia(news *models.News, images []models.NewsImage, videos []models.NewsVideo) error
	GetByID(id uint) (*models.News, error)
	GetList(page, limit int) ([]models.News, int64, error)
	Update(news *models.News) error
	DeleteCascade(id uint) error
	AddImages(images []models.NewsImage) error
	AddVideos(videos []models.NewsVideo) error
	CountImages(newsID uint) (int64, error)
	CountVideos(newsID uint) (int64, error)
	GetImageByID(id uint) (*models.NewsImage, error)
	GetVideoByID(id uint) (*models.NewsVideo, error)
	DeleteImage(id uint) error
	DeleteVideo(id uint) error
	Search(terms []string, page, limit int) ([]models.News, int64, error)
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// CreateWithMedia inserts the news row and its media children in one
// transaction so child rows can never reference a half-created item.
func (r *newsRepository) CreateWithMedia(news *models.News, images []models.NewsImage, videos []models.NewsVideo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(news).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].NewsID = news.ID
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		for i := range videos {
			videos[i].NewsID = news.ID
		}
		if len(videos) > 0 {
			if err := tx.Create(&videos).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *newsRepository) GetByID(id uint) (*models.News, error) {
	var news models.News
	err := r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc, id asc")
		}).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc, id asc")
		}).
		First(&news, id).Error
	return &news, err
}

func (r *newsRepository) GetList(page, limit int) ([]models.News, int64, error) {
	var items []models.News
	var total int64

	query := r.db.Model(&models.News{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc, id asc")
		}).
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&items).Error

	return items, total, err
}

func (r *newsRepository) Update(news *models.News) error {
	return r.db.Save(news).Error
}

// DeleteCascade removes the comments, images and videos of a news
// item together with the row itself in a single transaction.
func (r *newsRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var news models.News
		if err := tx.First(&news, id).Error; err != nil {
			return err
		}
		if err := tx.Where("news_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("news_id = ?", id).Delete(&models.NewsImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("news_id = ?", id).Delete(&models.NewsVideo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&news).Error
	})
}

func (r *newsRepository) AddImages(images []models.NewsImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.Create(&images).Error
}

func (r *newsRepository) AddVideos(videos []models.NewsVideo) error {
	if len(videos) == 0 {
		return nil
	}
	return r.db.Create(&videos).Error
}

func (r *newsRepository) CountImages(newsID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.NewsImage{}).Where("news_id = ?", newsID).Count(&count).Error
	return count, err
}

func (r *newsRepository) CountVideos(newsID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.NewsVideo{}).Where("news_id = ?", newsID).Count(&count).Error
	return count, err
}

func (r *newsRepository) GetImageByID(id uint) (*models.NewsImage, error) {
	var image models.NewsImage
	err := r.db.First(&image, id).Error
	return &image, err
}

func (r *newsRepository) GetVideoByID(id uint) (*models.NewsVideo, error) {
	var video models.NewsVideo
	err := r.db.First(&video, id).Error
	return &video, err
}

func (r *newsRepository) DeleteImage(id uint) error {
	return r.db.Delete(&models.NewsImage{}, id).Error
}

func (r *newsRepository) DeleteVideo(id uint) error {
	return r.db.Delete(&models.NewsVideo{}, id).Error
}

// Search matches when any term is a substring of the title or the
// content, case-insensitively. OR across terms is intentional: recall
// over precision.
func (r *newsRepository) Search(terms []string, page, limit int) ([]models.News, int64, error) {
	var items []models.News
	var total int64

	var clauses []string
	var args []interface{}
	for _, term := range terms {
		pattern := "%" + term + "%"
		clauses = append(clauses, "title ILIKE ?", "content ILIKE ?")
		args = append(args, pattern, pattern)
	}

	query := r.db.Model(&models.News{}).Where(strings.Join(clauses, " OR "), args...)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&items).Error
	return items, total, err
}
