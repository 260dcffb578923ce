package services

import (
	"orgsite-cms/helper"
	"orgsite-cms/models"
	"orgsite-cms/repositories"
)

// searchEventsLimit caps the events portion of a search result.
const searchEventsLimit = 10

type SearchResult struct {
	Query       string         `json:"query"`
	News        models.Page    `json:"news"`
	Events      []models.Event `json:"events"`
	TotalNews   int64          `json:"total_news"`
	TotalEvents int64          `json:"total_events"`
}

type SearchService interface {
	Search(query string, page, perPage int) (*SearchResult, error)
}

type searchService struct {
	newsRepo  repositories.NewsRepository
	eventRepo repositories.EventRepository
}

func NewSearchService(newsRepo repositories.NewsRepository, eventRepo repositories.EventRepository) SearchService {
	return &searchService{
		newsRepo:  newsRepo,
		eventRepo: eventRepo,
	}
}

// Search splits the query on whitespace and matches a record when any
// term is a case-insensitive substring of any searched field. The OR
// across terms trades precision for recall on purpose. News results
// are paginated; events are capped at the most recent ten.
func (s *searchService) Search(query string, page, perPage int) (*SearchResult, error) {
	result := &SearchResult{Query: query}

	terms := helper.SplitQuery(query)
	if len(terms) == 0 {
		result.News = helper.BuildPage([]models.News{}, 0, 1, perPage)
		result.Events = []models.Event{}
		return result, nil
	}

	page = helper.NormalizePage(page)
	news, totalNews, err := s.newsRepo.Search(terms, page, perPage)
	if err != nil {
		return nil, err
	}

	events, totalEvents, err := s.eventRepo.Search(terms, searchEventsLimit)
	if err != nil {
		return nil, err
	}

	result.News = helper.BuildPage(news, totalNews, page, perPage)
	result.Events = events
	result.TotalNews = totalNews
	result.TotalEvents = totalEvents
	return result, nil
}
