package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"stockwisely/config"
	"stockwisely/internal/dto"
	"stockwisely/internal/repository"
	"stockwisely/pkg/cache"
	"stockwisely/pkg/logger"
)

type NewsService interface {
	// Live returns the general feed filtered to market-relevant articles.
	Live(ctx context.Context) ([]dto.NewsArticle, error)
	// ForTicker returns company news from the trailing window.
	ForTicker(ctx context.Context, ticker string) ([]dto.NewsArticle, error)
	// Rotating returns one article per call, cycling through the current page
	// for the ticker. Returns nil when no articles are available.
	Rotating(ctx context.Context, ticker string) (*dto.PolygonArticle, error)
}

type newsService struct {
	cfg         *config.Config
	log         *logger.Logger
	finnhubRepo repository.FinnhubNewsRepository
	polygonRepo repository.PolygonNewsRepository

	// Per-ticker rotation cursor. Process-local by construction; the storage
	// is injected so a persistent backend can replace it.
	cursorMu    sync.Mutex
	cursorStore cache.Cache
}

func NewNewsService(cfg *config.Config, log *logger.Logger, cursorStore cache.Cache, finnhubRepo repository.FinnhubNewsRepository, polygonRepo repository.PolygonNewsRepository) NewsService {
	return &newsService{
		cfg:         cfg,
		log:         log,
		finnhubRepo: finnhubRepo,
		polygonRepo: polygonRepo,
		cursorStore: cursorStore,
	}
}

func (s *newsService) Live(ctx context.Context) ([]dto.NewsArticle, error) {
	articles, err := s.finnhubRepo.GeneralNews(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]dto.NewsArticle, 0, s.cfg.Finnhub.MaxArticles)
	for _, article := range articles {
		if article.Headline == "" || article.Summary == "" {
			continue
		}
		if !isMarketRelevant(article) {
			continue
		}
		filtered = append(filtered, article)
		if len(filtered) == s.cfg.Finnhub.MaxArticles {
			break
		}
	}

	return filtered, nil
}

func (s *newsService) ForTicker(ctx context.Context, ticker string) ([]dto.NewsArticle, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -s.cfg.Finnhub.CompanyNewsDays)

	articles, err := s.finnhubRepo.CompanyNews(ctx, ticker, from, to)
	if err != nil {
		return nil, err
	}

	result := make([]dto.NewsArticle, 0, s.cfg.Finnhub.MaxArticles)
	for _, article := range articles {
		if article.Headline == "" || article.Summary == "" {
			continue
		}
		if article.Category == "" {
			article.Category = "company"
		}
		result = append(result, article)
		if len(result) == s.cfg.Finnhub.MaxArticles {
			break
		}
	}

	return result, nil
}

func (s *newsService) Rotating(ctx context.Context, ticker string) (*dto.PolygonArticle, error) {
	articles, err := s.polygonRepo.ReferenceNews(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, nil
	}

	s.cursorMu.Lock()
	defer s.cursorMu.Unlock()

	key := newsCursorKey(ticker)
	index := 0
	if v, found := s.cursorStore.Get(key); found {
		if i, ok := v.(int); ok {
			index = i
		}
	}
	s.cursorStore.Set(key, index+1, cache.NoExpiration)

	article := articles[index%len(articles)]
	return &article, nil
}

func isMarketRelevant(article dto.NewsArticle) bool {
	if article.Category == "business" {
		return true
	}
	headline := strings.ToLower(article.Headline)
	return strings.Contains(headline, "stock") ||
		strings.Contains(headline, "market") ||
		strings.Contains(headline, "trading")
}

func newsCursorKey(ticker string) string {
	return fmt.Sprintf("news_cursor:%s", ticker)
}
