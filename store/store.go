// Package store holds the article collections shown by the client: the main
// feed, the breaking-news feed and the favorites list, along with the active
// category selection. Operations fetch from the remote service and replace
// the corresponding in-memory list; apart from the main feed, fetch failures
// degrade to stale data rather than surfacing an error.
package store

import (
	"context"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/akhbar-news/akhbar/api"
	"github.com/akhbar-news/akhbar/config"
	"github.com/akhbar-news/akhbar/content"
	"github.com/akhbar-news/akhbar/lang"
	"github.com/akhbar-news/akhbar/log"
)

// Store caches article collections in memory. It is safe for concurrent use,
// but performs no coordination between overlapping fetches: when two fetches
// of the same list are in flight, the one that resolves last determines the
// final state.
type Store struct {
	client *api.Client
	log    log.Log

	articleCache  *cache.Cache
	articlesLimit int
	breakingLimit int

	mu               sync.RWMutex
	articles         []content.Article
	breakingNews     []content.Article
	favorites        []content.Article
	selectedCategory content.Category
	loading          bool
	breakingLoading  bool
	lastError        string
}

func New(client *api.Client, cfg config.API, log log.Log) *Store {
	breakingLimit := cfg.Limits.BreakingNews
	if breakingLimit <= 0 {
		breakingLimit = 10
	}

	return &Store{
		client:           client,
		log:              log,
		articleCache:     cache.New(5*time.Minute, 10*time.Minute),
		articlesLimit:    cfg.Limits.ArticlesPerQuery,
		breakingLimit:    breakingLimit,
		selectedCategory: content.All,
	}
}

// FetchArticles replaces the main feed. The effective category is the given
// one, or the current selection when none is given; the "all" sentinel
// results in an unfiltered request. On failure the previous feed is
// preserved and a localized error message is recorded.
func (s *Store) FetchArticles(ctx context.Context, category ...content.Category) {
	s.mu.Lock()
	effective := s.selectedCategory
	if len(category) > 0 {
		effective = category[0]
	}
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()

	articles, err := s.client.Articles(ctx, effective, s.articlesLimit)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
	if err != nil {
		s.log.Printf("fetching articles: %+v", err)
		s.lastError = lang.T("fetch_news_failed")
		return
	}

	s.articles = articles
}

// FetchBreakingNews replaces the breaking-news feed, a fixed-size page of
// pipeline-processed articles, under its own loading flag. A failure only
// clears the flag; the previous list stays and no error state is recorded.
func (s *Store) FetchBreakingNews(ctx context.Context) {
	s.mu.Lock()
	s.breakingLoading = true
	s.mu.Unlock()

	articles, err := s.client.BreakingNews(ctx, s.breakingLimit)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.breakingLoading = false
	if err != nil {
		s.log.Printf("fetching breaking news: %+v", err)
		return
	}

	s.breakingNews = articles
}

// FetchFavorites replaces the favorites list with the saved articles of the
// token's user. Failures are logged and leave the list untouched.
func (s *Store) FetchFavorites(ctx context.Context, token string) {
	articles, err := s.client.Favorites(ctx, token)
	if err != nil {
		s.log.Printf("fetching favorites: %+v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.favorites = articles
}

// SearchArticles returns the articles matching the free-text query directly
// to the caller, without touching any shared state. A failed search returns
// an empty result. The store applies no minimum length to the query; that is
// a view-layer rule.
func (s *Store) SearchArticles(ctx context.Context, query string) []content.Article {
	articles, err := s.client.Search(ctx, query)
	if err != nil {
		s.log.Printf("searching articles: %+v", err)
		return []content.Article{}
	}

	return articles
}

// SetCategory records the category selection and refreshes the main feed
// with it.
func (s *Store) SetCategory(ctx context.Context, category content.Category) {
	s.mu.Lock()
	s.selectedCategory = category
	s.mu.Unlock()

	s.FetchArticles(ctx, category)
}

// AddToFavorites saves the article remotely. No local list is updated; the
// caller reflects the change, either through session.Store.UpdateFavorites
// or by refetching. Failures are logged only.
func (s *Store) AddToFavorites(ctx context.Context, id content.ArticleID, token string) {
	if err := s.client.AddFavorite(ctx, id, token); err != nil {
		s.log.Printf("adding article %s to favorites: %+v", id, err)
	}
}

// RemoveFromFavorites removes the article remotely and, once the server has
// confirmed, filters it out of the in-memory favorites list. On failure the
// list is unchanged and the error is logged only.
func (s *Store) RemoveFromFavorites(ctx context.Context, id content.ArticleID, token string) {
	if err := s.client.RemoveFavorite(ctx, id, token); err != nil {
		s.log.Printf("removing article %s from favorites: %+v", id, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.favorites[:0]
	for _, a := range s.favorites {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.favorites = kept
}

// Article fetches a single article, serving repeated lookups of the same id
// from a short-lived cache. content.ErrNoContent is passed through for
// unknown ids.
func (s *Store) Article(ctx context.Context, id content.ArticleID) (content.Article, error) {
	if cached, ok := s.articleCache.Get(string(id)); ok {
		return cached.(content.Article), nil
	}

	article, err := s.client.Article(ctx, id)
	if err != nil {
		return content.Article{}, err
	}

	s.articleCache.Set(string(id), article, cache.DefaultExpiration)

	return article, nil
}

// Articles returns a snapshot of the main feed, in server order.
func (s *Store) Articles() []content.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyArticles(s.articles)
}

// BreakingNews returns a snapshot of the breaking-news feed.
func (s *Store) BreakingNews() []content.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyArticles(s.breakingNews)
}

// Favorites returns a snapshot of the favorites list.
func (s *Store) Favorites() []content.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyArticles(s.favorites)
}

func (s *Store) SelectedCategory() content.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selectedCategory
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

func (s *Store) BreakingLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.breakingLoading
}

// Error returns the message of the last failed main-feed fetch, or the empty
// string. It is cleared when a new fetch starts.
func (s *Store) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastError
}

func copyArticles(articles []content.Article) []content.Article {
	c := make([]content.Article, len(articles))
	copy(c, articles)

	return c
}
