package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/akhbar-news/akhbar/api"
	"github.com/akhbar-news/akhbar/config"
	"github.com/akhbar-news/akhbar/content"
	"github.com/akhbar-news/akhbar/lang"
	"github.com/akhbar-news/akhbar/log"
)

func newTestStore(handler http.Handler) (*Store, func()) {
	srv := httptest.NewServer(handler)

	logger := log.WithStd(ioutil.Discard, "", 0)
	client := api.New(config.API{URL: srv.URL}, config.Timeout{}, logger)

	return New(client, config.API{}, logger), srv.Close
}

func articlesResponse(ids ...string) []byte {
	articles := make([]content.Article, 0, len(ids))
	for _, id := range ids {
		articles = append(articles, content.Article{
			ID:    content.ArticleID(id),
			GUID:  "guid-" + id,
			Title: "عنوان " + id,
		})
	}

	data, _ := json.Marshal(map[string]interface{}{
		"articles": articles,
		"total":    len(articles),
	})

	return data
}

func ids(articles []content.Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, string(a.ID))
	}

	return out
}

func TestFetchArticlesReplacesFeed(t *testing.T) {
	s, done := newTestStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(articlesResponse("a-1", "a-2"))
	}))
	defer done()

	s.FetchArticles(context.Background())

	if got := ids(s.Articles()); fmt.Sprint(got) != "[a-1 a-2]" {
		t.Errorf("Articles() = %v", got)
	}
	if s.Loading() {
		t.Error("Loading() = true after the fetch resolved")
	}
	if s.Error() != "" {
		t.Errorf("Error() = %q, want empty", s.Error())
	}
}

func TestFetchArticlesCategorySelection(t *testing.T) {
	var categories []string
	var mu sync.Mutex

	s, done := newTestStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		categories = append(categories, r.URL.Query().Get("category"))
		mu.Unlock()

		w.Write(articlesResponse("a-1"))
	}))
	defer done()

	ctx := context.Background()

	// The sentinel selection sends no filter.
	s.FetchArticles(ctx)

	// A named selection is transmitted, and becomes the default for
	// argument-less fetches.
	s.SetCategory(ctx, content.Sports)
	s.FetchArticles(ctx)

	// Switching back to the sentinel drops the filter again.
	s.SetCategory(ctx, content.All)

	mu.Lock()
	defer mu.Unlock()

	want := []string{"", "رياضة", "رياضة", ""}
	if fmt.Sprint(categories) != fmt.Sprint(want) {
		t.Errorf("category params = %q, want %q", categories, want)
	}

	if s.SelectedCategory() != content.All {
		t.Errorf("SelectedCategory() = %q", s.SelectedCategory())
	}
}

func TestFetchArticlesFailurePreservesStaleFeed(t *testing.T) {
	var fail int32

	s, done := newTestStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&fail) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}

		w.Write(articlesResponse("a-1", "a-2"))
	}))
	defer done()

	ctx := context.Background()

	s.FetchArticles(ctx)
	atomic.StoreInt32(&fail, 1)
	s.FetchArticles(ctx)

	if got := ids(s.Articles()); fmt.Sprint(got) != "[a-1 a-2]" {
		t.Errorf("stale feed not preserved: %v", got)
	}
	if s.Error() != lang.T("fetch_news_failed") {
		t.Errorf("Error() = %q, want %q", s.Error(), lang.T("fetch_news_failed"))
	}
	if s.Loading() {
		t.Error("Loading() = true after a failed fetch")
	}

	// A new successful fetch clears the error.
	atomic.StoreInt32(&fail, 0)
	s.FetchArticles(ctx)

	if s.Error() != "" {
		t.Errorf("Error() = %q after a successful fetch", s.Error())
	}
}

func TestFetchArticlesLastResolvedWins(t *testing.T) {
	firstStarted := make(chan struct{})
	firstRelease := make(chan struct{})
	var calls int32

	s, done := newTestStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(firstStarted)
			<-firstRelease
			w.Write(articlesResponse("first"))
			return
		}

		w.Write(articlesResponse("second"))
	}))
	defer done()

	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		s.FetchArticles(ctx)
	}()

	<-firstStarted

	go func() {
		defer wg.Done()
		s.FetchArticles(ctx)

		// The second request has fully resolved; only now may the first
		// respond.
		close(firstRelease)
	}()

	wg.Wait()

	// The first-issued request resolved last, so its payload is the final
	// state: last-resolved wins, not last-issued.
	if got := ids(s.Articles()); fmt.Sprint(got) != "[first]" {
		t.Errorf("Articles() = %v, want [first]", got)
	}
}

func TestFetchBreakingNewsFailureIsSilent(t *testing.T) {
	var fail int32

	s, done := newTestStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&fail) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}

		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("limit = %q, want 10", got)
		}

		w.Write(articlesResponse("b-1"))
	}))
	defer done()

	ctx := context.Background()

	s.FetchBreakingNews(ctx)
	atomic.StoreInt32(&fail, 1)
	s.FetchBreakingNews(ctx)

	if got := ids(s.BreakingNews()); fmt.Sprint(got) != "[b-1]" {
		t.Errorf("BreakingNews() = %v", got)
	}
	if s.BreakingLoading() {
		t.Error("BreakingLoading() = true after a failed fetch")
	}

	// Unlike the main feed, no error message is recorded.
	if s.Error() != "" {
		t.Errorf("Error() = %q, want empty", s.Error())
	}
}

func TestFetchFavoritesFailureKeepsList(t *testing.T) {
	var fail int32

	s, done := newTestStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&fail) == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}

		w.Write(articlesResponse("f-1", "f-2"))
	}))
	defer done()

	ctx := context.Background()

	s.FetchFavorites(ctx, "token-1")
	atomic.StoreInt32(&fail, 1)
	s.FetchFavorites(ctx, "token-1")

	if got := ids(s.Favorites()); fmt.Sprint(got) != "[f-1 f-2]" {
		t.Errorf("Favorites() = %v", got)
	}
}

func TestRemoveFromFavorites(t *testing.T) {
	t.Run("success removes locally", func(t *testing.T) {
		s, done := newTestStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/favorites/remove" {
				w.Write([]byte(`{"status": "ok"}`))
				return
			}

			w.Write(articlesResponse("f-1", "f-2"))
		}))
		defer done()

		ctx := context.Background()

		s.FetchFavorites(ctx, "token-1")
		s.RemoveFromFavorites(ctx, "f-1", "token-1")

		if got := ids(s.Favorites()); fmt.Sprint(got) != "[f-2]" {
			t.Errorf("Favorites() = %v, want [f-2]", got)
		}
	})

	t.Run("failure leaves the list", func(t *testing.T) {
		s, done := newTestStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/favorites/remove" {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}

			w.Write(articlesResponse("f-1", "f-2"))
		}))
		defer done()

		ctx := context.Background()

		s.FetchFavorites(ctx, "token-1")
		s.RemoveFromFavorites(ctx, "f-1", "token-1")

		if got := ids(s.Favorites()); fmt.Sprint(got) != "[f-1 f-2]" {
			t.Errorf("Favorites() = %v, want unchanged", got)
		}
	})
}

func TestSearchArticles(t *testing.T) {
	t.Run("no minimum length", func(t *testing.T) {
		var path string

		s, done := newTestStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			w.Write(articlesResponse("s-1"))
		}))
		defer done()

		// A single character goes through; minimum length is a view-layer
		// rule.
		result := s.SearchArticles(context.Background(), "a")

		if path != "/api/news/search/a" {
			t.Errorf("path = %q", path)
		}
		if got := ids(result); fmt.Sprint(got) != "[s-1]" {
			t.Errorf("result = %v", got)
		}

		// Search has no store-state side effect.
		if len(s.Articles()) != 0 {
			t.Error("SearchArticles() touched the main feed")
		}
	})

	t.Run("failure returns an empty list", func(t *testing.T) {
		s, done := newTestStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer done()

		result := s.SearchArticles(context.Background(), "query")
		if result == nil || len(result) != 0 {
			t.Errorf("result = %v, want empty non-nil list", result)
		}
	})
}

func TestArticleCache(t *testing.T) {
	var calls int32

	s, done := newTestStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)

		data, _ := json.Marshal(content.Article{ID: "a-1", GUID: "guid-a-1", Title: "عنوان"})
		w.Write(data)
	}))
	defer done()

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		article, err := s.Article(ctx, "a-1")
		if err != nil {
			t.Fatalf("Article() error = %+v", err)
		}
		if article.ID != "a-1" {
			t.Errorf("article = %+v", article)
		}
	}

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("server calls = %d, want 1", n)
	}
}

func TestArticleNotFound(t *testing.T) {
	s, done := newTestStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "الخبر غير موجود"}`))
	}))
	defer done()

	if _, err := s.Article(context.Background(), "missing"); !content.IsNoContent(err) {
		t.Errorf("Article() error = %v, want ErrNoContent", err)
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	s, done := newTestStore(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(articlesResponse("a-1", "a-2"))
	}))
	defer done()

	s.FetchArticles(context.Background())

	snapshot := s.Articles()
	snapshot[0].ID = "tampered"

	if s.Articles()[0].ID != "a-1" {
		t.Error("Articles() exposes internal state")
	}
}
