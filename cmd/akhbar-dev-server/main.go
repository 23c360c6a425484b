// akhbar-dev-server is a small stand-in for the remote news service, meant
// for offline development of the client. It serves fixture articles over the
// real API routes and keeps users and favorites in memory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/go-chi/chi"

	"github.com/akhbar-news/akhbar/content"
	"github.com/akhbar-news/akhbar/log"
)

var (
	address = flag.String("address", ":8000", "listen address")
	secret  = flag.String("secret", "dev-secret", "token signing secret")
)

func main() {
	flag.Parse()

	logger := log.WithStd(os.Stderr, "", 0)

	s := &server{
		log:      logger,
		secret:   []byte(*secret),
		articles: fixtureArticles(),
		users:    map[string]*account{},
	}

	logger.Infof("akhbar-dev-server listening on %s", *address)
	if err := http.ListenAndServe(*address, s.router()); err != nil {
		logger.Printf("serving: %v", err)
		os.Exit(1)
	}
}

type account struct {
	user     content.User
	password string
}

type server struct {
	log    log.Log
	secret []byte

	mu       sync.Mutex
	articles []content.Article
	users    map[string]*account
}

func (s *server) router() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/news", s.listNews)
		r.Get("/news/search/{query}", s.searchNews)
		r.Get("/news/{id}", s.getArticle)
		r.Get("/breaking-news", s.breakingNews)
		r.Get("/categories", s.listCategories)

		r.Post("/auth/login", s.login)
		r.Post("/auth/register", s.register)
		r.Get("/auth/me", s.authorized(s.me))

		r.Get("/favorites", s.authorized(s.listFavorites))
		r.Post("/favorites/add", s.authorized(s.addFavorite))
		r.Post("/favorites/remove", s.authorized(s.removeFavorite))
	})

	return r
}

func (s *server) listNews(w http.ResponseWriter, r *http.Request) {
	category := content.Category(r.URL.Query().Get("category"))
	limit := intParam(r, "limit", 50)

	s.mu.Lock()
	defer s.mu.Unlock()

	articles := []content.Article{}
	for _, a := range s.articles {
		if category.IsAll() || a.Category == category {
			articles = append(articles, a)
		}
	}

	writeArticles(w, articles, limit)
}

func (s *server) getArticle(w http.ResponseWriter, r *http.Request) {
	id := content.ArticleID(chi.URLParam(r, "id"))

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.articles {
		if a.ID == id {
			writeJSON(w, http.StatusOK, a)
			return
		}
	}

	writeDetail(w, http.StatusNotFound, "الخبر غير موجود")
}

func (s *server) searchNews(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(chi.URLParam(r, "query"))
	limit := intParam(r, "limit", 30)

	s.mu.Lock()
	defer s.mu.Unlock()

	articles := []content.Article{}
	for _, a := range s.articles {
		if strings.Contains(strings.ToLower(a.Title), query) ||
			strings.Contains(strings.ToLower(a.Description), query) {
			articles = append(articles, a)
		}
	}

	writeArticles(w, articles, limit)
}

func (s *server) breakingNews(w http.ResponseWriter, r *http.Request) {
	limit := intParam(r, "limit", 10)

	s.mu.Lock()
	defer s.mu.Unlock()

	articles := []content.Article{}
	for _, a := range s.articles {
		a.IsBreaking = true
		articles = append(articles, a)
	}

	writeArticles(w, articles, limit)
}

func (s *server) listCategories(w http.ResponseWriter, r *http.Request) {
	type info struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Icon string `json:"icon"`
	}

	ids := []string{"all", "urgent", "politics", "economy", "sports", "tech", "health", "culture", "SE", "international"}

	categories := make([]info, 0, len(ids))
	for i, c := range content.Categories() {
		categories = append(categories, info{ID: ids[i], Name: c.String(), Icon: "newspaper"})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (s *server) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "طلب غير صالح")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.users[body.Email]
	if !ok || acc.password != body.Password {
		writeDetail(w, http.StatusUnauthorized, "بيانات الدخول غير صحيحة")
		return
	}

	s.writeAuth(w, acc.user)
}

func (s *server) register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "طلب غير صالح")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[body.Email]; ok {
		writeDetail(w, http.StatusBadRequest, "البريد الإلكتروني مسجل مسبقاً")
		return
	}

	acc := &account{
		user: content.User{
			ID:        fmt.Sprintf("u-%d", len(s.users)+1),
			Email:     body.Email,
			Name:      body.Name,
			Favorites: []content.ArticleID{},
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		},
		password: body.Password,
	}
	s.users[body.Email] = acc

	s.writeAuth(w, acc.user)
}

func (s *server) me(w http.ResponseWriter, r *http.Request, acc *account) {
	writeJSON(w, http.StatusOK, acc.user)
}

func (s *server) listFavorites(w http.ResponseWriter, r *http.Request, acc *account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles := []content.Article{}
	for _, a := range s.articles {
		if acc.user.HasFavorite(a.ID) {
			articles = append(articles, a)
		}
	}

	writeArticles(w, articles, len(articles))
}

func (s *server) addFavorite(w http.ResponseWriter, r *http.Request, acc *account) {
	id, ok := favoriteID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !acc.user.HasFavorite(id) {
		acc.user.Favorites = append(acc.user.Favorites, id)
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) removeFavorite(w http.ResponseWriter, r *http.Request, acc *account) {
	id, ok := favoriteID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := acc.user.Favorites[:0]
	for _, f := range acc.user.Favorites {
		if f != id {
			kept = append(kept, f)
		}
	}
	acc.user.Favorites = kept

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func favoriteID(w http.ResponseWriter, r *http.Request) (content.ArticleID, bool) {
	var body struct {
		ArticleID content.ArticleID `json:"article_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ArticleID == "" {
		writeDetail(w, http.StatusBadRequest, "طلب غير صالح")
		return "", false
	}

	return body.ArticleID, true
}

func (s *server) authorized(next func(http.ResponseWriter, *http.Request, *account)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeDetail(w, http.StatusUnauthorized, "غير مصرح")
			return
		}

		claims := &jwt.StandardClaims{}
		_, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims, func(*jwt.Token) (interface{}, error) {
			return s.secret, nil
		})
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "غير مصرح")
			return
		}

		s.mu.Lock()
		acc, ok := s.users[claims.Subject]
		s.mu.Unlock()

		if !ok {
			writeDetail(w, http.StatusUnauthorized, "غير مصرح")
			return
		}

		next(w, r, acc)
	}
}

func (s *server) writeAuth(w http.ResponseWriter, user content.User) {
	claims := jwt.StandardClaims{
		Subject:   user.Email,
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "خطأ داخلي")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": token,
		"user":         user,
	})
}

func writeArticles(w http.ResponseWriter, articles []content.Article, limit int) {
	total := len(articles)
	if limit > 0 && limit < len(articles) {
		articles = articles[:limit]
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"articles": articles,
		"total":    total,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func intParam(r *http.Request, name string, def int) int {
	if v := r.URL.Query().Get(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}

	return def
}
