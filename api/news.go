package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/akhbar-news/akhbar/content"
)

// Articles lists articles, optionally filtered by category. The "all"
// sentinel is a client-side value and is never transmitted; requesting it is
// the same as requesting no filter. A non-positive limit leaves the page size
// to the server.
func (c *Client) Articles(ctx context.Context, category content.Category, limit int) ([]content.Article, error) {
	v := url.Values{}
	if !category.IsAll() {
		v.Set("category", category.String())
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/news"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}

	var data articlesPayload
	if err := c.get(ctx, path, "", &data); err != nil {
		return nil, errors.WithMessage(err, "listing articles")
	}

	return c.validArticles(data.Articles), nil
}

// BreakingNews lists the latest breaking articles, processed by the
// translation and summarization pipeline.
func (c *Client) BreakingNews(ctx context.Context, limit int) ([]content.Article, error) {
	if limit <= 0 {
		limit = 10
	}

	var data articlesPayload
	if err := c.get(ctx, "/api/breaking-news?limit="+strconv.Itoa(limit), "", &data); err != nil {
		return nil, errors.WithMessage(err, "listing breaking news")
	}

	return c.validArticles(data.Articles), nil
}

// Article fetches a single article by id. content.ErrNoContent is returned
// if the service doesn't know the id.
func (c *Client) Article(ctx context.Context, id content.ArticleID) (content.Article, error) {
	var article content.Article
	err := c.get(ctx, "/api/news/"+url.PathEscape(string(id)), "", &article)
	if err != nil {
		if StatusOf(err) == http.StatusNotFound {
			return content.Article{}, content.ErrNoContent
		}

		return content.Article{}, errors.WithMessagef(err, "getting article %s", id)
	}

	if err := article.Validate(); err != nil {
		return content.Article{}, errors.WithMessagef(err, "validating article %s", id)
	}

	return article, nil
}

// Search performs a free-text search over titles and descriptions.
func (c *Client) Search(ctx context.Context, query string) ([]content.Article, error) {
	var data articlesPayload
	if err := c.get(ctx, "/api/news/search/"+url.PathEscape(query), "", &data); err != nil {
		return nil, errors.WithMessagef(err, "searching for %q", query)
	}

	return c.validArticles(data.Articles), nil
}

// CategoryInfo describes a category as presented by the service, pairing the
// stable id with its display name.
type CategoryInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Categories lists the categories known to the service.
func (c *Client) Categories(ctx context.Context) ([]CategoryInfo, error) {
	var data struct {
		Categories []CategoryInfo `json:"categories"`
	}
	if err := c.get(ctx, "/api/categories", "", &data); err != nil {
		return nil, errors.WithMessage(err, "listing categories")
	}

	return data.Categories, nil
}
