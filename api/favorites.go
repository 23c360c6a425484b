package api

import (
	"context"

	"github.com/pkg/errors"

	"github.com/akhbar-news/akhbar/content"
)

type favoritePayload struct {
	ArticleID content.ArticleID `json:"article_id"`
}

// Favorites lists the articles the token's user has saved.
func (c *Client) Favorites(ctx context.Context, token string) ([]content.Article, error) {
	var data articlesPayload
	if err := c.get(ctx, "/api/favorites", token, &data); err != nil {
		return nil, errors.WithMessage(err, "listing favorites")
	}

	return c.validArticles(data.Articles), nil
}

// AddFavorite saves an article for the token's user.
func (c *Client) AddFavorite(ctx context.Context, id content.ArticleID, token string) error {
	err := c.post(ctx, "/api/favorites/add", token, favoritePayload{id}, nil)

	return errors.WithMessagef(err, "adding favorite %s", id)
}

// RemoveFavorite removes an article from the token's user's saved list.
func (c *Client) RemoveFavorite(ctx context.Context, id content.ArticleID, token string) error {
	err := c.post(ctx, "/api/favorites/remove", token, favoritePayload{id}, nil)

	return errors.WithMessagef(err, "removing favorite %s", id)
}
