package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/pkg/errors"

	"github.com/akhbar-news/akhbar/config"
	"github.com/akhbar-news/akhbar/content"
	"github.com/akhbar-news/akhbar/lang"
)

func init() {
	commands = append(commands, Command{
		Name:  "favorites",
		Desc:  "list saved articles, or add/remove one by id",
		Flags: flag.NewFlagSet("favorites", flag.ExitOnError),
		Run:   runFavorites,
	})
}

func runFavorites(cfg config.Config, args []string) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	if !a.sessions.IsAuthenticated() {
		return errors.New(lang.T("not_authorized"))
	}

	ctx := context.Background()
	token := a.sessions.Token()

	switch {
	case len(args) == 0:
		a.articles.FetchFavorites(ctx, token)
		printArticles(a.articles.Favorites())

		return nil
	case len(args) == 2 && args[0] == "add":
		a.articles.AddToFavorites(ctx, content.ArticleID(args[1]), token)
	case len(args) == 2 && args[0] == "remove":
		a.articles.RemoveFromFavorites(ctx, content.ArticleID(args[1]), token)
	default:
		return errors.New("usage: favorites [add|remove ID]")
	}

	// The store doesn't touch the session's favorite ids; refresh them from
	// the server's view of the list.
	a.articles.FetchFavorites(ctx, token)
	favorites := a.articles.Favorites()

	ids := make([]content.ArticleID, 0, len(favorites))
	for _, article := range favorites {
		ids = append(ids, article.ID)
	}
	a.sessions.UpdateFavorites(ids)

	fmt.Printf("favorites: %d\n", len(ids))

	return nil
}
