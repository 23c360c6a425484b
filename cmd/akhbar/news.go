package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/akhbar-news/akhbar/config"
	"github.com/akhbar-news/akhbar/content"
	"github.com/akhbar-news/akhbar/lang"
	"github.com/akhbar-news/akhbar/store"
)

func init() {
	commands = append(commands, Command{
		Name:  "news",
		Desc:  "show the main feed, optionally for a category",
		Flags: flag.NewFlagSet("news", flag.ExitOnError),
		Run:   runNews,
	})

	commands = append(commands, Command{
		Name:  "breaking",
		Desc:  "show the breaking-news feed",
		Flags: flag.NewFlagSet("breaking", flag.ExitOnError),
		Run:   runBreaking,
	})

	commands = append(commands, Command{
		Name:  "search",
		Desc:  "search articles; with no arguments, reads queries interactively",
		Flags: flag.NewFlagSet("search", flag.ExitOnError),
		Run:   runSearch,
	})

	commands = append(commands, Command{
		Name:  "article",
		Desc:  "show a single article by id",
		Flags: flag.NewFlagSet("article", flag.ExitOnError),
		Run:   runArticle,
	})

	commands = append(commands, Command{
		Name:  "categories",
		Desc:  "list the categories known to the service",
		Flags: flag.NewFlagSet("categories", flag.ExitOnError),
		Run:   runCategories,
	})
}

func runNews(cfg config.Config, args []string) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := context.Background()

	if len(args) > 0 {
		category := content.Category(args[0])
		if !category.Valid() {
			return errors.Errorf("unknown category %q", args[0])
		}

		a.articles.SetCategory(ctx, category)
	} else {
		a.articles.FetchArticles(ctx)
	}

	if msg := a.articles.Error(); msg != "" {
		return errors.New(msg)
	}

	printArticles(a.articles.Articles())

	return nil
}

func runBreaking(cfg config.Config, args []string) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	a.articles.FetchBreakingNews(context.Background())
	printArticles(a.articles.BreakingNews())

	return nil
}

func runSearch(cfg config.Config, args []string) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := context.Background()

	if len(args) > 0 {
		return search(ctx, a.articles, cfg.UI, strings.Join(args, " "))
	}

	return interactiveSearch(ctx, a.articles, cfg.UI)
}

func search(ctx context.Context, articles *store.Store, ui config.UI, query string) error {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < ui.MinSearchRunes {
		return errors.New(lang.T("search_too_short"))
	}

	printArticles(articles.SearchArticles(ctx, query))

	return nil
}

// interactiveSearch reads queries line by line and fires a search only after
// the configured quiet period, the way the view layer debounces keystrokes.
func interactiveSearch(ctx context.Context, articles *store.Store, ui config.UI) error {
	debouncer := store.NewDebouncer(ui.Converted.SearchDebounce)
	defer debouncer.Stop()

	var mu sync.Mutex

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("enter a query per line; an empty line quits")

	for scanner.Scan() {
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			break
		}

		if utf8.RuneCountInString(query) < ui.MinSearchRunes {
			fmt.Println(lang.T("search_too_short"))
			continue
		}

		debouncer.Trigger(func() {
			result := articles.SearchArticles(ctx, query)

			mu.Lock()
			printArticles(result)
			mu.Unlock()
		})
	}

	return errors.Wrap(scanner.Err(), "reading queries")
}

func runArticle(cfg config.Config, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: article ID")
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	article, err := a.articles.Article(context.Background(), content.ArticleID(args[0]))
	if content.IsNoContent(err) {
		return errors.New(lang.T("article_not_found"))
	} else if err != nil {
		return err
	}

	fmt.Println(article.DisplayTitle())
	if article.IsSummarized && article.Summary != "" {
		fmt.Println(article.Summary)
	} else {
		fmt.Println(article.DisplayDescription())
	}
	fmt.Printf("%s (%s) %s\n", article.Source, article.SourceLanguage, article.Link)

	return nil
}

func runCategories(cfg config.Config, args []string) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	categories, err := a.client.Categories(context.Background())
	if err != nil {
		return err
	}

	for _, c := range categories {
		fmt.Printf("%-15s %s\n", c.ID, c.Name)
	}

	return nil
}
