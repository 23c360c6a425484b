package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/akhbar-news/akhbar/api"
	"github.com/akhbar-news/akhbar/config"
	"github.com/akhbar-news/akhbar/content"
	"github.com/akhbar-news/akhbar/log"
	"github.com/akhbar-news/akhbar/session"
	"github.com/akhbar-news/akhbar/store"
)

// app wires the client together: config, logger, api client and the two
// stores, with the session restored from storage.
type app struct {
	log      log.Log
	client   *api.Client
	storage  session.BoltStorage
	sessions *session.Store
	articles *store.Store
}

func newApp(cfg config.Config) (app, error) {
	logger := log.WithLogrus(cfg.Log)

	if dir := filepath.Dir(cfg.Storage.Path); dir != "" {
		if err := os.MkdirAll(dir, 0770); err != nil {
			return app{}, errors.Wrapf(err, "creating storage directory %s", dir)
		}
	}

	storage, err := session.NewBoltStorage(cfg.Storage.Path)
	if err != nil {
		return app{}, err
	}

	client := api.New(cfg.API, cfg.Timeout, logger)

	sessions := session.New(client, storage, logger)
	sessions.LoadToken()

	return app{
		log:      logger,
		client:   client,
		storage:  storage,
		sessions: sessions,
		articles: store.New(client, cfg.API, logger),
	}, nil
}

func (a app) close() {
	a.storage.Close()
}

func printArticles(articles []content.Article) {
	for _, a := range articles {
		line := fmt.Sprintf("%s — %s [%s]", a.DisplayTitle(), a.Source, a.Category)
		if t, ok := a.Published(); ok {
			line += " " + t.Format("2006-01-02 15:04")
		}

		fmt.Println(line)
		fmt.Printf("    id: %s  %s\n", a.ID, a.Link)
	}

	if len(articles) == 0 {
		fmt.Println("(no articles)")
	}
}
