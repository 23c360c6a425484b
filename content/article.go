package content

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
)

// ArticleID is the stable identifier of an article within the remote service.
type ArticleID string

// Article represents a single news item, as returned by the remote service.
// Titles and descriptions arrive in the source language; when the translation
// pipeline has processed the item, the translated fields carry the Arabic
// rendition and IsTranslated is set.
type Article struct {
	ID             ArticleID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Link           string    `json:"link"`
	Source         string    `json:"source"`
	SourceLanguage string    `json:"source_language"`
	Category       Category  `json:"category"`
	Image          string    `json:"image,omitempty"`
	PublishedDate  string    `json:"published_date,omitempty"`
	GUID           string    `json:"guid"`

	IsTranslated          bool   `json:"is_translated"`
	IsSummarized          bool   `json:"is_summarized"`
	Summary               string `json:"summary,omitempty"`
	TranslatedTitle       string `json:"translated_title,omitempty"`
	TranslatedDescription string `json:"translated_description,omitempty"`

	IsBreaking bool `json:"is_breaking,omitempty"`
}

// Validate checks whether all required fields have been provided.
func (a Article) Validate() error {
	if a.ID == "" {
		return NewValidationError(errors.New("missing article id"))
	}

	if a.GUID == "" {
		return NewValidationError(errors.New("missing article guid"))
	}

	return nil
}

// Published returns the publication time of the article. The remote service
// passes dates through from upstream feeds, so the format varies by source.
// The second return value is false if no date was provided, or if it cannot
// be parsed.
func (a Article) Published() (time.Time, bool) {
	if a.PublishedDate == "" {
		return time.Time{}, false
	}

	t, err := dateparse.ParseAny(a.PublishedDate)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// DisplayTitle returns the translated title when one is available, and the
// original title otherwise.
func (a Article) DisplayTitle() string {
	if a.IsTranslated && a.TranslatedTitle != "" {
		return a.TranslatedTitle
	}

	return a.Title
}

// DisplayDescription returns the translated description when one is
// available, and the original description otherwise.
func (a Article) DisplayDescription() string {
	if a.IsTranslated && a.TranslatedDescription != "" {
		return a.TranslatedDescription
	}

	return a.Description
}

func (a Article) String() string {
	return fmt.Sprintf("%s: %s", a.ID, a.DisplayTitle())
}
