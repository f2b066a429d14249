package tracker

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	maxTitleLength = 512
	minRating      = 0
	maxRating      = 5
)

var titleRules = []validation.Rule{
	validation.Required.Error("title is required"),
	validation.RuneLength(1, maxTitleLength).Error("title is too long"),
}

// NewBook is the input of AddBook.
type NewBook struct {
	Title        string `json:"title"`
	Author       string `json:"author"`
	TotalPages   *int   `json:"total_pages"`
	StartReading bool   `json:"start_reading"`
}

func (r NewBook) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, titleRules...),
		validation.Field(&r.TotalPages,
			validation.NilOrNotEmpty.Error("total pages must be a positive integer"),
			validation.Min(1).Error("total pages must be a positive integer"),
		),
	)
}

// BookEdit is the input of EditBook. A nil CurrentPage keeps the stored value;
// a nil TotalPages clears it.
type BookEdit struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	TotalPages  *int   `json:"total_pages"`
	CurrentPage *int   `json:"current_page"`
}

func (r BookEdit) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, titleRules...),
		validation.Field(&r.TotalPages,
			validation.NilOrNotEmpty.Error("total pages must be a positive integer"),
			validation.Min(1).Error("total pages must be a positive integer"),
		),
		validation.Field(&r.CurrentPage,
			validation.Min(0).Error("current page cannot be negative"),
		),
	)
}

// ProgressEntry is the input of RecordBookProgress.
type ProgressEntry struct {
	PagesRead    int  `json:"pages_read"`
	MinutesSpent *int `json:"minutes_spent"`
}

func (r ProgressEntry) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PagesRead,
			validation.Required.Error("pages read must be a positive integer"),
			validation.Min(1).Error("pages read must be a positive integer"),
		),
		validation.Field(&r.MinutesSpent,
			validation.NilOrNotEmpty.Error("minutes spent must be a positive integer"),
			validation.Min(1).Error("minutes spent must be a positive integer"),
		),
	)
}

// BookFinish is the input of FinishBook.
type BookFinish struct {
	Rating *int   `json:"rating"`
	Notes  string `json:"notes"`
}

func (r BookFinish) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating, ratingRules()...),
	)
}

// NewArticle is the input of AddArticle; EditArticle takes the same fields.
type NewArticle struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Source string `json:"source"`
	URL    string `json:"url"`
}

func (r NewArticle) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, titleRules...),
		validation.Field(&r.URL, is.URL.Error("url must be a valid URL")),
	)
}

// ArticleRead is the input of MarkArticleRead.
type ArticleRead struct {
	Rating       *int   `json:"rating"`
	Notes        string `json:"notes"`
	MinutesSpent *int   `json:"minutes_spent"`
}

func (r ArticleRead) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating, ratingRules()...),
		validation.Field(&r.MinutesSpent,
			validation.Min(0).Error("minutes spent cannot be negative"),
		),
	)
}

func ratingRules() []validation.Rule {
	return []validation.Rule{
		validation.Min(minRating).Error("rating must be between 0 and 5"),
		validation.Max(maxRating).Error("rating must be between 0 and 5"),
	}
}

func (r NewBook) normalized() NewBook {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	return r
}

func (r BookEdit) normalized() BookEdit {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	return r
}

func (r NewArticle) normalized() NewArticle {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	r.Source = strings.TrimSpace(r.Source)
	r.URL = strings.TrimSpace(r.URL)
	return r
}
