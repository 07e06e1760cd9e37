package ncnews

import (
	"errors"
	"html/template"
	"time"
)

// DefaultArticleImgURL is used for articles created without an image.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// ArticleSummary is the projection used in listings. It never carries the body.
type ArticleSummary struct {
	ArticleID     int64     `db:"article_id" json:"article_id"`
	Author        string    `db:"author" json:"author"`
	Title         string    `db:"title" json:"title"`
	Topic         string    `db:"topic" json:"topic"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	Votes         int64     `db:"votes" json:"votes"`
	ArticleImgURL string    `db:"article_img_url" json:"article_img_url"`
	CommentCount  int64     `db:"comment_count" json:"comment_count"`
}

// GetScore and Age make summaries rankable.
func (a *ArticleSummary) GetScore() int64 { return a.Votes }
func (a *ArticleSummary) Age() time.Time  { return a.CreatedAt }

// Article is the detail projection of an article.
type Article struct {
	ArticleSummary
	Body     string        `db:"body" json:"body"`
	BodyHTML template.HTML `db:"-" json:"body_html,omitempty"`
}

// NewArticle returns an article with no votes, created now.
func NewArticle(author, title, body, topic, imgURL string) *Article {
	if imgURL == "" {
		imgURL = DefaultArticleImgURL
	}

	return &Article{
		ArticleSummary: ArticleSummary{
			Author:        author,
			Title:         title,
			Topic:         topic,
			ArticleImgURL: imgURL,
			CreatedAt:     NowFunc().UTC(),
		},
		Body: body,
	}
}

// ArticleInput is the body of an article creation request.
type ArticleInput struct {
	Author        string `mapstructure:"author"`
	Title         string `mapstructure:"title"`
	Body          string `mapstructure:"body"`
	Topic         string `mapstructure:"topic"`
	ArticleImgURL string `mapstructure:"article_img_url"`
}

// NewArticleInput validates a decoded JSON body. Author, title, body and topic
// are required strings, article_img_url is optional.
func NewArticleInput(raw map[string]interface{}) (*ArticleInput, error) {
	in := &ArticleInput{}
	if err := decodeInput(raw, in); err != nil {
		return nil, InvalidInput(err)
	}

	if in.Author == "" || in.Title == "" || in.Body == "" || in.Topic == "" {
		return nil, InvalidInput(errors.New("author, title, body and topic are required"))
	}

	return in, nil
}

// Article builds the article to insert.
func (in *ArticleInput) Article() *Article {
	return NewArticle(in.Author, in.Title, in.Body, in.Topic, in.ArticleImgURL)
}
