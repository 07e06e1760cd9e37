package ncnews

import (
	"errors"
	"time"
)

// Comment is a comment posted on an article.
type Comment struct {
	CommentID int64     `db:"comment_id" json:"comment_id"`
	ArticleID int64     `db:"article_id" json:"article_id"`
	Author    string    `db:"author" json:"author"`
	Body      string    `db:"body" json:"body"`
	Votes     int64     `db:"votes" json:"votes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func NewComment(articleID int64, author string, body string) *Comment {
	return &Comment{
		ArticleID: articleID,
		Author:    author,
		Body:      body,
		CreatedAt: NowFunc().UTC(),
	}
}

// CommentInput is the body of a comment creation request.
type CommentInput struct {
	Username string `mapstructure:"username"`
	Body     string `mapstructure:"body"`
}

// NewCommentInput validates a decoded JSON body. Unknown keys are ignored, but
// username and body must both be non empty strings.
func NewCommentInput(raw map[string]interface{}) (*CommentInput, error) {
	in := &CommentInput{}
	if err := decodeInput(raw, in); err != nil {
		return nil, InvalidCommentInput(err)
	}

	if in.Username == "" || in.Body == "" {
		return nil, InvalidCommentInput(errors.New("username and body are required"))
	}

	return in, nil
}
