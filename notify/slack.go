// Package notify announces new articles on external channels.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	ncnews "github.com/DTCoding01/be-nc-news"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

// Slack posts a message on a Slack incoming webhook for every new article.
type Slack struct {
	Logger     zerolog.Logger
	webhookURL string
	baseURL    string
	client     *http.Client
}

// NewSlack returns a notifier posting to webhookURL. baseURL prefixes the
// links to the articles.
func NewSlack(webhookURL string, baseURL string, logger zerolog.Logger) *Slack {
	return &Slack{
		Logger:     logger,
		webhookURL: webhookURL,
		baseURL:    baseURL,
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

// ArticleCreated is an ncnews.ArticleHook.
func (s *Slack) ArticleCreated(ctx context.Context, article *ncnews.Article) error {
	link := fmt.Sprintf("%s/api/articles/%d", s.baseURL, article.ArticleID)
	msg := &slack.WebhookMessage{
		Text: fmt.Sprintf("New article in *%s* by %s", article.Topic, article.Author),
		Attachments: []slack.Attachment{
			{
				Title:     article.Title,
				TitleLink: link,
				Text:      article.Body,
				ImageURL:  article.ArticleImgURL,
			},
		},
	}

	err := slack.PostWebhookCustomHTTPContext(ctx, s.webhookURL, s.client, msg)
	if err != nil {
		return fmt.Errorf("slack webhook: %w", err)
	}

	s.Logger.Debug().Int64("article_id", article.ArticleID).Msg("Posted article to slack")
	return nil
}
