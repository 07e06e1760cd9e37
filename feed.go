package ncnews

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gorilla/feeds"
)

const feedSize = 20

// Feed builds an RSS feed of the latest articles, optionally restricted to a
// topic. baseURL is used to build the links of the items.
func (b *Board) Feed(ctx context.Context, topic string, baseURL string) (*feeds.Feed, error) {
	page, err := b.ListArticles(ctx, ArticleListParams{Topic: topic, Limit: strconv.Itoa(feedSize)})
	if err != nil {
		return nil, err
	}

	feed := &feeds.Feed{
		Title:       "NC News",
		Link:        &feeds.Link{Href: baseURL + "/api/articles"},
		Description: "Latest articles",
		Created:     NowFunc(),
	}
	if topic != "" {
		feed.Title = "NC News: " + topic
		feed.Link.Href += "?topic=" + url.QueryEscape(topic)
		feed.Description = "Latest articles about " + topic
	}

	for _, a := range page.Articles {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          strconv.FormatInt(a.ArticleID, 10),
			Title:       a.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/api/articles/%d", baseURL, a.ArticleID)},
			Author:      &feeds.Author{Name: a.Author},
			Description: fmt.Sprintf("%s, %d votes, %d comments", a.Topic, a.Votes, a.CommentCount),
			Created:     a.CreatedAt,
		})
	}

	return feed, nil
}
