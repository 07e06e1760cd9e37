// Package seed holds the fixture data used by the development database and
// the tests.
package seed

import (
	"context"
	"fmt"
	"time"

	ncnews "github.com/DTCoding01/be-nc-news"
)

const (
	mitchImgURL = "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"
	catsImgURL  = "https://images.pexels.com/photos/5416662/pexels-photo-5416662.jpeg?w=700&h=700"
)

var Topics = []*ncnews.Topic{
	{Slug: "mitch", Description: "The man, the Mitch, the legend"},
	{Slug: "cats", Description: "Not dogs"},
	{Slug: "paper", Description: "what books are made of"},
}

var Users = []*ncnews.User{
	{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
	{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
	{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
	{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
}

type article struct {
	title, topic, author, body string
	createdAt                  string
	votes                      int64
	imgURL                     string
}

// Articles are inserted in order, the first one gets the id 1.
var articles = []article{
	{"Living in the shadow of a great man", "mitch", "butter_bridge", "I find this existence challenging", "2020-07-09T20:11:00Z", 100, mitchImgURL},
	{"Sony Vaio; or, The Laptop", "mitch", "icellusedkars", "Call me Mitchell. Some years ago, never mind how long precisely, having little or no money in my purse.", "2020-10-16T05:03:00Z", 0, mitchImgURL},
	{"Eight pug gifs that remind me of mitch", "mitch", "icellusedkars", "some gifs", "2020-11-03T09:12:00Z", 0, mitchImgURL},
	{"Student SUES Mitch!", "mitch", "rogersop", "We all love Mitch and his wonderful, unique typing style.", "2020-05-06T01:14:00Z", 0, mitchImgURL},
	{"UNCOVERED: catspiracy to bring down democracy", "cats", "rogersop", "Bastet walks amongst us, and the cats are taking arms!", "2020-08-03T13:14:00Z", 0, catsImgURL},
	{"A", "mitch", "icellusedkars", "Delicious tin of cat food", "2020-10-18T01:00:00Z", 0, mitchImgURL},
	{"Z", "mitch", "icellusedkars", "I was hungry.", "2020-01-07T14:08:00Z", 0, mitchImgURL},
	{"Does Mitch predate civilisation?", "mitch", "icellusedkars", "Archaeologists have uncovered a gigantic statue from the dawn of humanity, and it has an uncanny resemblance to Mitch.", "2020-04-17T01:08:00Z", 0, mitchImgURL},
	{"They're not exactly dogs, are they?", "mitch", "butter_bridge", "Well? Think about it.", "2020-06-06T09:10:00Z", 0, mitchImgURL},
	{"Seven inspirational thought leaders from Manchester UK", "mitch", "rogersop", "Who are we kidding, there is only one, and it's Mitch!", "2020-05-14T04:15:00Z", 0, mitchImgURL},
	{"Am I a cat?", "mitch", "icellusedkars", "Having run out of ideas for articles, I am staring at the wall blankly, like a cat.", "2020-01-15T22:21:00Z", 0, mitchImgURL},
	{"Moustache", "mitch", "butter_bridge", "Have you seen the size of that thing?", "2020-10-11T11:24:00Z", 0, mitchImgURL},
	{"Another article about Mitch", "mitch", "butter_bridge", "There will never be enough articles about Mitch!", "2020-10-11T11:24:00Z", 0, mitchImgURL},
}

type comment struct {
	articleID int64
	author    string
	body      string
	votes     int64
	createdAt string
}

var comments = []comment{
	{9, "butter_bridge", "Oh, I've got compassion running out of my ears. You're a sucker for a pretty face.", 16, "2020-04-06T12:17:00Z"},
	{1, "butter_bridge", "The beautiful thing about treasure is that it exists. Got to find out what kind of sheets these are; not cotton, not rayon, silky.", 14, "2020-10-31T03:03:00Z"},
	{1, "icellusedkars", "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide, but, uh, call me crazy, on you it works.", 100, "2020-03-01T01:13:00Z"},
	{1, "icellusedkars", "I carry a log, yes. Is it funny to you? It is not to me.", -100, "2020-02-23T12:01:00Z"},
	{1, "icellusedkars", "I hate streaming noses", 0, "2020-11-03T21:00:00Z"},
	{1, "icellusedkars", "I hate streaming eyes even more", 0, "2020-04-11T21:02:00Z"},
	{1, "icellusedkars", "Lobster pot", 0, "2020-05-15T20:19:00Z"},
	{1, "icellusedkars", "Delicious crackerbreads", 0, "2020-04-14T20:19:00Z"},
	{1, "icellusedkars", "Superficially charming", 0, "2020-01-01T03:08:00Z"},
	{3, "icellusedkars", "git push origin master", 0, "2020-06-20T07:24:00Z"},
	{3, "icellusedkars", "Ambidextrous marsupial", 0, "2020-09-19T23:10:00Z"},
	{1, "icellusedkars", "Massive intercranial brain haemorrhage", 0, "2020-03-02T07:10:00Z"},
	{1, "icellusedkars", "Fruit pastilles", 0, "2020-06-15T10:25:00Z"},
	{5, "icellusedkars", "What do you see? I have no idea where this will lead us. This place I speak of, is known as the Black Lodge.", 16, "2020-06-09T05:00:00Z"},
	{5, "butter_bridge", "I am 100% sure that we're not completely sure.", 1, "2020-11-24T00:08:00Z"},
	{6, "butter_bridge", "This is a bad article name", 1, "2020-10-11T15:23:00Z"},
	{9, "icellusedkars", "The owls are not what they seem.", 20, "2020-03-14T17:02:00Z"},
	{1, "butter_bridge", "This morning, I showered for nine minutes.", 16, "2020-07-21T00:20:00Z"},
}

// ArticleCount and CommentCount are the number of seeded rows.
var (
	ArticleCount = len(articles)
	CommentCount = len(comments)
)

// Run inserts every fixture through the store, which must be empty. Articles
// and comments are numbered from 1 in the order they are declared.
func Run(ctx context.Context, store ncnews.Store) error {
	for _, t := range Topics {
		if err := store.InsertTopic(ctx, t); err != nil {
			return fmt.Errorf("topic %s: %w", t.Slug, err)
		}
	}

	for _, u := range Users {
		if err := store.InsertUser(ctx, u); err != nil {
			return fmt.Errorf("user %s: %w", u.Username, err)
		}
	}

	for i, a := range articles {
		createdAt, err := time.Parse(time.RFC3339, a.createdAt)
		if err != nil {
			return err
		}

		article := ncnews.NewArticle(a.author, a.title, a.body, a.topic, a.imgURL)
		article.CreatedAt = createdAt
		article.Votes = a.votes
		if err := store.InsertArticle(ctx, article); err != nil {
			return fmt.Errorf("article %d: %w", i+1, err)
		}
	}

	for i, c := range comments {
		createdAt, err := time.Parse(time.RFC3339, c.createdAt)
		if err != nil {
			return err
		}

		comment := ncnews.NewComment(c.articleID, c.author, c.body)
		comment.CreatedAt = createdAt
		comment.Votes = c.votes
		if err := store.InsertComment(ctx, comment); err != nil {
			return fmt.Errorf("comment %d: %w", i+1, err)
		}
	}

	return nil
}
