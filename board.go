package ncnews

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// An ArticleHook is called after an article has been created.
type ArticleHook func(ctx context.Context, article *Article) error

// Board implements every operation of the API on top of a Store. Operations
// fail with an *Error, or with an error that AsError maps to one.
type Board struct {
	Logger       zerolog.Logger
	store        Store
	articleHooks []ArticleHook
}

func NewBoard(store Store, logger zerolog.Logger) *Board {
	return &Board{
		Logger: logger,
		store:  store,
	}
}

// OnArticleCreated registers a hook run after each successful AddArticle.
// Hooks failures are logged and do not fail the creation.
func (b *Board) OnArticleCreated(hook ArticleHook) {
	b.articleHooks = append(b.articleHooks, hook)
}

// ArticlePage is a page of articles along with the size of the whole
// filtered set.
type ArticlePage struct {
	Articles   []*ArticleSummary `json:"articles"`
	TotalCount int64             `json:"total_count"`
	Query      *ArticleListQuery `json:"-"`
}

// ListArticles validates p and returns the requested page of articles. An
// empty page is not an error.
func (b *Board) ListArticles(ctx context.Context, p ArticleListParams) (*ArticlePage, error) {
	q, err := NewArticleListQuery(p)
	if err != nil {
		return nil, err
	}

	total, err := b.store.CountArticles(ctx, q)
	if err != nil {
		return nil, err
	}

	articles, err := b.store.ListArticles(ctx, q)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []*ArticleSummary{}
	}

	return &ArticlePage{Articles: articles, TotalCount: total, Query: q}, nil
}

// GetArticle returns the detail of an article, body included.
func (b *Board) GetArticle(ctx context.Context, id int64) (*Article, error) {
	article, err := b.store.FindArticle(ctx, id)
	if err != nil {
		return nil, notFoundOr("", err)
	}

	return withBodyHTML(article), nil
}

// AddArticle validates raw and inserts the article it describes. Unknown
// authors or topics are reported by the store as foreign key violations.
func (b *Board) AddArticle(ctx context.Context, raw map[string]interface{}) (*Article, error) {
	in, err := NewArticleInput(raw)
	if err != nil {
		return nil, err
	}

	article := in.Article()
	err = b.store.InsertArticle(ctx, article)
	if err != nil {
		return nil, err
	}

	created, err := b.store.FindArticle(ctx, article.ArticleID)
	if err != nil {
		return nil, err
	}

	for _, h := range b.articleHooks {
		if err := h(ctx, created); err != nil {
			b.Logger.Warn().Err(err).Int64("article_id", created.ArticleID).Msg("article hook failed")
		}
	}

	return withBodyHTML(created), nil
}

// UpdateArticleVotes adds the inc_votes delta of raw to the article votes.
func (b *Board) UpdateArticleVotes(ctx context.Context, id int64, raw map[string]interface{}) (*Article, error) {
	delta, err := NewVoteInput(raw)
	if err != nil {
		return nil, err
	}

	if _, err := b.ensureArticle(ctx, id); err != nil {
		return nil, err
	}

	if err := b.store.UpdateArticleVotes(ctx, id, delta); err != nil {
		return nil, err
	}

	article, err := b.store.FindArticle(ctx, id)
	if err != nil {
		return nil, notFoundOr("article", err)
	}

	return withBodyHTML(article), nil
}

// DeleteArticle removes an article and all of its comments.
func (b *Board) DeleteArticle(ctx context.Context, id int64) error {
	if _, err := b.ensureArticle(ctx, id); err != nil {
		return err
	}

	return b.store.DeleteArticle(ctx, id)
}

// CommentPage is the result of a comment listing.
type CommentPage struct {
	Comments []*Comment        `json:"comments"`
	Query    *CommentListQuery `json:"-"`
}

// ListComments returns the comments of an article, newest first. Without limit
// and page, all of them are returned. It fails with a plain "not found" if the
// article does not exist, an empty page is returned as is.
func (b *Board) ListComments(ctx context.Context, articleID int64, limit, page string) (*CommentPage, error) {
	q, err := NewCommentListQuery(articleID, limit, page)
	if err != nil {
		return nil, err
	}

	if _, err := b.store.FindArticle(ctx, articleID); err != nil {
		return nil, notFoundOr("", err)
	}

	comments, err := b.store.ListComments(ctx, q)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*Comment{}
	}

	return &CommentPage{Comments: comments, Query: q}, nil
}

// AddComment posts a comment on an existing article.
func (b *Board) AddComment(ctx context.Context, articleID int64, raw map[string]interface{}) (*Comment, error) {
	in, err := NewCommentInput(raw)
	if err != nil {
		return nil, err
	}

	if _, err := b.ensureArticle(ctx, articleID); err != nil {
		return nil, err
	}

	comment := NewComment(articleID, in.Username, in.Body)
	if err := b.store.InsertComment(ctx, comment); err != nil {
		return nil, err
	}

	return b.store.FindComment(ctx, comment.CommentID)
}

// UpdateCommentVotes adds the inc_votes delta of raw to the comment votes.
func (b *Board) UpdateCommentVotes(ctx context.Context, id int64, raw map[string]interface{}) (*Comment, error) {
	delta, err := NewVoteInput(raw)
	if err != nil {
		return nil, err
	}

	if _, err := b.ensureComment(ctx, id); err != nil {
		return nil, err
	}

	if err := b.store.UpdateCommentVotes(ctx, id, delta); err != nil {
		return nil, err
	}

	comment, err := b.store.FindComment(ctx, id)
	if err != nil {
		return nil, notFoundOr("comment", err)
	}

	return comment, nil
}

func (b *Board) DeleteComment(ctx context.Context, id int64) error {
	if _, err := b.ensureComment(ctx, id); err != nil {
		return err
	}

	return b.store.DeleteComment(ctx, id)
}

// DeleteArticleComments removes every comment of an article, keeping the article.
func (b *Board) DeleteArticleComments(ctx context.Context, articleID int64) error {
	if _, err := b.ensureArticle(ctx, articleID); err != nil {
		return err
	}

	return b.store.DeleteCommentsByArticle(ctx, articleID)
}

func (b *Board) ListTopics(ctx context.Context) ([]*Topic, error) {
	topics, err := b.store.ListTopics(ctx)
	if err != nil {
		return nil, err
	}
	if topics == nil {
		topics = []*Topic{}
	}
	return topics, nil
}

func (b *Board) GetTopic(ctx context.Context, slug string) (*Topic, error) {
	return b.ensureTopic(ctx, slug)
}

// AddTopic validates raw and inserts the topic. A slug already in use is an
// invalid input.
func (b *Board) AddTopic(ctx context.Context, raw map[string]interface{}) (*Topic, error) {
	in, err := NewTopicInput(raw)
	if err != nil {
		return nil, err
	}

	topic := in.Topic()
	if err := b.store.InsertTopic(ctx, topic); err != nil {
		return nil, err
	}

	return topic, nil
}

func (b *Board) ListUsers(ctx context.Context) ([]*User, error) {
	users, err := b.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*User{}
	}
	return users, nil
}

func (b *Board) GetUser(ctx context.Context, username string) (*User, error) {
	user, err := b.store.FindUser(ctx, username)
	if err != nil {
		return nil, notFoundOr("", err)
	}
	return user, nil
}

// FollowTopic makes a user follow a topic. Following twice is a no-op.
func (b *Board) FollowTopic(ctx context.Context, username string, raw map[string]interface{}) (string, error) {
	f, err := NewTopicFollow(username, raw)
	if err != nil {
		return "", err
	}

	if err := b.ensureUserAndTopic(ctx, f.Username, f.TopicSlug); err != nil {
		return "", err
	}

	if err := b.store.FollowTopic(ctx, f); err != nil {
		return "", err
	}

	b.Logger.Debug().Str("username", f.Username).Str("topic", f.TopicSlug).Msg("followed topic")
	return f.followedMsg(), nil
}

// UnfollowTopic removes the edge between a user and a topic, if any.
func (b *Board) UnfollowTopic(ctx context.Context, username string, raw map[string]interface{}) (string, error) {
	f, err := NewTopicFollow(username, raw)
	if err != nil {
		return "", err
	}

	if err := b.ensureUserAndTopic(ctx, f.Username, f.TopicSlug); err != nil {
		return "", err
	}

	if err := b.store.UnfollowTopic(ctx, f); err != nil {
		return "", err
	}

	return f.unfollowedMsg(), nil
}

// FollowUser makes a user follow another one. Following twice is a no-op,
// following oneself is rejected.
func (b *Board) FollowUser(ctx context.Context, follower string, raw map[string]interface{}) (string, error) {
	f, err := NewUserFollow(follower, raw)
	if err != nil {
		return "", err
	}

	if f.Follower == f.Followee {
		return "", SelfFollow()
	}

	if err := b.ensureUsers(ctx, f.Follower, f.Followee); err != nil {
		return "", err
	}

	if err := b.store.FollowUser(ctx, f); err != nil {
		return "", err
	}

	b.Logger.Debug().Str("follower", f.Follower).Str("followee", f.Followee).Msg("followed user")
	return f.followedMsg(), nil
}

// UnfollowUser removes the edge between two users, if any.
func (b *Board) UnfollowUser(ctx context.Context, follower string, raw map[string]interface{}) (string, error) {
	f, err := NewUserFollow(follower, raw)
	if err != nil {
		return "", err
	}

	if err := b.ensureUsers(ctx, f.Follower, f.Followee); err != nil {
		return "", err
	}

	if err := b.store.UnfollowUser(ctx, f); err != nil {
		return "", err
	}

	return f.unfollowedMsg(), nil
}

// ensureUserAndTopic checks both entities concurrently. When both are missing
// the user is reported.
func (b *Board) ensureUserAndTopic(ctx context.Context, username, slug string) error {
	var userErr, topicErr error
	var g errgroup.Group

	g.Go(func() error {
		_, userErr = b.ensureUser(ctx, username)
		return nil
	})
	g.Go(func() error {
		_, topicErr = b.ensureTopic(ctx, slug)
		return nil
	})
	_ = g.Wait()

	if userErr != nil {
		return userErr
	}
	return topicErr
}

func (b *Board) ensureUsers(ctx context.Context, usernames ...string) error {
	errs := make([]error, len(usernames))
	var g errgroup.Group

	for i, username := range usernames {
		i, username := i, username
		g.Go(func() error {
			_, errs[i] = b.ensureUser(ctx, username)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
