package ncnews

import "context"

// A Store executes queries against the relational storage. Lookups of a single
// row return sql.ErrNoRows when it does not exist, and driver failures are
// returned as *StorageError when their class is known.
type Store interface {
	Connect() error
	Close() error

	ListArticles(ctx context.Context, q *ArticleListQuery) ([]*ArticleSummary, error)
	CountArticles(ctx context.Context, q *ArticleListQuery) (int64, error)
	FindArticle(ctx context.Context, id int64) (*Article, error)
	InsertArticle(ctx context.Context, article *Article) error
	UpdateArticleVotes(ctx context.Context, id int64, delta int64) error
	// DeleteArticle removes the comments of the article, then the article itself.
	DeleteArticle(ctx context.Context, id int64) error

	ListComments(ctx context.Context, q *CommentListQuery) ([]*Comment, error)
	FindComment(ctx context.Context, id int64) (*Comment, error)
	InsertComment(ctx context.Context, comment *Comment) error
	UpdateCommentVotes(ctx context.Context, id int64, delta int64) error
	DeleteComment(ctx context.Context, id int64) error
	DeleteCommentsByArticle(ctx context.Context, articleID int64) error

	ListTopics(ctx context.Context) ([]*Topic, error)
	FindTopic(ctx context.Context, slug string) (*Topic, error)
	InsertTopic(ctx context.Context, topic *Topic) error

	ListUsers(ctx context.Context) ([]*User, error)
	FindUser(ctx context.Context, username string) (*User, error)
	InsertUser(ctx context.Context, user *User) error

	FollowTopic(ctx context.Context, f *TopicFollow) error
	UnfollowTopic(ctx context.Context, f *TopicFollow) error
	FollowUser(ctx context.Context, f *UserFollow) error
	UnfollowUser(ctx context.Context, f *UserFollow) error
}
