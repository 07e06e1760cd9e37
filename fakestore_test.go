package ncnews

import (
	"context"
	"database/sql"
	"sort"
	"sync"
)

// fakeStore is an in-memory Store. Listings ignore the sort order and return
// rows by id.
type fakeStore struct {
	mu           sync.Mutex
	articles     map[int64]*Article
	comments     map[int64]*Comment
	topics       map[string]*Topic
	users        map[string]*User
	topicFollows map[TopicFollow]bool
	userFollows  map[UserFollow]bool
	nextID       int64
	// failWith, when set, is returned by every mutation.
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		articles:     map[int64]*Article{},
		comments:     map[int64]*Comment{},
		topics:       map[string]*Topic{},
		users:        map[string]*User{},
		topicFollows: map[TopicFollow]bool{},
		userFollows:  map[UserFollow]bool{},
	}
}

func (f *fakeStore) Connect() error { return nil }
func (f *fakeStore) Close() error   { return nil }

func (f *fakeStore) commentCount(articleID int64) int64 {
	var n int64
	for _, c := range f.comments {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n
}

func (f *fakeStore) filtered(topic string) []*Article {
	var res []*Article
	for _, a := range f.articles {
		if topic == "" || a.Topic == topic {
			res = append(res, a)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ArticleID < res[j].ArticleID })
	return res
}

func (f *fakeStore) ListArticles(ctx context.Context, q *ArticleListQuery) ([]*ArticleSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := []*ArticleSummary{}
	all := f.filtered(q.Topic)
	for i := q.Offset(); i < len(all) && len(res) < q.Limit; i++ {
		s := all[i].ArticleSummary
		s.CommentCount = f.commentCount(s.ArticleID)
		res = append(res, &s)
	}
	return res, nil
}

func (f *fakeStore) CountArticles(ctx context.Context, q *ArticleListQuery) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.filtered(q.Topic))), nil
}

func (f *fakeStore) FindArticle(ctx context.Context, id int64) (*Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.articles[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *a
	cp.CommentCount = f.commentCount(id)
	return &cp, nil
}

func (f *fakeStore) InsertArticle(ctx context.Context, article *Article) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.users[article.Author]; !ok {
		return &StorageError{Class: ClassForeignKey, Err: sql.ErrNoRows}
	}
	if _, ok := f.topics[article.Topic]; !ok {
		return &StorageError{Class: ClassForeignKey, Err: sql.ErrNoRows}
	}

	f.nextID++
	article.ArticleID = f.nextID
	cp := *article
	f.articles[cp.ArticleID] = &cp
	return nil
}

func (f *fakeStore) UpdateArticleVotes(ctx context.Context, id int64, delta int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if a, ok := f.articles[id]; ok {
		a.Votes += delta
	}
	return nil
}

func (f *fakeStore) DeleteArticle(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for cid, c := range f.comments {
		if c.ArticleID == id {
			delete(f.comments, cid)
		}
	}
	delete(f.articles, id)
	return nil
}

func (f *fakeStore) ListComments(ctx context.Context, q *CommentListQuery) ([]*Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var all []*Comment
	for _, c := range f.comments {
		if c.ArticleID == q.ArticleID {
			cp := *c
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	if !q.Paginate {
		return all, nil
	}
	res := []*Comment{}
	for i := q.Offset(); i < len(all) && len(res) < q.Limit; i++ {
		res = append(res, all[i])
	}
	return res, nil
}

func (f *fakeStore) FindComment(ctx context.Context, id int64) (*Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.comments[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *c
	return &cp, nil
}

func (f *fakeStore) InsertComment(ctx context.Context, comment *Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.users[comment.Author]; !ok {
		return &StorageError{Class: ClassForeignKey, Err: sql.ErrNoRows}
	}

	f.nextID++
	comment.CommentID = f.nextID
	cp := *comment
	f.comments[cp.CommentID] = &cp
	return nil
}

func (f *fakeStore) UpdateCommentVotes(ctx context.Context, id int64, delta int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if c, ok := f.comments[id]; ok {
		c.Votes += delta
	}
	return nil
}

func (f *fakeStore) DeleteComment(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.comments, id)
	return nil
}

func (f *fakeStore) DeleteCommentsByArticle(ctx context.Context, articleID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, c := range f.comments {
		if c.ArticleID == articleID {
			delete(f.comments, id)
		}
	}
	return nil
}

func (f *fakeStore) ListTopics(ctx context.Context) ([]*Topic, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := []*Topic{}
	for _, t := range f.topics {
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Slug < res[j].Slug })
	return res, nil
}

func (f *fakeStore) FindTopic(ctx context.Context, slug string) (*Topic, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, ok := f.topics[slug]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return t, nil
}

func (f *fakeStore) InsertTopic(ctx context.Context, topic *Topic) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.topics[topic.Slug]; ok {
		return &StorageError{Class: ClassUnique, Err: sql.ErrNoRows}
	}
	f.topics[topic.Slug] = topic
	return nil
}

func (f *fakeStore) ListUsers(ctx context.Context) ([]*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := []*User{}
	for _, u := range f.users {
		res = append(res, u)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Username < res[j].Username })
	return res, nil
}

func (f *fakeStore) FindUser(ctx context.Context, username string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[username]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeStore) InsertUser(ctx context.Context, user *User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.users[user.Username] = user
	return nil
}

func (f *fakeStore) FollowTopic(ctx context.Context, tf *TopicFollow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topicFollows[*tf] = true
	return nil
}

func (f *fakeStore) UnfollowTopic(ctx context.Context, tf *TopicFollow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.topicFollows, *tf)
	return nil
}

func (f *fakeStore) FollowUser(ctx context.Context, uf *UserFollow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userFollows[*uf] = true
	return nil
}

func (f *fakeStore) UnfollowUser(ctx context.Context, uf *UserFollow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.userFollows, *uf)
	return nil
}
