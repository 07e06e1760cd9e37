package ncnews

import (
	"context"
	"database/sql"
	"errors"
)

// notFoundOr maps sql.ErrNoRows to a NotFound error for entity and leaves any
// other error untouched.
func notFoundOr(entity string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return NotFound(entity)
	}
	return err
}

// ensureArticle resolves the article with the given id, or fails with
// "article not found".
func (b *Board) ensureArticle(ctx context.Context, id int64) (*Article, error) {
	article, err := b.store.FindArticle(ctx, id)
	if err != nil {
		return nil, notFoundOr("article", err)
	}
	return article, nil
}

func (b *Board) ensureComment(ctx context.Context, id int64) (*Comment, error) {
	comment, err := b.store.FindComment(ctx, id)
	if err != nil {
		return nil, notFoundOr("comment", err)
	}
	return comment, nil
}

func (b *Board) ensureTopic(ctx context.Context, slug string) (*Topic, error) {
	topic, err := b.store.FindTopic(ctx, slug)
	if err != nil {
		return nil, notFoundOr("topic", err)
	}
	return topic, nil
}

func (b *Board) ensureUser(ctx context.Context, username string) (*User, error) {
	user, err := b.store.FindUser(ctx, username)
	if err != nil {
		return nil, notFoundOr("user", err)
	}
	return user, nil
}
