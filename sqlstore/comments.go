package sqlstore

import (
	"context"

	ncnews "github.com/DTCoding01/be-nc-news"
)

func (s *Store) ListComments(ctx context.Context, q *ncnews.CommentListQuery) ([]*ncnews.Comment, error) {
	comments := []*ncnews.Comment{}
	query, args := q.SQL()
	err := s.selectAll(ctx, &comments, query, args...)
	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (s *Store) FindComment(ctx context.Context, id int64) (*ncnews.Comment, error) {
	comment := ncnews.Comment{}
	err := s.get(ctx, &comment, "SELECT comment_id, article_id, author, body, votes, created_at FROM comments WHERE comment_id = ?", id)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

func (s *Store) InsertComment(ctx context.Context, comment *ncnews.Comment) error {
	var id int64
	err := s.get(ctx, &id, "INSERT INTO comments (body, article_id, author, votes, created_at) VALUES (?, ?, ?, ?, ?) RETURNING comment_id",
		comment.Body, comment.ArticleID, comment.Author, comment.Votes, comment.CreatedAt.UTC(),
	)
	if err != nil {
		return err
	}

	comment.CommentID = id

	return nil
}

func (s *Store) UpdateCommentVotes(ctx context.Context, id int64, delta int64) error {
	return s.exec(ctx, "UPDATE comments SET votes = votes + ? WHERE comment_id = ?", delta, id)
}

func (s *Store) DeleteComment(ctx context.Context, id int64) error {
	return s.exec(ctx, "DELETE FROM comments WHERE comment_id = ?", id)
}

func (s *Store) DeleteCommentsByArticle(ctx context.Context, articleID int64) error {
	return s.exec(ctx, "DELETE FROM comments WHERE article_id = ?", articleID)
}
