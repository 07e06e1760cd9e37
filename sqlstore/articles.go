package sqlstore

import (
	"context"

	ncnews "github.com/DTCoding01/be-nc-news"
)

const findArticleSQL = `SELECT
	articles.author,
	articles.title,
	articles.article_id,
	articles.body,
	articles.topic,
	articles.created_at,
	articles.votes,
	articles.article_img_url,
	COUNT(comments.comment_id) AS comment_count
FROM articles
LEFT JOIN comments ON articles.article_id = comments.article_id
WHERE articles.article_id = ?
GROUP BY articles.article_id`

func (s *Store) ListArticles(ctx context.Context, q *ncnews.ArticleListQuery) ([]*ncnews.ArticleSummary, error) {
	articles := []*ncnews.ArticleSummary{}
	query, args := q.RowsSQL()
	err := s.selectAll(ctx, &articles, query, args...)
	if err != nil {
		return nil, err
	}

	return articles, nil
}

func (s *Store) CountArticles(ctx context.Context, q *ncnews.ArticleListQuery) (int64, error) {
	var total int64
	query, args := q.CountSQL()
	err := s.get(ctx, &total, query, args...)
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (s *Store) FindArticle(ctx context.Context, id int64) (*ncnews.Article, error) {
	article := ncnews.Article{}
	err := s.get(ctx, &article, findArticleSQL, id)
	if err != nil {
		return nil, err
	}

	return &article, nil
}

func (s *Store) InsertArticle(ctx context.Context, article *ncnews.Article) error {
	var id int64
	err := s.get(ctx, &id, "INSERT INTO articles (title, topic, author, body, created_at, votes, article_img_url) VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING article_id",
		article.Title, article.Topic, article.Author, article.Body, article.CreatedAt.UTC(), article.Votes, article.ArticleImgURL,
	)
	if err != nil {
		return err
	}

	article.ArticleID = id

	return nil
}

func (s *Store) UpdateArticleVotes(ctx context.Context, id int64, delta int64) error {
	return s.exec(ctx, "UPDATE articles SET votes = votes + ? WHERE article_id = ?", delta, id)
}

// DeleteArticle deletes the comments of the article then the article, within
// a single transaction.
func (s *Store) DeleteArticle(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM comments WHERE article_id = ?"), id); err != nil {
		return classify(err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM articles WHERE article_id = ?"), id); err != nil {
		return classify(err)
	}

	return tx.Commit()
}
