package ncnews

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the page size used when a listing does not specify one.
	DefaultLimit = 10
	// DefaultSortBy is the column articles are sorted on by default.
	DefaultSortBy = "created_at"
	// DefaultOrder is the default sort direction for articles.
	DefaultOrder = "DESC"
)

// sortColumns is the allow-list of sortable columns. Only the values of this
// map are ever interpolated in the query text.
var sortColumns = map[string]string{
	"author":          "articles.author",
	"title":           "articles.title",
	"article_id":      "articles.article_id",
	"topic":           "articles.topic",
	"created_at":      "articles.created_at",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
	"comment_count":   "comment_count",
}

// ArticleListParams holds the raw query string parameters of an article listing.
// Empty values stand for absent parameters.
type ArticleListParams struct {
	SortBy string
	Order  string
	Topic  string
	Limit  string
	Page   string
}

// ArticleListQuery is a validated article listing request.
type ArticleListQuery struct {
	SortBy string
	Order  string
	Topic  string
	Limit  int
	Page   int
}

// NewArticleListQuery validates p and fills in the defaults.
func NewArticleListQuery(p ArticleListParams) (*ArticleListQuery, error) {
	q := &ArticleListQuery{
		SortBy: DefaultSortBy,
		Order:  DefaultOrder,
		Topic:  p.Topic,
		Limit:  DefaultLimit,
		Page:   1,
	}

	if p.SortBy != "" {
		if _, ok := sortColumns[p.SortBy]; !ok {
			return nil, InvalidInput(fmt.Errorf("sort_by %q is not allowed", p.SortBy))
		}
		q.SortBy = p.SortBy
	}

	if p.Order != "" {
		order, err := normalizeOrder(p.Order)
		if err != nil {
			return nil, err
		}
		q.Order = order
	}

	var err error
	if p.Limit != "" {
		if q.Limit, err = parsePositive("limit", p.Limit); err != nil {
			return nil, err
		}
	}
	if p.Page != "" {
		if q.Page, err = parsePositive("p", p.Page); err != nil {
			return nil, err
		}
	}
	if err := checkOffset(q.Limit, q.Page); err != nil {
		return nil, err
	}

	return q, nil
}

// Offset returns the number of rows skipped before the requested page.
func (q *ArticleListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// RowsSQL returns the query for a page of article summaries, with their
// comment count, along with its arguments. Placeholders are '?', stores are
// expected to rebind them for their driver.
func (q *ArticleListQuery) RowsSQL() (string, []interface{}) {
	var b strings.Builder
	args := []interface{}{}

	b.WriteString(`SELECT
	articles.author,
	articles.title,
	articles.article_id,
	articles.topic,
	articles.created_at,
	articles.votes,
	articles.article_img_url,
	COUNT(comments.comment_id) AS comment_count
FROM articles
LEFT JOIN comments ON articles.article_id = comments.article_id`)

	if q.Topic != "" {
		b.WriteString("\nWHERE articles.topic = ?")
		args = append(args, q.Topic)
	}

	b.WriteString("\nGROUP BY articles.article_id")
	// Both the column and the direction come from allow-lists.
	fmt.Fprintf(&b, "\nORDER BY %s %s", sortColumns[q.SortBy], q.Order)
	b.WriteString("\nLIMIT ? OFFSET ?")
	args = append(args, q.Limit, q.Offset())

	return b.String(), args
}

// CountSQL returns the query counting every article matching the topic filter,
// regardless of the page.
func (q *ArticleListQuery) CountSQL() (string, []interface{}) {
	if q.Topic == "" {
		return "SELECT COUNT(*) AS total_count FROM articles", nil
	}
	return "SELECT COUNT(*) AS total_count FROM articles WHERE topic = ?", []interface{}{q.Topic}
}

// CommentListQuery is a validated listing of the comments of an article.
// When Paginate is false, every comment is returned.
type CommentListQuery struct {
	ArticleID int64
	Paginate  bool
	Limit     int
	Page      int
}

// NewCommentListQuery validates the raw limit and page parameters. Leaving both
// empty disables pagination altogether.
func NewCommentListQuery(articleID int64, limit, page string) (*CommentListQuery, error) {
	q := &CommentListQuery{ArticleID: articleID, Limit: DefaultLimit, Page: 1}
	if limit == "" && page == "" {
		return q, nil
	}

	q.Paginate = true
	var err error
	if limit != "" {
		if q.Limit, err = parsePositive("limit", limit); err != nil {
			return nil, err
		}
	}
	if page != "" {
		if q.Page, err = parsePositive("p", page); err != nil {
			return nil, err
		}
	}
	if err := checkOffset(q.Limit, q.Page); err != nil {
		return nil, err
	}

	return q, nil
}

// Offset returns the number of rows skipped before the requested page.
func (q *CommentListQuery) Offset() int {
	if !q.Paginate {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// SQL returns the comments query, newest first.
func (q *CommentListQuery) SQL() (string, []interface{}) {
	query := `SELECT
	comments.comment_id,
	comments.votes,
	comments.created_at,
	comments.author,
	comments.body,
	comments.article_id
FROM comments
WHERE comments.article_id = ?
ORDER BY comments.created_at DESC`
	args := []interface{}{q.ArticleID}

	if q.Paginate {
		query += "\nLIMIT ? OFFSET ?"
		args = append(args, q.Limit, q.Offset())
	}

	return query, args
}

func normalizeOrder(order string) (string, error) {
	switch o := strings.ToUpper(order); o {
	case "ASC", "DESC":
		return o, nil
	default:
		return "", InvalidInput(fmt.Errorf("order %q is not allowed", order))
	}
}

func parsePositive(name string, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, InvalidInput(fmt.Errorf("%s: %w", name, err))
	}
	if n < 1 {
		return 0, InvalidInput(fmt.Errorf("%s must be positive, got %d", name, n))
	}
	return n, nil
}

// checkOffset rejects pages lying so far that (page-1)*limit overflows.
func checkOffset(limit, page int) error {
	if page-1 > math.MaxInt/limit {
		return InvalidInput(fmt.Errorf("p %d is out of range for limit %d", page, limit))
	}
	return nil
}
