package ncnews

import (
	"context"

	"github.com/DTCoding01/be-nc-news/ranking"
)

// trendingPoolSize is how many recent articles are considered when ranking.
const trendingPoolSize = 100

// TrendingArticles ranks the most recent articles by votes and age and returns
// the top limit of them.
func (b *Board) TrendingArticles(ctx context.Context, topic string, limit string) ([]*ArticleSummary, error) {
	n := DefaultLimit
	if limit != "" {
		var err error
		if n, err = parsePositive("limit", limit); err != nil {
			return nil, err
		}
	}

	q := &ArticleListQuery{
		SortBy: DefaultSortBy,
		Order:  DefaultOrder,
		Topic:  topic,
		Limit:  trendingPoolSize,
		Page:   1,
	}
	articles, err := b.store.ListArticles(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]ranking.Rankable, len(articles))
	for i, a := range articles {
		items[i] = a
	}

	ranked := make([]*ArticleSummary, 0, n)
	for _, i := range ranking.Order(items, ranking.HackerNews, NowFunc()) {
		if len(ranked) == n {
			break
		}
		ranked = append(ranked, articles[i])
	}

	return ranked, nil
}
