package sqlstore

import (
	"context"

	ncnews "github.com/DTCoding01/be-nc-news"
)

func (s *Store) ListTopics(ctx context.Context) ([]*ncnews.Topic, error) {
	topics := []*ncnews.Topic{}
	err := s.selectAll(ctx, &topics, "SELECT slug, description FROM topics ORDER BY slug")
	if err != nil {
		return nil, err
	}

	return topics, nil
}

func (s *Store) FindTopic(ctx context.Context, slug string) (*ncnews.Topic, error) {
	topic := ncnews.Topic{}
	err := s.get(ctx, &topic, "SELECT slug, description FROM topics WHERE slug = ?", slug)
	if err != nil {
		return nil, err
	}

	return &topic, nil
}

func (s *Store) InsertTopic(ctx context.Context, topic *ncnews.Topic) error {
	return s.exec(ctx, "INSERT INTO topics (slug, description) VALUES (?, ?)", topic.Slug, topic.Description)
}

// FollowTopic records the edge, doing nothing if it already exists.
func (s *Store) FollowTopic(ctx context.Context, f *ncnews.TopicFollow) error {
	return s.exec(ctx, "INSERT INTO user_follows_topics (username, topic_slug) VALUES (?, ?) ON CONFLICT DO NOTHING", f.Username, f.TopicSlug)
}

func (s *Store) UnfollowTopic(ctx context.Context, f *ncnews.TopicFollow) error {
	return s.exec(ctx, "DELETE FROM user_follows_topics WHERE username = ? AND topic_slug = ?", f.Username, f.TopicSlug)
}
