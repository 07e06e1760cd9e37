package sqlstore

import (
	"context"

	ncnews "github.com/DTCoding01/be-nc-news"
)

func (s *Store) ListUsers(ctx context.Context) ([]*ncnews.User, error) {
	users := []*ncnews.User{}
	err := s.selectAll(ctx, &users, "SELECT username, name, avatar_url FROM users ORDER BY username")
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Store) FindUser(ctx context.Context, username string) (*ncnews.User, error) {
	user := ncnews.User{}
	err := s.get(ctx, &user, "SELECT username, name, avatar_url FROM users WHERE username = ?", username)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Store) InsertUser(ctx context.Context, user *ncnews.User) error {
	return s.exec(ctx, "INSERT INTO users (username, name, avatar_url) VALUES (?, ?, ?)", user.Username, user.Name, user.AvatarURL)
}

// FollowUser records the edge, doing nothing if it already exists.
func (s *Store) FollowUser(ctx context.Context, f *ncnews.UserFollow) error {
	return s.exec(ctx, "INSERT INTO user_follows_users (follower_username, followee_username) VALUES (?, ?) ON CONFLICT DO NOTHING", f.Follower, f.Followee)
}

func (s *Store) UnfollowUser(ctx context.Context, f *ncnews.UserFollow) error {
	return s.exec(ctx, "DELETE FROM user_follows_users WHERE follower_username = ? AND followee_username = ?", f.Follower, f.Followee)
}
