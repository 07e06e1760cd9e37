package ncnews

import (
	"errors"
	"fmt"
)

// TopicFollow is an edge from a user to a topic.
type TopicFollow struct {
	Username  string `db:"username" json:"username"`
	TopicSlug string `db:"topic_slug" json:"topic_slug"`
}

// NewTopicFollow validates a follow-topic request. The username comes from the
// path, the slug from the topicSlug body field.
func NewTopicFollow(username string, raw map[string]interface{}) (*TopicFollow, error) {
	var in struct {
		TopicSlug string `mapstructure:"topicSlug"`
	}
	if err := decodeInput(raw, &in); err != nil {
		return nil, InvalidInput(err)
	}

	if username == "" || in.TopicSlug == "" {
		return nil, InvalidInput(errors.New("username and topicSlug are required"))
	}

	return &TopicFollow{Username: username, TopicSlug: in.TopicSlug}, nil
}

func (f *TopicFollow) followedMsg() string {
	return fmt.Sprintf("User %s followed topic %s", f.Username, f.TopicSlug)
}

func (f *TopicFollow) unfollowedMsg() string {
	return fmt.Sprintf("User %s unfollowed topic %s", f.Username, f.TopicSlug)
}

// UserFollow is an edge from a follower to a followee.
type UserFollow struct {
	Follower string `db:"follower_username" json:"follower_username"`
	Followee string `db:"followee_username" json:"followee_username"`
}

// NewUserFollow validates a follow-user request. The follower comes from the
// path, the followee from the followeeUsername body field.
func NewUserFollow(follower string, raw map[string]interface{}) (*UserFollow, error) {
	var in struct {
		FolloweeUsername string `mapstructure:"followeeUsername"`
	}
	if err := decodeInput(raw, &in); err != nil {
		return nil, InvalidInput(err)
	}

	if follower == "" || in.FolloweeUsername == "" {
		return nil, InvalidInput(errors.New("follower and followeeUsername are required"))
	}

	return &UserFollow{Follower: follower, Followee: in.FolloweeUsername}, nil
}

func (f *UserFollow) followedMsg() string {
	return fmt.Sprintf("User %s followed user %s", f.Follower, f.Followee)
}

func (f *UserFollow) unfollowedMsg() string {
	return fmt.Sprintf("User %s unfollowed user %s", f.Follower, f.Followee)
}
