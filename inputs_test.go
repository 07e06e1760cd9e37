package ncnews

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCommentInput(t *testing.T) {
	in, err := NewCommentInput(map[string]interface{}{"username": "butter_bridge", "body": "hi", "votes": 12})
	require.NoError(t, err)
	require.Equal(t, &CommentInput{Username: "butter_bridge", Body: "hi"}, in)

	for _, raw := range []map[string]interface{}{
		{},
		{"username": "butter_bridge"},
		{"body": "hi"},
		{"username": "", "body": "hi"},
		{"username": 42, "body": "hi"},
	} {
		_, err := NewCommentInput(raw)
		require.Error(t, err)
		require.Equal(t, KindInvalidCommentInput, AsError(err).Kind)
	}
}

func TestNewComment(t *testing.T) {
	comment := NewComment(1, "butter_bridge", "body")
	require.Equal(t, int64(1), comment.ArticleID)
	require.Equal(t, int64(0), comment.Votes)
	require.False(t, comment.CreatedAt.IsZero())
}

func TestNewVoteInput(t *testing.T) {
	for raw, want := range map[float64]int64{1: 1, -100: -100, 0: 0} {
		delta, err := NewVoteInput(map[string]interface{}{"inc_votes": raw})
		require.NoError(t, err)
		require.Equal(t, want, delta)
	}

	for _, raw := range []map[string]interface{}{
		{},
		{"inc_votes": "1"},
		{"inc_votes": 1.5},
		{"inc_votes": nil},
		{"votes": 1},
	} {
		_, err := NewVoteInput(raw)
		require.Error(t, err, "%v", raw)
		require.Equal(t, KindInvalidInput, AsError(err).Kind)
	}
}

func TestNewArticleInput(t *testing.T) {
	raw := map[string]interface{}{
		"author": "butter_bridge",
		"title":  "Living in the shadow of a great man",
		"body":   "I find this existence challenging",
		"topic":  "mitch",
	}

	in, err := NewArticleInput(raw)
	require.NoError(t, err)

	article := in.Article()
	require.Equal(t, DefaultArticleImgURL, article.ArticleImgURL)
	require.Equal(t, int64(0), article.Votes)

	raw["article_img_url"] = "https://example.com/a.jpg"
	in, err = NewArticleInput(raw)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/a.jpg", in.Article().ArticleImgURL)

	for _, missing := range []string{"author", "title", "body", "topic"} {
		r := map[string]interface{}{}
		for k, v := range raw {
			r[k] = v
		}
		delete(r, missing)

		_, err := NewArticleInput(r)
		require.Error(t, err, missing)
		require.Equal(t, KindInvalidInput, AsError(err).Kind)
	}
}

func TestNewTopicInput(t *testing.T) {
	in, err := NewTopicInput(map[string]interface{}{"slug": "football", "description": "Footie!"})
	require.NoError(t, err)
	require.Equal(t, &Topic{Slug: "football", Description: "Footie!"}, in.Topic())

	for raw, want := range map[string]string{
		"Home_Cooking": "home_cooking",
		"Cats":         "cats",
		"Foot Ball":    "foot-ball",
		"foot/ball":    "foot-ball",
	} {
		in, err := NewTopicInput(map[string]interface{}{"slug": raw, "description": "Footie!"})
		require.NoError(t, err, raw)
		require.Equal(t, want, in.Slug)
	}

	for _, raw := range []map[string]interface{}{
		{"slug": "football"},
		{"description": "Footie!"},
		{"slug": "!!!", "description": "Footie!"},
		{"slug": 1, "description": "Footie!"},
	} {
		_, err := NewTopicInput(raw)
		require.Error(t, err, "%v", raw)
		require.Equal(t, KindInvalidInput, AsError(err).Kind)
	}
}

func TestNewFollows(t *testing.T) {
	tf, err := NewTopicFollow("butter_bridge", map[string]interface{}{"topicSlug": "cats"})
	require.NoError(t, err)
	require.Equal(t, "User butter_bridge followed topic cats", tf.followedMsg())
	require.Equal(t, "User butter_bridge unfollowed topic cats", tf.unfollowedMsg())

	_, err = NewTopicFollow("butter_bridge", map[string]interface{}{})
	require.Equal(t, KindInvalidInput, AsError(err).Kind)

	uf, err := NewUserFollow("butter_bridge", map[string]interface{}{"followeeUsername": "rogersop"})
	require.NoError(t, err)
	require.Equal(t, "User butter_bridge followed user rogersop", uf.followedMsg())
	require.Equal(t, "User butter_bridge unfollowed user rogersop", uf.unfollowedMsg())

	_, err = NewUserFollow("butter_bridge", map[string]interface{}{"followeeUsername": 3})
	require.Equal(t, KindInvalidInput, AsError(err).Kind)
}
