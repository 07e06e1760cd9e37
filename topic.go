package ncnews

import (
	"errors"

	"github.com/gosimple/slug"
)

type Topic struct {
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
}

// TopicInput is the body of a topic creation request.
type TopicInput struct {
	Slug        string `mapstructure:"slug"`
	Description string `mapstructure:"description"`
}

// NewTopicInput validates a decoded JSON body. The slug is stored in its
// canonical form, "Home Cooking" becoming "home-cooking".
func NewTopicInput(raw map[string]interface{}) (*TopicInput, error) {
	in := &TopicInput{}
	if err := decodeInput(raw, in); err != nil {
		return nil, InvalidInput(err)
	}

	in.Slug = slug.Make(in.Slug)
	if in.Slug == "" || in.Description == "" {
		return nil, InvalidInput(errors.New("slug and description are required"))
	}

	return in, nil
}

func (in *TopicInput) Topic() *Topic {
	return &Topic{Slug: in.Slug, Description: in.Description}
}
