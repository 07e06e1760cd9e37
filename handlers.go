package ncnews

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// HandleAPI describes the available endpoints.
func (s *Server) HandleAPI() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, _ httprouter.Params) {
		writeJSON(res, http.StatusOK, map[string]interface{}{"endpoints": endpoints})
	}
}

func (s *Server) HandleListTopics() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, _ httprouter.Params) {
		topics, err := s.board.ListTopics(req.Context())
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		writeJSON(res, http.StatusOK, map[string]interface{}{"topics": topics})
	}
}

func (s *Server) HandleAddTopic() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, _ httprouter.Params) {
		topic, err := s.board.AddTopic(req.Context(), ctxBody(req.Context()))
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		writeJSON(res, http.StatusCreated, map[string]interface{}{"topic": topic})
	}
}

// HandleListArticles handles requests listing sorted, filtered and paginated
// articles. An empty page is a 404, unless it is the first page of all
// articles or of an existing topic.
func (s *Server) HandleListArticles() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, _ httprouter.Params) {
		query := req.URL.Query()
		page, err := s.board.ListArticles(req.Context(), ArticleListParams{
			SortBy: query.Get("sort_by"),
			Order:  query.Get("order"),
			Topic:  query.Get("topic"),
			Limit:  query.Get("limit"),
			Page:   query.Get("p"),
		})
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		if len(page.Articles) == 0 {
			missing, err := s.emptyArticlesIsNotFound(req.Context(), page.Query)
			if err != nil {
				s.respondError(res, req, err)
				return
			}
			if missing {
				s.respondError(res, req, NotFound(""))
				return
			}
		}

		writeJSON(res, http.StatusOK, page)
	}
}

func (s *Server) emptyArticlesIsNotFound(ctx context.Context, q *ArticleListQuery) (bool, error) {
	if q.Page > 1 {
		return true, nil
	}
	if q.Topic == "" {
		return false, nil
	}

	_, err := s.board.GetTopic(ctx, q.Topic)
	if err != nil {
		if AsError(err).Kind == KindNotFound {
			return true, nil
		}
		return false, err
	}

	return false, nil
}

func (s *Server) HandleAddArticle() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, _ httprouter.Params) {
		article, err := s.board.AddArticle(req.Context(), ctxBody(req.Context()))
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		writeJSON(res, http.StatusCreated, map[string]interface{}{"article": article})
	}
}

func (s *Server) HandleGetArticle() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, params httprouter.Params) {
		id, err := parseID(params, "article_id")
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		article, err := s.board.GetArticle(req.Context(), id)
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		writeJSON(res, http.StatusOK, map[string]interface{}{"article": article})
	}
}

func (s *Server) HandleUpdateArticleVotes() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, params httprouter.Params) {
		id, err := parseID(params, "article_id")
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		article, err := s.board.UpdateArticleVotes(req.Context(), id, ctxBody(req.Context()))
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		writeJSON(res, http.StatusOK, map[string]interface{}{"article": article})
	}
}

func (s *Server) HandleDeleteArticle() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, params httprouter.Params) {
		id, err := parseID(params, "article_id")
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		if err := s.board.DeleteArticle(req.Context(), id); err != nil {
			s.respondError(res, req, err)
			return
		}

		res.WriteHeader(http.StatusNoContent)
	}
}

// HandleListComments handles requests listing the comments of an article. An
// empty page past the first one is a 404.
func (s *Server) HandleListComments() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, params httprouter.Params) {
		id, err := parseID(params, "article_id")
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		query := req.URL.Query()
		page, err := s.board.ListComments(req.Context(), id, query.Get("limit"), query.Get("p"))
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		if len(page.Comments) == 0 && page.Query.Paginate && page.Query.Page > 1 {
			s.respondError(res, req, NotFound(""))
			return
		}

		writeJSON(res, http.StatusOK, page)
	}
}

func (s *Server) HandleAddComment() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, params httprouter.Params) {
		id, err := parseID(params, "article_id")
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		comment, err := s.board.AddComment(req.Context(), id, ctxBody(req.Context()))
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		writeJSON(res, http.StatusCreated, map[string]interface{}{"comment": comment})
	}
}

func (s *Server) HandleDeleteArticleComments() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, params httprouter.Params) {
		id, err := parseID(params, "article_id")
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		if err := s.board.DeleteArticleComments(req.Context(), id); err != nil {
			s.respondError(res, req, err)
			return
		}

		res.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) HandleUpdateCommentVotes() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, params httprouter.Params) {
		id, err := parseID(params, "comment_id")
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		comment, err := s.board.UpdateCommentVotes(req.Context(), id, ctxBody(req.Context()))
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		writeJSON(res, http.StatusOK, map[string]interface{}{"comment": comment})
	}
}

func (s *Server) HandleDeleteComment() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, params httprouter.Params) {
		id, err := parseID(params, "comment_id")
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		if err := s.board.DeleteComment(req.Context(), id); err != nil {
			s.respondError(res, req, err)
			return
		}

		res.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) HandleListUsers() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, _ httprouter.Params) {
		users, err := s.board.ListUsers(req.Context())
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		writeJSON(res, http.StatusOK, map[string]interface{}{"users": users})
	}
}

func (s *Server) HandleGetUser() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, params httprouter.Params) {
		user, err := s.board.GetUser(req.Context(), params.ByName("username"))
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		writeJSON(res, http.StatusOK, map[string]interface{}{"user": user})
	}
}

// followHandle adapts the follow operations of the Board, which all answer
// with a message.
func (s *Server) followHandle(op func(context.Context, string, map[string]interface{}) (string, error)) httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, params httprouter.Params) {
		msg, err := op(req.Context(), params.ByName("username"), ctxBody(req.Context()))
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		writeMsg(res, http.StatusOK, msg)
	}
}

func (s *Server) HandleFollowTopic() httprouter.Handle {
	return s.followHandle(s.board.FollowTopic)
}

func (s *Server) HandleUnfollowTopic() httprouter.Handle {
	return s.followHandle(s.board.UnfollowTopic)
}

func (s *Server) HandleFollowUser() httprouter.Handle {
	return s.followHandle(s.board.FollowUser)
}

func (s *Server) HandleUnfollowUser() httprouter.Handle {
	return s.followHandle(s.board.UnfollowUser)
}

// HandleTrending handles requests for the best ranked recent articles.
func (s *Server) HandleTrending() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, _ httprouter.Params) {
		query := req.URL.Query()
		articles, err := s.board.TrendingArticles(req.Context(), query.Get("topic"), query.Get("limit"))
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		writeJSON(res, http.StatusOK, map[string]interface{}{"articles": articles})
	}
}

// HandleFeed serves the latest articles as an RSS feed.
func (s *Server) HandleFeed() httprouter.Handle {
	return func(res http.ResponseWriter, req *http.Request, _ httprouter.Params) {
		baseURL := s.config.BaseURL
		if baseURL == "" {
			baseURL = "http://" + req.Host
		}

		feed, err := s.board.Feed(req.Context(), req.URL.Query().Get("topic"), baseURL)
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		rss, err := feed.ToRss()
		if err != nil {
			s.respondError(res, req, err)
			return
		}

		res.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		res.WriteHeader(http.StatusOK)
		_, _ = res.Write([]byte(rss))
	}
}
