package ncnews

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
)

type ServerConfig struct {
	Addr string
	// BaseURL prefixes the links of the RSS feed. When empty, it is derived
	// from the request host.
	BaseURL string
}

type Server struct {
	Logger          zerolog.Logger
	config          *ServerConfig
	store           Store
	board           *Board
	router          *httprouter.Router
	handler         http.Handler
	done            chan struct{}
	idleConnsClosed chan struct{}
}

func NewServer(config *ServerConfig, logger zerolog.Logger, store Store) *Server {
	s := &Server{
		Logger:          logger,
		config:          config,
		store:           store,
		board:           NewBoard(store, logger.With().Str("component", "board").Logger()),
		router:          httprouter.New(),
		done:            make(chan struct{}),
		idleConnsClosed: make(chan struct{}),
	}

	s.router.HandleMethodNotAllowed = false
	s.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMsg(w, http.StatusNotFound, msgEndpointNotFound)
	})
	s.router.PanicHandler = func(w http.ResponseWriter, r *http.Request, v interface{}) {
		s.Logger.Error().Interface("panic", v).Str("path", r.URL.Path).Msg("Recovered from panic")
		writeMsg(w, http.StatusInternalServerError, msgInternal)
	}

	s.handler = withHTTPMiddlewares(s.router,
		s.requestIDMiddleware(),
		s.logMiddleware(),
		s.corsMiddleware(),
	)

	return s
}

// Board gives access to the operations served by s, for instance to register hooks.
func (s *Server) Board() *Board {
	return s.board
}

// Prepare connects to the store and declares the routes.
func (s *Server) Prepare() error {
	err := s.store.Connect()
	if err != nil {
		return err
	}

	s.router.GET("/api", s.HandleAPI())

	s.router.GET("/api/topics", s.HandleListTopics())
	s.router.GET("/api/articles", s.HandleListArticles())
	s.router.GET("/api/articles/:article_id", s.HandleGetArticle())
	s.router.GET("/api/articles/:article_id/comments", s.HandleListComments())
	s.router.GET("/api/users", s.HandleListUsers())
	s.router.GET("/api/users/:username", s.HandleGetUser())
	s.router.GET("/api/trending", s.HandleTrending())
	s.router.GET("/api/feed", s.HandleFeed())

	s.router.DELETE("/api/articles/:article_id", s.HandleDeleteArticle())
	s.router.DELETE("/api/articles/:article_id/comments", s.HandleDeleteArticleComments())
	s.router.DELETE("/api/comments/:comment_id", s.HandleDeleteComment())

	withMiddlewares(func(m middleware) {
		s.router.POST("/api/topics", m(s.HandleAddTopic()))
		s.router.POST("/api/articles", m(s.HandleAddArticle()))
		s.router.PATCH("/api/articles/:article_id", m(s.HandleUpdateArticleVotes()))
		s.router.POST("/api/articles/:article_id/comments", m(s.HandleAddComment()))
		s.router.PATCH("/api/comments/:comment_id", m(s.HandleUpdateCommentVotes()))

		s.router.POST("/api/users/:username/follow-topic", m(s.HandleFollowTopic()))
		s.router.DELETE("/api/users/:username/unfollow-topic", m(s.HandleUnfollowTopic()))
		s.router.POST("/api/users/:username/follow-user", m(s.HandleFollowUser()))
		s.router.DELETE("/api/users/:username/unfollow-user", m(s.HandleUnfollowUser()))
	}, s.jsonBodyMiddleware())

	return nil
}

func (s *Server) Start() error {
	httpServer := http.Server{
		Addr:              s.config.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		s.Logger.Info().Str("addr", s.config.Addr).Msg("Listening")
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			s.Logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-s.done

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		return err
	}
	close(s.idleConnsClosed)

	return s.store.Close()
}

func (s *Server) Stop() {
	close(s.done)
	<-s.idleConnsClosed
}

func (s *Server) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	s.handler.ServeHTTP(res, req)
}

// respondError maps err to the API error taxonomy and writes it. Internal
// errors are logged, their cause is never sent to the client.
func (s *Server) respondError(res http.ResponseWriter, req *http.Request, err error) {
	e := AsError(err)

	if e.Kind == KindInternal {
		s.Logger.Error().Err(err).Str("request_id", ctxRequestID(req.Context())).Msg("Request failed")
	} else {
		s.Logger.Debug().Err(err).Str("request_id", ctxRequestID(req.Context())).Msg("Request rejected")
	}

	e.RespondError(res, req)
}
