// Package server exposes the tracker over HTTP. Every route below /api/v1
// except signup runs behind token auth, so handlers always act on behalf of
// the resolved owner and never trust IDs from the request body.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"max.ks1230/fintrack/internal/entity/user"
	"max.ks1230/fintrack/internal/logger"
	"max.ks1230/fintrack/internal/model/reports"
	"max.ks1230/fintrack/internal/model/tracker"
)

type userStorage interface {
	CreateUser(ctx context.Context) (user.Record, error)
	GetUserByToken(ctx context.Context, token string) (user.Record, error)
	SetTelegramChat(ctx context.Context, userID, chatID int64) error
}

type dashboards interface {
	Dashboard(ctx context.Context, userID int64) (*reports.Dashboard, error)
	Invalidate(userID int64)
}

// RefreshProducer queues a dashboard rebuild for the reporter. Exported so
// main can pass an untyped nil when kafka is not configured.
type RefreshProducer interface {
	ProduceRefresh(userID int64) error
}

type config interface {
	Addr() string
	CORSOrigins() []string
	TransactionsLimit() uint64
}

type Server struct {
	tracker    *tracker.Service
	users      userStorage
	dashboards dashboards
	producer   RefreshProducer
	addr       string
	pageSize   uint64
	engine     *gin.Engine
}

// New wires the routes. producer may be nil when the refresh queue is not
// configured; mutations then only invalidate the cache.
func New(cfg config, tracker *tracker.Service, users userStorage, dashboards dashboards, producer RefreshProducer) *Server {
	s := &Server{
		tracker:    tracker,
		users:      users,
		dashboards: dashboards,
		producer:   producer,
		addr:       cfg.Addr(),
		pageSize:   cfg.TransactionsLimit(),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))
	engine.Use(s.observe())

	api := engine.Group("/api/v1")
	api.POST("/signup", s.signup)

	authed := api.Group("", s.auth())
	authed.PUT("/me/telegram", s.linkTelegram)

	authed.GET("/categories", s.listCategories)
	authed.POST("/categories", s.createCategory)
	authed.DELETE("/categories/:id", s.deleteCategory)

	authed.GET("/transactions", s.listTransactions)
	authed.POST("/transactions", s.createTransaction)
	authed.DELETE("/transactions/:id", s.deleteTransaction)

	authed.GET("/budgets", s.listBudgets)
	authed.POST("/budgets", s.createBudget)
	authed.DELETE("/budgets/:id", s.deleteBudget)

	authed.GET("/dashboard", s.getDashboard)
	authed.GET("/dashboard/chart", s.getDashboardChart)

	s.engine = engine
	return s
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.engine}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", s.addr))
	return srv.ListenAndServe()
}

// notifyChange keeps derived views in sync after a successful write. Both
// steps are best effort.
func (s *Server) notifyChange(userID int64) {
	s.dashboards.Invalidate(userID)
	if s.producer == nil {
		return
	}
	if err := s.producer.ProduceRefresh(userID); err != nil {
		logger.Warn("failed to queue dashboard refresh", zap.Int64("userID", userID), zap.Error(err))
	}
}
