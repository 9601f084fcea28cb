package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/navalhaapp/barber-booking/internal/config"
	dbpkg "github.com/navalhaapp/barber-booking/internal/db"
	"github.com/navalhaapp/barber-booking/internal/logger"
	"github.com/navalhaapp/barber-booking/internal/routes"
)

func main() {

	// em produção as variáveis vêm do ambiente; o .env é só conveniência local
	_ = godotenv.Load()

	logger.Init()
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	logger.L().Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.L().Fatal("failed to start server", zap.Error(err))
	}
}
