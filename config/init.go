package config

import (
	"hostel/services/logger"
	appvalidator "hostel/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/olahol/melody"
)

// InitApp tạo gin engine với CORS và hub websocket
func InitApp(cfg *Config, log logger.Logger) (*gin.Engine, *melody.Melody) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	configCors := cors.DefaultConfig()
	configCors.AllowOrigins = cfg.CORSOrigins
	configCors.AllowCredentials = true
	configCors.AddAllowHeaders("X-Request-ID")
	configCors.AddExposeHeaders("X-Request-ID")
	router.Use(cors.New(configCors))

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Warn("set trusted proxies: %v", err)
	}

	// Thông báo lỗi binding dùng tên field theo json
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(appvalidator.JSONFieldName)
	}

	m := melody.New()
	m.HandleConnect(func(s *melody.Session) {
		log.Debug("websocket connected: %s", s.Request.RemoteAddr)
	})

	return router, m
}

func InitWebSocket(router *gin.Engine, m *melody.Melody, log logger.Logger) {
	router.GET("/ws", func(c *gin.Context) {
		if err := m.HandleRequest(c.Writer, c.Request); err != nil {
			log.Warn("websocket upgrade: %v", err)
		}
	})
	log.Info("WebSocket initialized successfully")
}
