package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"midiwire/internal/config"
	"midiwire/internal/domain"
	"midiwire/internal/hub"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	config.LoadEnv(log)
	log.SetLevel(config.GetLogLevel())

	listen := ":" + config.GetEnv("MIDIHUB_PORT", "8080")
	queueSize := config.GetEnvInt("MIDIHUB_QUEUE_SIZE", 256)

	h := hub.New(log, queueSize)
	go h.Run()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/ports/:port/events", func(c *gin.Context) {
		var ev domain.Event
		if err := c.ShouldBindJSON(&ev); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ev.Port = c.Param("port")
		if err := h.Publish(ev); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusAccepted)
	})

	router.GET("/ports/:port/events", func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		events := h.Drain(c.Param("port"), limit)
		if events == nil {
			events = []domain.Event{}
		}
		c.JSON(http.StatusOK, events)
	})

	router.GET("/ws", func(c *gin.Context) {
		port := c.Query("port")
		if port == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "port query parameter required"})
			return
		}
		h.ServeWS(c.Writer, c.Request, port)
	})

	router.GET("/healthz", func(c *gin.Context) {
		queued, clients := h.Stats()
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"queued":  queued,
			"clients": clients,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.WithField("listen", listen).Info("midihub listening")
	if err := router.Run(listen); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
