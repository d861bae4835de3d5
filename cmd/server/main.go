package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"huffman_codec_go/internal/app"
	"huffman_codec_go/internal/config"
	"huffman_codec_go/internal/handler"
	"huffman_codec_go/internal/router"
	"huffman_codec_go/pkg/logger"
)

func main() {
	cfg := config.Load()
	logg := logger.New()

	a, err := app.New(context.Background(), cfg, logg)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	r := gin.Default()
	router.Register(r, router.Dependencies{
		SessionHandler: handler.NewSessionHandler(a.Sessions),
	})

	addr := ":" + cfg.Port
	log.Printf("starting server at %s (store %s)\n", addr, cfg.Store)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
