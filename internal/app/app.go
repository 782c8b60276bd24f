package app

import (
	"casino_platform/internal/config"
	"context"
	"log"
	"net/http"
	"time"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (a *App) initServiceProvider() {
	a.ServiceProvider = newServiceProvider()
}

// Run поднимает игровую платформу: конфиг, провайдер зависимостей,
// роутер и HTTP-сервер
func (a *App) Run() error {
	if err := config.Load(".env"); err != nil {
		log.Printf("no .env file, using process environment: %v", err)
	}
	a.initServiceProvider()

	ctx := context.Background()
	addr := a.ServiceProvider.HTTPCfg().Address()

	srv := &http.Server{
		Addr:              addr,
		Handler:           a.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("casino platform listening at %s", addr)
	return srv.ListenAndServe()
}
