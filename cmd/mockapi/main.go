package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/mall-client/internal/interfaces/mockapi"
	"github.com/jhoicas/mall-client/pkg/config"
	"github.com/jhoicas/mall-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando backend simulado")

	srv := mockapi.New(mockapi.Config{
		AppName:    cfg.App.Name + "-mock",
		Prefix:     cfg.Mock.Prefix,
		JWTSecret:  cfg.JWT.Secret,
		JWTExpMins: cfg.JWT.Expiration,
		JWTIssuer:  cfg.JWT.Issuer,
		Logger:     log.Component("mockapi"),
	})
	if err := srv.Seed(); err != nil {
		log.Fatal().Err(err).Msg("carga de datos de ejemplo")
	}

	addr := cfg.Mock.Addr()
	go func() {
		if err := srv.App.Listen(addr); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", addr).Str("prefix", cfg.Mock.Prefix).Msg("servidor escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.App.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("servidor detenido")
}
