// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command declare starts the academic AI declaration HTTP server.
//
// It reads configuration from DECLARE_-prefixed environment variables
// and serves the declaration, signer, and catalog APIs.
//
// # Environment Variables
//
//   - DECLARE_PORT: HTTP server port (default: 8080)
//   - DECLARE_DATA_DIR: SQLite data directory (default: in-memory)
//   - DECLARE_SITE_DOMAIN: public origin for verification URLs
//   - DECLARE_RECAPTCHA_ENABLED: enable captcha checks (default: false)
//   - DECLARE_RECAPTCHA_SECRET_KEY: siteverify secret
//   - DECLARE_LOG_DIR: add a JSON file log sink
//   - DECLARE_DEFAULT_LANG: fallback display language (default: es)
//   - DECLARE_TRACING_ENABLED: export spans over OTLP gRPC (default: false)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: collector address (default: localhost:4317)
//
// # Usage
//
//	# Build
//	go build -o declare ./cmd/declare
//
//	# Run
//	./declare
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/AleutianAI/AleutianDeclare/pkg/logging"
	"github.com/AleutianAI/AleutianDeclare/services/declare/config"
	"github.com/AleutianAI/AleutianDeclare/services/declare/recaptcha"
	"github.com/AleutianAI/AleutianDeclare/services/declare/routes"
	"github.com/AleutianAI/AleutianDeclare/services/declare/store"
)

func initTracer() (func(context.Context), error) {
	ctx := context.Background()

	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint == "" {
		otelEndpoint = "localhost:4317"
	}
	conn, err := grpc.NewClient(otelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("declare-service")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.
		TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("Failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(logging.Config{
		Level:   logging.LevelInfo,
		LogDir:  cfg.LogDir,
		Service: "declare",
		JSON:    cfg.LogJSON,
	})
	defer logger.Close()
	slog.SetDefault(logger.Slog())

	slog.Info("Starting declare service",
		"port", cfg.Port,
		"data_dir", cfg.DataDir,
		"recaptcha_enabled", cfg.RecaptchaEnabled,
		"default_lang", cfg.DefaultLang,
	)

	if cfg.TracingEnabled {
		shutdown, err := initTracer()
		if err != nil {
			log.Fatalf("Failed to initialize tracer: %v", err)
		}
		defer shutdown(context.Background())
	}

	st, err := store.New(cfg.DataDir, logger.Slog())
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	verifier := recaptcha.New(cfg.RecaptchaSecretKey, cfg.RecaptchaEnabled)

	router := gin.Default()
	routes.SetupRoutes(router, st, verifier, cfg)

	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
