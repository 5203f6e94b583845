// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/AleutianAI/AleutianDeclare/services/declare/config"
	"github.com/AleutianAI/AleutianDeclare/services/declare/handlers"
	"github.com/AleutianAI/AleutianDeclare/services/declare/middleware"
	"github.com/AleutianAI/AleutianDeclare/services/declare/recaptcha"
	"github.com/AleutianAI/AleutianDeclare/services/declare/store"
)

func SetupRoutes(router *gin.Engine, st *store.Store, verifier recaptcha.TokenVerifier,
	cfg *config.Config) {

	router.Use(otelgin.Middleware("declare-service"))
	router.Use(middleware.RequestID())
	router.Use(middleware.DefaultLang(cfg.DefaultLang))

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version 1 group
	v1 := router.Group("/v1")
	{
		v1.GET("/catalog", handlers.GetCatalog())

		declarations := v1.Group("/declarations")
		{
			declarations.POST("", handlers.CreateDeclaration(st, verifier))
			declarations.PUT("/:id", handlers.UpdateDeclaration(st))
			declarations.GET("/:id", handlers.GetDeclaration(st))
		}

		signers := v1.Group("/signers")
		{
			signers.POST("", handlers.CreateSigner(st, verifier, cfg.SiteDomain))
			signers.GET("", handlers.ListSigners(st))
			signers.GET("/verify/:hash", handlers.VerifySigner(st, cfg.SiteDomain))
		}
	}
}
