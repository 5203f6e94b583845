// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	declarationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "declare",
		Name:      "declarations_created_total",
		Help:      "Declarations accepted, by draft status.",
	}, []string{"status"})

	signersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "declare",
		Name:      "signers_registered_total",
		Help:      "Signers added to the public commitment list.",
	})

	captchaFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "declare",
		Name:      "captcha_failures_total",
		Help:      "Submissions rejected by captcha verification.",
	})
)
