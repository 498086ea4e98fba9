// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var MailDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vulify_mail_deliveries_total",
	Help: "Outbound mail deliveries by outcome",
}, []string{"outcome"})

var SampleDataSeeds = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vulify_sample_data_seeds_total",
	Help: "Sample data seed operations by collection",
}, []string{"collection"})
