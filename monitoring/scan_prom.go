// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ScanLaunches = promauto.NewCounter(prometheus.CounterOpts{
	Name: "vulify_scan_launches_total",
	Help: "Number of scans launched through the console",
})

var ScanResultIngests = promauto.NewCounter(prometheus.CounterOpts{
	Name: "vulify_scan_result_ingests_total",
	Help: "Number of scan results attached to scans",
})
