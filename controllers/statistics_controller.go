// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package controllers

import (
	"time"

	"github.com/l3montree-dev/vulify/services"
	"github.com/l3montree-dev/vulify/shared"
)

// StatisticsController serves the aggregate blocks above every list
// view. All numbers come from the unfiltered collections.
type StatisticsController struct {
	statisticsService *services.StatisticsService
}

func NewStatisticsController(statisticsService *services.StatisticsService) *StatisticsController {
	return &StatisticsController{
		statisticsService: statisticsService,
	}
}

func (controller *StatisticsController) Overview(ctx shared.Context) error {
	stats, err := controller.statisticsService.Overview()
	if err != nil {
		return err
	}
	return ctx.JSON(200, stats)
}

func (controller *StatisticsController) Commercial(ctx shared.Context) error {
	stats, err := controller.statisticsService.Commercial()
	if err != nil {
		return err
	}
	return ctx.JSON(200, stats)
}

func (controller *StatisticsController) Diagnostics(ctx shared.Context) error {
	stats, err := controller.statisticsService.Diagnostics(time.Now())
	if err != nil {
		return err
	}
	return ctx.JSON(200, stats)
}

func (controller *StatisticsController) Templates(ctx shared.Context) error {
	stats, err := controller.statisticsService.Templates(time.Now())
	if err != nil {
		return err
	}
	return ctx.JSON(200, stats)
}

func (controller *StatisticsController) Remediations(ctx shared.Context) error {
	stats, err := controller.statisticsService.Remediations()
	if err != nil {
		return err
	}
	return ctx.JSON(200, stats)
}

func (controller *StatisticsController) AuditLogs(ctx shared.Context) error {
	stats, err := controller.statisticsService.AuditLogs()
	if err != nil {
		return err
	}
	return ctx.JSON(200, stats)
}

func (controller *StatisticsController) Analytics(ctx shared.Context) error {
	stats, err := controller.statisticsService.Analytics(time.Now())
	if err != nil {
		return err
	}
	return ctx.JSON(200, stats)
}
