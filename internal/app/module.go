package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/api/server"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/analysis"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/journal"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/report"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/subscription"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/platform/db"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/config"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	db.Module,
	server.Module,
	analysis.Module,
	journal.Module,
	report.Module,
	subscription.Module,
)
