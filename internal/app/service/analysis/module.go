package analysis

import (
	"context"

	"go.uber.org/fx"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/platform/gemini"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/config"
)

func newGenerator(lc fx.Lifecycle, cfg *config.Config) (TextGenerator, error) {
	client, err := gemini.NewClient(context.Background(), &gemini.ClientOptions{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error { return client.Close() },
	})
	return client, nil
}

// Module exposes the analysis service via Fx.
var Module = fx.Options(
	fx.Provide(newGenerator),
	fx.Provide(NewService),
)
