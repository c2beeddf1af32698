package report

import "go.uber.org/fx"

// Module exposes the report exporter via Fx.
var Module = fx.Options(
	fx.Provide(NewExporter),
)
