package journal

import "go.uber.org/fx"

// Module exposes the journal store via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
