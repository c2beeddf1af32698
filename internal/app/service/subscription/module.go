package subscription

import "go.uber.org/fx"

// Module exposes the subscription gate via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
