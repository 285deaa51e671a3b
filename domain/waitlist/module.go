package waitlist

import (
	"go.uber.org/fx"
)

// Module provides waitlist functionality
var Module = fx.Module("waitlist",
	fx.Provide(
		NewRepository,
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
