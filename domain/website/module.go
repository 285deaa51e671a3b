// Package website serves the landing page, the chat page and their static assets.
package website

import (
	"go.uber.org/fx"
)

var Module = fx.Module("website",
	fx.Provide(
		fx.Annotate(NewRouter, fx.ResultTags(`name:"website"`)),
	),
	fx.Invoke(
		fx.Annotate(RegisterRoutes, fx.ParamTags(``, `name:"website"`)),
	),
)
