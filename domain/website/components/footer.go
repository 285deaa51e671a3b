package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter() g.Node {
	return Footer(
		Class("page-footer"),
		g.Text("© Fokus 2026."),
	)
}
