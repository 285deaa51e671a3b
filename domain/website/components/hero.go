package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Topbar() g.Node {
	return Nav(
		Class("topbar"),
		A(Href("/"), Logo("logo-sm")),
	)
}

func Hero() g.Node {
	return Section(
		Class("hero"),
		ID("hero"),
		Logo("logo-lg"),
		H1(g.Text("Stop thinking. Start executing.")),
		P(Class("hero-tagline accent"), g.Text("Without pressure. Without guilt.")),
		P(
			Class("hero-lead muted"),
			g.Text("Fokus is an AI assistant that clears mental clutter and helps you decide what actually matters — in seconds."),
		),
		A(Href("#waitlist"), Class("btn btn-primary btn-lg"), g.Text("Join the waitlist")),
	)
}
