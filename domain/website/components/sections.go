package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var problems = []string{
	"Too many thoughts at once",
	"Too many things to do",
	"Productivity apps that add more noise",
	"Knowing what you should do — but not what to do first",
}

type step struct {
	Title       string
	Description string
}

var steps = []step{
	{"You dump everything", "Thoughts, tasks, worries. No structure needed."},
	{"Fokus clarifies", "AI untangles the clutter and finds what matters."},
	{"You act", "One clear next step instead of a to-do list."},
}

var audiences = []string{
	"ADHD minds",
	"Creators & founders",
	"Anyone feeling mentally cluttered",
	"Busy professionals",
}

func Problem() g.Node {
	return Section(
		Class("section"),
		H2(
			g.Text("Your mind isn't lazy."), Br(),
			g.Text("It's "), Span(Class("accent"), g.Text("overloaded")), g.Text("."),
		),
		Div(
			Class("bullets"),
			g.Group(g.Map(problems, Bullet)),
		),
	)
}

func HowItWorks() g.Node {
	return Section(
		Class("section"),
		ID("how"),
		Div(
			Class("section-head"),
			H2(g.Text("How Fokus ai works")),
			P(Class("muted"), g.Text("No setup. No systems. No pressure.")),
		),
		Div(
			Class("cards"),
			g.Group(g.Map(steps, func(s step) g.Node {
				return Card(s.Title, s.Description)
			})),
		),
	)
}

func Audience() g.Node {
	return Section(
		Class("section section-split"),
		H2(g.Text("Who it's for?")),
		Div(
			Class("tags"),
			g.Group(g.Map(audiences, Tag)),
		),
	)
}
