package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	BodyClass   string
	Scripts     []string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Fokus - Stop thinking. Start executing."
	}

	if config.Description == "" {
		config.Description = "Fokus is an AI assistant that clears mental clutter and helps you decide what actually matters, in seconds."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("icon"), Href("/static/images/logo.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class(config.BodyClass),
				g.Group(content),

				g.Group(g.Map(config.Scripts, func(src string) g.Node {
					return Script(Type("module"), Src(src))
				})),
			),
		),
	})
}
