package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo(class string) g.Node {
	return Img(Src("/static/images/logo.svg"), Alt("Fokus"), Class(class))
}

func Bullet(text string) g.Node {
	return Div(
		Class("bullet"),
		Span(Class("bullet-dot"), g.Attr("aria-hidden", "true")),
		g.Text(text),
	)
}

func Tag(label string) g.Node {
	return Div(Class("tag"), Span(g.Text(label)))
}

func Card(title, description string) g.Node {
	return Div(
		Class("card"),
		Div(Class("card-icon"), g.Attr("aria-hidden", "true"), g.Text("◎")),
		H3(Class("card-title"), g.Text(title)),
		P(Class("card-text"), g.Text(description)),
	)
}
