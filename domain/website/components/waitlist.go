package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Waitlist renders the capture form. static/js/waitlist.js drives the form and the modal.
func Waitlist() g.Node {
	return Section(
		Class("section waitlist"),
		ID("waitlist"),
		Div(
			Class("glass"),
			H2(Class("gradient-text"), g.Text("Why a waitlist?")),
			P(
				Class("muted"),
				g.Text("We're building Fokus ai carefully — focused, calm, and intentional. The waitlist gets early access and helps shape the product."),
			),
			Form(
				ID("waitlist-form"),
				Class("waitlist-form"),
				g.Attr("novalidate"),
				Input(
					ID("waitlist-email"),
					Type("email"),
					Name("email"),
					Placeholder("Enter email here"),
					AutoComplete("email"),
					Required(),
				),
				Button(Type("submit"), Class("btn btn-primary"), g.Text("Join the waitlist")),
			),
			Div(Class("perk-badge"), g.Text("FOUNDING USERS PERK")),
			P(
				Class("perk"),
				g.Text("First 1,000 people on the waitlist get their first month "),
				Span(Class("accent"), g.Text("free")),
			),
		),
		ConfirmModal(),
	)
}

// ConfirmModal holds one panel per modal state; the script shows exactly one at a time
func ConfirmModal() g.Node {
	return Div(
		ID("waitlist-modal"),
		Class("modal"),
		Role("dialog"),
		Aria("modal", "true"),
		g.Attr("hidden"),
		Div(
			Class("modal-card"),

			Div(
				Data("state", "confirm"),
				H3(g.Text("Confirm Email")),
				P(
					Class("muted"),
					g.Text("Join the waitlist with "),
					Span(Class("accent"), Data("bind", "email")),
					g.Text(" ?"),
				),
				Div(
					Class("modal-actions"),
					Button(Type("button"), Class("btn btn-ghost"), Data("action", "close"), g.Text("Cancel")),
					Button(Type("button"), Class("btn btn-primary"), Data("action", "confirm"), g.Text("Confirm")),
				),
			),

			Div(
				Data("state", "submitting"),
				g.Attr("hidden"),
				Div(Class("spinner"), g.Attr("aria-hidden", "true")),
				P(Class("muted pulse"), g.Text("Adding you to the list...")),
			),

			Div(
				Data("state", "success"),
				g.Attr("hidden"),
				Div(Class("status-icon ok"), g.Attr("aria-hidden", "true"), g.Text("✓")),
				H3(g.Text("Success!")),
				P(Class("muted"), g.Text("You have successfully joined the waitlist!")),
				Div(
					Class("modal-actions"),
					Button(Type("button"), Class("btn btn-ghost"), Data("action", "close"), g.Text("Close")),
				),
			),

			Div(
				Data("state", "error"),
				g.Attr("hidden"),
				Div(Class("status-icon err"), g.Attr("aria-hidden", "true"), g.Text("!")),
				H3(g.Text("Oops!")),
				P(Class("error-text"), Data("bind", "error")),
				Div(
					Class("modal-actions"),
					Button(Type("button"), Class("btn btn-ghost"), Data("action", "close"), g.Text("Close")),
					Button(Type("button"), Class("btn btn-ghost"), Data("action", "retry"), g.Text("Try Again")),
				),
			),
		),
	)
}
