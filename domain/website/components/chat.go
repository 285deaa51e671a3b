package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ChatView renders the chat shell. Turns are appended by static/js/chat.js.
func ChatView() g.Node {
	return Div(
		Class("chat"),
		Header(
			Class("chat-header"),
			H1(g.Text("Kevin kyle Chat")),
		),
		Main(
			ID("chat-log"),
			Class("chat-log"),
			Aria("live", "polite"),
			Div(
				ID("chat-empty"),
				Class("chat-empty"),
				P(g.Text("Start a conversation with Gemini...")),
			),
			Div(
				ID("chat-loading"),
				Class("turn turn-assistant"),
				g.Attr("hidden"),
				Div(Class("bubble thinking"), g.Text("Thinking...")),
			),
		),
		Footer(
			Class("chat-footer"),
			Form(
				ID("chat-form"),
				Class("chat-form"),
				Textarea(
					ID("chat-input"),
					Name("input"),
					Rows("1"),
					Placeholder("Type a message..."),
				),
				Button(
					ID("chat-send"),
					Type("submit"),
					Class("btn btn-primary"),
					Aria("label", "Send"),
					Disabled(),
					g.Text("Send"),
				),
			),
			P(Class("disclaimer"), g.Text("Gemini may display inaccurate info, including about people, so double-check its responses.")),
		),
	)
}
