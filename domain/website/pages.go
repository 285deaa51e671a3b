package website

import (
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/venskie03/fokus/domain/website/components"
)

func LandingPage(w http.ResponseWriter, r *http.Request) {
	page := components.Layout(
		components.PageConfig{
			BodyClass: "landing",
			Scripts:   []string{"/static/js/waitlist.js"},
		},
		components.Topbar(),
		components.Hero(),
		components.Problem(),
		components.HowItWorks(),
		components.Audience(),
		components.Waitlist(),
		components.PageFooter(),
	)

	render(w, page)
}

func ChatPage(w http.ResponseWriter, r *http.Request) {
	page := components.Layout(
		components.PageConfig{
			Title:     "Fokus - Chat",
			BodyClass: "chat-page",
			Scripts:   []string{"/static/js/chat.js"},
		},
		components.ChatView(),
	)

	render(w, page)
}

func render(w http.ResponseWriter, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = page.Render(w)
}
