// Package layout provides the shared HTML shell for the diary pages.
package layout

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Base wraps a page body in the common document shell. The theme identifier
// is attached to the body element so the stylesheet can restyle everything.
func Base(title, theme string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		def := ThemeByID(theme)
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s</title>`+
				`<link rel="stylesheet" href="/assets/css/app.css">`+
				`<script src="/assets/js/htmx.min.js" defer></script>`+
				`</head><body class="theme-%s">`,
			html.EscapeString(title), html.EscapeString(def.ID)); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// Nav renders the top navigation bar shown on authenticated pages.
func Nav(userName string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<nav class="topbar"><a class="brand" href="/app">foodlog</a>`+
				`<span class="links"><a href="/app">Days</a> `+
				`<a href="/app/tools/label-import">Label import</a> `+
				`<a href="/app/preferences">Preferences</a></span>`+
				`<span class="account">%s <a href="/logout">Sign out</a></span></nav>`,
			html.EscapeString(userName))
		return err
	})
}
