package pages

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"foodlog/internal/views/layout"
)

// Preferences renders the settings page with the theme picker.
func Preferences(theme, userName string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := layout.Nav(userName).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w,
			`<form class="preferences" method="post" action="/app/preferences">`+
				`<h1>Preferences</h1><fieldset><legend>Theme</legend>`); err != nil {
			return err
		}
		for _, option := range layout.ThemeOptions() {
			checked := ""
			if option.ID == theme {
				checked = " checked"
			}
			if _, err := fmt.Fprintf(w,
				`<label><input type="radio" name="theme" value="%s"%s> %s <small>%s</small></label>`,
				option.ID, checked, html.EscapeString(option.Label),
				html.EscapeString(option.Description)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</fieldset><button type="submit">Save</button></form>`)
		return err
	})
	return layout.Base("Preferences — foodlog", theme, body)
}
