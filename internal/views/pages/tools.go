package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"foodlog/internal/views/layout"
)

// LabelImport renders the nutrition-label PDF import tool.
func LabelImport(message, theme, userName string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := layout.Nav(userName).Render(ctx, w); err != nil {
			return err
		}
		if err := writeFlash(w, message); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			`<form class="label-import" method="post" action="/app/tools/label-import" enctype="multipart/form-data">`+
				`<h1>Import a nutrition label</h1>`+
				`<label>Product title<input type="text" name="title" required></label>`+
				`<label>Label PDF<input type="file" name="label_file" accept="application/pdf" required></label>`+
				`<button type="submit">Import</button>`+
				`</form>`)
		return err
	})
	return layout.Base("Label import — foodlog", theme, body)
}
