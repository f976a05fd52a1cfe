package pages

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"foodlog/internal/views/layout"
	"foodlog/models"
)

// MealEdit renders the edit form for a meal reached from a day page.
func MealEdit(meal models.Meal, titles []models.MealTitle, next, theme, userName string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := layout.Nav(userName).Render(ctx, w); err != nil {
			return err
		}
		if err := openEditForm(w, fmt.Sprintf("/app/meals/%d/edit", meal.ID), next, "Edit meal"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<label>Title<select name="meal_title_id">`); err != nil {
			return err
		}
		for _, title := range titles {
			selected := ""
			if title.ID == meal.MealTitleID {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value="%d"%s>%s</option>`,
				title.ID, selected, html.EscapeString(title.Title)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`</select></label>`+
				`<label>Time<input type="time" name="time" value="%s"></label>`,
			clockValue(meal.Time)); err != nil {
			return err
		}
		return closeEditForm(w)
	})
	return layout.Base("Edit meal — foodlog", theme, body)
}

// DishEdit renders the edit form for a dish reached from a day page.
func DishEdit(dish models.Dish, products []models.Product, next, theme, userName string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := layout.Nav(userName).Render(ctx, w); err != nil {
			return err
		}
		if err := openEditForm(w, fmt.Sprintf("/app/dishes/%d/edit", dish.ID), next, "Edit dish"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<label>Product<select name="product_id">`); err != nil {
			return err
		}
		for _, product := range products {
			selected := ""
			if product.ID == dish.ProductID {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value="%d"%s>%s</option>`,
				product.ID, selected, html.EscapeString(product.Title)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`</select></label>`+
				`<label>Weight (g)<input type="number" name="weight" min="0" value="%d" required></label>`+
				`<label>Note<input type="text" name="note" value="%s"></label>`,
			dish.Weight, html.EscapeString(dish.Note)); err != nil {
			return err
		}
		return closeEditForm(w)
	})
	return layout.Base("Edit dish — foodlog", theme, body)
}

// TakingPillEdit renders the edit form for a pill taking reached from a day
// page. Marking the pill as taken happens here.
func TakingPillEdit(taking models.TakingPill, pills []models.Pill, next, theme, userName string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := layout.Nav(userName).Render(ctx, w); err != nil {
			return err
		}
		if err := openEditForm(w, fmt.Sprintf("/app/taking-pills/%d/edit", taking.ID), next, "Edit pill taking"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<label>Pill<select name="pill_id">`); err != nil {
			return err
		}
		for _, pill := range pills {
			selected := ""
			if pill.ID == taking.PillID {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value="%d"%s>%s</option>`,
				pill.ID, selected, html.EscapeString(pill.Title)); err != nil {
				return err
			}
		}
		checked := ""
		if taking.IsTaken {
			checked = " checked"
		}
		if _, err := fmt.Fprintf(w,
			`</select></label>`+
				`<label>Time<input type="time" name="time" value="%s"></label>`+
				`<label>Taken<input type="checkbox" name="is_taken" value="true"%s></label>`+
				`<label>Note<input type="text" name="note" value="%s"></label>`,
			clockValue(taking.Time), checked, html.EscapeString(taking.Note)); err != nil {
			return err
		}
		return closeEditForm(w)
	})
	return layout.Base("Edit pill taking — foodlog", theme, body)
}

// NoteEdit renders the edit form for a day note.
func NoteEdit(note models.Note, next, theme, userName string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := layout.Nav(userName).Render(ctx, w); err != nil {
			return err
		}
		if err := openEditForm(w, fmt.Sprintf("/app/notes/%d/edit", note.ID), next, "Edit note"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<label>Time<input type="time" name="time" value="%s"></label>`+
				`<label>Note<textarea name="body" required>%s</textarea></label>`,
			clockValue(note.Time), html.EscapeString(note.Body)); err != nil {
			return err
		}
		return closeEditForm(w)
	})
	return layout.Base("Edit note — foodlog", theme, body)
}

func openEditForm(w io.Writer, action, next, heading string) error {
	target := action
	if next != "" {
		target += "?next=" + url.QueryEscape(next)
	}
	_, err := fmt.Fprintf(w, `<form class="edit-form" method="post" action="%s"><h1>%s</h1>`,
		target, html.EscapeString(heading))
	return err
}

func closeEditForm(w io.Writer) error {
	_, err := io.WriteString(w, `<button type="submit">Save</button></form>`)
	return err
}

func clockValue(t *string) string {
	if t == nil {
		return ""
	}
	return *t
}
