package pages

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"foodlog/internal/diary"
	"foodlog/internal/views/layout"
	"foodlog/models"
)

// DayList renders the diary overview page: one row per day, newest first,
// with classified totals against each day's linked intake.
func DayList(days []models.Day, intakes []models.DailyIntake, defaultIntakeID uint, theme, userName string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := layout.Nav(userName).Render(ctx, w); err != nil {
			return err
		}
		if err := newDayForm(w, days, intakes, defaultIntakeID); err != nil {
			return err
		}

		if _, err := io.WriteString(w,
			`<table class="day-list"><tr><th>Date</th><th>Intake</th><th>Energy</th>`+
				`<th>Proteins</th><th>Fats</th><th>Carbs</th><th>Weight</th></tr>`); err != nil {
			return err
		}
		for _, day := range days {
			if err := dayListRow(w, day); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</table>`)
		return err
	})
	return layout.Base("Days — foodlog", theme, body)
}

func newDayForm(w io.Writer, days []models.Day, intakes []models.DailyIntake, defaultIntakeID uint) error {
	if _, err := io.WriteString(w,
		`<form class="new-day" method="post" action="/app/days">`+
			`<label>Date<input type="date" name="date" required></label>`+
			`<label>Daily intake<select name="daily_intake_id"><option value=""></option>`); err != nil {
		return err
	}
	for _, intake := range intakes {
		selected := ""
		if intake.ID == defaultIntakeID {
			selected = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%d"%s>%s</option>`,
			intake.ID, selected, html.EscapeString(intake.Title)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w,
		`</select></label>`+
			`<label>Copy meals from<select name="copy_from"><option value=""></option>`); err != nil {
		return err
	}
	for _, day := range days {
		if _, err := fmt.Fprintf(w, `<option value="%d">%s</option>`,
			day.ID, day.Date.Format("2006-01-02")); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select></label><button type="submit">Add day</button></form>`)
	return err
}

func dayListRow(w io.Writer, day models.Day) error {
	intakeTitle := ""
	if day.DailyIntake != nil {
		intakeTitle = day.DailyIntake.Title
	}
	if _, err := fmt.Fprintf(w, `<tr><td><a href="/app/days/%d">%s</a></td><td>%s</td>`,
		day.ID, day.Date.Format("2006-01-02"), html.EscapeString(intakeTitle)); err != nil {
		return err
	}
	macros := []struct {
		actual float64
		target float64
	}{
		{day.Energy(), intakeTarget(day, func(i models.DailyIntake) float64 { return i.Energy })},
		{day.Proteins(), intakeTarget(day, func(i models.DailyIntake) float64 { return i.Proteins })},
		{day.Fats(), intakeTarget(day, func(i models.DailyIntake) float64 { return i.Fats })},
		{day.Carbs(), intakeTarget(day, func(i models.DailyIntake) float64 { return i.Carbs })},
	}
	for _, macro := range macros {
		band, ok := diary.Classify(macro.actual, macro.target)
		cell := diary.Cell{Value: macro.actual, Band: band, Classified: ok}
		if err := macroCell(w, cell); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, `<td>%s</td></tr>`, FormatMacro(day.WeightGrams()))
	return err
}

func intakeTarget(day models.Day, pick func(models.DailyIntake) float64) float64 {
	if day.DailyIntake == nil {
		return 0
	}
	return pick(*day.DailyIntake)
}

// DayDetail renders a single day's page with the combined chronological table.
func DayDetail(summary diary.Summary, theme, userName string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := layout.Nav(userName).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, summary.Day.Date.Format("2006-01-02")); err != nil {
			return err
		}
		return DayTable(summary).Render(ctx, w)
	})
	return layout.Base(summary.Day.Date.Format("2006-01-02")+" — foodlog", theme, body)
}

// DayTable renders the merged chronological table plus the three summary
// rows. It is also served standalone for HTMX refreshes.
func DayTable(summary diary.Summary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		dayURL := fmt.Sprintf("/app/days/%d", summary.Day.ID)
		if _, err := io.WriteString(w,
			`<table class="day-table" id="day-table">`+
				`<tr><th>Entry</th><th>Weight</th><th>Energy</th><th>Proteins</th>`+
				`<th>Fats</th><th>Carbs</th><th>LF</th></tr>`); err != nil {
			return err
		}

		for _, entry := range summary.Entries {
			var err error
			switch entry.Kind {
			case diary.EntryMeal:
				err = mealRows(w, *entry.Meal, dayURL)
			case diary.EntryPill:
				err = pillRow(w, *entry.TakingPill, dayURL)
			case diary.EntryNote:
				err = noteRow(w, *entry.Note, dayURL)
			}
			if err != nil {
				return err
			}
		}

		if summary.HasIntake {
			if err := totalRow(w, "Total", FormatMacro(summary.Day.WeightGrams()), summary.Totals); err != nil {
				return err
			}
			intakeTitle := ""
			if summary.Day.DailyIntake != nil {
				intakeTitle = summary.Day.DailyIntake.Title
			}
			if err := totalRow(w, intakeTitle, "-", summary.Targets); err != nil {
				return err
			}
			if err := totalRow(w, "Diff", "-", summary.Diff); err != nil {
				return err
			}
		} else {
			plain := diary.MacroRow{
				Energy:   diary.Cell{Value: summary.Day.Energy()},
				Proteins: diary.Cell{Value: summary.Day.Proteins()},
				Fats:     diary.Cell{Value: summary.Day.Fats()},
				Carbs:    diary.Cell{Value: summary.Day.Carbs()},
			}
			if err := totalRow(w, "Total", FormatMacro(summary.Day.WeightGrams()), plain); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</table>`)
		return err
	})
}

func mealRows(w io.Writer, meal models.Meal, dayURL string) error {
	if _, err := fmt.Fprintf(w,
		`<tr class="meal-row"><td><a href="/app/meals/%d/edit?next=%s">%s (%s)</a></td>`+
			`<td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td></td></tr>`,
		meal.ID, dayURL, html.EscapeString(MealLabel(meal)), FormatClock(meal.Time),
		FormatMacro(meal.WeightGrams()), FormatMacro(meal.Energy()), FormatMacro(meal.Proteins()),
		FormatMacro(meal.Fats()), FormatMacro(meal.Carbs())); err != nil {
		return err
	}

	for _, dish := range meal.Dishes {
		productTitle := "Product"
		if dish.Product != nil {
			productTitle = dish.Product.Title
		}
		if _, err := fmt.Fprintf(w,
			`<tr class="dish-row"><td><a href="/app/dishes/%d/edit?next=%s">%s</a></td>`+
				`<td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`+
				`<td><span class="lf-%s"></span></td></tr>`,
			dish.ID, dayURL, html.EscapeString(productTitle), dish.Weight,
			FormatMacro(dish.Energy()), FormatMacro(dish.Proteins()),
			FormatMacro(dish.Fats()), FormatMacro(dish.Carbs()),
			LactoseBadge(dish.LactoseFree())); err != nil {
			return err
		}
	}
	return nil
}

func pillRow(w io.Writer, taking models.TakingPill, dayURL string) error {
	taken := "no"
	if taking.IsTaken {
		taken = "yes"
	}
	_, err := fmt.Fprintf(w,
		`<tr class="pill-row"><td>&#128138; <a href="/app/taking-pills/%d/edit?next=%s">%s (%s)</a></td>`+
			`<td><span class="taken-%s"></span></td><td colspan="5">%s</td></tr>`,
		taking.ID, dayURL, html.EscapeString(PillLabel(taking)), FormatClock(taking.Time),
		taken, html.EscapeString(taking.Note))
	return err
}

func noteRow(w io.Writer, note models.Note, dayURL string) error {
	_, err := fmt.Fprintf(w,
		`<tr class="note-row"><td colspan="7">&#128221; <a href="/app/notes/%d/edit?next=%s">%s</a> `+
			`<span>%s</span></td></tr>`,
		note.ID, dayURL, FormatClock(note.Time), html.EscapeString(note.Body))
	return err
}

func totalRow(w io.Writer, label, weight string, row diary.MacroRow) error {
	if _, err := fmt.Fprintf(w, `<tr class="total-row"><td>%s</td><td>%s</td>`,
		html.EscapeString(label), weight); err != nil {
		return err
	}
	for _, cell := range []diary.Cell{row.Energy, row.Proteins, row.Fats, row.Carbs} {
		if err := macroCell(w, cell); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `<td></td></tr>`)
	return err
}

func macroCell(w io.Writer, cell diary.Cell) error {
	class := BandClass(cell)
	if class == "" {
		_, err := fmt.Fprintf(w, `<td>%s</td>`, FormatMacro(cell.Value))
		return err
	}
	_, err := fmt.Fprintf(w, `<td><span class="%s">%s</span></td>`, class, FormatMacro(cell.Value))
	return err
}
