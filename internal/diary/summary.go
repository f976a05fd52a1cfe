package diary

import (
	"math"
	"sort"

	"foodlog/models"
)

// EntryKind tags the variant held by a summary Entry.
type EntryKind string

// Entry kinds appearing in a day's chronological table.
const (
	EntryMeal EntryKind = "meal"
	EntryPill EntryKind = "pill"
	EntryNote EntryKind = "note"
)

// Entry is one row of the merged chronological sequence of a day. Exactly
// one of Meal, TakingPill and Note is set, selected by Kind.
type Entry struct {
	Kind       EntryKind
	Meal       *models.Meal
	TakingPill *models.TakingPill
	Note       *models.Note
}

// Time returns the entry's wall-clock time, or nil when none is set.
func (e Entry) Time() *string {
	switch e.Kind {
	case EntryMeal:
		return e.Meal.Time
	case EntryPill:
		return e.TakingPill.Time
	case EntryNote:
		return e.Note.Time
	}
	return nil
}

func (e Entry) id() uint {
	switch e.Kind {
	case EntryMeal:
		return e.Meal.ID
	case EntryPill:
		return e.TakingPill.ID
	case EntryNote:
		return e.Note.ID
	}
	return 0
}

// Cell is one macro value with its optional deviation band.
type Cell struct {
	Value      float64 `json:"value"`
	Band       Band    `json:"band,omitempty"`
	Classified bool    `json:"classified"`
}

// MacroRow is one of the three summary rows appended after the entries.
type MacroRow struct {
	Energy   Cell `json:"energy"`
	Proteins Cell `json:"proteins"`
	Fats     Cell `json:"fats"`
	Carbs    Cell `json:"carbs"`
}

// Summary is the assembled day view: the merged entry sequence plus, when a
// daily intake is linked, the comparison rows.
type Summary struct {
	Day     models.Day
	Entries []Entry

	// HasIntake is false when the day has no linked intake profile; the
	// comparison rows are omitted then and only raw totals are available.
	HasIntake bool
	Totals    MacroRow
	Targets   MacroRow
	Diff      MacroRow
}

// BuildSummary merges a day's meals, pill takings and notes into one
// chronological sequence and computes the comparison rows. The day must be
// loaded with its children (and their products) preloaded; the function
// itself is pure.
//
// Entries without a time sort after all timed entries, stable by entity id.
func BuildSummary(day models.Day) Summary {
	entries := make([]Entry, 0, len(day.Meals)+len(day.TakingPills)+len(day.Notes))
	for i := range day.Meals {
		entries = append(entries, Entry{Kind: EntryMeal, Meal: &day.Meals[i]})
	}
	for i := range day.TakingPills {
		entries = append(entries, Entry{Kind: EntryPill, TakingPill: &day.TakingPills[i]})
	}
	for i := range day.Notes {
		entries = append(entries, Entry{Kind: EntryNote, Note: &day.Notes[i]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return earlier(entries[i].Time(), entries[i].id(), entries[j].Time(), entries[j].id())
	})

	summary := Summary{Day: day, Entries: entries}

	intake := day.DailyIntake
	if intake == nil {
		return summary
	}

	summary.HasIntake = true
	summary.Totals = MacroRow{
		Energy:   classifiedCell(day.Energy(), intake.Energy),
		Proteins: classifiedCell(day.Proteins(), intake.Proteins),
		Fats:     classifiedCell(day.Fats(), intake.Fats),
		Carbs:    classifiedCell(day.Carbs(), intake.Carbs),
	}
	summary.Targets = MacroRow{
		Energy:   Cell{Value: intake.Energy},
		Proteins: Cell{Value: intake.Proteins},
		Fats:     Cell{Value: intake.Fats},
		Carbs:    Cell{Value: intake.Carbs},
	}
	summary.Diff = MacroRow{
		Energy:   diffCell(day.Energy(), intake.Energy),
		Proteins: diffCell(day.Proteins(), intake.Proteins),
		Fats:     diffCell(day.Fats(), intake.Fats),
		Carbs:    diffCell(day.Carbs(), intake.Carbs),
	}

	return summary
}

func classifiedCell(actual, target float64) Cell {
	band, ok := Classify(actual, target)
	return Cell{Value: actual, Band: band, Classified: ok}
}

// diffCell carries the signed difference target - actual, classified by how
// the actual value stands against the target.
func diffCell(actual, target float64) Cell {
	band, ok := Classify(actual, target)
	return Cell{Value: round2(target - actual), Band: band, Classified: ok}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
