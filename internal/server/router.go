package server

import (
	"context"
	"net/http"

	"foodlog/internal/handlers"
	applog "foodlog/internal/log"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")

	mux.HandleFunc("/healthz", handlers.Health)
	mux.HandleFunc("/login", handlers.Login)
	mux.HandleFunc("/signup", handlers.Signup)
	mux.HandleFunc("/logout", handlers.Logout)
	mux.HandleFunc("/", handlers.Home)

	protected := map[string]http.HandlerFunc{
		"/app":                    handlers.DayListPage,
		"/app/days":               handlers.DayListPage,
		"/app/days/":              handlers.DayDetailPage,
		"/app/meals/":             handlers.MealEditPage,
		"/app/dishes/":            handlers.DishEditPage,
		"/app/taking-pills/":      handlers.TakingPillEditPage,
		"/app/notes/":             handlers.NoteEditPage,
		"/app/preferences":        handlers.Preferences,
		"/app/tools/label-import": handlers.ToolsImportLabel,

		"/app/api/products":       handlers.ProductResource,
		"/app/api/products/":      handlers.ProductResource,
		"/app/api/daily-intakes":  handlers.DailyIntakeResource,
		"/app/api/daily-intakes/": handlers.DailyIntakeResource,
		"/app/api/days":           handlers.DayResource,
		"/app/api/days/":          handlers.DayResource,
		"/app/api/meal-titles":    handlers.MealTitleResource,
		"/app/api/meal-titles/":   handlers.MealTitleResource,
		"/app/api/meals":          handlers.MealResource,
		"/app/api/meals/":         handlers.MealResource,
		"/app/api/dishes":         handlers.DishResource,
		"/app/api/dishes/":        handlers.DishResource,
		"/app/api/pills":          handlers.PillResource,
		"/app/api/pills/":         handlers.PillResource,
		"/app/api/taking-pills":   handlers.TakingPillResource,
		"/app/api/taking-pills/":  handlers.TakingPillResource,
		"/app/api/notes":          handlers.NoteResource,
		"/app/api/notes/":         handlers.NoteResource,
	}
	for path, handler := range protected {
		mux.Handle(path, handlers.RequireAuthentication(handler))
		applog.Debug(context.Background(), "route registered", "path", path, "protected", true)
	}

	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir("web/static"))))
	applog.Debug(context.Background(), "route registered", "path", "/assets/", "static", true)

	return mux
}
