package layout

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"foodlog/models"
)

func render(t *testing.T, component templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := component.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	return sb.String()
}

func TestBaseAppliesThemeClass(t *testing.T) {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>hello</p>")
		return err
	})

	out := render(t, Base("Days — foodlog", models.ThemeMidnight, body))

	if !strings.Contains(out, `<body class="theme-midnight">`) {
		t.Fatalf("expected midnight theme class, got %q", out)
	}
	if !strings.Contains(out, "<p>hello</p>") {
		t.Fatal("expected the body component to render inside the shell")
	}
	if !strings.Contains(out, "<title>Days — foodlog</title>") {
		t.Fatal("expected the page title")
	}
}

func TestBaseFallsBackToDefaultTheme(t *testing.T) {
	out := render(t, Base("foodlog", "neon", nil))
	if !strings.Contains(out, `<body class="theme-daylight">`) {
		t.Fatalf("expected fallback to the default theme, got %q", out)
	}
}

func TestBaseEscapesTitle(t *testing.T) {
	out := render(t, Base(`<script>`, models.DefaultTheme, nil))
	if strings.Contains(out, "<title><script></title>") {
		t.Fatal("expected the title to be escaped")
	}
}

func TestNavShowsUserName(t *testing.T) {
	out := render(t, Nav("Dana"))
	if !strings.Contains(out, "Dana") {
		t.Fatal("expected the account name in the nav")
	}
	if !strings.Contains(out, `href="/logout"`) {
		t.Fatal("expected a sign out link")
	}
}

func TestThemeByIDFallsBack(t *testing.T) {
	def := ThemeByID("unknown")
	if def.ID != models.DefaultTheme {
		t.Fatalf("expected default theme, got %q", def.ID)
	}
}

func TestThemeOptionsAreSorted(t *testing.T) {
	options := ThemeOptions()
	if len(options) != 3 {
		t.Fatalf("expected 3 themes, got %d", len(options))
	}
	for i := 1; i < len(options); i++ {
		if options[i-1].Label > options[i].Label {
			t.Fatalf("expected options sorted by label, got %v", options)
		}
	}
}
