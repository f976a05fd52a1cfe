package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	applog "foodlog/internal/log"
	"foodlog/internal/views/pages"
	"foodlog/models"
)

const maxLabelUploadSize = 5 << 20 // 5 MiB

// labelFacts holds the per-100g values parsed from a nutrition label.
type labelFacts struct {
	Energy   *float64
	Proteins *float64
	Fats     *float64
	Carbs    *float64
	Sugar    *float64
	Salt     *float64
}

// ToolsImportLabel accepts a nutrition-label PDF, extracts its text and
// creates a Product from the per-100g facts found on it. Parsing is plain
// pattern matching; a label the parser cannot read is reported, not guessed.
func ToolsImportLabel(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		renderLabelImport(w, r, "")
	case http.MethodPost:
		importLabel(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func renderLabelImport(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := pages.LabelImport(message, currentTheme(r), currentUserName(r))
	if err := page.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render label import", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func importLabel(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxLabelUploadSize); err != nil {
		applog.Error(r.Context(), "failed to parse label import form", "error", err)
		renderLabelImport(w, r, "Upload is too large or invalid. Please retry with a smaller file.")
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		renderLabelImport(w, r, "A product title is required.")
		return
	}

	data, err := readLabelUpload(r)
	if err != nil {
		applog.Error(r.Context(), "label upload read failed", "error", err)
		renderLabelImport(w, r, "Unable to read the uploaded file. Please try again.")
		return
	}
	if len(data) == 0 {
		renderLabelImport(w, r, "Upload a nutrition label PDF before running the import.")
		return
	}

	text, err := extractTextFromPDF(data)
	if err != nil {
		applog.Error(r.Context(), "label text extraction failed", "error", err)
		renderLabelImport(w, r, "We couldn't read that PDF. Try exporting the label again.")
		return
	}

	facts := parseNutritionLabel(text)
	if facts.Energy == nil || facts.Proteins == nil || facts.Fats == nil || facts.Carbs == nil {
		renderLabelImport(w, r, "The label is missing one of energy, proteins, fats or carbs per 100g.")
		return
	}

	product := models.Product{
		Title:    title,
		Energy:   *facts.Energy,
		Proteins: *facts.Proteins,
		Fats:     *facts.Fats,
		Carbs:    *facts.Carbs,
		Sugar:    facts.Sugar,
		Salt:     facts.Salt,
	}

	if err := database.WithContext(r.Context()).Create(&product).Error; err != nil {
		applog.Error(r.Context(), "failed to create product from label", "title", title, "error", err)
		renderLabelImport(w, r, "Unable to save the product; the title may already exist.")
		return
	}

	applog.Info(r.Context(), "product imported from label", "id", product.ID, "title", title)
	renderLabelImport(w, r, fmt.Sprintf("Imported %q: %.2f kcal, %.2f g proteins, %.2f g fats, %.2f g carbs per 100g.",
		title, product.Energy, product.Proteins, product.Fats, product.Carbs))
}

func readLabelUpload(r *http.Request) ([]byte, error) {
	file, header, err := r.FormFile("label_file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	if header.Size > maxLabelUploadSize {
		return nil, fmt.Errorf("file exceeds %d bytes", maxLabelUploadSize)
	}

	buf := bytes.NewBuffer(make([]byte, 0, header.Size))
	if _, err := io.Copy(buf, file); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func extractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

var (
	energyKcalPattern = regexp.MustCompile(`(?i)([0-9]+(?:[.,][0-9]+)?)\s*kcal`)
	labelRowPatterns  = map[string]*regexp.Regexp{
		"energy":   regexp.MustCompile(`(?i)\benerg\w*\b[^0-9]*([0-9]+(?:[.,][0-9]+)?)`),
		"proteins": regexp.MustCompile(`(?i)\bprotein\w*\b[^0-9]*([0-9]+(?:[.,][0-9]+)?)`),
		"fats":     regexp.MustCompile(`(?i)\bfats?\b[^0-9]*([0-9]+(?:[.,][0-9]+)?)`),
		"carbs":    regexp.MustCompile(`(?i)\bcarbohydrates?\b[^0-9]*([0-9]+(?:[.,][0-9]+)?)`),
		"sugar":    regexp.MustCompile(`(?i)\bsugars?\b[^0-9]*([0-9]+(?:[.,][0-9]+)?)`),
		"salt":     regexp.MustCompile(`(?i)\bsalt\b[^0-9]*([0-9]+(?:[.,][0-9]+)?)`),
	}
)

// parseNutritionLabel scans extracted label text for per-100g rows. Energy
// prefers an explicit kcal figure so kJ/kcal double listings resolve to kcal.
func parseNutritionLabel(text string) labelFacts {
	facts := labelFacts{}

	if match := energyKcalPattern.FindStringSubmatch(text); match != nil {
		facts.Energy = parseLabelNumber(match[1])
	} else if match := labelRowPatterns["energy"].FindStringSubmatch(text); match != nil {
		facts.Energy = parseLabelNumber(match[1])
	}

	assign := map[string]**float64{
		"proteins": &facts.Proteins,
		"fats":     &facts.Fats,
		"carbs":    &facts.Carbs,
		"sugar":    &facts.Sugar,
		"salt":     &facts.Salt,
	}
	for key, target := range assign {
		if match := labelRowPatterns[key].FindStringSubmatch(text); match != nil {
			*target = parseLabelNumber(match[1])
		}
	}

	return facts
}

func parseLabelNumber(raw string) *float64 {
	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil || value < 0 {
		return nil
	}
	return &value
}
