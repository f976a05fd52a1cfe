package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"foodlog/internal/config"
	"foodlog/internal/db"
	"foodlog/models"
)

// importSummary counts the outcome of one CSV run.
type importSummary struct {
	Created int
	Updated int
	Failed  int
}

func main() {
	_ = godotenv.Load()

	csvPath := "products.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	if err := run(csvPath); err != nil {
		color.Red("import failed: %v", err)
		os.Exit(1)
	}
}

func run(csvPath string) error {
	if strings.TrimSpace(csvPath) == "" {
		return errors.New("csv path must not be empty")
	}
	if _, err := os.Stat(csvPath); err != nil {
		return fmt.Errorf("locate csv: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	database, err := db.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(database); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	records, err := readCSV(csvPath)
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}

	summary := importProducts(database, records)

	color.Green("created %d products", summary.Created)
	color.Yellow("updated %d products", summary.Updated)
	if summary.Failed > 0 {
		color.Red("failed %d rows", summary.Failed)
		return fmt.Errorf("%d rows failed to import", summary.Failed)
	}
	return nil
}

// importProducts upserts each row by product title, one transaction per row
// so a bad line never poisons the rest of the file.
func importProducts(database *gorm.DB, records []map[string]string) importSummary {
	summary := importSummary{}

	for idx, record := range records {
		created := false
		err := database.Transaction(func(tx *gorm.DB) error {
			product, err := buildProduct(record)
			if err != nil {
				return err
			}

			var existing models.Product
			err = tx.Where("title = ?", product.Title).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				created = true
				return tx.Create(&product).Error
			case err != nil:
				return fmt.Errorf("find product %q: %w", product.Title, err)
			default:
				product.Model = existing.Model
				return tx.Save(&product).Error
			}
		})
		if err != nil {
			summary.Failed++
			color.Red("row %d: %v", idx+2, err)
			continue
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}

	return summary
}

func buildProduct(row map[string]string) (models.Product, error) {
	title := strings.TrimSpace(row["title"])
	if title == "" {
		return models.Product{}, errors.New("title is required")
	}

	product := models.Product{
		Title: title,
		Note:  strings.TrimSpace(row["note"]),
	}

	required := map[string]*float64{
		"energy":   &product.Energy,
		"proteins": &product.Proteins,
		"fats":     &product.Fats,
		"carbs":    &product.Carbs,
	}
	for column, target := range required {
		value, err := parseRequiredFloat(row[column])
		if err != nil {
			return models.Product{}, fmt.Errorf("%s: %w", column, err)
		}
		*target = value
	}

	var err error
	if product.Sugar, err = parseOptionalFloat(row["sugar"]); err != nil {
		return models.Product{}, fmt.Errorf("sugar: %w", err)
	}
	if product.Salt, err = parseOptionalFloat(row["salt"]); err != nil {
		return models.Product{}, fmt.Errorf("salt: %w", err)
	}
	if product.Rate, err = parseOptionalInt(row["rate"]); err != nil {
		return models.Product{}, fmt.Errorf("rate: %w", err)
	}
	if product.LactoseFree, err = parseOptionalBool(row["lactose_free"]); err != nil {
		return models.Product{}, fmt.Errorf("lactose_free: %w", err)
	}

	return product, nil
}

func parseRequiredFloat(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errors.New("value is required")
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	if value < 0 {
		return 0, fmt.Errorf("negative value %q", raw)
	}
	return value, nil
}

func parseOptionalFloat(raw string) (*float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	value, err := parseRequiredFloat(trimmed)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func parseOptionalInt(raw string) (*int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", raw)
	}
	return &value, nil
}

func parseOptionalBool(raw string) (*bool, error) {
	trimmed := strings.TrimSpace(strings.ToLower(raw))
	if trimmed == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid boolean %q", raw)
	}
	return &value, nil
}

func readCSV(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("csv is empty")
	}

	header := rows[0]
	for idx, key := range header {
		header[idx] = strings.ToLower(strings.TrimSpace(key))
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		record := make(map[string]string, len(header))
		for idx, key := range header {
			if idx >= len(row) {
				continue
			}
			record[key] = strings.TrimSpace(row[idx])
		}
		records = append(records, record)
	}

	return records, nil
}
