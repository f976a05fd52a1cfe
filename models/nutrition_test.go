package models

import "testing"

func productFixture() *Product {
	return &Product{
		Title:    "Oatmeal",
		Energy:   389,
		Proteins: 16.9,
		Fats:     6.9,
		Carbs:    66.3,
	}
}

func TestDishScalesProductValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		weight       int
		wantEnergy   float64
		wantProteins float64
		wantFats     float64
		wantCarbs    float64
	}{
		{"full portion", 100, 389, 16.9, 6.9, 66.3},
		{"half portion", 50, 194.5, 8.45, 3.45, 33.15},
		{"small portion", 33, 128.37, 5.58, 2.28, 21.88},
		{"zero weight", 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dish := Dish{Product: productFixture(), Weight: tt.weight}
			if got := dish.Energy(); got != tt.wantEnergy {
				t.Fatalf("Energy() = %v, want %v", got, tt.wantEnergy)
			}
			if got := dish.Proteins(); got != tt.wantProteins {
				t.Fatalf("Proteins() = %v, want %v", got, tt.wantProteins)
			}
			if got := dish.Fats(); got != tt.wantFats {
				t.Fatalf("Fats() = %v, want %v", got, tt.wantFats)
			}
			if got := dish.Carbs(); got != tt.wantCarbs {
				t.Fatalf("Carbs() = %v, want %v", got, tt.wantCarbs)
			}
		})
	}
}

func TestDishWithoutLoadedProduct(t *testing.T) {
	t.Parallel()

	dish := Dish{Weight: 150}
	if got := dish.Energy(); got != 0 {
		t.Fatalf("Energy() without product = %v, want 0", got)
	}
	if got := dish.LactoseFree(); got != nil {
		t.Fatalf("LactoseFree() without product = %v, want nil", got)
	}
}

func TestDishLactoseFreePassthrough(t *testing.T) {
	t.Parallel()

	yes := true
	no := false
	tests := []struct {
		name string
		flag *bool
	}{
		{"unknown", nil},
		{"lactose free", &yes},
		{"contains lactose", &no},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			product := productFixture()
			product.LactoseFree = tt.flag
			dish := Dish{Product: product, Weight: 80}
			if got := dish.LactoseFree(); got != tt.flag {
				t.Fatalf("LactoseFree() = %v, want %v", got, tt.flag)
			}
		})
	}
}

func TestMealAggregatesDishes(t *testing.T) {
	t.Parallel()

	milk := &Product{Title: "Milk", Energy: 64, Proteins: 3.3, Fats: 3.6, Carbs: 4.7}
	meal := Meal{
		Dishes: []Dish{
			{Product: productFixture(), Weight: 50},
			{Product: milk, Weight: 200},
		},
	}

	if got := meal.Energy(); got != 322.5 {
		t.Fatalf("Energy() = %v, want 322.5", got)
	}
	if got := meal.Proteins(); got != 15.05 {
		t.Fatalf("Proteins() = %v, want 15.05", got)
	}
	if got := meal.WeightGrams(); got != 250 {
		t.Fatalf("WeightGrams() = %v, want 250", got)
	}
}

func TestEmptyMealSumsToZero(t *testing.T) {
	t.Parallel()

	meal := Meal{}
	if meal.Energy() != 0 || meal.Proteins() != 0 || meal.Fats() != 0 || meal.Carbs() != 0 || meal.WeightGrams() != 0 {
		t.Fatalf("empty meal should sum to zero, got %v/%v/%v/%v/%v",
			meal.Energy(), meal.Proteins(), meal.Fats(), meal.Carbs(), meal.WeightGrams())
	}
}

func TestDayAggregatesThroughMeals(t *testing.T) {
	t.Parallel()

	day := Day{
		Meals: []Meal{
			{Dishes: []Dish{{Product: productFixture(), Weight: 50}}},
			{Dishes: []Dish{{Product: productFixture(), Weight: 150}}},
		},
	}

	// Day totals equal the sum of dish-level values across all meals.
	wantEnergy := round2(round2(389*0.5) + round2(389*1.5))
	if got := day.Energy(); got != wantEnergy {
		t.Fatalf("Energy() = %v, want %v", got, wantEnergy)
	}
	if got := day.WeightGrams(); got != 200 {
		t.Fatalf("WeightGrams() = %v, want 200", got)
	}

	// Reading twice must not change anything.
	if again := day.Energy(); again != wantEnergy {
		t.Fatalf("second Energy() read = %v, want %v", again, wantEnergy)
	}
}

func TestEmptyDaySumsToZero(t *testing.T) {
	t.Parallel()

	day := Day{}
	if day.Energy() != 0 || day.WeightGrams() != 0 {
		t.Fatalf("empty day should sum to zero, got %v/%v", day.Energy(), day.WeightGrams())
	}
}
