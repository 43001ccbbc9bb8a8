package plotline

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Regression is a least-squares line fit over the full dataset. It is
// computed once at startup and never refit; scenes only toggle whether it
// is drawn.
type Regression struct {
	Slope     float64 // fuel economy change per horsepower
	Intercept float64 // fuel economy at zero horsepower
}

// FitRegression fits fuel economy against horsepower with ordinary least
// squares over every record in the dataset.
func FitRegression(d *Dataset) Regression {
	xs := make([]float64, d.Len())
	ys := make([]float64, d.Len())
	for i, r := range d.Records() {
		xs[i] = r.Horsepower
		ys[i] = r.FuelEconomy
	}
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return Regression{Slope: slope, Intercept: intercept}
}

// ValueAt returns the fitted fuel economy at the given horsepower.
func (r Regression) ValueAt(horsepower float64) float64 {
	return r.Intercept + r.Slope*horsepower
}

// CategorySummary describes the fuel economy of one category. The filter
// scene shows it as caption text when a category is isolated.
type CategorySummary struct {
	Category          string
	Count             int
	MeanFuelEconomy   float64
	MedianFuelEconomy float64
}

// Summarize computes the fuel economy summary for one category.
// Returns an error if the category has no records.
func Summarize(d *Dataset, category string) (CategorySummary, error) {
	var economy []float64
	for _, r := range d.Records() {
		if r.Category == category {
			economy = append(economy, r.FuelEconomy)
		}
	}
	mean, err := stats.Mean(economy)
	if err != nil {
		return CategorySummary{}, fmt.Errorf("summarize %s: %w", category, err)
	}
	median, err := stats.Median(economy)
	if err != nil {
		return CategorySummary{}, fmt.Errorf("summarize %s: %w", category, err)
	}
	return CategorySummary{
		Category:          category,
		Count:             len(economy),
		MeanFuelEconomy:   mean,
		MedianFuelEconomy: median,
	}, nil
}
