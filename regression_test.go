package plotline

import (
	"math"
	"testing"
)

// leastSquares is the closed-form fit the package result must match.
func leastSquares(records []Record) (slope, intercept float64) {
	var sumX, sumY float64
	n := float64(len(records))
	for _, r := range records {
		sumX += r.Horsepower
		sumY += r.FuelEconomy
	}
	meanX, meanY := sumX/n, sumY/n

	var num, den float64
	for _, r := range records {
		num += (r.Horsepower - meanX) * (r.FuelEconomy - meanY)
		den += (r.Horsepower - meanX) * (r.Horsepower - meanX)
	}
	slope = num / den
	intercept = meanY - slope*meanX
	return slope, intercept
}

func TestFitRegressionMatchesClosedForm(t *testing.T) {
	d := Cars()
	got := FitRegression(d)
	wantSlope, wantIntercept := leastSquares(d.Records())

	if math.Abs(got.Slope-wantSlope) > 1e-9 {
		t.Errorf("Slope = %v, want %v", got.Slope, wantSlope)
	}
	if math.Abs(got.Intercept-wantIntercept) > 1e-9 {
		t.Errorf("Intercept = %v, want %v", got.Intercept, wantIntercept)
	}
}

func TestFitRegressionSlopeNegative(t *testing.T) {
	r := FitRegression(Cars())
	if r.Slope >= 0 {
		t.Errorf("Slope = %v, want negative: horsepower must cost fuel economy", r.Slope)
	}
}

func TestRegressionValueAt(t *testing.T) {
	r := Regression{Slope: -0.05, Intercept: 40}
	if got := r.ValueAt(200); got != 30 {
		t.Errorf("ValueAt(200) = %g, want 30", got)
	}
}

func TestSummarize(t *testing.T) {
	d := NewDataset([]Record{
		{Name: "a", FuelEconomy: 30, Category: "Eco"},
		{Name: "b", FuelEconomy: 50, Category: "Eco"},
		{Name: "c", FuelEconomy: 40, Category: "Eco"},
		{Name: "d", FuelEconomy: 10, Category: "Fast"},
	})
	sum, err := Summarize(d, "Eco")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Count != 3 {
		t.Errorf("Count = %d, want 3", sum.Count)
	}
	if sum.MeanFuelEconomy != 40 {
		t.Errorf("MeanFuelEconomy = %g, want 40", sum.MeanFuelEconomy)
	}
	if sum.MedianFuelEconomy != 40 {
		t.Errorf("MedianFuelEconomy = %g, want 40", sum.MedianFuelEconomy)
	}
}

func TestSummarizeUnknownCategory(t *testing.T) {
	if _, err := Summarize(Cars(), "Spaceship"); err == nil {
		t.Fatal("expected error for a category with no records")
	}
}
