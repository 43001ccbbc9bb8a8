package plotline

import "fmt"

// Names of the two records the built-in story singles out.
const (
	// CarsOutlier is the record spotlighted by the outlier scene.
	CarsOutlier = "Dodge Challenger Hellcat"
	// CarsBaseline is the economy example highlighted by the filter scene
	// when no category is isolated.
	CarsBaseline = "Toyota Prius"
)

// carsRecords is the fixed dataset behind Cars. Thirty recent-model vehicles
// across five categories; horsepower and combined fuel economy negatively
// correlate, which is the whole point of the story.
var carsRecords = []Record{
	// Sports
	{Name: "Dodge Challenger Hellcat", Horsepower: 707, FuelEconomy: 13, Weight: 4448, Category: "Sports"},
	{Name: "Chevrolet Corvette Stingray", Horsepower: 495, FuelEconomy: 19, Weight: 3366, Category: "Sports"},
	{Name: "Nissan GT-R", Horsepower: 565, FuelEconomy: 18, Weight: 3933, Category: "Sports"},
	{Name: "Ford Mustang GT", Horsepower: 450, FuelEconomy: 18, Weight: 3705, Category: "Sports"},
	{Name: "Porsche 911 Carrera", Horsepower: 379, FuelEconomy: 20, Weight: 3354, Category: "Sports"},
	{Name: "Mazda MX-5 Miata", Horsepower: 181, FuelEconomy: 30, Weight: 2341, Category: "Sports"},

	// Sedan
	{Name: "Honda Civic", Horsepower: 158, FuelEconomy: 36, Weight: 2877, Category: "Sedan"},
	{Name: "Toyota Camry", Horsepower: 203, FuelEconomy: 32, Weight: 3310, Category: "Sedan"},
	{Name: "Honda Accord", Horsepower: 192, FuelEconomy: 33, Weight: 3131, Category: "Sedan"},
	{Name: "Mazda 3", Horsepower: 186, FuelEconomy: 31, Weight: 3255, Category: "Sedan"},
	{Name: "Subaru Legacy", Horsepower: 182, FuelEconomy: 29, Weight: 3499, Category: "Sedan"},
	{Name: "BMW 330i", Horsepower: 255, FuelEconomy: 28, Weight: 3582, Category: "Sedan"},

	// Hybrid
	{Name: "Toyota Prius", Horsepower: 121, FuelEconomy: 56, Weight: 3010, Category: "Hybrid"},
	{Name: "Hyundai Ioniq Blue", Horsepower: 139, FuelEconomy: 55, Weight: 3031, Category: "Hybrid"},
	{Name: "Honda Insight", Horsepower: 151, FuelEconomy: 52, Weight: 2987, Category: "Hybrid"},
	{Name: "Toyota Camry Hybrid", Horsepower: 208, FuelEconomy: 52, Weight: 3472, Category: "Hybrid"},
	{Name: "Kia Niro", Horsepower: 139, FuelEconomy: 50, Weight: 3106, Category: "Hybrid"},
	{Name: "Ford Fusion Hybrid", Horsepower: 188, FuelEconomy: 42, Weight: 3668, Category: "Hybrid"},

	// SUV
	{Name: "Toyota RAV4", Horsepower: 203, FuelEconomy: 30, Weight: 3370, Category: "SUV"},
	{Name: "Honda CR-V", Horsepower: 190, FuelEconomy: 30, Weight: 3337, Category: "SUV"},
	{Name: "Mazda CX-5", Horsepower: 187, FuelEconomy: 28, Weight: 3552, Category: "SUV"},
	{Name: "Ford Explorer", Horsepower: 300, FuelEconomy: 24, Weight: 4345, Category: "SUV"},
	{Name: "BMW X5", Horsepower: 335, FuelEconomy: 23, Weight: 4813, Category: "SUV"},
	{Name: "Jeep Grand Cherokee", Horsepower: 293, FuelEconomy: 21, Weight: 4513, Category: "SUV"},

	// Truck
	{Name: "Ford F-150", Horsepower: 290, FuelEconomy: 22, Weight: 4069, Category: "Truck"},
	{Name: "Toyota Tacoma", Horsepower: 278, FuelEconomy: 20, Weight: 4445, Category: "Truck"},
	{Name: "GMC Sierra", Horsepower: 310, FuelEconomy: 20, Weight: 4490, Category: "Truck"},
	{Name: "Chevrolet Silverado", Horsepower: 355, FuelEconomy: 19, Weight: 4520, Category: "Truck"},
	{Name: "Ram 1500", Horsepower: 395, FuelEconomy: 19, Weight: 4798, Category: "Truck"},
	{Name: "Toyota Tundra", Horsepower: 381, FuelEconomy: 15, Weight: 5340, Category: "Truck"},
}

// Cars returns the built-in horsepower vs. fuel economy dataset.
// Each call returns a fresh Dataset over the same fixed records.
func Cars() *Dataset {
	return NewDataset(carsRecords)
}

// CarsStory builds the three-scene narrative over a chart of the Cars
// dataset and enters its first scene:
//
//  1. Trend overview: uniform marks plus the regression line.
//  2. Outlier spotlight: the Hellcat emphasized, everything else faded.
//  3. Exploratory filter: the economy baseline by default; picking a
//     category emphasizes exactly that category and drops the callout in
//     favor of hover detail.
func CarsStory(chart *Chart) *Story {
	d := chart.Dataset()
	outlier, ok := d.ByName(CarsOutlier)
	if !ok {
		panic("plotline: cars story needs " + CarsOutlier)
	}
	baseline, ok := d.ByName(CarsBaseline)
	if !ok {
		panic("plotline: cars story needs " + CarsBaseline)
	}
	reg := FitRegression(d)

	scenes := []Scene{
		{
			Title:          "The horsepower trade-off",
			ShowRegression: true,
			Annotations: func(string) []Annotation {
				const midHP = 450
				return []Annotation{{
					AnchorX: midHP, AnchorY: reg.ValueAt(midHP),
					DX: 50, DY: -60,
					Lines: []string{
						"More horsepower, fewer miles per gallon",
						fmt.Sprintf("about %.1f mpg lost per 100 hp", -reg.Slope*100),
					},
				}}
			},
		},
		{
			Title:     "A 707-horsepower outlier",
			Highlight: func(string) Highlight { return HighlightName(CarsOutlier) },
			Annotations: func(string) []Annotation {
				return []Annotation{{
					AnchorX: outlier.Horsepower, AnchorY: outlier.FuelEconomy,
					DX: -70, DY: -70,
					Lines: []string{
						outlier.Name,
						fmt.Sprintf("%g hp, just %g mpg", outlier.Horsepower, outlier.FuelEconomy),
					},
				}}
			},
		},
		{
			Title:      "Explore by category",
			ShowFilter: true,
			Highlight: func(filter string) Highlight {
				if filter == FilterAll {
					return HighlightName(CarsBaseline)
				}
				return HighlightCategory(filter)
			},
			Annotations: func(filter string) []Annotation {
				if filter != FilterAll {
					// A whole category is lit up; hover detail replaces
					// the single-record callout.
					return nil
				}
				return []Annotation{{
					AnchorX: baseline.Horsepower, AnchorY: baseline.FuelEconomy,
					DX: 60, DY: -40,
					Lines: []string{
						baseline.Name,
						fmt.Sprintf("the economy benchmark: %g mpg", baseline.FuelEconomy),
					},
				}}
			},
		},
	}
	return NewStory(chart, scenes)
}
