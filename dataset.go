package plotline

import "sort"

// Record is one vehicle observation: the name doubles as the stable identity
// that keeps marks matched to records across renders.
type Record struct {
	Name        string
	Horsepower  float64
	FuelEconomy float64 // combined miles per gallon
	Weight      float64 // curb weight in pounds
	Category    string
}

// Dataset is an immutable, fixed-size collection of records, loaded once at
// startup. Records are never added, removed, or mutated afterwards.
type Dataset struct {
	records    []Record
	byName     map[string]int
	categories []string
}

// NewDataset copies records into a new Dataset.
// Panics if two records share a name: names are the mark identity key.
func NewDataset(records []Record) *Dataset {
	d := &Dataset{
		records: make([]Record, len(records)),
		byName:  make(map[string]int, len(records)),
	}
	copy(d.records, records)

	seen := make(map[string]bool, len(records))
	for i, r := range d.records {
		if _, dup := d.byName[r.Name]; dup {
			panic("plotline: duplicate record name " + r.Name)
		}
		d.byName[r.Name] = i
		if !seen[r.Category] {
			seen[r.Category] = true
			d.categories = append(d.categories, r.Category)
		}
	}
	sort.Strings(d.categories)
	return d
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// At returns the record at index i.
func (d *Dataset) At(i int) Record {
	return d.records[i]
}

// Records returns the underlying record slice. The returned slice MUST NOT
// be mutated.
func (d *Dataset) Records() []Record {
	return d.records
}

// ByName returns the record with the given name and whether it exists.
func (d *Dataset) ByName(name string) (Record, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Record{}, false
	}
	return d.records[i], true
}

// Categories returns the distinct categories present in the dataset, sorted.
// The returned slice MUST NOT be mutated.
func (d *Dataset) Categories() []string {
	return d.categories
}

// HorsepowerExtent returns the minimum and maximum horsepower.
func (d *Dataset) HorsepowerExtent() (min, max float64) {
	return d.extent(func(r Record) float64 { return r.Horsepower })
}

// FuelEconomyExtent returns the minimum and maximum fuel economy.
func (d *Dataset) FuelEconomyExtent() (min, max float64) {
	return d.extent(func(r Record) float64 { return r.FuelEconomy })
}

func (d *Dataset) extent(field func(Record) float64) (min, max float64) {
	if len(d.records) == 0 {
		return 0, 0
	}
	min = field(d.records[0])
	max = min
	for _, r := range d.records[1:] {
		v := field(r)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// --- Highlight predicates ---

// Highlight selects which records are visually emphasized. A nil Highlight
// means no emphasis: all marks render at the uniform baseline.
type Highlight func(Record) bool

// HighlightName returns a predicate matching exactly the record with the
// given name.
func HighlightName(name string) Highlight {
	return func(r Record) bool { return r.Name == name }
}

// HighlightCategory returns a predicate matching every record whose category
// equals the given value. The filter value is an explicit parameter rather
// than a captured variable so predicates stay pure.
func HighlightCategory(category string) Highlight {
	return func(r Record) bool { return r.Category == category }
}
