package plotline

import (
	"reflect"
	"testing"
)

func testRecords() []Record {
	return []Record{
		{Name: "a", Horsepower: 100, FuelEconomy: 40, Weight: 2000, Category: "Eco"},
		{Name: "b", Horsepower: 300, FuelEconomy: 20, Weight: 4000, Category: "Fast"},
		{Name: "c", Horsepower: 200, FuelEconomy: 30, Weight: 3000, Category: "Eco"},
	}
}

func TestNewDataset(t *testing.T) {
	d := NewDataset(testRecords())
	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}
	if got := d.At(1).Name; got != "b" {
		t.Errorf("At(1).Name = %q, want %q", got, "b")
	}
}

func TestNewDatasetCopiesInput(t *testing.T) {
	records := testRecords()
	d := NewDataset(records)
	records[0].Name = "mutated"
	if _, ok := d.ByName("a"); !ok {
		t.Error("dataset should not share backing storage with its input")
	}
}

func TestNewDatasetDuplicateNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for duplicate record name")
		}
	}()
	NewDataset([]Record{{Name: "dup"}, {Name: "dup"}})
}

func TestDatasetByName(t *testing.T) {
	d := NewDataset(testRecords())
	r, ok := d.ByName("c")
	if !ok {
		t.Fatal("ByName(c) not found")
	}
	if r.Horsepower != 200 {
		t.Errorf("Horsepower = %g, want 200", r.Horsepower)
	}
	if _, ok := d.ByName("nope"); ok {
		t.Error("ByName(nope) should not be found")
	}
}

func TestDatasetCategories(t *testing.T) {
	d := NewDataset(testRecords())
	want := []string{"Eco", "Fast"}
	if got := d.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestDatasetExtents(t *testing.T) {
	d := NewDataset(testRecords())
	if min, max := d.HorsepowerExtent(); min != 100 || max != 300 {
		t.Errorf("HorsepowerExtent() = %g, %g, want 100, 300", min, max)
	}
	if min, max := d.FuelEconomyExtent(); min != 20 || max != 40 {
		t.Errorf("FuelEconomyExtent() = %g, %g, want 20, 40", min, max)
	}
}

func TestDatasetExtentsEmpty(t *testing.T) {
	d := NewDataset(nil)
	if min, max := d.HorsepowerExtent(); min != 0 || max != 0 {
		t.Errorf("empty extent = %g, %g, want 0, 0", min, max)
	}
}

func TestHighlightName(t *testing.T) {
	pred := HighlightName("b")
	if !pred(Record{Name: "b"}) {
		t.Error("predicate should match its record")
	}
	if pred(Record{Name: "a"}) {
		t.Error("predicate should not match other records")
	}
}

func TestHighlightCategory(t *testing.T) {
	d := NewDataset(testRecords())
	pred := HighlightCategory("Eco")
	var matched []string
	for _, r := range d.Records() {
		if pred(r) {
			matched = append(matched, r.Name)
		}
	}
	want := []string{"a", "c"}
	if !reflect.DeepEqual(matched, want) {
		t.Errorf("matched = %v, want %v", matched, want)
	}
}
