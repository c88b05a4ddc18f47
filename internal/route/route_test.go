package route

import (
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	tbl, err := NewTable(map[string][]string{
		"home": {"home"},
		"all":  {"home", "Calculators", "tracker", "quiz", "home"},
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err := tbl.Resolve("all")
	if err != nil {
		t.Fatal(err)
	}
	want := []Page{Home, Calculators, Tracker, Quiz}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve(all) = %v, want %v", got, want)
	}
	if _, err := tbl.Resolve("nowhere"); err == nil {
		t.Error("Resolve() of an unknown route should fail")
	}
	if ids := tbl.IDs(); !reflect.DeepEqual(ids, []string{"all", "home"}) {
		t.Errorf("IDs() = %v", ids)
	}
}

func TestNewTableRejects(t *testing.T) {
	if _, err := NewTable(map[string][]string{"x": {"settings"}}); err == nil {
		t.Error("unknown page should fail")
	}
	if _, err := NewTable(map[string][]string{"x": {}}); err == nil {
		t.Error("empty route should fail")
	}
}
