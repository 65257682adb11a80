package directory

import "testing"

func TestFindByIDExactMatch(t *testing.T) {
	dir := New([]Driver{
		{ID: "d101", Name: "Ramesh Kumar"},
		{ID: "d102", Name: "Suresh Babu"},
	})

	drv, ok := dir.FindByID("d101")
	if !ok {
		t.Fatal("expected d101 to be found")
	}
	if drv.Name != "Ramesh Kumar" {
		t.Fatalf("unexpected name %q", drv.Name)
	}

	// Ids are not case-folded, unlike route locations.
	if _, ok := dir.FindByID("D101"); ok {
		t.Fatal("expected case-different id to miss")
	}
	if _, ok := dir.FindByID("d999"); ok {
		t.Fatal("expected unknown id to miss")
	}
}

func TestAllKeepsOrder(t *testing.T) {
	dir := New([]Driver{{ID: "b"}, {ID: "a"}, {ID: "c"}})
	all := dir.All()
	if len(all) != 3 || all[0].ID != "b" || all[1].ID != "a" || all[2].ID != "c" {
		t.Fatalf("expected directory order preserved, got %+v", all)
	}
}
