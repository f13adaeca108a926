package data

import (
	"errors"
	"testing"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry[*Race]("race")

	reg.Register(&Race{ID: "human", Name: "Human"})
	reg.Register(&Race{ID: "orc", Name: "Orc"})

	got, ok := reg.Get("human")
	if !ok {
		t.Fatal("Get(human) not found")
	}
	if got.Name != "Human" {
		t.Errorf("Get(human).Name = %q, want %q", got.Name, "Human")
	}
	if !reg.Has("orc") {
		t.Error("Has(orc) = false, want true")
	}
	if reg.Has("elf") {
		t.Error("Has(elf) = true, want false")
	}
	if reg.Count() != 2 {
		t.Errorf("Count() = %d, want 2", reg.Count())
	}
}

func TestRegistry_OverwriteLastWins(t *testing.T) {
	reg := NewRegistry[*Race]("race")

	reg.Register(&Race{ID: "human", Name: "First"})
	reg.Register(&Race{ID: "human", Name: "Second"})

	got, _ := reg.Get("human")
	if got.Name != "Second" {
		t.Errorf("after overwrite Name = %q, want %q", got.Name, "Second")
	}
	if reg.Count() != 1 {
		t.Errorf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegistry_GetOrDefault(t *testing.T) {
	reg := NewRegistry[*Class]("class")
	reg.Register(&Class{ID: "warrior", Name: "Warrior"})

	got := reg.GetOrDefault("warrior", DefaultClass())
	if got.Name != "Warrior" {
		t.Errorf("GetOrDefault(warrior).Name = %q, want Warrior", got.Name)
	}

	fallback := reg.GetOrDefault("unknown", DefaultClass())
	if fallback.ID != "default_class" {
		t.Errorf("GetOrDefault(unknown).ID = %q, want default_class", fallback.ID)
	}

	// Strict variant: a miss without fallback returns nothing.
	if _, ok := reg.Get("unknown"); ok {
		t.Error("Get(unknown) ok = true, want false")
	}
}

func TestRegistry_MustGet(t *testing.T) {
	reg := NewRegistry[*Class]("class")

	_, err := reg.MustGet("missing")
	var missing *MissingDataError
	if !errors.As(err, &missing) {
		t.Fatalf("MustGet error = %v, want MissingDataError", err)
	}
	if missing.DataType != "class" || missing.DataID != "missing" {
		t.Errorf("MissingDataError = %+v, want class/missing", missing)
	}
}

func TestRegistry_IDsSortedAndClear(t *testing.T) {
	reg := NewRegistry[*Race]("race")
	reg.Register(&Race{ID: "orc"})
	reg.Register(&Race{ID: "dwarf"})
	reg.Register(&Race{ID: "human"})

	ids := reg.IDs()
	want := []string{"dwarf", "human", "orc"}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("IDs() = %v, want %v", ids, want)
		}
	}
	if len(reg.All()) != 3 {
		t.Errorf("All() len = %d, want 3", len(reg.All()))
	}

	reg.Clear()
	if reg.Count() != 0 {
		t.Errorf("after Clear Count() = %d, want 0", reg.Count())
	}
}
