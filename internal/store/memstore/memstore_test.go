package memstore

import (
	"errors"
	"testing"

	"github.com/zulandar/taproom/internal/models"
	"github.com/zulandar/taproom/internal/store"
)

func TestInsert_AssignsSequentialIDs(t *testing.T) {
	s := New()
	for i := 1; i <= 3; i++ {
		keg, err := s.Insert(models.Keg{BeerType: "IPA", Size: 15.5, CurrentVolume: 15.5})
		if err != nil {
			t.Fatalf("Insert #%d: %v", i, err)
		}
		if keg.ID != uint(i) {
			t.Errorf("Insert #%d: ID = %d, want %d", i, keg.ID, i)
		}
	}
}

func TestGet_Missing(t *testing.T) {
	s := New()
	if _, err := s.Get(42); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get(42) error = %v, want store.ErrNotFound", err)
	}
}

func TestSetVolume(t *testing.T) {
	s := New()
	keg, err := s.Insert(models.Keg{BeerType: "Stout", Size: 10, CurrentVolume: 10, LastUpdated: 100})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := s.SetVolume(keg.ID, 4.5, 200); err != nil {
		t.Fatalf("SetVolume: %v", err)
	}

	got, err := s.Get(keg.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.CurrentVolume != 4.5 {
		t.Errorf("CurrentVolume = %v, want 4.5", got.CurrentVolume)
	}
	if got.LastUpdated != 200 {
		t.Errorf("LastUpdated = %d, want 200", got.LastUpdated)
	}
}

func TestSetVolume_Missing(t *testing.T) {
	s := New()
	if err := s.SetVolume(7, 1.0, 100); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("SetVolume(7) error = %v, want store.ErrNotFound", err)
	}
}

func TestList_EmptyAndOrdered(t *testing.T) {
	s := New()

	kegs, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(kegs) != 0 {
		t.Fatalf("List on empty store returned %d kegs, want 0", len(kegs))
	}

	for _, bt := range []string{"IPA", "Lager", "Porter"} {
		if _, err := s.Insert(models.Keg{BeerType: bt, Size: 5, CurrentVolume: 5}); err != nil {
			t.Fatalf("Insert %s: %v", bt, err)
		}
	}

	kegs, err = s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(kegs) != 3 {
		t.Fatalf("len(List()) = %d, want 3", len(kegs))
	}
	for i, keg := range kegs {
		if keg.ID != uint(i+1) {
			t.Errorf("List()[%d].ID = %d, want %d", i, keg.ID, i+1)
		}
	}
}
