package scancache

import (
	"testing"

	"github.com/masterotaku487-arch/Transformar/core/mod"
	"github.com/masterotaku487-arch/Transformar/core/scan"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok %v, err %v; want miss without error", ok, err)
	}

	item := mod.NewItem("ruby_sword")
	item.Tool = true
	item.StackMax = 1
	item.Durability = 1200
	item.AttackDamage = 3

	if err := store.Put("digest1", item); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := store.Get("digest1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if got.ID != "ruby_sword" || !got.Tool || got.Durability != 1200 || got.AttackDamage != 3 {
		t.Errorf("round-tripped item = %+v, want the stored tool", got)
	}

	n, err := store.Len()
	if err != nil || n != 1 {
		t.Errorf("Len() = %d, %v; want 1", n, err)
	}
}

func TestStoreReplace(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	a := mod.NewItem("a")
	b := mod.NewItem("b")
	if err := store.Put("d", a); err != nil {
		t.Fatalf("Put a: %v", err)
	}
	if err := store.Put("d", b); err != nil {
		t.Fatalf("Put b: %v", err)
	}

	got, ok, err := store.Get("d")
	if err != nil || !ok {
		t.Fatalf("Get: ok %v, err %v", ok, err)
	}
	if got.ID != "b" {
		t.Errorf("ID = %q, want replacement b", got.ID)
	}
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Put("d", mod.NewItem("ruby")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	store.Close()

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	if _, ok, err := reopened.Get("d"); err != nil || !ok {
		t.Errorf("entry lost across reopen: ok %v, err %v", ok, err)
	}
}

func TestStoreSatisfiesScannerInterface(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	var _ scan.Store = store

	// A scanner wired to the store must yield the same item cold and warm.
	s1 := scan.NewScanner()
	s1.SetStore(store)
	data := []byte(`register("ruby_sword") new SwordItem(Tiers.IRON, 3, -2.4F, p)`)
	cold := s1.ScanClass("a/RubySword.class", data)

	s2 := scan.NewScanner()
	s2.SetStore(store)
	warm := s2.ScanClass("b/RubySword.class", data)

	if n, err := store.Len(); err != nil || n == 0 {
		t.Errorf("store should hold the cold scan: n %d, err %v", n, err)
	}

	if cold.ID != warm.ID || cold.AttackDamage != warm.AttackDamage || cold.Tool != warm.Tool {
		t.Errorf("warm scan %+v differs from cold scan %+v", warm, cold)
	}
}
