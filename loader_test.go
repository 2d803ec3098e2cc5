package leadbook

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndFindProfile(t *testing.T) {
	dir := t.TempDir()

	p := NewBrokerProfile("maria", 10)
	p.SetGoal(20)
	p.Upsert(entry("2024-05-01", 5, 1, 2))
	if err := SaveProfile(dir, p); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	got, err := FindProfile(dir, "maria")
	if err != nil {
		t.Fatalf("FindProfile() error = %v", err)
	}
	if got.BrokerName != "maria" || got.InitialLeads != 10 || got.Len() != 1 {
		t.Errorf("loaded profile = (%q, %d, %d entries), want (maria, 10, 1)",
			got.BrokerName, got.InitialLeads, got.Len())
	}
	if goal, ok := got.Goal(); !ok || goal != 20 {
		t.Errorf("loaded Goal() = (%d, %v), want (20, true)", goal, ok)
	}
}

func TestFindProfile_EmptyNameResolvesSingle(t *testing.T) {
	dir := t.TempDir()
	if err := SaveProfile(dir, NewBrokerProfile("maria", 0)); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	got, err := FindProfile(dir, "")
	if err != nil {
		t.Fatalf("FindProfile(\"\") error = %v", err)
	}
	if got.BrokerName != "maria" {
		t.Errorf("FindProfile(\"\") = %q, want maria", got.BrokerName)
	}
}

func TestFindProfile_Ambiguous(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"maria", "joao"} {
		if err := SaveProfile(dir, NewBrokerProfile(name, 0)); err != nil {
			t.Fatalf("SaveProfile(%s) error = %v", name, err)
		}
	}
	if _, err := FindProfile(dir, ""); err == nil {
		t.Errorf("FindProfile(\"\") over two profiles should fail")
	}
}

func TestFindProfile_NotFound(t *testing.T) {
	_, err := FindProfile(t.TempDir(), "ghost")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("FindProfile() error = %v, want fs.ErrNotExist", err)
	}
}

func TestFindProfiles_SkipsDraftsDir(t *testing.T) {
	dir := t.TempDir()
	if err := SaveProfile(dir, NewBrokerProfile("maria", 0)); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	// A stray .jsonl under the drafts directory must not surface as a profile.
	stray := filepath.Join(dir, draftsDirName, "maria")
	if err := os.MkdirAll(stray, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(stray, "scratch.jsonl"), []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	profiles, err := FindProfiles(dir, "")
	if err != nil {
		t.Fatalf("FindProfiles() error = %v", err)
	}
	if len(profiles) != 1 {
		t.Errorf("FindProfiles() = %d profiles, want 1", len(profiles))
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	if err := SaveProfile(dir, NewBrokerProfile("maria", 10)); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	store := NewFileStore(dir)

	if err := store.Upsert("maria", entry("2024-05-01", 3, 0, 1)); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := store.Upsert("maria", entry("2024-05-01", 4, 0, 1)); err != nil {
		t.Fatalf("Upsert() replace error = %v", err)
	}

	entries, err := store.List("maria")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 1 || entries[0].NewLeads != 4 {
		t.Errorf("List() = %+v, want one entry with newLeads 4", entries)
	}

	if err := store.Delete("maria", MustParse("2024-05-01")); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	entries, _ = store.List("maria")
	if len(entries) != 0 {
		t.Errorf("List() after delete = %d entries, want 0", len(entries))
	}
	// Deleting an absent date is not an error.
	if err := store.Delete("maria", MustParse("2024-05-02")); err != nil {
		t.Errorf("Delete() of an absent date: error = %v", err)
	}
}

func TestDirDraftCache(t *testing.T) {
	c := NewDirDraftCache(t.TempDir())
	on := MustParse("2024-05-01")

	if _, ok, err := c.Get("maria", on); ok || err != nil {
		t.Fatalf("Get() on an empty cache = (ok %v, err %v), want (false, nil)", ok, err)
	}
	if err := c.Set("maria", on, []byte(`{"date":"2024-05-01"}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, ok, err := c.Get("maria", on)
	if err != nil || !ok || string(data) != `{"date":"2024-05-01"}` {
		t.Errorf("Get() = (%q, %v, %v), want the stored draft", data, ok, err)
	}
	if err := c.Clear("maria", on); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok, _ := c.Get("maria", on); ok {
		t.Errorf("draft survived Clear()")
	}
	// Clearing an absent draft is not an error.
	if err := c.Clear("maria", on); err != nil {
		t.Errorf("Clear() of an absent draft: error = %v", err)
	}
}
