package models

import (
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.AutoMigrate(&Page{})
	return db
}

func TestPageSaveAndFind(t *testing.T) {
	db := testDB(t)
	defer db.Close()

	p := Page{Name: "a", Metadata: "name=Mike", Payload: "eJxLSU0="}
	if err := p.Save(db); err != nil {
		t.Fatal(err)
	}

	got, err := FindPage(db, "a")
	if err != nil {
		t.Fatal(err)
	}
	if got.Payload != p.Payload || got.Metadata != p.Metadata {
		t.Errorf("FindPage = %v, want %v", got, p)
	}
}

func TestPageSaveUpdatesExisting(t *testing.T) {
	db := testDB(t)
	defer db.Close()

	first := Page{Name: "up", Payload: "old"}
	if err := first.Save(db); err != nil {
		t.Fatal(err)
	}
	second := Page{Name: "up", Metadata: "v2", Payload: "new"}
	if err := second.Save(db); err != nil {
		t.Fatal(err)
	}

	pages, err := ListPages(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 1 {
		t.Fatalf("ListPages returned %d pages, want 1", len(pages))
	}
	if pages[0].Payload != "new" || pages[0].Metadata != "v2" {
		t.Errorf("stored page = %v, want updated payload", pages[0])
	}
}

func TestPageValidation(t *testing.T) {
	db := testDB(t)
	defer db.Close()

	if err := (&Page{Payload: "x"}).Save(db); err == nil {
		t.Error("saved a page without a name")
	}
	if err := (&Page{Name: "b"}).Save(db); err == nil {
		t.Error("saved a page without a payload")
	}
}

func TestPageDelete(t *testing.T) {
	db := testDB(t)
	defer db.Close()

	p := Page{Name: "c", Payload: "x"}
	if err := p.Save(db); err != nil {
		t.Fatal(err)
	}
	found, err := FindPage(db, "c")
	if err != nil {
		t.Fatal(err)
	}
	if err := found.Delete(db); err != nil {
		t.Fatal(err)
	}
	if _, err := FindPage(db, "c"); !gorm.IsRecordNotFoundError(err) {
		t.Errorf("FindPage after delete: err = %v, want record not found", err)
	}
}
