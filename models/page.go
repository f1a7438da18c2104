package models

import (
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"
)

// A Page is a ready-to-send badge image: the firmware payload plus the
// metadata string that travels with it, kept under a local name so it
// can be re-sent without re-converting the source image.
type Page struct {
	gorm.Model
	Name     string `gorm:"unique_index"`
	Metadata string
	Payload  string
}

func (p Page) String() string {
	return fmt.Sprintf("Page{name=%v, payload=%d bytes}", p.Name, len(p.Payload))
}

// BeforeSave is executed just before a Page is saved into the DB
func (p *Page) BeforeSave() error {
	if p.Name == "" {
		return errors.New("page name can't be empty")
	}
	if p.Payload == "" {
		return errors.New("page payload can't be empty")
	}
	return nil
}

// Save creates the page or updates the one already stored under its
// name.
func (p *Page) Save(db *gorm.DB) error {
	existing := Page{}
	err := db.Where("name = ?", p.Name).First(&existing).Error
	if gorm.IsRecordNotFoundError(err) {
		return db.Create(p).Error
	}
	if err != nil {
		return err
	}
	return db.Model(&existing).Updates(
		map[string]interface{}{
			"metadata": p.Metadata,
			"payload":  p.Payload,
		}).Error
}

// Delete deletes current page from the DB
func (p *Page) Delete(db *gorm.DB) error {
	return db.Unscoped().Where("id = ?", p.ID).Delete(*p).Error
}

// ListPages returns all stored pages, oldest first
func ListPages(db *gorm.DB) (pages []Page, err error) {
	err = db.Order("created_at").Find(&pages).Error
	return
}

// FindPage finds a page from its Name
func FindPage(db *gorm.DB, name string) (*Page, error) {
	p := Page{}
	err := db.Where("name = ?", name).First(&p).Error
	return &p, err
}

// Transaction is a helper to run fn inside a database transaction
func Transaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	return db.Transaction(fn)
}
