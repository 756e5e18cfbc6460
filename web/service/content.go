package service

import (
	"errors"
	"reflect"

	"portfolio/database"
	"portfolio/database/model"

	"gorm.io/gorm"
)

// Record constrains the content kinds managed by the panel. All four share
// the same lifecycle: server-assigned id, created_at ordering, merge-on-edit.
type Record interface {
	model.Project | model.Book | model.GalleryImage | model.Skill
}

var (
	// ErrNotFound reports an edit of a record that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate reports a unique-constraint violation, e.g. a book ISBN
	// that is already stored.
	ErrDuplicate = errors.New("duplicate value for unique field")
)

// ContentService implements add/edit/delete/list for one record kind. It
// replaces four hand-duplicated CRUD route families with a single
// implementation parameterized over the kind.
type ContentService[T Record] struct{}

// List returns all records of the kind, newest first.
func (s *ContentService[T]) List() ([]*T, error) {
	db := database.GetDB()
	var records []*T
	err := db.Model(new(T)).Order("created_at desc").Find(&records).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	return records, nil
}

// Add inserts a record with a server-assigned id and creation timestamp.
// A unique-index violation yields ErrDuplicate and nothing is written.
func (s *ContentService[T]) Add(record *T) error {
	db := database.GetDB()
	err := db.Create(record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// Edit loads the record by id and writes back a merged row: every text field
// the submission left empty keeps its stored value, non-empty values replace
// it. The id and creation timestamp are never touched. A missing row is an
// explicit ErrNotFound. A field cannot be cleared through this path; that is
// the intended merge rule, not an oversight.
func (s *ContentService[T]) Edit(id int, submitted *T) error {
	db := database.GetDB()

	existing := new(T)
	err := db.First(existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}

	mergeTextFields(existing, submitted)

	err = db.Save(existing).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// Delete removes the record by id. Deleting an id that does not exist is a
// no-op success: the statement affects zero rows and no error is raised.
func (s *ContentService[T]) Delete(id int) error {
	db := database.GetDB()
	return db.Delete(new(T), id).Error
}

// mergeTextFields copies every non-empty string field of submitted onto
// existing. Non-string fields (id, created_at) are left alone.
func mergeTextFields[T Record](existing, submitted *T) {
	ev := reflect.ValueOf(existing).Elem()
	sv := reflect.ValueOf(submitted).Elem()
	for i := 0; i < ev.NumField(); i++ {
		if ev.Field(i).Kind() != reflect.String {
			continue
		}
		if value := sv.Field(i).String(); value != "" {
			ev.Field(i).SetString(value)
		}
	}
}
