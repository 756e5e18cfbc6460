package service

import (
	"os"
	"testing"
	"time"

	"portfolio/database"
	"portfolio/database/model"
	"portfolio/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func setup() {
	logger.InitLogger(logging.ERROR)
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func TestContentServiceRoundTrip(t *testing.T) {
	setup()
	defer teardown()

	svc := ContentService[model.Project]{}

	project := &model.Project{
		Title:       "test-project",
		ImgURL:      "https://example.com/a.png",
		Description: "first",
		ProjectLink: "https://example.com",
	}
	err := svc.Add(project)
	assert.NoError(t, err)
	assert.NotZero(t, project.Id)
	assert.False(t, project.CreatedAt.IsZero())

	projects, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.Equal(t, "test-project", projects[0].Title)
	assert.Equal(t, "first", projects[0].Description)
}

func TestContentServiceListNewestFirst(t *testing.T) {
	setup()
	defer teardown()

	svc := ContentService[model.Skill]{}

	assert.NoError(t, svc.Add(&model.Skill{Name: "older", Type: "frontend"}))
	newer := &model.Skill{Name: "newer", Type: "backend"}
	assert.NoError(t, svc.Add(newer))

	// Equal timestamps are possible within one second; force an ordering.
	err := database.GetDB().Model(newer).Update("created_at", newer.CreatedAt.Add(time.Second)).Error
	assert.NoError(t, err)

	skills, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, skills, 2)
	assert.Equal(t, "newer", skills[0].Name)
	assert.Equal(t, "older", skills[1].Name)
}

func TestContentServiceEditMergesEmptyFields(t *testing.T) {
	setup()
	defer teardown()

	svc := ContentService[model.Project]{}

	project := &model.Project{
		Title:       "original title",
		ImgURL:      "https://example.com/a.png",
		Description: "original desc",
		ProjectLink: "https://example.com",
	}
	assert.NoError(t, svc.Add(project))

	err := svc.Edit(project.Id, &model.Project{
		Title:       "",
		Description: "new desc",
	})
	assert.NoError(t, err)

	projects, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.Equal(t, "original title", projects[0].Title)
	assert.Equal(t, "new desc", projects[0].Description)
	assert.Equal(t, "https://example.com/a.png", projects[0].ImgURL)
	assert.Equal(t, project.Id, projects[0].Id)
	assert.Equal(t, project.CreatedAt.Unix(), projects[0].CreatedAt.Unix())
}

func TestContentServiceEditMissingRow(t *testing.T) {
	setup()
	defer teardown()

	svc := ContentService[model.Book]{}

	err := svc.Edit(12345, &model.Book{Title: "anything"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentServiceDeleteIsIdempotent(t *testing.T) {
	setup()
	defer teardown()

	svc := ContentService[model.GalleryImage]{}

	image := &model.GalleryImage{ImgURL: "https://example.com/g.png", Description: "pic"}
	assert.NoError(t, svc.Add(image))

	assert.NoError(t, svc.Delete(image.Id))
	// Same id again: zero rows affected, still a success.
	assert.NoError(t, svc.Delete(image.Id))
	assert.NoError(t, svc.Delete(99999))

	images, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, images, 0)
}

func TestContentServiceDuplicateISBN(t *testing.T) {
	setup()
	defer teardown()

	svc := ContentService[model.Book]{}

	assert.NoError(t, svc.Add(&model.Book{Title: "one", ISBN: "978-0-13-468599-1"}))

	err := svc.Add(&model.Book{Title: "two", ISBN: "978-0-13-468599-1"})
	assert.ErrorIs(t, err, ErrDuplicate)

	books, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Equal(t, "one", books[0].Title)
}

func TestContentServiceRatingKeptOnEmptySubmit(t *testing.T) {
	setup()
	defer teardown()

	svc := ContentService[model.Book]{}

	book := &model.Book{Title: "rated", Rating: "5", ISBN: "isbn-1"}
	assert.NoError(t, svc.Add(book))

	// Empty rating keeps the stored one, "0" replaces it.
	assert.NoError(t, svc.Edit(book.Id, &model.Book{Rating: ""}))
	books, _ := svc.List()
	assert.Equal(t, "5", books[0].Rating)

	assert.NoError(t, svc.Edit(book.Id, &model.Book{Rating: "0"}))
	books, _ = svc.List()
	assert.Equal(t, "0", books[0].Rating)
}
