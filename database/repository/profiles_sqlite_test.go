package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	stdgorm "gorm.io/gorm"

	"github.com/AngeelRdz/resume-angeel-dev/database"
	"github.com/AngeelRdz/resume-angeel-dev/database/repository"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/profile"
)

func newSQLiteConnection(t *testing.T) *database.Connection {
	t.Helper()

	// A named shared-cache database keeps every pooled connection on the
	// same in-memory store; the uuid keeps tests isolated from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := stdgorm.Open(sqlite.Open(dsn), &stdgorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(database.SchemaModels()...); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database.MakeConnectionFrom(db, nil)
}

func strPtr(value string) *string {
	return &value
}

func seedUser(t *testing.T, conn *database.Connection, email string) database.User {
	t.Helper()

	user := database.User{
		UUID:         uuid.NewString(),
		FirstName:    "José Ángel",
		LastName:     "Rodríguez Martínez",
		FullName:     "José Ángel Rodríguez Martínez",
		Headline:     "Frontend Developer",
		Summary:      "Ingeniero en Sistemas Computacionales.",
		LocationCity: "Ciudad de México",
		Country:      "México",
		Email:        email,
		GithubURL:    strPtr("https://github.com/AngeelRdz"),
		LinkedinURL:  strPtr(""),
	}

	if err := conn.Sql().Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	return user
}

func seedTechnology(t *testing.T, conn *database.Connection, name string) database.Technology {
	t.Helper()

	technology := database.Technology{
		UUID:     uuid.NewString(),
		Name:     name,
		Category: "FRONTEND",
	}

	if err := conn.Sql().Create(&technology).Error; err != nil {
		t.Fatalf("create technology %s: %v", name, err)
	}

	return technology
}

func seedExperience(t *testing.T, conn *database.Connection, userID uint64, company string, start time.Time, end *time.Time) database.Experience {
	t.Helper()

	experience := database.Experience{
		UUID:        uuid.NewString(),
		UserID:      userID,
		CompanyName: company,
		RoleTitle:   "Frontend Developer",
		StartDate:   start,
		EndDate:     end,
		IsCurrent:   end == nil,
	}

	if err := conn.Sql().Create(&experience).Error; err != nil {
		t.Fatalf("create experience %s: %v", company, err)
	}

	return experience
}

func TestProfilesGetProfileMapping(t *testing.T) {
	conn := newSQLiteConnection(t)
	user := seedUser(t, conn, "mapping@example.test")

	seedExperience(t, conn, user.ID, "Older Corp", time.Date(2018, 10, 1, 0, 0, 0, 0, time.UTC), nil)
	newest := seedExperience(t, conn, user.ID, "Newest Corp", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), nil)

	// Responsibilities inserted out of order; the sort column must rule.
	for _, item := range []database.ExperienceResponsibility{
		{UUID: uuid.NewString(), ExperienceID: newest.ID, Description: "second", SortOrder: 2},
		{UUID: uuid.NewString(), ExperienceID: newest.ID, Description: "first", SortOrder: 1},
	} {
		if err := conn.Sql().Create(&item).Error; err != nil {
			t.Fatalf("create responsibility: %v", err)
		}
	}

	// Projects with orders 1 and 0: ascending means 0 renders first.
	for _, item := range []database.ExperienceProject{
		{UUID: uuid.NewString(), ExperienceID: newest.ID, Name: "later", SortOrder: 1, URL: strPtr("")},
		{UUID: uuid.NewString(), ExperienceID: newest.ID, Name: "earlier", SortOrder: 0},
	} {
		if err := conn.Sql().Create(&item).Error; err != nil {
			t.Fatalf("create project: %v", err)
		}
	}

	react := seedTechnology(t, conn, "React.js")
	angular := seedTechnology(t, conn, "Angular")

	for _, link := range []database.ExperienceTechnology{
		{ExperienceID: newest.ID, TechnologyID: react.ID},
		{ExperienceID: newest.ID, TechnologyID: angular.ID},
	} {
		if err := conn.Sql().Create(&link).Error; err != nil {
			t.Fatalf("link technology: %v", err)
		}
	}

	for _, seed := range []struct {
		name      string
		highlight bool
	}{
		{"Responsive Design", false},
		{"SOLID", true},
		{"Clean Architecture", true},
	} {
		skill := database.Skill{UUID: uuid.NewString(), Name: seed.name, Category: "OTHER"}
		if err := conn.Sql().Create(&skill).Error; err != nil {
			t.Fatalf("create skill: %v", err)
		}

		link := database.UserSkill{UserID: user.ID, SkillID: skill.ID, Highlight: seed.highlight}
		if err := conn.Sql().Create(&link).Error; err != nil {
			t.Fatalf("link skill: %v", err)
		}
	}

	repo := repository.Profiles{DB: conn}

	found, err := repo.GetProfile(context.Background(), profile.GetProfileParams{})
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}

	if found == nil {
		t.Fatal("expected a profile")
	}

	if found.PersonalInfo.Contact.Linkedin != nil {
		t.Error("empty stored URL must map to nil")
	}

	if found.PersonalInfo.Contact.Github == nil {
		t.Error("stored URL must survive the mapping")
	}

	if len(found.Experiences) != 2 {
		t.Fatalf("expected 2 experiences, got %d", len(found.Experiences))
	}

	if found.Experiences[0].CompanyName != "Newest Corp" || found.Experiences[1].CompanyName != "Older Corp" {
		t.Errorf("experiences must be newest-first, got %s then %s",
			found.Experiences[0].CompanyName, found.Experiences[1].CompanyName)
	}

	first := found.Experiences[0]

	if got := first.Responsibilities; len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("responsibilities must follow the sort column, got %v", got)
	}

	if got := first.Projects; len(got) != 2 || got[0].Name != "earlier" || got[1].Name != "later" {
		t.Errorf("projects must follow the sort column, got %v", got)
	}

	if first.Projects[1].URL != nil {
		t.Error("empty project URL must map to nil")
	}

	if got := first.Technologies; len(got) != 2 || got[0].Name != "Angular" || got[1].Name != "React.js" {
		t.Errorf("experience technologies must be alphabetical, got %v", got)
	}

	names := make([]string, 0, len(found.Skills))
	for _, skill := range found.Skills {
		names = append(names, skill.Name)
	}

	want := []string{"Clean Architecture", "SOLID", "Responsive Design"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("skills must be highlight-first then alphabetical, got %v", names)
		}
	}
}

func TestProfilesGetProfileMissingRow(t *testing.T) {
	conn := newSQLiteConnection(t)

	repo := repository.Profiles{DB: conn}

	found, err := repo.GetProfile(context.Background(), profile.GetProfileParams{})
	if err != nil {
		t.Fatalf("absence is not an error at this layer: %v", err)
	}

	if found != nil {
		t.Fatal("expected nil for an empty store")
	}
}

func TestProfilesGetProfileByUUID(t *testing.T) {
	conn := newSQLiteConnection(t)

	seedUser(t, conn, "first@example.test")
	second := seedUser(t, conn, "second@example.test")

	repo := repository.Profiles{DB: conn}

	found, err := repo.GetProfile(context.Background(), profile.GetProfileParams{UserID: second.UUID})
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}

	if found == nil || found.PersonalInfo.Contact.Email != "second@example.test" {
		t.Fatal("expected the filtered user")
	}

	missing, err := repo.GetProfile(context.Background(), profile.GetProfileParams{UserID: uuid.NewString()})
	if err != nil {
		t.Fatalf("unknown uuid must not error: %v", err)
	}

	if missing != nil {
		t.Fatal("expected nil for an unknown uuid")
	}
}

func TestProfilesGetProfileDefaultsToEarliestUser(t *testing.T) {
	conn := newSQLiteConnection(t)

	earliest := database.User{
		UUID:         uuid.NewString(),
		FirstName:    "First",
		LastName:     "User",
		FullName:     "First User",
		Headline:     "Dev",
		Summary:      "s",
		LocationCity: "CDMX",
		Country:      "México",
		Email:        "earliest@example.test",
		CreatedAt:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := conn.Sql().Create(&earliest).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	later := database.User{
		UUID:         uuid.NewString(),
		FirstName:    "Second",
		LastName:     "User",
		FullName:     "Second User",
		Headline:     "Dev",
		Summary:      "s",
		LocationCity: "CDMX",
		Country:      "México",
		Email:        "later@example.test",
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := conn.Sql().Create(&later).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	repo := repository.Profiles{DB: conn}

	found, err := repo.GetProfile(context.Background(), profile.GetProfileParams{})
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}

	if found == nil || found.PersonalInfo.Contact.Email != "earliest@example.test" {
		t.Fatal("expected the earliest-created user to be canonical")
	}
}
