package database

import (
	"regexp"
	"time"

	"gorm.io/gorm"
)

const DriverName = "postgres"

// User is the résumé owner. The application assumes exactly one row in a
// correctly provisioned deployment; when several exist, the earliest-created
// one is canonical.
type User struct {
	ID              uint64         `gorm:"primaryKey"`
	UUID            string         `gorm:"type:uuid;uniqueIndex;not null"`
	FirstName       string         `gorm:"size:120;not null"`
	LastName        string         `gorm:"size:120;not null"`
	FullName        string         `gorm:"size:250;not null"`
	Headline        string         `gorm:"size:250;not null"`
	Summary         string         `gorm:"type:text;not null"`
	ProfileImageURL *string        `gorm:"size:500"`
	BirthDate       *time.Time     ``
	LocationCity    string         `gorm:"size:120;not null"`
	LocationRegion  *string        `gorm:"size:120"`
	Country         string         `gorm:"size:120;not null"`
	Email           string         `gorm:"size:250;uniqueIndex;not null"`
	Phone           *string        `gorm:"size:50"`
	GithubURL       *string        `gorm:"size:500"`
	LinkedinURL     *string        `gorm:"size:500"`
	CreatedAt       time.Time      ``
	UpdatedAt       time.Time      ``
	DeletedAt       gorm.DeletedAt `gorm:"index"`

	Experiences  []Experience     `gorm:"foreignKey:UserID"`
	Skills       []UserSkill      `gorm:"foreignKey:UserID"`
	Technologies []UserTechnology `gorm:"foreignKey:UserID"`
}

type Experience struct {
	ID              uint64         `gorm:"primaryKey"`
	UUID            string         `gorm:"type:uuid;uniqueIndex;not null"`
	UserID          uint64         `gorm:"index;not null"`
	CompanyName     string         `gorm:"size:250;not null"`
	CompanyWebsite  *string        `gorm:"size:500"`
	CompanyLocation *string        `gorm:"size:250"`
	RoleTitle       string         `gorm:"size:250;not null"`
	Description     *string        `gorm:"type:text"`
	StartDate       time.Time      `gorm:"not null"`
	EndDate         *time.Time     ``
	IsCurrent       bool           `gorm:"not null;default:false"`
	CreatedAt       time.Time      ``
	UpdatedAt       time.Time      ``
	DeletedAt       gorm.DeletedAt `gorm:"index"`

	Responsibilities []ExperienceResponsibility `gorm:"foreignKey:ExperienceID"`
	Projects         []ExperienceProject        `gorm:"foreignKey:ExperienceID"`
	Technologies     []ExperienceTechnology     `gorm:"foreignKey:ExperienceID"`
}

// ExperienceResponsibility rows carry an explicit sort column: the stored
// order field, not insertion order, determines the rendered sequence.
type ExperienceResponsibility struct {
	ID           uint64    `gorm:"primaryKey"`
	UUID         string    `gorm:"type:uuid;uniqueIndex;not null"`
	ExperienceID uint64    `gorm:"index;not null"`
	Description  string    `gorm:"type:text;not null"`
	SortOrder    int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt    time.Time ``
	UpdatedAt    time.Time ``
}

type ExperienceProject struct {
	ID           uint64    `gorm:"primaryKey"`
	UUID         string    `gorm:"type:uuid;uniqueIndex;not null"`
	ExperienceID uint64    `gorm:"index;not null"`
	Name         string    `gorm:"size:250;not null"`
	Description  *string   `gorm:"type:text"`
	URL          *string   `gorm:"size:500"`
	SortOrder    int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt    time.Time ``
	UpdatedAt    time.Time ``
}

type Technology struct {
	ID        uint64    `gorm:"primaryKey"`
	UUID      string    `gorm:"type:uuid;uniqueIndex;not null"`
	Name      string    `gorm:"size:120;uniqueIndex;not null"`
	Category  string    `gorm:"size:50;not null"`
	IconName  *string   `gorm:"size:120"`
	CreatedAt time.Time ``
	UpdatedAt time.Time ``
}

type Skill struct {
	ID        uint64    `gorm:"primaryKey"`
	UUID      string    `gorm:"type:uuid;uniqueIndex;not null"`
	Name      string    `gorm:"size:120;uniqueIndex;not null"`
	Category  string    `gorm:"size:50;not null"`
	CreatedAt time.Time ``
	UpdatedAt time.Time ``
}

type UserSkill struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"index;not null"`
	SkillID   uint64    `gorm:"index;not null"`
	Level     *string   `gorm:"size:50"`
	Highlight bool      `gorm:"not null;default:false"`
	CreatedAt time.Time ``
	UpdatedAt time.Time ``

	Skill Skill `gorm:"foreignKey:SkillID"`
}

type UserTechnology struct {
	ID           uint64    `gorm:"primaryKey"`
	UserID       uint64    `gorm:"index;not null"`
	TechnologyID uint64    `gorm:"index;not null"`
	CreatedAt    time.Time ``

	Technology Technology `gorm:"foreignKey:TechnologyID"`
}

type ExperienceTechnology struct {
	ID           uint64    `gorm:"primaryKey"`
	ExperienceID uint64    `gorm:"index;not null"`
	TechnologyID uint64    `gorm:"index;not null"`
	CreatedAt    time.Time ``

	Technology Technology `gorm:"foreignKey:TechnologyID"`
}

// GetSchemaTables lists every table in creation order. Truncation walks the
// list backwards so dependents go first.
func GetSchemaTables() []string {
	return []string{
		"users",
		"technologies",
		"skills",
		"experiences",
		"experience_responsibilities",
		"experience_projects",
		"user_skills",
		"user_technologies",
		"experience_technologies",
	}
}

var tableNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

func isValidTable(name string) bool {
	if !tableNamePattern.MatchString(name) {
		return false
	}

	for _, table := range GetSchemaTables() {
		if table == name {
			return true
		}
	}

	return false
}

// SchemaModels returns every model in a migration-safe order.
func SchemaModels() []any {
	return []any{
		&User{},
		&Technology{},
		&Skill{},
		&Experience{},
		&ExperienceResponsibility{},
		&ExperienceProject{},
		&UserSkill{},
		&UserTechnology{},
		&ExperienceTechnology{},
	}
}
