package database

import "time"

// Seed attribute bags. They describe what to create without leaking gorm
// models into the seeder.

type UserAttrs struct {
	FirstName       string
	LastName        string
	FullName        string
	Headline        string
	Summary         string
	ProfileImageURL *string
	BirthDate       *time.Time
	LocationCity    string
	LocationRegion  *string
	Country         string
	Email           string
	Phone           *string
	GithubURL       *string
	LinkedinURL     *string
}

type TechnologyAttrs struct {
	Name     string
	Category string
	IconName *string
}

type SkillAttrs struct {
	Name      string
	Category  string
	Level     *string
	Highlight bool
}

type ExperienceProjectAttrs struct {
	Name        string
	Description *string
	URL         *string
	SortOrder   int
}

type ExperienceAttrs struct {
	CompanyName      string
	CompanyWebsite   *string
	CompanyLocation  *string
	RoleTitle        string
	Description      *string
	StartDate        time.Time
	EndDate          *time.Time
	IsCurrent        bool
	Responsibilities []string
	Projects         []ExperienceProjectAttrs
	Technologies     []string
}
