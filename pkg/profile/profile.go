// Package profile holds the read-only résumé aggregate served by the API.
// A Profile is rebuilt on every repository fetch; its collections carry the
// ordering guarantees the presentation layer relies on, and optional fields
// are pointers so that "absent" marshals to JSON null, never to an empty
// string.
package profile

import "context"

type SkillCategory string

const (
	SkillFrontend   SkillCategory = "FRONTEND"
	SkillBackend    SkillCategory = "BACKEND"
	SkillDesign     SkillCategory = "DESIGN"
	SkillDevops     SkillCategory = "DEVOPS"
	SkillMobile     SkillCategory = "MOBILE"
	SkillData       SkillCategory = "DATA"
	SkillManagement SkillCategory = "MANAGEMENT"
	SkillOther      SkillCategory = "OTHER"
)

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "BEGINNER"
	LevelIntermediate SkillLevel = "INTERMEDIATE"
	LevelAdvanced     SkillLevel = "ADVANCED"
	LevelExpert       SkillLevel = "EXPERT"
)

type TechnologyCategory string

const (
	TechFrontend TechnologyCategory = "FRONTEND"
	TechBackend  TechnologyCategory = "BACKEND"
	TechMobile   TechnologyCategory = "MOBILE"
	TechDatabase TechnologyCategory = "DATABASE"
	TechCloud    TechnologyCategory = "CLOUD"
	TechTooling  TechnologyCategory = "TOOLING"
	TechDesign   TechnologyCategory = "DESIGN"
	TechOther    TechnologyCategory = "OTHER"
)

type Location struct {
	City    string  `json:"city"`
	Region  *string `json:"region"`
	Country string  `json:"country"`
}

type Contact struct {
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Github   *string `json:"github"`
	Linkedin *string `json:"linkedin"`
}

type PersonalInfo struct {
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	FullName        string   `json:"fullName"`
	Headline        string   `json:"headline"`
	Summary         string   `json:"summary"`
	ProfileImageURL *string  `json:"profileImageUrl"`
	BirthDate       *string  `json:"birthDate"`
	Location        Location `json:"location"`
	Contact         Contact  `json:"contact"`
}

type Technology struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Category TechnologyCategory `json:"category"`
	IconName *string            `json:"iconName"`
}

type Skill struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Category  SkillCategory `json:"category"`
	Level     *SkillLevel   `json:"level"`
	Highlight bool          `json:"highlight"`
}

type ExperienceProject struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

type Experience struct {
	ID               string              `json:"id"`
	CompanyName      string              `json:"companyName"`
	CompanyWebsite   *string             `json:"companyWebsite"`
	CompanyLocation  *string             `json:"companyLocation"`
	RoleTitle        string              `json:"roleTitle"`
	Description      *string             `json:"description"`
	StartDate        string              `json:"startDate"`
	EndDate          *string             `json:"endDate"`
	IsCurrent        bool                `json:"isCurrent"`
	Responsibilities []string            `json:"responsibilities"`
	Projects         []ExperienceProject `json:"projects"`
	Technologies     []Technology        `json:"technologies"`
}

// Profile is the aggregate root. Invariants held by the repository mapping:
//   - Experiences sorted descending by ISO start date.
//   - Skills sorted highlight-first, then alphabetically by name.
//   - Technologies (top level and per experience) alphabetical by name.
type Profile struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experiences  []Experience `json:"experiences"`
	Skills       []Skill      `json:"skills"`
	Technologies []Technology `json:"technologies"`
}

// GetProfileParams narrows the repository lookup. A zero value selects the
// earliest-created user.
type GetProfileParams struct {
	UserID string
}

// Repository is the read contract against the relational store. A missing
// row yields (nil, nil): absence is a valid result at this layer, not an
// error.
type Repository interface {
	GetProfile(ctx context.Context, params GetProfileParams) (*Profile, error)
}
