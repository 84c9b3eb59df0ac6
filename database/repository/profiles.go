package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	stdgorm "gorm.io/gorm"

	"github.com/AngeelRdz/resume-angeel-dev/database"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/gorm"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/profile"
)

// Profiles reads the résumé aggregate. Every call rebuilds the Profile from
// scratch; nothing is cached between fetches.
type Profiles struct {
	DB *database.Connection
}

// GetProfile fetches one user with every nested relation eagerly loaded and
// maps the row graph into the normalized aggregate. Absence of a matching
// row yields (nil, nil); any other database failure propagates unmodified.
func (r Profiles) GetProfile(ctx context.Context, params profile.GetProfileParams) (*profile.Profile, error) {
	user := &database.User{}

	query := r.DB.Sql().
		WithContext(ctx).
		Preload("Experiences", func(db *stdgorm.DB) *stdgorm.DB {
			return db.Order("experiences.start_date DESC")
		}).
		Preload("Experiences.Responsibilities").
		Preload("Experiences.Projects").
		Preload("Experiences.Technologies.Technology").
		Preload("Skills.Skill").
		Preload("Technologies.Technology")

	if params.UserID != "" {
		query = query.Where("users.uuid = ?", params.UserID)
	}

	// With no filter, the earliest-created user is the canonical profile.
	result := query.Order("users.created_at ASC").First(user)

	if gorm.IsNotFound(result.Error) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, fmt.Errorf("fetch profile: %w", result.Error)
	}

	return mapProfile(user), nil
}

func mapProfile(user *database.User) *profile.Profile {
	experiences := make([]profile.Experience, 0, len(user.Experiences))
	for i := range user.Experiences {
		experiences = append(experiences, mapExperience(&user.Experiences[i]))
	}

	// ISO-8601 strings order lexicographically, so a plain string compare
	// is safe. Ties keep input order.
	sort.SliceStable(experiences, func(i, j int) bool {
		return experiences[i].StartDate > experiences[j].StartDate
	})

	skills := make([]profile.Skill, 0, len(user.Skills))
	for i := range user.Skills {
		skills = append(skills, mapSkill(&user.Skills[i]))
	}

	// Two-key sort: highlighted first, then alphabetical within each
	// partition.
	sort.SliceStable(skills, func(i, j int) bool {
		if skills[i].Highlight != skills[j].Highlight {
			return skills[i].Highlight
		}

		return skills[i].Name < skills[j].Name
	})

	technologies := make([]profile.Technology, 0, len(user.Technologies))
	for i := range user.Technologies {
		technologies = append(technologies, mapTechnology(&user.Technologies[i].Technology))
	}

	sortTechnologies(technologies)

	return &profile.Profile{
		PersonalInfo: mapPersonalInfo(user),
		Experiences:  experiences,
		Skills:       skills,
		Technologies: technologies,
	}
}

func mapPersonalInfo(user *database.User) profile.PersonalInfo {
	return profile.PersonalInfo{
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		FullName:        user.FullName,
		Headline:        user.Headline,
		Summary:         user.Summary,
		ProfileImageURL: externalHref(user.ProfileImageURL),
		BirthDate:       isoDateOrNil(user.BirthDate),
		Location: profile.Location{
			City:    user.LocationCity,
			Region:  user.LocationRegion,
			Country: user.Country,
		},
		Contact: profile.Contact{
			Email:    user.Email,
			Phone:    user.Phone,
			Github:   externalHref(user.GithubURL),
			Linkedin: externalHref(user.LinkedinURL),
		},
	}
}

func mapExperience(experience *database.Experience) profile.Experience {
	responsibilities := make([]database.ExperienceResponsibility, len(experience.Responsibilities))
	copy(responsibilities, experience.Responsibilities)

	// The stored order column rules the sequence, not insertion order.
	// Duplicate orders keep fetch order (stable).
	sort.SliceStable(responsibilities, func(i, j int) bool {
		return responsibilities[i].SortOrder < responsibilities[j].SortOrder
	})

	descriptions := make([]string, 0, len(responsibilities))
	for _, item := range responsibilities {
		descriptions = append(descriptions, item.Description)
	}

	projects := make([]database.ExperienceProject, len(experience.Projects))
	copy(projects, experience.Projects)

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].SortOrder < projects[j].SortOrder
	})

	mappedProjects := make([]profile.ExperienceProject, 0, len(projects))
	for i := range projects {
		mappedProjects = append(mappedProjects, mapExperienceProject(&projects[i]))
	}

	technologies := make([]profile.Technology, 0, len(experience.Technologies))
	for i := range experience.Technologies {
		technologies = append(technologies, mapTechnology(&experience.Technologies[i].Technology))
	}

	sortTechnologies(technologies)

	return profile.Experience{
		ID:               experience.UUID,
		CompanyName:      experience.CompanyName,
		CompanyWebsite:   externalHref(experience.CompanyWebsite),
		CompanyLocation:  experience.CompanyLocation,
		RoleTitle:        experience.RoleTitle,
		Description:      experience.Description,
		StartDate:        isoDate(experience.StartDate),
		EndDate:          isoDateOrNil(experience.EndDate),
		IsCurrent:        experience.IsCurrent,
		Responsibilities: descriptions,
		Projects:         mappedProjects,
		Technologies:     technologies,
	}
}

func mapExperienceProject(project *database.ExperienceProject) profile.ExperienceProject {
	return profile.ExperienceProject{
		ID:          project.UUID,
		Name:        project.Name,
		Description: project.Description,
		URL:         externalHref(project.URL),
	}
}

func mapSkill(userSkill *database.UserSkill) profile.Skill {
	var level *profile.SkillLevel
	if userSkill.Level != nil && *userSkill.Level != "" {
		value := profile.SkillLevel(*userSkill.Level)
		level = &value
	}

	return profile.Skill{
		ID:        userSkill.Skill.UUID,
		Name:      userSkill.Skill.Name,
		Category:  profile.SkillCategory(userSkill.Skill.Category),
		Level:     level,
		Highlight: userSkill.Highlight,
	}
}

func mapTechnology(technology *database.Technology) profile.Technology {
	return profile.Technology{
		ID:       technology.UUID,
		Name:     technology.Name,
		Category: profile.TechnologyCategory(technology.Category),
		IconName: technology.IconName,
	}
}

func sortTechnologies(technologies []profile.Technology) {
	sort.SliceStable(technologies, func(i, j int) bool {
		return technologies[i].Name < technologies[j].Name
	})
}

// externalHref passes stored URLs through untouched; an empty or NULL
// column maps to nil, never to an empty string. Well-formedness is the
// caller's type-level concern, not a runtime check here.
func externalHref(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}

	return value
}

func isoDate(value time.Time) string {
	return value.UTC().Format(time.RFC3339)
}

func isoDateOrNil(value *time.Time) *string {
	if value == nil {
		return nil
	}

	formatted := isoDate(*value)

	return &formatted
}
