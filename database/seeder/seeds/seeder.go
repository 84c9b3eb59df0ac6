package seeds

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/AngeelRdz/resume-angeel-dev/database"
	"github.com/AngeelRdz/resume-angeel-dev/metal/env"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/cli"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/gorm"
)

type Seeder struct {
	db  *database.Connection
	env *env.Environment
}

func MakeSeeder(db *database.Connection, env *env.Environment) *Seeder {
	return &Seeder{
		db:  db,
		env: env,
	}
}

func (s Seeder) TruncateDB() error {
	return database.NewTruncate(s.db, s.env).Execute()
}

func (s Seeder) SeedUser(attrs database.UserAttrs) (*database.User, error) {
	user := database.User{
		UUID:            uuid.NewString(),
		FirstName:       attrs.FirstName,
		LastName:        attrs.LastName,
		FullName:        attrs.FullName,
		Headline:        attrs.Headline,
		Summary:         attrs.Summary,
		ProfileImageURL: attrs.ProfileImageURL,
		BirthDate:       attrs.BirthDate,
		LocationCity:    attrs.LocationCity,
		LocationRegion:  attrs.LocationRegion,
		Country:         attrs.Country,
		Email:           attrs.Email,
		Phone:           attrs.Phone,
		GithubURL:       attrs.GithubURL,
		LinkedinURL:     attrs.LinkedinURL,
	}

	result := s.db.Sql().Create(&user)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("seed user %s: %w", attrs.Email, result.Error)
	}

	return &user, nil
}

func (s Seeder) SeedTechnologies(attrs []database.TechnologyAttrs) (map[string]database.Technology, error) {
	technologies := make([]database.Technology, 0, len(attrs))

	for _, seed := range attrs {
		technologies = append(technologies, database.Technology{
			UUID:     uuid.NewString(),
			Name:     seed.Name,
			Category: seed.Category,
			IconName: seed.IconName,
		})
	}

	result := s.db.Sql().Create(&technologies)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("seed technologies: %w", result.Error)
	}

	byName := make(map[string]database.Technology, len(technologies))
	for _, technology := range technologies {
		byName[technology.Name] = technology
	}

	return byName, nil
}

func (s Seeder) SeedSkills(user *database.User, attrs []database.SkillAttrs) error {
	for _, seed := range attrs {
		skill := database.Skill{
			UUID:     uuid.NewString(),
			Name:     seed.Name,
			Category: seed.Category,
		}

		if result := s.db.Sql().Create(&skill); gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("seed skill %s: %w", seed.Name, result.Error)
		}

		link := database.UserSkill{
			UserID:    user.ID,
			SkillID:   skill.ID,
			Level:     seed.Level,
			Highlight: seed.Highlight,
		}

		if result := s.db.Sql().Create(&link); gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("link skill %s: %w", seed.Name, result.Error)
		}
	}

	return nil
}

func (s Seeder) SeedExperiences(user *database.User, technologies map[string]database.Technology, attrs []database.ExperienceAttrs) error {
	for _, seed := range attrs {
		experience := database.Experience{
			UUID:            uuid.NewString(),
			UserID:          user.ID,
			CompanyName:     seed.CompanyName,
			CompanyWebsite:  seed.CompanyWebsite,
			CompanyLocation: seed.CompanyLocation,
			RoleTitle:       seed.RoleTitle,
			Description:     seed.Description,
			StartDate:       seed.StartDate,
			EndDate:         seed.EndDate,
			IsCurrent:       seed.IsCurrent,
		}

		if result := s.db.Sql().Create(&experience); gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("seed experience %s: %w", seed.CompanyName, result.Error)
		}

		for index, description := range seed.Responsibilities {
			responsibility := database.ExperienceResponsibility{
				UUID:         uuid.NewString(),
				ExperienceID: experience.ID,
				Description:  description,
				SortOrder:    index + 1,
			}

			if result := s.db.Sql().Create(&responsibility); gorm.HasDbIssues(result.Error) {
				return fmt.Errorf("seed responsibility for %s: %w", seed.CompanyName, result.Error)
			}
		}

		for index, projectSeed := range seed.Projects {
			project := database.ExperienceProject{
				UUID:         uuid.NewString(),
				ExperienceID: experience.ID,
				Name:         projectSeed.Name,
				Description:  projectSeed.Description,
				URL:          projectSeed.URL,
				SortOrder:    index + 1,
			}

			if result := s.db.Sql().Create(&project); gorm.HasDbIssues(result.Error) {
				return fmt.Errorf("seed project %s: %w", projectSeed.Name, result.Error)
			}
		}

		for _, name := range seed.Technologies {
			technology, found := technologies[name]
			if !found {
				cli.Warningln(fmt.Sprintf("technology [%s] is not seeded, skipping link", name))
				continue
			}

			link := database.ExperienceTechnology{
				ExperienceID: experience.ID,
				TechnologyID: technology.ID,
			}

			if result := s.db.Sql().Create(&link); gorm.HasDbIssues(result.Error) {
				return fmt.Errorf("link technology %s: %w", name, result.Error)
			}
		}
	}

	return nil
}

func (s Seeder) SeedUserTechnologies(user *database.User, technologies map[string]database.Technology, names []string) error {
	for _, name := range names {
		technology, found := technologies[name]
		if !found {
			cli.Warningln(fmt.Sprintf("technology [%s] is not seeded, skipping link", name))
			continue
		}

		link := database.UserTechnology{
			UserID:       user.ID,
			TechnologyID: technology.ID,
		}

		if result := s.db.Sql().Create(&link); gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("link user technology %s: %w", name, result.Error)
		}
	}

	return nil
}
