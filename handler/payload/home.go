package payload

import (
	"github.com/AngeelRdz/resume-angeel-dev/pkg/i18n"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/profile"
)

const (
	ActionPrimary   = "primary"
	ActionSecondary = "secondary"
)

type HomeResponse struct {
	Data HomeData `json:"data"`
}

type HomeData struct {
	Locale     string          `json:"locale"`
	Hero       HeroData        `json:"hero"`
	About      AboutData       `json:"about"`
	Experience ExperienceBlock `json:"experience"`
	Skills     SkillsData      `json:"skills"`
	Projects   ProjectsBlock   `json:"projects"`
	Contact    ContactData     `json:"contact"`
}

type HeroData struct {
	Greeting     string          `json:"greeting"`
	Name         string          `json:"name"`
	Role         string          `json:"role"`
	Headline     string          `json:"headline"`
	Availability string          `json:"availability"`
	Location     string          `json:"location"`
	Actions      []HeroAction    `json:"actions"`
	Highlights   []HighlightData `json:"highlights"`
}

type HeroAction struct {
	Label   string `json:"label"`
	Href    string `json:"href"`
	Variant string `json:"variant"`
}

type HighlightData struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type AboutData struct {
	Title           string          `json:"title"`
	Summary         string          `json:"summary"`
	Highlights      []HighlightData `json:"highlights"`
	ProfileImageURL *string         `json:"profileImageUrl"`
	SocialLinks     []SocialLink    `json:"socialLinks"`
}

type SocialLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

type ExperienceBlock struct {
	Title string               `json:"title"`
	Items []ExperienceItemData `json:"items"`
}

type ExperienceItemData struct {
	ID          string           `json:"id"`
	Company     string           `json:"company"`
	Location    *string          `json:"location"`
	Website     *string          `json:"website"`
	Role        string           `json:"role"`
	Period      string           `json:"period"`
	Description *string          `json:"description"`
	Highlights  []string         `json:"highlights"`
	TechStack   []TechnologyItem `json:"techStack"`
}

type TechnologyItem struct {
	Name     string  `json:"name"`
	IconName *string `json:"iconName"`
}

type SkillsData struct {
	Title                    string   `json:"title"`
	PrimaryTitle             string   `json:"primaryTitle"`
	PrimaryDescription       string   `json:"primaryDescription"`
	PrimarySkills            []string `json:"primarySkills"`
	ComplementaryTitle       string   `json:"complementaryTitle"`
	ComplementaryDescription string   `json:"complementaryDescription"`
	ComplementarySkills      []string `json:"complementarySkills"`
	ValuesTitle              string   `json:"valuesTitle"`
	Values                   []string `json:"values"`
}

type ProjectsBlock struct {
	Title string            `json:"title"`
	Items []ProjectItemData `json:"items"`
}

type ProjectItemData struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	URL         *string          `json:"url"`
	Company     string           `json:"company"`
	TechStack   []TechnologyItem `json:"techStack"`
}

type ContactData struct {
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	EmailLabel  string       `json:"emailLabel"`
	Email       string       `json:"email"`
	SocialLabel string       `json:"socialLabel"`
	Socials     []SocialLink `json:"socials"`
}

// BuildHomeResponse assembles the localized home view model. It is a pure
// transform: no I/O, deterministic for identical inputs, and it never fails
// for a well-formed profile. Absent optional fields degrade to nil or to
// the documented fallbacks. The locale comes from the translator; resolving
// a request language to a bundle is the caller's job.
func BuildHomeResponse(p *profile.Profile, translator *i18n.Translator) HomeResponse {
	locale := translator.Locale()
	highlights := buildHighlights(translator)
	socials := buildSocialLinks(p)

	info := p.PersonalInfo

	data := HomeData{
		Locale: string(locale),
		Hero: HeroData{
			Greeting:     translator.T("hero.greeting"),
			Name:         info.FullName,
			Role:         translator.TOr("hero.role", info.Headline),
			Headline:     translator.TOr("hero.headline", info.Summary),
			Availability: translator.T("hero.availability"),
			Location:     info.Location.City + ", " + info.Location.Country,
			Actions:      buildHeroActions(p, translator),
			Highlights:   highlights,
		},
		About: AboutData{
			Title:           translator.T("about.title"),
			Summary:         info.Summary,
			Highlights:      highlights,
			ProfileImageURL: info.ProfileImageURL,
			SocialLinks:     socials,
		},
		Experience: ExperienceBlock{
			Title: translator.T("experience.title"),
			Items: buildExperienceItems(p, translator, locale),
		},
		Skills:   buildSkills(p, translator),
		Projects: ProjectsBlock{
			Title: translator.T("projects.title"),
			Items: buildProjectItems(p),
		},
		Contact: ContactData{
			Title:       translator.T("contact.title"),
			Subtitle:    translator.T("contact.subtitle"),
			EmailLabel:  translator.T("contact.emailLabel"),
			Email:       info.Contact.Email,
			SocialLabel: translator.T("contact.socialLabel"),
			Socials:     socials,
		},
	}

	return HomeResponse{Data: data}
}

// buildHeroActions always yields exactly two actions with non-empty hrefs.
// The secondary action prefers LinkedIn, falls back to GitHub, and as a
// last resort reuses the mailto link.
func buildHeroActions(p *profile.Profile, translator *i18n.Translator) []HeroAction {
	contact := p.PersonalInfo.Contact
	mailto := "mailto:" + contact.Email

	primary := HeroAction{
		Label:   translator.T("hero.primaryCta"),
		Href:    mailto,
		Variant: ActionPrimary,
	}

	if contact.Linkedin != nil {
		return []HeroAction{primary, {
			Label:   translator.TOr("hero.secondaryCtaLinkedin", "Ver LinkedIn"),
			Href:    *contact.Linkedin,
			Variant: ActionSecondary,
		}}
	}

	secondary := HeroAction{
		Label:   translator.TOr("hero.secondaryCtaGithub", "Ver GitHub"),
		Href:    mailto,
		Variant: ActionSecondary,
	}

	if contact.Github != nil {
		secondary.Href = *contact.Github
	}

	return []HeroAction{primary, secondary}
}

func buildHighlights(translator *i18n.Translator) []HighlightData {
	entries := translator.TEntries("about.highlights")

	highlights := make([]HighlightData, 0, len(entries))
	for _, entry := range entries {
		highlights = append(highlights, HighlightData{
			ID:    entry.ID,
			Label: entry.Label,
			Value: entry.Value,
		})
	}

	return highlights
}

// buildSocialLinks keeps a fixed priority order: LinkedIn, then GitHub,
// then phone. Absent channels are omitted.
func buildSocialLinks(p *profile.Profile) []SocialLink {
	contact := p.PersonalInfo.Contact

	socials := make([]SocialLink, 0, 3)

	if contact.Linkedin != nil {
		socials = append(socials, SocialLink{
			ID:    "linkedin",
			Label: "LinkedIn",
			URL:   *contact.Linkedin,
		})
	}

	if contact.Github != nil {
		socials = append(socials, SocialLink{
			ID:    "github",
			Label: "GitHub",
			URL:   *contact.Github,
		})
	}

	if contact.Phone != nil {
		socials = append(socials, SocialLink{
			ID:    "phone",
			Label: *contact.Phone,
			URL:   "tel:" + *contact.Phone,
		})
	}

	return socials
}

func buildExperienceItems(p *profile.Profile, translator *i18n.Translator, locale i18n.Locale) []ExperienceItemData {
	currentLabel := translator.TOr("experience.currentLabel", "Actualidad")

	items := make([]ExperienceItemData, 0, len(p.Experiences))
	for i := range p.Experiences {
		experience := &p.Experiences[i]

		items = append(items, ExperienceItemData{
			ID:          experience.ID,
			Company:     experience.CompanyName,
			Location:    experience.CompanyLocation,
			Website:     experience.CompanyWebsite,
			Role:        experience.RoleTitle,
			Period:      i18n.FormatPeriod(experience.StartDate, experience.EndDate, locale, currentLabel),
			Description: experience.Description,
			Highlights:  experience.Responsibilities,
			TechStack:   buildTechStack(experience.Technologies),
		})
	}

	return items
}

func buildTechStack(technologies []profile.Technology) []TechnologyItem {
	stack := make([]TechnologyItem, 0, len(technologies))
	for _, technology := range technologies {
		stack = append(stack, TechnologyItem{
			Name:     technology.Name,
			IconName: technology.IconName,
		})
	}

	return stack
}

// buildProjectItems flattens every experience's projects in experience
// order. A project without its own description inherits the parent
// experience's description.
func buildProjectItems(p *profile.Profile) []ProjectItemData {
	var items []ProjectItemData

	for i := range p.Experiences {
		experience := &p.Experiences[i]
		stack := buildTechStack(experience.Technologies)

		for _, project := range experience.Projects {
			description := project.Description
			if description == nil {
				description = experience.Description
			}

			items = append(items, ProjectItemData{
				ID:          project.ID,
				Name:        project.Name,
				Description: description,
				URL:         project.URL,
				Company:     experience.CompanyName,
				TechStack:   stack,
			})
		}
	}

	return items
}

// buildSkills partitions the already-sorted profile skills; highlighted
// skills become the primary list, the rest are complementary. No re-sort
// happens here.
func buildSkills(p *profile.Profile, translator *i18n.Translator) SkillsData {
	var primary, complementary []string

	for _, skill := range p.Skills {
		if skill.Highlight {
			primary = append(primary, skill.Name)
		} else {
			complementary = append(complementary, skill.Name)
		}
	}

	return SkillsData{
		Title:                    translator.T("skills.title"),
		PrimaryTitle:             translator.T("skills.primaryTitle"),
		PrimaryDescription:       translator.T("skills.primaryDescription"),
		PrimarySkills:            primary,
		ComplementaryTitle:       translator.T("skills.complementaryTitle"),
		ComplementaryDescription: translator.T("skills.complementaryDescription"),
		ComplementarySkills:      complementary,
		ValuesTitle:              translator.T("skills.valuesTitle"),
		Values:                   translator.TList("skills.values"),
	}
}
