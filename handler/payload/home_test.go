package payload

import (
	"strings"
	"testing"

	"github.com/AngeelRdz/resume-angeel-dev/pkg/i18n"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/profile"
)

func strPtr(value string) *string {
	return &value
}

func makeTranslator(t *testing.T, locale i18n.Locale) *i18n.Translator {
	t.Helper()

	translator, err := i18n.MakeTranslator(locale)
	if err != nil {
		t.Fatalf("load %s bundle: %v", locale, err)
	}

	return translator
}

func makeProfile() *profile.Profile {
	return &profile.Profile{
		PersonalInfo: profile.PersonalInfo{
			FirstName: "José Ángel",
			LastName:  "Rodríguez Martínez",
			FullName:  "José Ángel Rodríguez Martínez",
			Headline:  "Desarrollador Full Stack",
			Summary:   "Ingeniero de software con foco en producto.",
			Location: profile.Location{
				City:    "Guadalajara",
				Country: "México",
			},
			Contact: profile.Contact{
				Email:    "jose@example.com",
				Phone:    strPtr("+52 33 0000 0000"),
				Github:   strPtr("https://github.com/AngeelRdz"),
				Linkedin: strPtr("https://linkedin.com/in/angeelrdz"),
			},
		},
		Experiences: []profile.Experience{
			{
				ID:          "exp-current",
				CompanyName: "Envia Ya",
				RoleTitle:   "Full Stack Developer",
				Description: strPtr("Plataforma logística."),
				StartDate:   "2023-02-01T00:00:00Z",
				IsCurrent:   true,
				Responsibilities: []string{
					"Diseño de APIs",
					"Integración de mensajería",
				},
				Projects: []profile.ExperienceProject{
					{ID: "proj-a", Name: "Panel de envíos", Description: strPtr("Dashboard interno."), URL: strPtr("https://example.com/panel")},
					{ID: "proj-b", Name: "Cotizador"},
				},
				Technologies: []profile.Technology{
					{ID: "tech-go", Name: "Go", Category: profile.TechBackend},
					{ID: "tech-react", Name: "React", Category: profile.TechFrontend},
				},
			},
			{
				ID:          "exp-old",
				CompanyName: "Smart Payment Services",
				RoleTitle:   "Backend Developer",
				StartDate:   "2020-05-01T00:00:00Z",
				EndDate:     strPtr("2023-01-15T00:00:00Z"),
				Projects: []profile.ExperienceProject{
					{ID: "proj-c", Name: "Pasarela de pagos"},
				},
			},
		},
		Skills: []profile.Skill{
			{ID: "sk-go", Name: "Go", Category: profile.SkillBackend, Highlight: true},
			{ID: "sk-ts", Name: "TypeScript", Category: profile.SkillFrontend, Highlight: true},
			{ID: "sk-docker", Name: "Docker", Category: profile.SkillDevops},
			{ID: "sk-sql", Name: "PostgreSQL", Category: profile.SkillData},
		},
	}
}

func TestBuildHomeResponseHeroNeverEmpty(t *testing.T) {
	translator := makeTranslator(t, i18n.LocaleES)

	home := BuildHomeResponse(makeProfile(), translator).Data

	if home.Locale != "es" {
		t.Fatalf("expected locale es, got %q", home.Locale)
	}

	hero := home.Hero
	for field, value := range map[string]string{
		"greeting":     hero.Greeting,
		"name":         hero.Name,
		"role":         hero.Role,
		"headline":     hero.Headline,
		"availability": hero.Availability,
		"location":     hero.Location,
	} {
		if value == "" {
			t.Errorf("hero %s must not be empty", field)
		}
	}

	if hero.Location != "Guadalajara, México" {
		t.Errorf("unexpected hero location %q", hero.Location)
	}

	if len(hero.Actions) != 2 {
		t.Fatalf("expected 2 hero actions, got %d", len(hero.Actions))
	}

	primary := hero.Actions[0]
	if primary.Variant != ActionPrimary {
		t.Errorf("first action must be primary, got %q", primary.Variant)
	}

	if primary.Href != "mailto:jose@example.com" {
		t.Errorf("unexpected primary href %q", primary.Href)
	}
}

func TestBuildHomeResponseSecondaryActionFallbacks(t *testing.T) {
	translator := makeTranslator(t, i18n.LocaleES)

	t.Run("prefers linkedin", func(t *testing.T) {
		home := BuildHomeResponse(makeProfile(), translator).Data

		secondary := home.Hero.Actions[1]
		if secondary.Href != "https://linkedin.com/in/angeelrdz" {
			t.Fatalf("expected linkedin href, got %q", secondary.Href)
		}
	})

	t.Run("falls back to github", func(t *testing.T) {
		p := makeProfile()
		p.PersonalInfo.Contact.Linkedin = nil

		home := BuildHomeResponse(p, translator).Data

		secondary := home.Hero.Actions[1]
		if secondary.Href != "https://github.com/AngeelRdz" {
			t.Fatalf("expected github href, got %q", secondary.Href)
		}
	})

	t.Run("last resort reuses mailto", func(t *testing.T) {
		p := makeProfile()
		p.PersonalInfo.Contact.Linkedin = nil
		p.PersonalInfo.Contact.Github = nil

		home := BuildHomeResponse(p, translator).Data

		secondary := home.Hero.Actions[1]
		if secondary.Href != "mailto:jose@example.com" {
			t.Fatalf("expected mailto fallback, got %q", secondary.Href)
		}

		if secondary.Variant != ActionSecondary {
			t.Errorf("fallback action keeps secondary variant, got %q", secondary.Variant)
		}
	})
}

func TestBuildHomeResponseSkillsPartition(t *testing.T) {
	translator := makeTranslator(t, i18n.LocaleEN)

	home := BuildHomeResponse(makeProfile(), translator).Data

	skills := home.Skills
	if got := strings.Join(skills.PrimarySkills, ","); got != "Go,TypeScript" {
		t.Errorf("unexpected primary skills %q", got)
	}

	if got := strings.Join(skills.ComplementarySkills, ","); got != "Docker,PostgreSQL" {
		t.Errorf("unexpected complementary skills %q", got)
	}

	if len(skills.Values) == 0 {
		t.Error("values list must come from the bundle")
	}
}

func TestBuildHomeResponseProjectFlattening(t *testing.T) {
	translator := makeTranslator(t, i18n.LocaleES)

	home := BuildHomeResponse(makeProfile(), translator).Data

	items := home.Projects.Items
	if len(items) != 3 {
		t.Fatalf("expected 3 flattened projects, got %d", len(items))
	}

	// Experience order rules; projects keep per-experience order.
	wantIDs := []string{"proj-a", "proj-b", "proj-c"}
	for i, want := range wantIDs {
		if items[i].ID != want {
			t.Errorf("project[%d]: expected %s, got %s", i, want, items[i].ID)
		}
	}

	if items[0].Description == nil || *items[0].Description != "Dashboard interno." {
		t.Error("project with its own description keeps it")
	}

	// Cotizador has no description: inherit the parent experience's.
	if items[1].Description == nil || *items[1].Description != "Plataforma logística." {
		t.Error("project without description inherits the experience description")
	}

	// Pasarela's parent experience has no description either: stays nil.
	if items[2].Description != nil {
		t.Errorf("expected nil description, got %q", *items[2].Description)
	}

	if items[0].Company != "Envia Ya" || items[2].Company != "Smart Payment Services" {
		t.Error("projects carry the owning company name")
	}
}

func TestBuildHomeResponseExperiencePeriods(t *testing.T) {
	translator := makeTranslator(t, i18n.LocaleES)

	home := BuildHomeResponse(makeProfile(), translator).Data

	items := home.Experience.Items
	if len(items) != 2 {
		t.Fatalf("expected 2 experience items, got %d", len(items))
	}

	if !strings.HasSuffix(items[0].Period, "Actualidad") {
		t.Errorf("open period must end with the current label, got %q", items[0].Period)
	}

	if strings.Contains(items[1].Period, "Actualidad") {
		t.Errorf("closed period must not use the current label, got %q", items[1].Period)
	}

	if got := strings.Join(items[0].Highlights, "|"); got != "Diseño de APIs|Integración de mensajería" {
		t.Errorf("unexpected responsibilities %q", got)
	}
}

func TestBuildHomeResponseSocialOrder(t *testing.T) {
	translator := makeTranslator(t, i18n.LocaleES)

	home := BuildHomeResponse(makeProfile(), translator).Data

	socials := home.Contact.Socials
	if len(socials) != 3 {
		t.Fatalf("expected 3 socials, got %d", len(socials))
	}

	wantIDs := []string{"linkedin", "github", "phone"}
	for i, want := range wantIDs {
		if socials[i].ID != want {
			t.Errorf("social[%d]: expected %s, got %s", i, want, socials[i].ID)
		}
	}

	if socials[2].URL != "tel:+52 33 0000 0000" {
		t.Errorf("phone social must be a tel: link, got %q", socials[2].URL)
	}
}

func TestBuildHomeResponseToleratesBareProfile(t *testing.T) {
	translator := makeTranslator(t, i18n.LocaleES)

	bare := &profile.Profile{
		PersonalInfo: profile.PersonalInfo{
			FullName: "Solo Nombre",
			Headline: "Dev",
			Summary:  "Resumen.",
			Location: profile.Location{City: "CDMX", Country: "México"},
			Contact:  profile.Contact{Email: "solo@example.com"},
		},
	}

	home := BuildHomeResponse(bare, translator).Data

	if len(home.Hero.Actions) != 2 {
		t.Fatalf("expected 2 hero actions even with no social links, got %d", len(home.Hero.Actions))
	}

	if len(home.Contact.Socials) != 0 {
		t.Errorf("expected no socials, got %d", len(home.Contact.Socials))
	}

	if len(home.Projects.Items) != 0 {
		t.Errorf("expected no projects, got %d", len(home.Projects.Items))
	}

	if home.About.ProfileImageURL != nil {
		t.Error("absent profile image must stay nil")
	}
}

func TestBuildHomeResponseLocaleFollowsTranslator(t *testing.T) {
	translator := makeTranslator(t, i18n.LocaleEN)

	home := BuildHomeResponse(makeProfile(), translator).Data

	if home.Locale != "en" {
		t.Fatalf("expected locale en, got %q", home.Locale)
	}

	if !strings.HasSuffix(home.Experience.Items[1].Period, "Jan 2023") {
		t.Errorf("closed period must use English month names, got %q", home.Experience.Items[1].Period)
	}
}
