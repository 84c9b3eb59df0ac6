package seeds

import (
	"time"

	"github.com/AngeelRdz/resume-angeel-dev/database"
)

func str(value string) *string {
	return &value
}

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic("seeds: invalid date literal: " + value)
	}

	return parsed
}

func dayPtr(value string) *time.Time {
	parsed := day(value)

	return &parsed
}

func UserSeed() database.UserAttrs {
	return database.UserAttrs{
		FirstName:      "José Ángel",
		LastName:       "Rodríguez Martínez",
		FullName:       "José Ángel Rodríguez Martínez",
		Headline:       "Frontend Developer | Ingeniero en Sistemas Computacionales | 33 años",
		Summary:        "Ingeniero en Sistemas Computacionales con 9 años de experiencia como Frontend Developer y soporte de sistemas. Especializado en React.js, Angular y arquitecturas modernas como Micro-Frontends, Clean Architecture y Atomic Design. Perfil creativo, adaptable y orientado a resultados, con pasión por el desarrollo web y la programación.",
		LocationCity:   "Ciudad de México",
		LocationRegion: str("Alcaldía Gustavo A. Madero"),
		Country:        "México",
		Email:          "rodriguez_1409@hotmail.com",
		Phone:          str("5510484629"),
		GithubURL:      str("https://github.com/AngeelRdz"),
		LinkedinURL:    str("https://www.linkedin.com/in/jose-angel-rodz-755923141/"),
	}
}

func TechnologiesSeed() []database.TechnologyAttrs {
	return []database.TechnologyAttrs{
		{Name: "React.js", Category: "FRONTEND", IconName: str("react")},
		{Name: "Angular", Category: "FRONTEND", IconName: str("angular")},
		{Name: "AngularJS", Category: "FRONTEND", IconName: str("angular")},
		{Name: "Next.js", Category: "FRONTEND", IconName: str("nextjs")},
		{Name: "TypeScript", Category: "FRONTEND", IconName: str("typescript")},
		{Name: "JavaScript", Category: "FRONTEND", IconName: str("javascript")},
		{Name: "Redux", Category: "TOOLING", IconName: str("redux")},
		{Name: "PrimeNG", Category: "FRONTEND", IconName: str("angular")},
		{Name: "Sass", Category: "FRONTEND", IconName: str("sass")},
		{Name: "CSS-in-JS", Category: "FRONTEND", IconName: str("cssinjs")},
		{Name: "Webpack", Category: "TOOLING", IconName: str("webpack")},
		{Name: "Node.js", Category: "BACKEND", IconName: str("nodejs")},
		{Name: "Express", Category: "BACKEND", IconName: str("express")},
		{Name: "PHP", Category: "BACKEND", IconName: str("php")},
		{Name: ".NET", Category: "BACKEND", IconName: str("dotnet")},
		{Name: "Java", Category: "BACKEND", IconName: str("java")},
		{Name: "MySQL", Category: "DATABASE", IconName: str("mysql")},
		{Name: "MongoDB", Category: "DATABASE", IconName: str("mongodb")},
		{Name: "SQL Server", Category: "DATABASE", IconName: str("sqlserver")},
		{Name: "Kotlin", Category: "MOBILE", IconName: str("kotlin")},
		{Name: "Swift", Category: "MOBILE", IconName: str("swift")},
		{Name: "React Native", Category: "MOBILE", IconName: str("reactnative")},
		{Name: "Foundation", Category: "FRONTEND", IconName: str("foundation")},
		{Name: "Materialize", Category: "FRONTEND", IconName: str("materialize")},
		{Name: "Bootstrap", Category: "FRONTEND", IconName: str("bootstrap")},
		{Name: "MeteorJS", Category: "BACKEND", IconName: str("meteor")},
		{Name: "Figma", Category: "DESIGN", IconName: str("figma")},
		{Name: "Storybook", Category: "TOOLING", IconName: str("storybook")},
		{Name: "GitHub", Category: "TOOLING", IconName: str("github")},
		{Name: "Bitbucket", Category: "TOOLING", IconName: str("bitbucket")},
		{Name: "Jest", Category: "TOOLING", IconName: str("jest")},
		{Name: "GCP", Category: "TOOLING", IconName: str("gcp")},
		{Name: "Jenkins", Category: "TOOLING", IconName: str("jenkins")},
		{Name: "Git", Category: "TOOLING", IconName: str("git")},
		{Name: "Docker", Category: "TOOLING", IconName: str("docker")},
		{Name: "CI/CD", Category: "TOOLING", IconName: str("cicd")},
	}
}

func SkillsSeed() []database.SkillAttrs {
	return []database.SkillAttrs{
		{Name: "Clean Architecture", Category: "OTHER", Level: str("EXPERT"), Highlight: true},
		{Name: "Atomic Design", Category: "DESIGN", Level: str("EXPERT"), Highlight: true},
		{Name: "Micro-Frontends", Category: "FRONTEND", Level: str("EXPERT"), Highlight: true},
		{Name: "SOLID", Category: "OTHER", Level: str("EXPERT"), Highlight: true},
		{Name: "Responsive Design", Category: "DESIGN", Level: str("EXPERT"), Highlight: false},
		{Name: "UX/UI Collaboration", Category: "DESIGN", Level: str("ADVANCED"), Highlight: false},
		{Name: "Mentoría técnica", Category: "MANAGEMENT", Level: str("ADVANCED"), Highlight: false},
	}
}

// UserTechnologiesSeed names the technologies pinned to the profile's
// top-level stack, independent of the per-experience links.
func UserTechnologiesSeed() []string {
	return []string{
		"React.js", "Next.js", "Angular", "AngularJS", "TypeScript",
		"JavaScript", "Redux", "PrimeNG", "Sass", "CSS-in-JS", "Webpack",
		"Node.js", "Express", "PHP", ".NET", "Java", "MySQL", "MongoDB",
		"SQL Server", "Kotlin", "Swift", "React Native", "Figma", "Storybook",
		"GitHub", "Bitbucket", "Jest", "GCP", "Jenkins", "Git", "Docker",
		"CI/CD",
	}
}

func ExperiencesSeed() []database.ExperienceAttrs {
	return []database.ExperienceAttrs{
		{
			CompanyName:     "Envia Ya",
			CompanyWebsite:  str("https://enviaya.com.mx/es"),
			CompanyLocation: str("México"),
			RoleTitle:       "Frontend Developer",
			Description:     str("Desarrollo de interfaces Frontend utilizando React.js, Next.js, Storybook y principios de Atomic Design, garantizando componentes escalables, reutilizables y mantenibles."),
			StartDate:       day("2025-05-01"),
			IsCurrent:       true,
			Responsibilities: []string{
				"Desarrollo de interfaces Frontend utilizando React.js, Next.js, Storybook y principios de Atomic Design, garantizando componentes escalables, reutilizables y mantenibles.",
				"Implementación, optimización y mantenimiento de la plataforma aplicando Clean Architecture y principios SOLID, asegurando código modular, claro y de alta calidad.",
				"Integración y consumo de servicios RESTful alojados en AWS y Google Cloud Platform, manejando autenticación, validación de datos, optimización de rendimiento y manejo de errores.",
				"Creación y documentación de componentes UI en Storybook, fortaleciendo el Design System con elementos consistentes, accesibles y listos para producción.",
				"Colaboración en procesos de despliegue mediante Git, Jenkins, Docker y pipelines de CI/CD, agilizando lanzamientos y mejorando la estabilidad.",
				"Desarrollo y validación de pruebas automatizadas con Jest, aumentando la confiabilidad y reduciendo regresiones en módulos críticos.",
				"Apoyo en tareas backend utilizando Node.js, Express y MongoDB para debugging, validación de endpoints e integración entre servicios.",
			},
			Projects: []database.ExperienceProjectAttrs{
				{
					Name:        "@angel-storybook/design-system",
					Description: str("Paquete NPM con componentes del Design System documentados en Storybook."),
					URL:         str("https://www.npmjs.com/package/@angel-storybook/design-system"),
				},
				{
					Name:        "Platform Envia Ya (Staging)",
					Description: str("Plataforma de gestión de envíos en ambiente de staging."),
					URL:         str("https://platform.stg.enviaya.com.mx"),
				},
				{
					Name:        "Envia Ya",
					Description: str("Plataforma principal de envíos de Envia Ya."),
					URL:         str("https://enviaya.com.mx/es"),
				},
			},
			Technologies: []string{
				"React.js", "Next.js", "Storybook", "TypeScript", "Node.js",
				"Express", "MongoDB", "Jest", "GCP", "Jenkins", "Git",
				"Docker", "CI/CD",
			},
		},
		{
			CompanyName:     "Smart Payment Services",
			CompanyWebsite:  str("https://shell.dev.stg.smartpayment.com.mx/admin-login/sign-in"),
			CompanyLocation: str("México"),
			RoleTitle:       "Frontend Developer",
			Description:     str("Desarrollo Frontend con Next.js, React.js, AngularJS, JavaScript, Redux y PrimeNG, contribuyendo a aplicaciones escalables y de alto rendimiento."),
			StartDate:       day("2024-04-01"),
			EndDate:         dayPtr("2025-04-01"),
			Responsibilities: []string{
				"Desarrollo Frontend con Next.js, React.js, AngularJS, JavaScript, Redux y PrimeNG, contribuyendo a aplicaciones escalables y de alto rendimiento.",
				"Implementación y mantenimiento de micro-frontends para distintos módulos del sistema, favoreciendo la modularidad y los despliegues independientes.",
				"Integración de RESTful APIs en múltiples plataformas, asegurando comunicación segura, estable y eficiente entre servicios.",
				"Desarrollo de una plataforma de pagos mediante liga directa para clientes, incluyendo diseño de interfaz, manejo de autenticación y orquestación de servicios.",
				"Uso de Node.js, Express y MongoDB para soporte en integraciones backend y verificación de consistencia en los endpoints consumidos por el frontend.",
				"Ejecución de pruebas unitarias y de integración con Jest, aumentando la cobertura y estabilidad en módulos relacionados con pagos.",
				"Uso de servicios en la nube con GCP y configuración de pipelines de CI/CD (Git, Jenkins, Docker) para automatizar builds y optimizar los tiempos de despliegue.",
			},
			Projects: []database.ExperienceProjectAttrs{
				{
					Name:        "Portal de pagos por liga directa",
					Description: str("Panel administrativo para generar y monitorear ligas de pago personalizadas."),
					URL:         str("https://shell.dev.stg.smartpayment.com.mx/admin-login/sign-in"),
				},
			},
			Technologies: []string{
				"React.js", "Next.js", "AngularJS", "JavaScript", "Redux",
				"PrimeNG", "TypeScript", "Node.js", "Express", "MongoDB",
				"Jest", "GCP", "Jenkins", "Git", "Docker", "CI/CD",
			},
		},
		{
			CompanyName:     "Amco",
			CompanyWebsite:  str("https://www.claromusica.com"),
			CompanyLocation: str("México"),
			RoleTitle:       "Frontend Developer",
			Description:     str("Desarrollo y mejora de plataformas Claro Música y Claro Video."),
			StartDate:       day("2020-03-01"),
			EndDate:         dayPtr("2024-04-01"),
			Responsibilities: []string{
				"Desarrollo y mejora de plataformas Claro Música y Claro Video.",
				"Integración de servicios web y optimización de funcionalidades.",
				"Desarrollo en React.js, Redux, SASS y JavaScript.",
				"Creación de aplicaciones para Smart TV (Claro Video).",
			},
			Projects: []database.ExperienceProjectAttrs{
				{
					Name:        "Claro Música",
					Description: str("Plataforma de streaming musical para LATAM."),
					URL:         str("https://www.claromusica.com"),
				},
				{
					Name:        "Aplicación Claro Video Smart TV",
					Description: str("Aplicación para Smart TV con distribución regional y soporte multidispositivo."),
				},
			},
			Technologies: []string{"React.js", "Redux", "Sass", "JavaScript", "Webpack"},
		},
		{
			CompanyName:     "MAYAHII",
			CompanyLocation: str("México"),
			RoleTitle:       "Frontend Developer",
			Description:     str("Desarrollo en React.js, Redux, Webpack y CSS-in-JS."),
			StartDate:       day("2018-10-01"),
			EndDate:         dayPtr("2020-03-01"),
			Responsibilities: []string{
				"Desarrollo en React.js, Redux, Webpack y CSS-in-JS.",
				"Maquetación de mockups y análisis de integración de servicios.",
				"Optimización de la experiencia de usuario en productos digitales.",
			},
			Technologies: []string{"React.js", "Redux", "Webpack", "CSS-in-JS", "JavaScript"},
		},
		{
			CompanyName:     "Capital Online",
			CompanyLocation: str("México"),
			RoleTitle:       "Fullstack Developer",
			Description:     str("Implementación de sistemas de gestión y recopilación de datos."),
			StartDate:       day("2017-06-01"),
			EndDate:         dayPtr("2018-08-01"),
			Responsibilities: []string{
				"Implementación de sistemas de gestión y recopilación de datos.",
				"Desarrollo de landing pages y CMS (frontend y backend).",
				"Desarrollo de aplicaciones móviles publicadas en Play Store.",
				"Uso de Angular, MeteorJS, Foundation, Materialize, Bootstrap y SASS.",
			},
			Projects: []database.ExperienceProjectAttrs{
				{
					Name:        "Implementación en desarrollo web",
					Description: str("Implementación en desarrollo web utilizando frameworks como Angular y Meteor JS para el frontend. Además de usar Foundation, Materialize y Bootstrap. Así como el manejo de SASS y JavaScript."),
				},
				{
					Name:        "Aplicaciones móviles Xerox y Sura",
					Description: str("Aplicaciones móviles en la Play Store que en ese momento se publicaron como Xerox, Sura."),
				},
			},
			Technologies: []string{
				"Angular", "MeteorJS", "Foundation", "Materialize", "Bootstrap",
				"Sass", "JavaScript", "React Native",
			},
		},
		{
			CompanyName:     "Mandarina Digital",
			CompanyLocation: str("México"),
			RoleTitle:       "Desarrollador de Software",
			Description:     str("Desarrollo de páginas web (Landing pages) - Frontend y Backend."),
			StartDate:       day("2015-08-01"),
			EndDate:         dayPtr("2017-03-01"),
			Responsibilities: []string{
				"Desarrollo de páginas web (Landing pages) - Frontend y Backend.",
				"Desarrollo de aplicaciones móviles.",
				"Diseño de interfaces de usuario gráficas (UX).",
			},
			Projects: []database.ExperienceProjectAttrs{
				{
					Name:        "Migración de desarrollo en .NET a desarrollo Web",
					Description: str("Migración de desarrollo en .NET a desarrollo Web en 6 meses."),
				},
				{
					Name:        "App Misas en Vivo",
					Description: str("Aplicaciones móviles en la App Store."),
					URL:         str("https://itunes.apple.com/mx/app/misas-en-vivo/id1076018377?mt=8"),
				},
			},
			Technologies: []string{"PHP", ".NET", "JavaScript", "Bootstrap", "Swift", "Kotlin"},
		},
		{
			CompanyName:     "Solucionic",
			CompanyLocation: str("México"),
			RoleTitle:       "Programador - Tester - Mesa de servicio",
			Description:     str("Desarrollo y mantenimiento a los sistemas Contables y de Nómina."),
			StartDate:       day("2013-12-01"),
			EndDate:         dayPtr("2015-04-01"),
			Responsibilities: []string{
				"Desarrollo y mantenimiento a los sistemas Contables y de Nómina.",
				"Implementación de facturación electrónica (CFDI).",
				"Responsable de la gestión de sistemas y Mesa de Servicio, liderazgo de un equipo de dos personas.",
			},
			Technologies: []string{".NET", "SQL Server", "Java"},
		},
	}
}
