package main

import (
	_ "github.com/lib/pq"

	"github.com/AngeelRdz/resume-angeel-dev/database/seeder/seeds"
	"github.com/AngeelRdz/resume-angeel-dev/metal/env"
	"github.com/AngeelRdz/resume-angeel-dev/metal/kernel"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/cli"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/portal"
)

var environment *env.Environment

func init() {
	secrets, err := kernel.Ignite("./.env", portal.GetDefaultValidator())
	if err != nil {
		panic("seeder: " + err.Error())
	}

	environment = secrets
}

func main() {
	cli.ClearScreen()

	dbConnection := kernel.MakeDbConnection(environment)
	logs := kernel.MakeLogs(environment)

	defer logs.Close()
	defer dbConnection.Close()

	seeder := seeds.MakeSeeder(dbConnection, environment)

	if err := seeder.TruncateDB(); err != nil {
		panic(err)
	}

	cli.Successln("db truncated successfully ...")

	cli.Warningln("seeding the user ...")
	user, err := seeder.SeedUser(seeds.UserSeed())
	if err != nil {
		panic(err)
	}

	cli.Magentaln("seeding technologies ...")
	technologies, err := seeder.SeedTechnologies(seeds.TechnologiesSeed())
	if err != nil {
		panic(err)
	}

	cli.Blueln("seeding skills ...")
	if err = seeder.SeedSkills(user, seeds.SkillsSeed()); err != nil {
		panic(err)
	}

	cli.Cyanln("seeding experiences ...")
	if err = seeder.SeedExperiences(user, technologies, seeds.ExperiencesSeed()); err != nil {
		panic(err)
	}

	cli.Cyanln("linking the user stack ...")
	if err = seeder.SeedUserTechnologies(user, technologies, seeds.UserTechnologiesSeed()); err != nil {
		panic(err)
	}

	cli.Successln("database seeded successfully ...")
}
