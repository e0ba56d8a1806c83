package main

import (
	"log"
	"os"

	"github.com/trezcool/masomo-desk/core"
	"github.com/trezcool/masomo-desk/core/school"
	"github.com/trezcool/masomo-desk/core/user"
	"github.com/trezcool/masomo-desk/services/email"
	"github.com/trezcool/masomo-desk/services/logger"
	"github.com/trezcool/masomo-desk/storage/database"
	"github.com/trezcool/masomo-desk/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	wd, err := os.Getwd()
	errAndDie(std, err)
	conf, err := core.NewConfig(wd)
	errAndDie(std, err)

	logger := logsvc.NewRollbarLogger(std, conf)
	logger.Enable(!conf.Debug)
	defer logger.Close()

	// set up DB
	db, err := database.Open(conf)
	errAndDie(std, err)
	defer db.Close()

	// start CLI
	cli := commandLine{
		db:        db,
		usrSvc:    user.NewService(sqlxrepos.NewUserRepository(db), logger),
		schoolSvc: school.NewService(sqlxrepos.NewSchoolRepository(db)),
		mailer:    emailsvc.NewService(conf, logger),
		out:       os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", err)
		}
		_ = db.Close()
		logger.Close()
		os.Exit(1)
	}
}

func errAndDie(std *log.Logger, err error) {
	if err != nil {
		std.Fatal(err)
	}
}
