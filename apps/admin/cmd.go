package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/trezcool/masomo-desk/core"
	"github.com/trezcool/masomo-desk/core/school"
	"github.com/trezcool/masomo-desk/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable
	nowFunc          = time.Now          // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db        *sqlx.DB
	usrSvc    *user.Service
	schoolSvc *school.Service
	mailer    core.EmailService
	out       io.Writer
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  init - create the missing tables and list them")
	_, _ = fmt.Fprintln(cli.out, "  adduser -username USERNAME -name NAME -email EMAIL [-role teacher|student] - add a user")
	_, _ = fmt.Fprintln(cli.out, "  notify -user ID -message MESSAGE [-date YYYY-MM-DD] [-email] - notify a user")
	_, _ = fmt.Fprintln(cli.out, "  addevent -title TITLE -description DESCRIPTION -date YYYY-MM-DD - add an event")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ContinueOnError)
	addUserCmd.SetOutput(cli.out)
	addUserUname := addUserCmd.String("username", "", "The user's username. The password will be prompted next.")
	addUserName := addUserCmd.String("name", "", "The user's full name.")
	addUserEmail := addUserCmd.String("email", "", "The user's email.")
	addUserRole := addUserCmd.String("role", user.DefaultRole, "teacher or student.")

	notifyCmd := flag.NewFlagSet("notify", flag.ContinueOnError)
	notifyCmd.SetOutput(cli.out)
	notifyUser := notifyCmd.String("user", "", "The ID of the user to notify.")
	notifyMessage := notifyCmd.String("message", "", "The notification message.")
	notifyDate := notifyCmd.String("date", "", "The notification date (YYYY-MM-DD). Defaults to today.")
	notifyEmail := notifyCmd.Bool("email", false, "Also email the notification to the user.")

	addEventCmd := flag.NewFlagSet("addevent", flag.ContinueOnError)
	addEventCmd.SetOutput(cli.out)
	addEventTitle := addEventCmd.String("title", "", "The event title.")
	addEventDesc := addEventCmd.String("description", "", "The event description.")
	addEventDate := addEventCmd.String("date", "", "The event date (YYYY-MM-DD).")

	switch args[1] {
	case "init":
		return cli.initDB()
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserUname == "" || *addUserName == "" || *addUserEmail == "" {
			addUserCmd.Usage()
			return errHelp
		}
		_, _ = fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		_, _ = fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserUname, *addUserName, *addUserEmail, string(pwd), *addUserRole)
	case "notify":
		if err := notifyCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *notifyUser == "" || *notifyMessage == "" {
			notifyCmd.Usage()
			return errHelp
		}
		uid, err := strconv.Atoi(*notifyUser)
		if err != nil {
			return fmt.Errorf("user must be a number (got '%s')", *notifyUser)
		}
		date := *notifyDate
		if date == "" {
			date = nowFunc().Format("2006-01-02")
		}
		return cli.notify(uid, *notifyMessage, date, *notifyEmail)
	case "addevent":
		if err := addEventCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addEventTitle == "" || *addEventDesc == "" || *addEventDate == "" {
			addEventCmd.Usage()
			return errHelp
		}
		return cli.addEvent(*addEventTitle, *addEventDesc, *addEventDate)
	default:
		cli.printUsage()
		return errHelp
	}
}
