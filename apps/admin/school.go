package main

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/trezcool/masomo-desk/core"
	"github.com/trezcool/masomo-desk/core/school"
	"github.com/trezcool/masomo-desk/storage/database"
)

func (cli *commandLine) initDB() error {
	ctx := context.Background()
	if err := database.Initialize(ctx, cli.db); err != nil {
		return err
	}
	tables, err := database.Tables(ctx, cli.db)
	if err != nil {
		return err
	}
	for _, t := range tables {
		_, _ = fmt.Fprintln(cli.out, t)
	}
	return nil
}

// notify stores a notification for the user and, if sendEmail, emails it to them.
func (cli *commandLine) notify(userID int, message, date string, sendEmail bool) error {
	ctx := context.Background()
	n, err := cli.schoolSvc.Notify(ctx, school.NewNotification{UserID: userID, Message: message, Date: date})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cli.out, "notification %d added\n", n.ID)
	if !sendEmail {
		return nil
	}

	usr, err := cli.usrSvc.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	cli.mailer.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject: "New notification",
		BodyStr: fmt.Sprintf("Date: %s\n\n%s", n.Date, n.Message),
	})
	return nil
}

func (cli *commandLine) addEvent(title, description, date string) error {
	evt, err := cli.schoolSvc.AddEvent(context.Background(), school.NewEvent{Title: title, Description: description, Date: date})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cli.out, "event %d added\n", evt.ID)
	return nil
}
