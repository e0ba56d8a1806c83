package main

import (
	"context"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-desk/core"
	"github.com/trezcool/masomo-desk/core/school"
	"github.com/trezcool/masomo-desk/core/screen"
	"github.com/trezcool/masomo-desk/core/session"
	"github.com/trezcool/masomo-desk/core/user"
	"github.com/trezcool/masomo-desk/services/logger"
	"github.com/trezcool/masomo-desk/storage/database"
	"github.com/trezcool/masomo-desk/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "DESK : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	wd, err := os.Getwd()
	if err != nil {
		std.Fatal(err)
	}
	conf, err := core.NewConfig(wd)
	if err != nil {
		std.Fatal(err)
	}

	logger := logsvc.NewRollbarLogger(std, conf)
	logger.Enable(!conf.Debug)
	defer logger.Close()

	a := app.NewWithID("com.trezcool.masomo-desk")
	w := a.NewWindow(conf.AppName)
	w.Resize(fyne.NewSize(conf.Window.Width, conf.Window.Height))
	w.SetFixedSize(true)

	ctx := context.Background()
	db, err := openStore(ctx, conf)
	if err != nil {
		logger.Error("opening store", err)
		showFatal(w)
		return
	}
	defer db.Close()

	usrSvc := user.NewService(sqlxrepos.NewUserRepository(db), logger)
	ui := newWindowRenderer(w)
	ctrl := screen.NewController(
		session.New(usrSvc, logger),
		usrSvc,
		school.NewService(sqlxrepos.NewSchoolRepository(db)),
		ui,
		logger,
	)
	ui.ctrl = ctrl

	ctrl.Start()
	w.ShowAndRun()
}

// openStore opens and initializes the store. Both failures are fatal at startup.
func openStore(ctx context.Context, conf *core.Config) (*sqlx.DB, error) {
	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}
	if err = database.Initialize(ctx, db); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(core.ErrStoreUnavailable, "%v", err)
	}
	return db, nil
}

// showFatal reports the store failure and quits once it is acknowledged.
func showFatal(w fyne.Window) {
	w.SetContent(container.NewCenter(widget.NewLabel("Cannot connect to the database.")))
	d := dialog.NewError(errors.New("Cannot connect to the database."), w)
	d.SetOnClosed(w.Close)
	d.Show()
	w.ShowAndRun()
}
