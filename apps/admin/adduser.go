package main

import (
	"context"
	"fmt"

	"github.com/trezcool/masomo-desk/core/user"
)

// addUser creates a user.User
func (cli *commandLine) addUser(uname, name, email, pwd, role string) error {
	usr, err := cli.usrSvc.Create(context.Background(), user.NewUser{
		Username: uname,
		Password: pwd,
		Name:     name,
		Email:    email,
		Role:     role,
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cli.out, "user '%s' added with ID %d (%s)\n", usr.Username, usr.ID, usr.Role)
	return nil
}
