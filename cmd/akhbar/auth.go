package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/pkg/errors"

	"github.com/akhbar-news/akhbar/config"
)

func init() {
	flags := flag.NewFlagSet("login", flag.ExitOnError)

	commands = append(commands, Command{
		Name:  "login",
		Desc:  "log in with an email and password",
		Flags: flags,
		Run:   runLogin,
	})

	registerFlags := flag.NewFlagSet("register", flag.ExitOnError)

	commands = append(commands, Command{
		Name:  "register",
		Desc:  "create an account and log in",
		Flags: registerFlags,
		Run:   runRegister,
	})

	commands = append(commands, Command{
		Name:  "logout",
		Desc:  "drop the stored session",
		Flags: flag.NewFlagSet("logout", flag.ExitOnError),
		Run:   runLogout,
	})

	meFlags := flag.NewFlagSet("me", flag.ExitOnError)
	meVerify := meFlags.Bool("verify", false, "confirm the session against the server")

	commands = append(commands, Command{
		Name:  "me",
		Desc:  "show the current session",
		Flags: meFlags,
		Run: func(cfg config.Config, args []string) error {
			return runMe(cfg, *meVerify)
		},
	})
}

func runLogin(cfg config.Config, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: login EMAIL PASSWORD")
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.sessions.Login(context.Background(), args[0], args[1]); err != nil {
		return err
	}

	fmt.Printf("logged in as %s\n", a.sessions.User().Name)

	return nil
}

func runRegister(cfg config.Config, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: register EMAIL PASSWORD NAME")
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.sessions.Register(context.Background(), args[0], args[1], args[2]); err != nil {
		return err
	}

	fmt.Printf("registered %s\n", a.sessions.User().Email)

	return nil
}

func runLogout(cfg config.Config, args []string) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	a.sessions.Logout()
	fmt.Println("logged out")

	return nil
}

func runMe(cfg config.Config, verify bool) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	if !a.sessions.IsAuthenticated() {
		fmt.Println("not logged in")
		return nil
	}

	if verify {
		if err := a.sessions.Verify(context.Background()); err != nil {
			return err
		}
	}

	user := a.sessions.User()
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	fmt.Printf("favorites: %d\n", len(user.Favorites))

	return nil
}
