package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/avasiljevs/linkstorage/internal/models"
	"github.com/avasiljevs/linkstorage/internal/router"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getTextWithDefault = GetTextWithDefault

func (a *App) pageHome() error {
	fmt.Println("link-storage — group your links and share them")
	fmt.Println("Commands: login, register, activate <token>. Type help for more.")
	return nil
}

// pageLogin prompts for credentials and attempts to authenticate. On
// success the user is taken to the dashboard, like in the web client.
func (a *App) pageLogin(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authStore.Login(ctx, models.LoginRequest{Email: email, Password: password}); err != nil {
		log.Printf("Login unsuccessful: %s", a.authStore.Err())
		return nil
	}

	fmt.Println("Login successful")
	return a.navigate(ctx, router.PathDashboard)
}

func (a *App) pageRegister(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	req := models.RegisterRequest{Name: name, Email: email, Password: password}
	if err := a.authStore.Register(ctx, req); err != nil {
		log.Printf("Registration unsuccessful: %s", a.authStore.Err())
		return nil
	}

	fmt.Println("Registered. Check your email for the activation link, then run: activate <token>")
	return nil
}

// pageActivate confirms an account. Activation does not log the user in;
// a separate login remains necessary.
func (a *App) pageActivate(ctx context.Context, token string) error {
	code, err := getSimpleText(a.reader, "Enter activation code", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.authStore.ActivateAccount(ctx, token, code)
	if err != nil {
		log.Printf("Activation unsuccessful: %s", a.authStore.Err())
		return nil
	}

	fmt.Printf("Account %s activated. Please log in.\n", user.Email)
	return nil
}

func (a *App) pageDashboard() error {
	user := a.authStore.CurrentUser()
	if user == nil {
		return nil
	}
	fmt.Printf("Dashboard — %s <%s>\n", user.Name, user.Email)
	if user.LastLoginAt != nil {
		fmt.Printf("Last login: %s\n", user.LastLoginAt.Format("2006-01-02 15:04"))
	}
	fmt.Println("Commands: groups, add, edit <id>, rm <id>, whoami, logout")
	return nil
}

func (a *App) pageAdmin() error {
	user := a.authStore.CurrentUser()
	if user == nil {
		return nil
	}
	fmt.Printf("Admin dashboard — logged in as %s\n", user.Email)
	return nil
}
