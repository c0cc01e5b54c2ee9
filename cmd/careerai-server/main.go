package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"

	"github.com/careerai/go-careerai/internal/config"
	"github.com/careerai/go-careerai/mockapi"
	"github.com/careerai/go-careerai/users"
	fakeuserrepo "github.com/careerai/go-careerai/users/repofake"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	repo := fakeuserrepo.NewFakeUserRepo()
	if err := seedDemoUser(repo); err != nil {
		return fmt.Errorf("seeding demo user: %w", err)
	}

	server := &http.Server{Addr: c.GetPort(), Handler: mockapi.New(c, repo)}
	go listenAndServe(server)
	waitForStopSignal()
	returnError = shutdown(server)
	return returnError
}

// seedDemoUser creates a known account so the CLI works out of the box:
// demo@careerai.dev / demopass1
func seedDemoUser(repo users.UserRepo) error {
	hash, err := users.HashPassword("demopass1")
	if err != nil {
		return err
	}
	return repo.Upsert(&users.User{
		Email:        "demo@careerai.dev",
		Username:     "demo",
		PasswordHash: hash,
		FirstName:    "Demo",
		LastName:     "User",
		DateJoined:   time.Now(),
	})
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
