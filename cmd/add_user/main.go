package main

import (
	"flag"
	"fmt"
	"strings"

	"factory-kpi/app/config"
	"factory-kpi/app/database"
	"factory-kpi/app/models"
)

func main() {
	email := flag.String("email", "", "user email (required)")
	password := flag.String("password", "", "initial password (required)")
	first := flag.String("first", "", "first name")
	last := flag.String("last", "", "last name")
	badge := flag.String("badge", "", "badge number")
	roles := flag.String("roles", "worker", "comma-separated roles: worker,approver,manager,admin")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email ... -password ... [-first ...] [-last ...] [-badge ...] [-roles worker,approver]")
		return
	}

	config.Load()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	user := &models.User{
		Email:     *email,
		Password:  *password,
		FirstName: *first,
		LastName:  *last,
		Badge:     *badge,
	}

	roleNames := strings.Split(*roles, ",")
	for i := range roleNames {
		roleNames[i] = strings.TrimSpace(roleNames[i])
	}

	if err := database.CreateUser(db, user, roleNames); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s) roles=%s\n", user.FirstName, user.LastName, user.Email, *roles)
}
