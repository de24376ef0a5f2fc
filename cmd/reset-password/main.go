package main

import (
	"fmt"
	"log"
	"os"

	"textile-inventory-api/internal/model"
	"textile-inventory-api/pkg/database"

	"github.com/joho/godotenv"
)

// Operator tool: force-reset a user's password without the old one.
// Usage: reset-password <email> <new-password>
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	if len(os.Args) != 3 {
		fmt.Println("Usage: reset-password <email> <new-password>")
		os.Exit(1)
	}
	email := os.Args[1]
	newPassword := os.Args[2]

	if len(newPassword) < 6 {
		log.Fatal("New password must be at least 6 characters")
	}

	db := database.ConnectDB()

	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		log.Fatalf("User not found: %s", email)
	}

	if err := user.SetPassword(newPassword); err != nil {
		log.Fatal("Failed to hash password: ", err)
	}

	if err := db.Save(&user).Error; err != nil {
		log.Fatal("Failed to update password: ", err)
	}

	fmt.Printf("✅ Password updated for %s\n", email)
}
