package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main creates a dashboard user account
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("REPORTES DE VENTAS - User Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	email, password, name, role := getUserCredentials()

	// Check if the user already exists
	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("❌ User with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	authService := services.GetAuthService()
	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	user := models.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
		Status:       "active",
	}

	if err := config.DB.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ User Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", user.ID)
	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("Name:  %s\n", user.Name)
	fmt.Printf("Role:  %s\n", user.Role)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/auth/login with email and password")
	fmt.Println("3. The session cookie carries the token for the dashboard")
	fmt.Println()
}

// getUserCredentials prompts for the account details
func getUserCredentials() (email, password, name, role string) {
	fmt.Println("Enter User Details:")
	fmt.Println()

	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	for {
		fmt.Print("Role (admin/viewer) [viewer]: ")
		fmt.Scanln(&role)
		if role == "" {
			role = "viewer"
		}
		if role == "admin" || role == "viewer" {
			break
		}
		fmt.Println("❌ Role must be admin or viewer")
		role = ""
	}

	authService := services.GetAuthService()
	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)
		if !authService.ValidatePassword(password) {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return email, password, name, role
}
