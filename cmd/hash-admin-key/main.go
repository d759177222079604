package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/hash-admin-key/main.go <api-key>")
		fmt.Println("Example: go run cmd/hash-admin-key/main.go \"admin-api-key-12345\"")
		os.Exit(1)
	}

	apiKey := os.Args[1]

	// Hash the API key
	apiKeyHash, err := bcrypt.GenerateFromPassword([]byte(apiKey), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash API key: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Admin API key hashed successfully!\n\n")
	fmt.Printf("Add this to your environment:\n")
	fmt.Printf("ADMIN_API_KEY_HASH=%s\n", string(apiKeyHash))
	fmt.Printf("\n⚠️  IMPORTANT: Save the plain API key securely! You won't be able to recover it from the hash.\n")
	fmt.Printf("\nUse the plain key in the Authorization header:\n")
	fmt.Printf("Authorization: Bearer %s\n", apiKey)
}
