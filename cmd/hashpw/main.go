// Command hashpw prints the bcrypt hash of each password given as an
// argument. Useful for seeding users directly in the database.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <password> [password...]\n", os.Args[0])
		os.Exit(2)
	}

	for _, password := range os.Args[1:] {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error hashing password: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(hash))
	}
}
