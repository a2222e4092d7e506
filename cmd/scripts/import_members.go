package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/oscahub/osca-backend/internal/models"
	"github.com/oscahub/osca-backend/pkg/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Imports a member roster from a CSV export into MongoDB. Expected columns:
// memberNo, firstName, middleName, lastName, email, phone, birthDate
// (2006-01-02), address, initial password.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is required")
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "osca"
	}

	if len(os.Args) < 2 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := os.Args[1]

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)

	if err := importMembers(db, csvFilePath); err != nil {
		log.Fatalf("Failed to import members: %v", err)
	}

	log.Println("Members imported successfully")
}

func importMembers(db *mongo.Database, csvFilePath string) error {
	file, err := os.Open(csvFilePath)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse CSV file: %v", err)
	}
	if len(records) < 2 {
		return fmt.Errorf("CSV file has no data rows")
	}

	collection := db.Collection("members")
	imported := 0
	for i, row := range records[1:] { // skip header
		if len(row) < 9 {
			log.Printf("Skipping row %d: expected 9 columns, got %d", i+2, len(row))
			continue
		}

		birthDate, err := time.Parse("2006-01-02", row[6])
		if err != nil {
			log.Printf("Skipping row %d: invalid birth date %q", i+2, row[6])
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(row[8]), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password on row %d: %v", i+2, err)
		}

		member := models.Member{
			MemberNo:       row[0],
			FirstName:      row[1],
			MiddleName:     row[2],
			LastName:       row[3],
			Email:          row[4],
			Phone:          row[5],
			BirthDate:      birthDate,
			Address:        row[7],
			Password:       string(hash),
			Role:           "member",
			Status:         "active",
			MembershipDate: time.Now(),
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}

		if _, err := collection.InsertOne(context.Background(), member); err != nil {
			log.Printf("Failed to insert row %d (%s): %v", i+2, member.MemberNo, err)
			continue
		}
		imported++
	}

	log.Printf("Imported %d of %d rows", imported, len(records)-1)
	return nil
}
