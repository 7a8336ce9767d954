package main

import (
    "database/sql"
    "fmt"
    "log"
    "os"

    "github.com/joho/godotenv"
    _ "github.com/lib/pq"
)

func main() {
    // Load .env
    err := godotenv.Load()
    if err != nil {
        log.Fatal("Error loading .env file:", err)
    }

    fmt.Println("✅ .env loaded successfully!")

    // Get DATABASE_URL
    dbURL := os.Getenv("DATABASE_URL")
    if dbURL == "" {
        log.Fatal("DATABASE_URL not found")
    }

    fmt.Println("✅ DATABASE_URL found!")
    fmt.Println("Connecting to database...")

    // Connect
    db, err := sql.Open("postgres", dbURL)
    if err != nil {
        log.Fatal("Failed to connect:", err)
    }
    defer db.Close()

    // Test connection
    if err := db.Ping(); err != nil {
        log.Fatal("Can't reach database:", err)
    }

    fmt.Println("✅ Connected to database via .env!")

    // Count rows in the core tables
    for _, table := range []string{"users", "locations", "favorite_genres", "interactions", "matches"} {
        var count int
        if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
            fmt.Printf("⚠️  %s: %v\n", table, err)
            continue
        }
        fmt.Printf("✅ %s: %d rows\n", table, count)
    }
}
