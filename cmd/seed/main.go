// cmd/seed/main.go
// Seeds the database with demo users for local development: profiles,
// locations around central London, and movie taste data.

package main

import (
    "log"
    "math/rand"

    "github.com/joho/godotenv"
    "golang.org/x/crypto/bcrypt"

    "github.com/zekkencito/CineMatch-sub000/internal/common/database"
    "github.com/zekkencito/CineMatch-sub000/internal/config"
)

type seedUser struct {
    Email string
    Name  string
    Age   int
    Bio   string
    Lat   float64
    Lng   float64
    City  string

    GenreIDs    []int64
    DirectorIDs map[int64]string
    Movies      map[int64]string
}

var seedUsers = []seedUser{
    {
        Email: "ada@example.com", Name: "Ada", Age: 29,
        Bio: "Sci-fi marathons and midnight screenings.",
        Lat: 51.5074, Lng: -0.1278, City: "London",
        GenreIDs:    []int64{878, 53, 18},
        DirectorIDs: map[int64]string{1408530: "Denis Villeneuve", 525: "Christopher Nolan"},
        Movies:      map[int64]string{693134: "Dune: Part Two", 27205: "Inception", 335984: "Blade Runner 2049"},
    },
    {
        Email: "ben@example.com", Name: "Ben", Age: 33,
        Bio: "Will argue about the best Coen brothers film.",
        Lat: 51.5155, Lng: -0.1410, City: "London",
        GenreIDs:    []int64{878, 35, 80},
        DirectorIDs: map[int64]string{525: "Christopher Nolan", 1223: "Joel Coen"},
        Movies:      map[int64]string{27205: "Inception", 115: "The Big Lebowski"},
    },
    {
        Email: "chloe@example.com", Name: "Chloe", Age: 26,
        Bio: "Horror aficionado. Yes, even the bad ones.",
        Lat: 51.4816, Lng: -0.1910, City: "London",
        GenreIDs:    []int64{27, 53},
        DirectorIDs: map[int64]string{11614: "Ari Aster"},
        Movies:      map[int64]string{493922: "Hereditary", 530385: "Midsommar"},
    },
    {
        Email: "dev@example.com", Name: "Dev", Age: 31,
        Bio: "Documentaries and festival circuit regular.",
        Lat: 51.5390, Lng: -0.1426, City: "London",
        GenreIDs:    []int64{99, 18, 878},
        DirectorIDs: map[int64]string{1408530: "Denis Villeneuve"},
        Movies:      map[int64]string{693134: "Dune: Part Two", 335984: "Blade Runner 2049"},
    },
    {
        Email: "emi@example.com", Name: "Emi", Age: 28,
        Bio: "Animation is cinema.",
        Lat: 51.4613, Lng: -0.1156, City: "London",
        GenreIDs:    []int64{16, 10751, 878},
        DirectorIDs: map[int64]string{608: "Hayao Miyazaki"},
        Movies:      map[int64]string{129: "Spirited Away", 4935: "Howl's Moving Castle"},
    },
}

func main() {
    log.SetFlags(log.Ldate | log.Ltime)

    if err := godotenv.Load(); err != nil {
        log.Printf("⚠️  No .env file found (%v), using environment variables", err)
    }

    cfg := config.Load()
    if err := cfg.Validate(); err != nil {
        log.Fatal("❌ Invalid configuration:", err)
    }

    db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
    if err != nil {
        log.Fatal("❌ Failed to connect to PostgreSQL:", err)
    }
    defer db.Close()

    log.Printf("🌱 Seeding %d demo users...", len(seedUsers))

    hash, err := bcrypt.GenerateFromPassword([]byte("password123"), cfg.BCryptCost)
    if err != nil {
        log.Fatal("❌ Failed to hash password:", err)
    }

    for _, u := range seedUsers {
        var userID int64
        err := db.QueryRow(`
            INSERT INTO users (email, password_hash, name, age, bio)
            VALUES ($1, $2, $3, $4, $5)
            ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
            RETURNING id
        `, u.Email, string(hash), u.Name, u.Age, u.Bio).Scan(&userID)
        if err != nil {
            log.Fatalf("❌ Failed to seed user %s: %v", u.Email, err)
        }

        _, err = db.Exec(`
            INSERT INTO locations (user_id, latitude, longitude, city, country, radius_km)
            VALUES ($1, $2, $3, $4, 'UK', $5)
            ON CONFLICT (user_id) DO UPDATE SET
                latitude = EXCLUDED.latitude,
                longitude = EXCLUDED.longitude,
                radius_km = EXCLUDED.radius_km
        `, userID, u.Lat, u.Lng, u.City, cfg.DefaultSearchRadiusKm)
        if err != nil {
            log.Fatalf("❌ Failed to seed location for %s: %v", u.Email, err)
        }

        for _, genreID := range u.GenreIDs {
            db.MustExec(`
                INSERT INTO favorite_genres (user_id, genre_id)
                VALUES ($1, $2) ON CONFLICT DO NOTHING
            `, userID, genreID)
        }
        for directorID, name := range u.DirectorIDs {
            db.MustExec(`
                INSERT INTO favorite_directors (user_id, director_id, name)
                VALUES ($1, $2, $3) ON CONFLICT DO NOTHING
            `, userID, directorID, name)
        }
        for movieID, title := range u.Movies {
            rating := rand.Intn(3) + 3 // 3-5 stars
            db.MustExec(`
                INSERT INTO watched_movies (user_id, movie_id, title, rating)
                VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING
            `, userID, movieID, title, rating)
        }

        log.Printf("   ✅ %s (id=%d)", u.Email, userID)
    }

    log.Println("🌱 Seed complete. All demo users use password 'password123'")
}
