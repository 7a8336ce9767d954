// cmd/api/main.go
// Main entry point for the application.
// This file bootstraps all components and starts the server.

package main

import (
    "context"
    "encoding/json"
    "fmt"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/go-redis/redis/v8"
    "github.com/gorilla/mux"
    "github.com/jmoiron/sqlx"
    "github.com/joho/godotenv"
    "github.com/prometheus/client_golang/prometheus/promhttp"

    // Internal packages
    "github.com/zekkencito/CineMatch-sub000/internal/auth"
    "github.com/zekkencito/CineMatch-sub000/internal/common/database"
    "github.com/zekkencito/CineMatch-sub000/internal/config"
    "github.com/zekkencito/CineMatch-sub000/internal/matching"
    "github.com/zekkencito/CineMatch-sub000/internal/messages"
    "github.com/zekkencito/CineMatch-sub000/internal/preferences"
    "github.com/zekkencito/CineMatch-sub000/internal/profile"
)

var startTime = time.Now()

func main() {
    log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

    log.Println("========================================")
    log.Println("🎬 Starting CineMatch API")
    log.Println("========================================")

    // 1. Load environment variables
    log.Println("📁 Step 1: Loading .env file...")
    if err := godotenv.Load(); err != nil {
        log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
    } else {
        log.Println("✅ .env file loaded successfully")
    }

    // 2. Load configuration
    log.Println("\n📋 Step 2: Loading configuration...")
    cfg := config.Load()
    log.Println("✅ Configuration loaded")

    // 3. Validate configuration
    log.Println("\n✔️  Step 3: Validating configuration...")
    if err := cfg.Validate(); err != nil {
        log.Fatal("❌ Configuration validation failed:", err)
    }
    log.Println("✅ Configuration is valid")

    // 4. Connect to PostgreSQL
    log.Println("\n🗄️  Step 4: Connecting to PostgreSQL...")
    db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
    if err != nil {
        log.Fatal("❌ Failed to connect to PostgreSQL:", err)
    }
    defer db.Close()

    if err := db.Ping(); err != nil {
        log.Fatal("❌ Failed to ping PostgreSQL:", err)
    }
    log.Println("✅ Connected to PostgreSQL successfully")

    // 5. Connect to Redis (optional)
    log.Println("\n📮 Step 5: Connecting to Redis...")
    var redisClient *redis.Client

    if cfg.RedisURL != "" {
        redisClient, err = database.NewRedisClientFromURL(cfg.RedisURL)
        if err != nil {
            log.Printf("⚠️  Redis unavailable: %v, continuing without Redis", err)
            redisClient = nil
        } else {
            defer redisClient.Close()
            log.Println("✅ Connected to Redis successfully")
        }
    } else {
        log.Println("⚠️  Redis URL not configured, skipping Redis connection")
    }

    // 6. Run database migrations
    log.Println("\n🔨 Step 6: Running database migrations...")
    if err := runMigrations(db); err != nil {
        log.Printf("❌ Migration error: %v", err)
        log.Fatal("Failed to run migrations")
    }
    log.Println("✅ Database migrations completed")

    // 7. Initialize Auth system
    log.Println("\n🔐 Step 7: Initializing authentication system...")

    authRepo := auth.NewPostgresRepository(db)

    authConfig := &auth.Config{
        JWTSecret:          cfg.JWTSecret,
        AccessTokenExpiry:  cfg.AccessTokenExpiry,
        RefreshTokenExpiry: cfg.RefreshTokenExpiry,
        BCryptCost:         cfg.BCryptCost,
    }

    authService := auth.NewService(authRepo, redisClient, authConfig)
    authHandler := auth.NewHandler(authService)
    authMiddleware := auth.NewMiddleware(authService)

    log.Println("✅ Authentication system initialized")

    // 8. Initialize Profile system
    log.Println("\n👤 Step 8: Initializing Profile system...")

    profileRepo := profile.NewPostgresRepository(db)
    profileService := profile.NewService(profileRepo, cfg)
    profileHandler := profile.NewHandler(profileService)

    log.Println("✅ Profile system initialized")

    // 9. Initialize Preferences system
    log.Println("\n🎞️  Step 9: Initializing Preferences system...")

    preferencesRepo := preferences.NewPostgresRepository(db)
    preferencesService := preferences.NewService(preferencesRepo, cfg)
    preferencesHandler := preferences.NewHandler(preferencesService)

    log.Println("✅ Preferences system initialized")

    // 10. Initialize Matching system
    log.Println("\n💘 Step 10: Initializing Matching system...")

    matchingRepo := matching.NewPostgresRepository(db)
    matchingService := matching.NewService(matchingRepo, cfg)
    matchingHandler := matching.NewHandler(matchingService)

    log.Printf("   - Search radius default: %.0f km", cfg.DefaultSearchRadiusKm)
    log.Printf("   - Candidate list limit: %d", cfg.MaxCandidates)
    log.Println("✅ Matching system initialized")

    // 11. Initialize Messages system
    log.Println("\n💬 Step 11: Initializing Messages system...")

    messagesRepo := messages.NewPostgresRepository(db)
    messagesService := messages.NewService(messagesRepo, matchingService, cfg.MaxMessageLen)
    messagesHandler := messages.NewHandler(messagesService)

    log.Println("✅ Messages system initialized")

    // 12. Setup routes
    log.Println("\n🛣️  Step 12: Setting up routes...")
    router := mux.NewRouter()

    router.HandleFunc("/health", healthCheck).Methods("GET")
    router.HandleFunc("/api", apiInfo).Methods("GET")
    router.Handle("/metrics", promhttp.Handler()).Methods("GET")

    authHandler.RegisterRoutes(router, authMiddleware)
    log.Println("   ✅ Auth routes registered")

    profile.RegisterRoutes(router, profileHandler, authMiddleware)
    log.Println("   ✅ Profile routes registered")

    preferences.RegisterRoutes(router, preferencesHandler, authMiddleware)
    log.Println("   ✅ Preferences routes registered")

    matching.RegisterRoutes(router, matchingHandler, authMiddleware)
    log.Println("   ✅ Matching routes registered")

    messages.RegisterRoutes(router, messagesHandler, authMiddleware)
    log.Println("   ✅ Messages routes registered")

    router.Use(loggingMiddleware)
    router.Use(corsMiddleware)

    // 13. Create and start HTTP server
    srv := &http.Server{
        Addr:         fmt.Sprintf(":%s", cfg.Port),
        Handler:      router,
        ReadTimeout:  15 * time.Second,
        WriteTimeout: 15 * time.Second,
        IdleTimeout:  60 * time.Second,
    }

    go func() {
        log.Println("\n========================================")
        log.Printf("🎬 Server starting on http://localhost%s", srv.Addr)
        log.Printf("🌍 Environment: %s", cfg.Environment)
        log.Println("========================================")

        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatal("❌ Failed to start server:", err)
        }
    }()

    // Wait for interrupt signal
    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit

    log.Println("\n⚠️  Shutdown signal received...")

    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        log.Fatal("❌ Server forced to shutdown:", err)
    }

    log.Println("✅ Server exited gracefully")
}

// runMigrations executes database migrations
func runMigrations(db *sqlx.DB) error {
    log.Println("   - Creating/updating tables...")

    migrations := []string{
        // Users table
        `CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            email VARCHAR(255) UNIQUE NOT NULL,
            password_hash VARCHAR(255) NOT NULL,
            name VARCHAR(100) NOT NULL,
            age INTEGER,
            bio TEXT,
            photo_url TEXT,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )`,

        // Locations: one per user, radius_km bounds candidate discovery
        `CREATE TABLE IF NOT EXISTS locations (
            user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
            latitude DOUBLE PRECISION NOT NULL,
            longitude DOUBLE PRECISION NOT NULL,
            city VARCHAR(100),
            country VARCHAR(100),
            radius_km DOUBLE PRECISION NOT NULL DEFAULT 50,
            updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )`,

        // Favorite genres: external catalog genre ids
        `CREATE TABLE IF NOT EXISTS favorite_genres (
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            genre_id BIGINT NOT NULL,
            PRIMARY KEY (user_id, genre_id)
        )`,

        // Favorite directors: external catalog ids with denormalized names
        `CREATE TABLE IF NOT EXISTS favorite_directors (
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            director_id BIGINT NOT NULL,
            name VARCHAR(150) NOT NULL,
            profile_path TEXT,
            PRIMARY KEY (user_id, director_id)
        )`,

        // Watched movies: external catalog ids with denormalized titles
        `CREATE TABLE IF NOT EXISTS watched_movies (
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            movie_id BIGINT NOT NULL,
            title VARCHAR(200) NOT NULL,
            rating INTEGER,
            watched_date DATE,
            PRIMARY KEY (user_id, movie_id)
        )`,

        // Interactions: one row per directed pair, kind overwritten on re-swipe
        `CREATE TABLE IF NOT EXISTS interactions (
            id BIGSERIAL PRIMARY KEY,
            from_user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            to_user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            kind VARCHAR(10) NOT NULL CHECK (kind IN ('like', 'dislike')),
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            UNIQUE (from_user_id, to_user_id)
        )`,

        // Matches: canonical user1_id < user2_id ordering, one row per pair
        `CREATE TABLE IF NOT EXISTS matches (
            id BIGSERIAL PRIMARY KEY,
            user1_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            user2_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            matched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            UNIQUE (user1_id, user2_id),
            CHECK (user1_id < user2_id)
        )`,

        // Messages
        `CREATE TABLE IF NOT EXISTS messages (
            id BIGSERIAL PRIMARY KEY,
            from_user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            to_user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            content TEXT NOT NULL,
            read_at TIMESTAMP,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        )`,

        // Indexes
        `CREATE INDEX IF NOT EXISTS idx_interactions_to_user ON interactions(to_user_id)`,
        `CREATE INDEX IF NOT EXISTS idx_matches_user2 ON matches(user2_id)`,
        `CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(from_user_id, to_user_id, created_at)`,
    }

    for i, migration := range migrations {
        if _, err := db.Exec(migration); err != nil {
            return fmt.Errorf("migration %d failed: %w", i+1, err)
        }
    }
    return nil
}

// loggingMiddleware logs all requests with timing
func loggingMiddleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        start := time.Now()

        log.Printf("→ %s %s from %s", r.Method, r.RequestURI, r.RemoteAddr)

        wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

        next.ServeHTTP(wrapped, r)

        duration := time.Since(start)
        log.Printf("← %s %s [%d] %v", r.Method, r.RequestURI, wrapped.statusCode, duration)
    })
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
    http.ResponseWriter
    statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
    rw.statusCode = code
    rw.ResponseWriter.WriteHeader(code)
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Access-Control-Allow-Origin", "*")
        w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
        w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

        if r.Method == "OPTIONS" {
            w.WriteHeader(http.StatusOK)
            return
        }

        next.ServeHTTP(w, r)
    })
}

// healthCheck returns server health status
func healthCheck(w http.ResponseWriter, r *http.Request) {
    response := map[string]interface{}{
        "status":    "healthy",
        "timestamp": time.Now().Format(time.RFC3339),
        "uptime":    time.Since(startTime).String(),
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusOK)
    json.NewEncoder(w).Encode(response)
}

// apiInfo returns API information
func apiInfo(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(http.StatusOK)
    w.Write([]byte(`{
        "name": "CineMatch API",
        "version": "1.0.0",
        "status": "running",
        "endpoints": {
            "health": "GET /health",
            "metrics": "GET /metrics",
            "auth": {
                "register": "POST /api/auth/register",
                "login": "POST /api/auth/login",
                "refresh": "POST /api/auth/refresh",
                "logout": "POST /api/auth/logout"
            },
            "profile": {
                "me": "GET /api/v1/profile",
                "update": "PUT /api/v1/profile",
                "location": "PUT /api/v1/profile/location"
            },
            "preferences": {
                "genres": "GET|POST /api/v1/preferences/genres",
                "directors": "GET|POST /api/v1/preferences/directors",
                "movies": "GET|POST /api/v1/preferences/movies"
            },
            "matching": {
                "candidates": "GET /api/v1/users",
                "like": "POST /api/v1/matches/like",
                "matches": "GET /api/v1/matches"
            },
            "messages": {
                "send": "POST /api/v1/messages",
                "conversation": "GET /api/v1/messages/{userID}"
            }
        }
    }`))
}
