package config

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/lib/pq"
	"github.com/spf13/viper"
)

type Config struct {
	DB        *sql.DB
	Listen    string
	JWTSecret string
	UploadDir string
}

var AppConfig *Config

// Load reads config.yaml (if present) and KPI_* environment overrides,
// then opens the database connection.
func Load() {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("KPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen", ":8080")
	v.SetDefault("jwt_secret", "factory-kpi-secret-key")
	v.SetDefault("upload_dir", "./uploads")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "factory_kpi")
	v.SetDefault("db.sslmode", "disable")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Failed to read config file: %v", err)
		}
		log.Println("No config.yaml found, using defaults and environment")
	}

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s connect_timeout=10",
		v.GetString("db.host"), v.GetInt("db.port"), v.GetString("db.user"),
		v.GetString("db.name"), v.GetString("db.sslmode"))
	if pw := v.GetString("db.password"); pw != "" {
		psqlInfo += " password=" + pw
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Println("Check db.* settings in config.yaml or KPI_DB_* environment variables")
		log.Fatal("Cannot establish database connection")
	}

	AppConfig = &Config{
		DB:        db,
		Listen:    v.GetString("listen"),
		JWTSecret: v.GetString("jwt_secret"),
		UploadDir: v.GetString("upload_dir"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
