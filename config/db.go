package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-api/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase inserts sample data so the API is usable right after first
// boot. Each block is guarded by a count so reruns are no-ops.
func SeedDatabase() {
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", Status: models.RoomStatusAvailable, Price: 1200},
			{RoomNumber: "102", Status: models.RoomStatusAvailable, Price: 1500},
			{RoomNumber: "201", Status: models.RoomStatusOccupied, Price: 2400},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	var txnCount int64
	DB.Model(&models.Transaction{}).Count(&txnCount)
	if txnCount == 0 {
		samples := []struct {
			amount float64
			status string
		}{
			{2400, models.PaymentStatusSuccess},
			{1200, models.PaymentStatusPending},
		}
		for _, sample := range samples {
			txn := models.Transaction{Amount: sample.amount}
			if err := DB.Create(&txn).Error; err != nil {
				log.Printf("warning: failed to seed transaction: %v", err)
				continue
			}
			payment := models.Payment{
				TransactionID:  txn.ID,
				Method:         "card",
				Amount:         sample.amount,
				Status:         sample.status,
				GatewayPayload: datatypes.JSON([]byte(`{"provider":"sandbox"}`)),
			}
			if err := DB.Create(&payment).Error; err != nil {
				log.Printf("warning: failed to seed payment for transaction %d: %v", txn.ID, err)
			}
		}
		log.Println("Sample transactions seeded")
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Info,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Room{},
		&models.RoomImage{},
		&models.Transaction{},
		&models.Payment{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
