package config

import (
	"fmt"
	"os"
	"strconv"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// StrictPickup controls whether an unrecognized pickup point on a tiered
// trip is rejected instead of silently falling back to the default price.
func StrictPickup() bool {
	strict, err := strconv.ParseBool(os.Getenv("PRICING_STRICT_PICKUP"))
	if err != nil {
		return false
	}
	return strict
}

func ScreenshotsBucket() string {
	return os.Getenv("S3_SCREENSHOTS_BUCKET")
}

func MerchantVPA() string {
	if vpa := os.Getenv("MERCHANT_UPI_ID"); vpa != "" {
		return vpa
	}
	return "8433676328@indie"
}

func MerchantName() string {
	if name := os.Getenv("MERCHANT_NAME"); name != "" {
		return name
	}
	return "GoBhraman"
}

const TRAVEL_DATE_FORMAT = "2006-01-02"
