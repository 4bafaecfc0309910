package lib

import (
	"net/url"
	"os"
	"path"
	"regexp"
	"strconv"

	"gobhraman/src/config"

	"github.com/google/uuid"
	"github.com/yeqown/go-qrcode"
)

var vpaPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)

// IsValidVPA reports whether s looks like a UPI ID (username@bankhandle).
func IsValidVPA(s string) bool {
	return vpaPattern.MatchString(s)
}

// UpiPaymentDetails describes one payment request. Amount is integer INR.
type UpiPaymentDetails struct {
	Amount          int64
	TransactionNote string
	TransactionRef  string
}

// UpiDeepLink builds a upi://pay link that opens the payer's UPI app
// (Google Pay, PhonePe, Paytm, BHIM) with the advance pre-filled.
func UpiDeepLink(details UpiPaymentDetails) string {
	params := url.Values{}
	params.Set("pa", config.MerchantVPA())
	params.Set("pn", config.MerchantName())
	params.Set("am", formatAmount(details.Amount))
	params.Set("tn", details.TransactionNote)
	params.Set("cu", "INR")
	if details.TransactionRef != "" {
		params.Set("tr", details.TransactionRef)
	}
	return "upi://pay?" + params.Encode()
}

// UpiQRCode renders the deep link as a QR image on disk and returns the
// file path, for the QR/WhatsApp payment flow.
func UpiQRCode(details UpiPaymentDetails) (string, error) {
	qrc, err := qrcode.New(UpiDeepLink(details))
	if err != nil {
		return "", err
	}
	tempdir := os.Getenv("TEMP_DIR")
	if tempdir == "" {
		tempdir = os.TempDir()
	}
	filepath := path.Join(tempdir, "upi-"+uuid.NewString()+".jpeg")
	if err := qrc.Save(filepath); err != nil {
		return "", err
	}
	return filepath, nil
}

func formatAmount(amount int64) string {
	if amount < 0 {
		amount = 0
	}
	return strconv.FormatInt(amount, 10)
}
