package lib

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpiDeepLink(t *testing.T) {
	link := UpiDeepLink(UpiPaymentDetails{
		Amount:          4000,
		TransactionNote: "Advance for Malvan Escape — Bhraman",
		TransactionRef:  "b1",
	})
	assert.True(t, strings.HasPrefix(link, "upi://pay?"))

	parsed, err := url.Parse(link)
	assert.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "8433676328@indie", q.Get("pa"))
	assert.Equal(t, "GoBhraman", q.Get("pn"))
	assert.Equal(t, "4000", q.Get("am"))
	assert.Equal(t, "INR", q.Get("cu"))
	assert.Equal(t, "b1", q.Get("tr"))
}

func TestUpiDeepLinkOmitsEmptyRef(t *testing.T) {
	link := UpiDeepLink(UpiPaymentDetails{Amount: 2000, TransactionNote: "Advance"})
	parsed, err := url.Parse(link)
	assert.NoError(t, err)
	assert.False(t, parsed.Query().Has("tr"))
}

func TestUpiDeepLinkClampsNegativeAmount(t *testing.T) {
	link := UpiDeepLink(UpiPaymentDetails{Amount: -100, TransactionNote: "x"})
	parsed, _ := url.Parse(link)
	assert.Equal(t, "0", parsed.Query().Get("am"))
}

func TestIsValidVPA(t *testing.T) {
	assert.True(t, IsValidVPA("8433676328@indie"))
	assert.True(t, IsValidVPA("priya.sharma@okhdfcbank"))
	assert.True(t, IsValidVPA("user_name-1@ybl"))
	assert.False(t, IsValidVPA("no-handle"))
	assert.False(t, IsValidVPA("@ybl"))
	assert.False(t, IsValidVPA("user@"))
	assert.False(t, IsValidVPA("user@ok axis"))
}
