package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReferralCodeFormat(t *testing.T) {
	code, err := GenerateReferralCode()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "TRG-"))
	assert.Len(t, code, 10)
	assert.Equal(t, strings.ToUpper(code), code)
}

func TestGenerateReferralCodeUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := GenerateReferralCode()
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate referral code %s", code)
		seen[code] = true
	}
}

func TestGenerateQRCode(t *testing.T) {
	qr, err := GenerateQRCode("https://teranga.mafalia.com/join?ref=TRG-ABC123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))
	assert.Greater(t, len(qr), 100)
}
