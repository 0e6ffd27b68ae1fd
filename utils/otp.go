package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const otpLength = 6

// GenerateNumericOTP returns a 6-digit numeric code in [100000, 999999].
func GenerateNumericOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}
	return fmt.Sprintf("%0*d", otpLength, n.Int64()+100000), nil
}
