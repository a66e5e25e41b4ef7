package utils

import (
	"crypto/rand"
	"math/big"
)

const alphanumericCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateRandomString(length int) string {
	result := make([]byte, length)
	max := big.NewInt(int64(len(alphanumericCharset)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			result[i] = alphanumericCharset[0]
			continue
		}
		result[i] = alphanumericCharset[n.Int64()]
	}
	return string(result)
}

// GenerateVehicleID produces a client-style vehicle identifier.
func GenerateVehicleID() string {
	return "veh_" + GenerateRandomString(8)
}
