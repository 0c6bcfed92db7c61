package config

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// PasswordLength is the fixed length of generated admin passwords
const PasswordLength = 16

// Character classes for generated passwords. The complexity policy
// guarantees at least one character from each class, which is a strict
// superset of Azure's 3-of-4 requirement.
const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	specialChars = "!@#$%^&*()-_=+"
)

// GeneratePassword produces a random password of PasswordLength characters
// containing at least one lowercase letter, one uppercase letter, one digit
// and one special character. All randomness comes from crypto/rand; this is
// a credential, so a predictable generator would be a security defect.
func GeneratePassword() (string, error) {
	classes := []string{lowerChars, upperChars, digitChars, specialChars}
	all := lowerChars + upperChars + digitChars + specialChars

	buf := make([]byte, 0, PasswordLength)

	// One character from each class guarantees the complexity policy
	for _, class := range classes {
		i, err := randIndex(len(class))
		if err != nil {
			return "", err
		}
		buf = append(buf, class[i])
	}

	// Fill the rest from the union of all classes
	for len(buf) < PasswordLength {
		i, err := randIndex(len(all))
		if err != nil {
			return "", err
		}
		buf = append(buf, all[i])
	}

	// Fisher-Yates shuffle so the class-seeded characters do not sit in
	// fixed positions
	for i := len(buf) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return "", err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf), nil
}

func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading randomness: %w", err)
	}
	return int(v.Int64()), nil
}
