package utils

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// charset without ambiguous characters (0/O, 1/I)
const referenceCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateBookingReference creates a short human-readable code.
// Format: NIR-XXXXXXXX
func GenerateBookingReference() string {
	var sb strings.Builder
	sb.WriteString("NIR-")
	for i := 0; i < 8; i++ {
		sb.WriteByte(referenceCharset[rand.Intn(len(referenceCharset))])
	}
	return sb.String()
}
