package helper

import (
	"strings"

	"github.com/google/uuid"
)

func GenRequestID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}
