package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	TokenHeader      = "X-Fitplan-Token"
	sessionKeyPrefix = "fitplan-session||"
	tokensSetKey     = "fitplan-sessions"
)

// session values are stored as "<created at unix>|<user id>"
func sessionValue(createdAt time.Time, userID string) string {
	return fmt.Sprintf("%d|%s", createdAt.Unix(), userID)
}

func parseSessionValue(val string) (time.Time, string, error) {
	createdAtStr, userID, found := strings.Cut(val, "|")
	if !found || userID == "" {
		return time.Time{}, "", fmt.Errorf("malformed session value [%s]", val)
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("parse session created at: %w", err)
	}
	return time.Unix(createdAtUnix, 0), userID, nil
}
