// file: services/lockout_service.go
package services

import (
	"time"

	"codefest/database"

	log "github.com/sirupsen/logrus"
)

const (
	maxLoginAttempts = 5
	lockoutWindow    = 15 * time.Minute
)

func loginFailKey(username string) string {
	return "login:fail:" + username
}

// IsLoginLocked reports whether the username has exhausted its attempts
// within the current window.
func IsLoginLocked(username string) bool {
	n, err := database.RDB.Get(database.Ctx, loginFailKey(username)).Int()
	return err == nil && n >= maxLoginAttempts
}

// RecordLoginFailure bumps the failure counter. The first failure opens the
// window; the counter expires with it, so a lockout clears itself.
func RecordLoginFailure(username string) (locked bool) {
	key := loginFailKey(username)
	n, err := database.RDB.Incr(database.Ctx, key).Result()
	if err != nil {
		log.Errorf("Failed to record login failure for %q: %v", username, err)
		return false
	}
	if n == 1 {
		database.RDB.Expire(database.Ctx, key, lockoutWindow)
	}
	if n >= maxLoginAttempts {
		log.Warnf("Login for %q locked after %d failed attempts", username, n)
		return true
	}
	return false
}

// ResetLoginFailures clears the counter after a successful login.
func ResetLoginFailures(username string) {
	database.RDB.Del(database.Ctx, loginFailKey(username))
}
