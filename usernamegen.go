package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/godruoyi/go-snowflake"
)

const (
	CookieKey        = "SKYHOOK_SITE_USERNAME"
	DefaultAvatarURL = "https://avatars.githubusercontent.com/u/0?v=4"
)

func generateUsername() string {
	return "user_" + strconv.FormatUint(snowflake.ID(), 10)
}

func getAvatarURL(username string) string {
	parts := strings.Split(username, "_")

	if len(parts) != 2 {
		return DefaultAvatarURL
	}

	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return DefaultAvatarURL
	}

	return fmt.Sprintf("https://robohash.org/%d?set=set4", id)
}

// ensureUsername reads the visitor's username cookie, minting and setting
// one when absent.
func ensureUsername(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(CookieKey); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	username := generateUsername()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieKey,
		Value:    username,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return username
}
