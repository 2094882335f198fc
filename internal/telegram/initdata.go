// Package telegram implements verification of Telegram Mini-App launch data
// (initData): the signed query string the WebApp receives from the Telegram
// client and forwards to the backend as its sole credential.
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strings"
)

// InitUser is the user object embedded in verified launch data.
type InitUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// Verify checks the HMAC signature of initData against the bot token.
//
// Per the Bot API: pop the hash field, sort the remaining decoded key/value
// pairs (all of them, repeated keys included) by key then value, join them as
// "key=value" lines with '\n', then compare
// hex(HMAC-SHA256(data, secret)) where secret = HMAC-SHA256(botToken,
// "WebAppData"). The comparison is constant-time; Verify returns false on any
// malformed input and never panics.
func Verify(initData, botToken string) bool {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return false
	}

	gotHash := values.Get("hash")
	if gotHash == "" {
		return false
	}
	values.Del("hash")

	// Every pair participates, repeated keys included, ordered by key then
	// value.
	type pair struct{ k, v string }
	entries := make([]pair, 0, len(values))
	for k, vs := range values {
		for _, v := range vs {
			entries = append(entries, pair{k, v})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].k != entries[j].k {
			return entries[i].k < entries[j].k
		}
		return entries[i].v < entries[j].v
	})

	pairs := make([]string, 0, len(entries))
	for _, e := range entries {
		pairs = append(pairs, e.k+"="+e.v)
	}
	canonical := strings.Join(pairs, "\n")

	secret := hmacSHA256([]byte("WebAppData"), []byte(botToken))
	calc := hex.EncodeToString(hmacSHA256(secret, []byte(canonical)))

	return hmac.Equal([]byte(calc), []byte(gotHash))
}

// ParseUser extracts the JSON-encoded user object from initData.
// It does not verify the signature; call Verify first. Returns false when the
// user field is absent, malformed, or carries no id.
func ParseUser(initData string) (InitUser, bool) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return InitUser{}, false
	}

	raw := values.Get("user")
	if raw == "" {
		return InitUser{}, false
	}

	var u InitUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.ID == 0 {
		return InitUser{}, false
	}
	return u, true
}

func hmacSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
