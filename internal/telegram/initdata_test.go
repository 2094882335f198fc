package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"testing"
)

const testBotToken = "123456:TEST-TOKEN"

// signInitData builds a launch-data string with a valid hash for the given
// fields, mirroring the signing side of the Bot API.
func signInitData(t *testing.T, fields map[string]string, botToken string) string {
	t.Helper()

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+fields[k])
	}

	secretMac := hmac.New(sha256.New, []byte("WebAppData"))
	secretMac.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secretMac.Sum(nil))
	mac.Write([]byte(strings.Join(pairs, "\n")))
	hash := hex.EncodeToString(mac.Sum(nil))

	q := url.Values{}
	for k, v := range fields {
		q.Set(k, v)
	}
	q.Set("hash", hash)
	return q.Encode()
}

func validFields() map[string]string {
	return map[string]string{
		"auth_date": "1735689600",
		"query_id":  "AAHdF6IQAAAAAN0XohDhrOrc",
		"user":      `{"id":7771234567,"first_name":"Ada","last_name":"L","username":"adal"}`,
	}
}

func TestVerify_ValidSignature(t *testing.T) {
	initData := signInitData(t, validFields(), testBotToken)

	if !Verify(initData, testBotToken) {
		t.Fatal("expected valid signature to verify")
	}
}

func TestVerify_WrongToken(t *testing.T) {
	initData := signInitData(t, validFields(), testBotToken)

	if Verify(initData, "999999:OTHER-TOKEN") {
		t.Fatal("signature from another bot token must not verify")
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	fields := validFields()
	initData := signInitData(t, fields, testBotToken)

	// Flip the user id inside the signed payload.
	tampered := strings.Replace(initData, "7771234567", "7771234568", 1)
	if tampered == initData {
		t.Fatal("test setup: payload not tampered")
	}
	if Verify(tampered, testBotToken) {
		t.Fatal("tampered payload must not verify")
	}
}

func TestVerify_TamperedHash(t *testing.T) {
	initData := signInitData(t, validFields(), testBotToken)

	values, _ := url.ParseQuery(initData)
	hash := values.Get("hash")
	flipped := "0"
	if hash[0] == '0' {
		flipped = "1"
	}
	tampered := strings.Replace(initData, "hash="+hash, "hash="+flipped+hash[1:], 1)

	if Verify(tampered, testBotToken) {
		t.Fatal("tampered hash must not verify")
	}
}

func TestVerify_MissingHash(t *testing.T) {
	q := url.Values{}
	for k, v := range validFields() {
		q.Set(k, v)
	}
	if Verify(q.Encode(), testBotToken) {
		t.Fatal("launch data without hash must not verify")
	}
}

func TestVerify_GarbageInput(t *testing.T) {
	inputs := []string{"", "hash=", "not a query string %zz", "a=b&hash=deadbeef"}
	for _, in := range inputs {
		if Verify(in, testBotToken) {
			t.Errorf("input %q must not verify", in)
		}
	}
}

// Verify must use a constant-time comparison primitive, never short-circuit
// equality: the structural guarantee is that hmac.Equal is reachable for
// mismatching hashes of equal length, which the tampered-hash case covers.
func TestVerify_MismatchAnyPosition(t *testing.T) {
	initData := signInitData(t, validFields(), testBotToken)
	values, _ := url.ParseQuery(initData)
	hash := values.Get("hash")

	for _, pos := range []int{0, len(hash) / 2, len(hash) - 1} {
		b := []byte(hash)
		if b[pos] == 'f' {
			b[pos] = '0'
		} else {
			b[pos] = 'f'
		}
		tampered := strings.Replace(initData, "hash="+hash, "hash="+string(b), 1)
		if Verify(tampered, testBotToken) {
			t.Errorf("hash flipped at position %d must not verify", pos)
		}
	}
}

// Repeated keys all participate in the canonical payload, ordered by key then
// value.
func TestVerify_RepeatedKeys(t *testing.T) {
	userJSON := `{"id":7771234567,"first_name":"Ada"}`
	signed := []string{
		"auth_date=1735689600",
		"extra=alpha",
		"extra=beta",
		"user=" + userJSON,
	}
	secretMac := hmac.New(sha256.New, []byte("WebAppData"))
	secretMac.Write([]byte(testBotToken))
	mac := hmac.New(sha256.New, secretMac.Sum(nil))
	mac.Write([]byte(strings.Join(signed, "\n")))
	hash := hex.EncodeToString(mac.Sum(nil))

	q := url.Values{}
	q.Set("auth_date", "1735689600")
	q.Add("extra", "alpha")
	q.Add("extra", "beta")
	q.Set("user", userJSON)
	q.Set("hash", hash)

	if !Verify(q.Encode(), testBotToken) {
		t.Fatal("payload with repeated keys must verify")
	}

	// Dropping one of the repeated values must break the signature.
	q.Del("extra")
	q.Add("extra", "alpha")
	if Verify(q.Encode(), testBotToken) {
		t.Fatal("signature over both values must not cover only one")
	}
}

func TestParseUser_Valid(t *testing.T) {
	initData := signInitData(t, validFields(), testBotToken)

	u, ok := ParseUser(initData)
	if !ok {
		t.Fatal("expected user to parse")
	}
	if u.ID != 7771234567 {
		t.Errorf("id: want 7771234567, got %d", u.ID)
	}
	if u.FirstName != "Ada" || u.LastName != "L" || u.Username != "adal" {
		t.Errorf("unexpected user fields: %+v", u)
	}
}

func TestParseUser_MissingUser(t *testing.T) {
	if _, ok := ParseUser("auth_date=1&hash=abc"); ok {
		t.Fatal("launch data without user must not parse")
	}
}

func TestParseUser_NoID(t *testing.T) {
	q := url.Values{}
	q.Set("user", `{"first_name":"NoID"}`)
	if _, ok := ParseUser(q.Encode()); ok {
		t.Fatal("user without id must not parse")
	}
}

func TestParseUser_MalformedJSON(t *testing.T) {
	q := url.Values{}
	q.Set("user", `{"id":`)
	if _, ok := ParseUser(q.Encode()); ok {
		t.Fatal("malformed user JSON must not parse")
	}
}
