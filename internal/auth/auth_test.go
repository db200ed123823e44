package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"healthmate-api/internal/auth"
)

const secret = "test-secret"

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("p1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "p1" {
		t.Fatal("hash equals plaintext")
	}
	if !auth.CheckPassword(hash, "p1") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}

	// salted: same input, different hash
	hash2, _ := auth.HashPassword("p1")
	if hash == hash2 {
		t.Error("two hashes of the same password are identical")
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	raw, _, err := auth.NewSessionID()
	if err != nil {
		t.Fatalf("session id: %v", err)
	}

	tok, err := auth.MakeSessionToken("user-1", raw, secret)
	if err != nil {
		t.Fatalf("make token: %v", err)
	}

	claims, err := auth.ParseSessionToken(tok, secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("uid: got %s", claims.UserID)
	}
	if claims.SessionID != raw {
		t.Errorf("sid: got %s", claims.SessionID)
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	tok, _ := auth.MakeSessionToken("user-1", "sid", secret)
	if _, err := auth.ParseSessionToken(tok, "other-secret"); err == nil {
		t.Fatal("token accepted with wrong secret")
	}
}

func TestSessionTokenTampered(t *testing.T) {
	tok, _ := auth.MakeSessionToken("user-1", "sid", secret)
	tampered := tok[:len(tok)-2] + "xx"
	if _, err := auth.ParseSessionToken(tampered, secret); err == nil {
		t.Fatal("tampered token accepted")
	}
}

func TestSessionTokenExpired(t *testing.T) {
	c := auth.Claims{
		UserID:    "user-1",
		SessionID: "sid",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := auth.ParseSessionToken(tok, secret); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestSessionTokenNoneAlg(t *testing.T) {
	c := auth.Claims{
		UserID:    "user-1",
		SessionID: "sid",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := auth.ParseSessionToken(tok, secret); err == nil {
		t.Fatal("unsigned token accepted")
	}
}

func TestNewSessionID(t *testing.T) {
	raw, hash, err := auth.NewSessionID()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if len(raw) != 64 {
		t.Errorf("raw length: got %d", len(raw))
	}
	if auth.HashSessionID(raw) != hash {
		t.Error("hash does not match HashSessionID(raw)")
	}

	raw2, _, _ := auth.NewSessionID()
	if raw == raw2 {
		t.Error("two session ids are identical")
	}
}

func TestSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	auth.SetSessionCookie(rec, "tok-value", true)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != auth.CookieName || c.Value != "tok-value" {
		t.Errorf("cookie: %s=%s", c.Name, c.Value)
	}
	if !c.HttpOnly {
		t.Error("cookie not HttpOnly")
	}
	if !c.Secure {
		t.Error("cookie not Secure")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Error("cookie not SameSite=Strict")
	}
	if c.Path != "/" {
		t.Errorf("cookie path: %s", c.Path)
	}
	if c.MaxAge != int(auth.SessionTTL/time.Second) {
		t.Errorf("cookie max-age: %d", c.MaxAge)
	}
}

func TestClearSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	auth.ClearSessionCookie(rec, false)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Error("clearing cookie should set negative max-age")
	}
	if cookies[0].Value != "" {
		t.Error("cleared cookie still carries a value")
	}
}
