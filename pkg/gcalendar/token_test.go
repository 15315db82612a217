package gcalendar_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/oauth2"

	"voice-notes/pkg/gcalendar"
)

func TestOAuthConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "creds.json")
	creds := `{"installed":{"client_id":"cid","client_secret":"sec","redirect_uris":["http://localhost"],"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token"}}`
	if err := os.WriteFile(path, []byte(creds), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := gcalendar.OAuthConfigFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ClientID != "cid" || len(cfg.Scopes) != 1 {
		t.Errorf("config = %+v", cfg)
	}

	if _, err := gcalendar.OAuthConfigFromFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestSaveToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), gcalendar.TokenFile)
	if err := gcalendar.SaveToken(path, &oauth2.Token{AccessToken: "abc", RefreshToken: "def"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		t.Fatal(err)
	}
	if tok.AccessToken != "abc" || tok.RefreshToken != "def" {
		t.Errorf("token = %+v", tok)
	}

	info, _ := os.Stat(path)
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %v", info.Mode().Perm())
	}
}
