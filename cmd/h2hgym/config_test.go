package main

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BACKEND_URL", "")

	c, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if c.BackendURL != "http://localhost:8000" {
		t.Errorf("expected local backend default, got %q", c.BackendURL)
	}
	if c.ServerPort != 8080 {
		t.Errorf("expected port 8080, got %d", c.ServerPort)
	}
	if c.FlashMaxAgeSec != 300 {
		t.Errorf("expected flash max age 300, got %d", c.FlashMaxAgeSec)
	}
}

func TestLoadConfigPrefix(t *testing.T) {
	t.Setenv("H2H_BACKEND_URL", "https://api.h2hgym.com")

	c, err := loadConfig("H2H")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if c.BackendURL != "https://api.h2hgym.com" {
		t.Errorf("expected prefixed backend url, got %q", c.BackendURL)
	}
}

func TestLoadConfigRejectsRelativeBackend(t *testing.T) {
	t.Setenv("BACKEND_URL", "localhost:8000/api")

	if _, err := loadConfig(""); err == nil {
		t.Fatal("expected error for backend url without scheme")
	}
}
