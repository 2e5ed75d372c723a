package redis

import (
	"os"
	"testing"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		connStr string
		want    bool
	}{
		{"redis://localhost:6379/0", true},
		{"rediss://cache.example.com:6380", true},
		{"postgres://localhost/glowup", false},
		{"/home/user/.config/glowup/glowup.db", false},
	}
	for _, tt := range tests {
		if got := IsURL(tt.connStr); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.connStr, got, tt.want)
		}
	}
}

func TestInitRejectsBadURL(t *testing.T) {
	if err := New("http://localhost:6379").Init(); err == nil {
		t.Error("Init() accepted a malformed URL")
	}
}

func TestOperationsBeforeLoad(t *testing.T) {
	s := New("redis://localhost:6379/0")
	if _, _, err := s.Get("userProfile"); err == nil {
		t.Error("Get() before Load should fail")
	}
	if err := s.Set("userProfile", []byte("{}")); err == nil {
		t.Error("Set() before Load should fail")
	}
}

// TestRedisRoundTrip runs against REDIS_TEST_URL when set.
func TestRedisRoundTrip(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set, skipping redis integration test")
	}

	s := New(url).WithPrefix("glowup-test:")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer func() {
		s.Delete("userProfile", "dailyRecords")
		s.Close()
	}()

	if _, ok, err := s.Get("userProfile"); err != nil || ok {
		t.Fatalf("Get() on empty namespace = %v, %v", ok, err)
	}
	if err := s.Set("userProfile", []byte(`{"name":"Mina"}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := s.Get("userProfile")
	if err != nil || !ok || string(got) != `{"name":"Mina"}` {
		t.Fatalf("Get() = %s, %v, %v", got, ok, err)
	}
	if err := s.Delete("userProfile"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := s.Get("userProfile"); ok {
		t.Error("userProfile still present after Delete()")
	}
}
