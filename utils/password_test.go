package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals the plain password")
	}

	if err := CheckPassword(hash, "secret123"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestGenerateQueryCacheKey_OrderIndependent(t *testing.T) {
	a := GenerateQueryCacheKey("properties", map[string]string{"location": "mumbai", "minPrice": "100"})
	b := GenerateQueryCacheKey("properties", map[string]string{"minPrice": "100", "location": "mumbai"})
	if a != b {
		t.Errorf("same params must produce the same key: %q vs %q", a, b)
	}

	c := GenerateQueryCacheKey("properties", map[string]string{"location": "pune", "minPrice": "100"})
	if a == c {
		t.Error("different params must produce different keys")
	}
}
