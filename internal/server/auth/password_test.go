package auth

import "testing"

func TestHashAndCheckPassword_Success(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "pw" {
		t.Fatal("hash must not equal plaintext")
	}
	if !CheckPassword("pw", hash) {
		t.Fatal("CheckPassword must accept the original password")
	}
}

func TestHashPassword_SaltedOutputDiffers(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same input must differ (embedded salt)")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword("other", hash) {
		t.Fatal("CheckPassword must reject a wrong password")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("pw", "not-a-bcrypt-hash") {
		t.Fatal("CheckPassword must reject a malformed hash")
	}
}
