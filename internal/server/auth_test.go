package server

import "testing"

func TestAuthenticateCreatesAccountOnFirstLogin(t *testing.T) {
	t.Parallel()

	am := NewAuthManager(t.TempDir())

	profile, err := am.Authenticate("alice", "hunter2")
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	if profile.Username != "alice" {
		t.Fatalf("profile username = %q", profile.Username)
	}
	if len(profile.DeckIDs()) != 1 {
		t.Fatalf("new account has %d decks, want 1", len(profile.DeckIDs()))
	}

	// Second login with the same password succeeds against the stored hash.
	again, err := am.Authenticate("alice", "hunter2")
	if err != nil {
		t.Fatalf("repeat login failed: %v", err)
	}
	if again.DeckIDs()[0] != profile.DeckIDs()[0] {
		t.Fatal("repeat login returned a different deck")
	}
}

func TestAuthenticateRejectsWrongPassword(t *testing.T) {
	t.Parallel()

	am := NewAuthManager(t.TempDir())
	if _, err := am.Authenticate("bob", "correct"); err != nil {
		t.Fatalf("account creation failed: %v", err)
	}

	if _, err := am.Authenticate("bob", "wrong"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestAuthenticateRejectsEmptyCredentials(t *testing.T) {
	t.Parallel()

	am := NewAuthManager(t.TempDir())
	if _, err := am.Authenticate("", "pw"); err == nil {
		t.Fatal("empty username accepted")
	}
	if _, err := am.Authenticate("user", ""); err == nil {
		t.Fatal("empty password accepted")
	}
}

func TestActiveUserRegistry(t *testing.T) {
	t.Parallel()

	am := NewAuthManager(t.TempDir())

	if err := am.RegisterActiveUser("carol", "client-1"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if !am.IsUserActive("carol") {
		t.Fatal("registered user not reported active")
	}

	// Same client may re-register; a different client is refused.
	if err := am.RegisterActiveUser("carol", "client-1"); err != nil {
		t.Fatalf("re-registration by the same client failed: %v", err)
	}
	if err := am.RegisterActiveUser("carol", "client-2"); err == nil {
		t.Fatal("second client allowed to claim an active user")
	}

	am.UnregisterActiveUser("carol")
	if am.IsUserActive("carol") {
		t.Fatal("unregistered user still active")
	}
	if err := am.RegisterActiveUser("carol", "client-2"); err != nil {
		t.Fatalf("registration after logout failed: %v", err)
	}
}
