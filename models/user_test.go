// file: models/user_test.go
package models

import "testing"

func TestSetPasswordStoresHash(t *testing.T) {
	u := User{ID: 7}
	if err := u.SetPassword("hunter2secret"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if u.Password == "hunter2secret" {
		t.Fatal("password stored in plaintext")
	}
	if !u.CheckPassword("hunter2secret") {
		t.Error("stored hash does not verify against the original password")
	}
	if u.CheckPassword("wrong-password") {
		t.Error("wrong password must not verify")
	}
}

func TestBeforeSaveHashesOnlyNewUsers(t *testing.T) {
	u := User{Password: "initial-secret"}
	if err := u.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if u.Password == "initial-secret" {
		t.Fatal("new user's password stored in plaintext")
	}
	if !u.CheckPassword("initial-secret") {
		t.Error("hashed password does not verify")
	}

	// An existing row keeps the hash SetPassword stored; the hook must
	// not hash a second time.
	u.ID = 7
	hash := u.Password
	if err := u.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave on existing user: %v", err)
	}
	if u.Password != hash {
		t.Error("hook re-hashed an already hashed password")
	}
}

func TestBeforeSaveSkipsEmptyPassword(t *testing.T) {
	u := User{}
	if err := u.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if u.Password != "" {
		t.Errorf("password = %q, invited users stay passwordless", u.Password)
	}
}
