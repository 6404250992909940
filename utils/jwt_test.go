// file: utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/derrick-nuby/talent-vortex-be/models"
)

func TestTokenRoundTrip(t *testing.T) {
	SetJWTSecret("jwt-test-secret")

	user := models.User{ID: 42, Email: "alice@example.com", Role: models.RoleAdmin}
	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "alice@example.com" || claims.Role != models.RoleAdmin {
		t.Errorf("claims = %+v, want the issued identity", claims)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("jwt-test-secret")
	token, err := GenerateToken(models.User{ID: 1, Email: "a@example.com", Role: models.RoleTalent})
	if err != nil {
		t.Fatal(err)
	}

	SetJWTSecret("a-different-secret")
	if _, err := ParseToken(token); err == nil {
		t.Error("token signed with another secret must not parse")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	SetJWTSecret("jwt-test-secret")
	if _, err := ParseToken("not.a.token"); err == nil {
		t.Error("malformed token must not parse")
	}
}
