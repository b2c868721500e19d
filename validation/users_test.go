package validation

import (
	"testing"

	"cartly.io/api/dtos"
)

func TestParseNewUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		params, err := ParseNewUser(dtos.CreateUserRequest{Name: "James Smith", Email: "james@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if params.Name != "James Smith" || params.Email != "james@example.com" {
			t.Errorf("params = %+v", params)
		}
	})

	tests := []struct {
		name string
		req  dtos.CreateUserRequest
		want string
	}{
		{"missing name", dtos.CreateUserRequest{Email: "a@b.co"}, "Name is required and must be a non-empty string"},
		{"missing email", dtos.CreateUserRequest{Name: "James"}, "Email is required"},
		{"bad email", dtos.CreateUserRequest{Name: "James", Email: "not-an-email"}, "Email must be a valid email address"},
		{"email with spaces", dtos.CreateUserRequest{Name: "James", Email: "a b@c.co"}, "Email must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNewUser(tt.req)
			msgs := validationMessages(t, err)
			found := false
			for _, m := range msgs {
				if m == tt.want {
					found = true
				}
			}
			if !found {
				t.Errorf("messages %v missing %q", msgs, tt.want)
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 10},
		{"5", 5},
		{"1", 1},
		{"10", 10},
		{"0", 1},
		{"-3", 1},
		{"50", 10},
		{"abc", 10},
	}

	for _, tt := range tests {
		if got := ParseLimit(tt.raw); got != tt.want {
			t.Errorf("ParseLimit(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseScope(t *testing.T) {
	for raw, want := range map[string]string{"": "all", "mine": "mine", "shared": "shared", "all": "all"} {
		got, err := ParseScope(raw)
		if err != nil || got != want {
			t.Errorf("ParseScope(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}

	if _, err := ParseScope("everything"); err == nil {
		t.Error("expected unknown scope to be rejected")
	}
}
