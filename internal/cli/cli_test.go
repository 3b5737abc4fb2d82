package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

// startBackend serves the slice of the external API the CLI talks to.
func startBackend(t *testing.T) string {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/resources", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "r1", "name": "Food Bank", "category": "ADMINISTRATIVE", "description": "Free groceries", "offered_by": "Student Union", "status": "approved"},
			{"id": "r2", "name": "Counselling", "category": "HEALTH", "description": "Drop-in support", "offered_by": "Health Centre", "status": "approved"},
		})
	})
	mux.HandleFunc("/users/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		if r.PostFormValue("username") != "alice" || r.PostFormValue("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect username or password"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": "test-token", "token_type": "bearer"})
	})
	mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"id": "u1", "username": "alice", "email": "alice@yorku.ca", "role": "user"})
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestListCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	url := startBackend(t)

	output, err := runCLI(t, "--server", url, "list")
	if err != nil {
		t.Fatalf("list error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "Food Bank") || !strings.Contains(output, "Counselling") {
		t.Errorf("expected resources in output, got: %s", output)
	}
	if !strings.Contains(output, "ID") {
		t.Errorf("expected table header in output, got: %s", output)
	}
}

func TestListCommand_CategoryFilter(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	url := startBackend(t)

	output, err := runCLI(t, "--server", url, "list", "--category", "HEALTH")
	if err != nil {
		t.Fatalf("list error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "Counselling") {
		t.Errorf("expected Counselling in output, got: %s", output)
	}
	if strings.Contains(output, "Food Bank") {
		t.Errorf("category filter leaked other entries: %s", output)
	}
}

func TestLoginCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	url := startBackend(t)

	output, err := runCLI(t, "--server", url, "login", "-u", "alice", "-p", "secret")
	if err != nil {
		t.Fatalf("login error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "Logged in as alice") {
		t.Errorf("expected login confirmation, got: %s", output)
	}
	if loadToken() != "test-token" {
		t.Errorf("expected token persisted, got %q", loadToken())
	}
}

func TestLoginCommand_BadCredentials(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	url := startBackend(t)

	_, err := runCLI(t, "--server", url, "login", "-u", "alice", "-p", "wrong")
	if err == nil {
		t.Fatal("expected error for bad credentials")
	}
	if loadToken() != "" {
		t.Errorf("no token should be stored after a failed login")
	}
}

func TestWhoamiCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	url := startBackend(t)

	if _, err := runCLI(t, "--server", url, "login", "-u", "alice", "-p", "secret"); err != nil {
		t.Fatalf("login error: %v", err)
	}

	output, err := runCLI(t, "--server", url, "whoami")
	if err != nil {
		t.Fatalf("whoami error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "alice") || !strings.Contains(output, "alice@yorku.ca") {
		t.Errorf("expected profile in output, got: %s", output)
	}
}

func TestWhoamiCommand_NotLoggedIn(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	url := startBackend(t)

	_, err := runCLI(t, "--server", url, "whoami")
	if err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("expected not-logged-in error, got %v", err)
	}
}

func TestLogoutCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	url := startBackend(t)

	if _, err := runCLI(t, "--server", url, "login", "-u", "alice", "-p", "secret"); err != nil {
		t.Fatalf("login error: %v", err)
	}
	if _, err := runCLI(t, "--server", url, "logout"); err != nil {
		t.Fatalf("logout error: %v", err)
	}
	if loadToken() != "" {
		t.Errorf("token should be gone after logout")
	}
}

func TestListCommand_JSONOutput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	url := startBackend(t)

	output, err := runCLI(t, "--server", url, "--json", "list")
	if err != nil {
		t.Fatalf("list error: %v\noutput: %s", err, output)
	}

	var resources []map[string]any
	if err := json.Unmarshal([]byte(output), &resources); err != nil {
		t.Fatalf("expected JSON output, got: %s", output)
	}
	if len(resources) != 2 {
		t.Errorf("expected 2 resources, got %d", len(resources))
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a very long resource name", 10, "a very lo…"},
		{"Café Étudiant de l'Université", 12, "Café Étudia…"},
		{"日本語リソースセンター", 5, "日本語リ…"},
	}
	for _, tc := range cases {
		got := truncate(tc.in, tc.n)
		if got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8: %q", tc.in, tc.n, got)
		}
	}
}

func TestReviewReject_RequiresReason(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	url := startBackend(t)

	_, err := runCLI(t, "--server", url, "review", "reject", "r1")
	if err == nil {
		t.Fatal("expected error when --reason is missing")
	}
}
