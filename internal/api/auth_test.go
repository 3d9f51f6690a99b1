package api

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAuthDisabledWithoutAdmin(t *testing.T) {
	if a := NewAuth("", "", "reader", "pw"); a.Enabled() {
		t.Fatal("auth should be disabled without admin credentials")
	}

	var a *Auth
	called := false
	h := a.adminOnly(func(w http.ResponseWriter, r *http.Request) { called = true })
	h(httptest.NewRecorder(), httptest.NewRequest("GET", "/metrics", nil))
	if !called {
		t.Error("handler should be called when auth is disabled")
	}
}

func TestAuthRoles(t *testing.T) {
	a := NewAuth("admin", "secret", "reader", "readpw")
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		user, pass string
		want       int
	}{
		{"no credentials", a.anyRole(ok), "", "", http.StatusUnauthorized},
		{"wrong password", a.anyRole(ok), "admin", "nope", http.StatusUnauthorized},
		{"admin on analysis", a.anyRole(ok), "admin", "secret", http.StatusOK},
		{"reader on analysis", a.anyRole(ok), "reader", "readpw", http.StatusOK},
		{"reader on metrics", a.adminOnly(ok), "reader", "readpw", http.StatusForbidden},
		{"admin on metrics", a.adminOnly(ok), "admin", "secret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.user != "" {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			w := httptest.NewRecorder()
			tt.handler(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if tt.want == http.StatusUnauthorized && w.Header().Get("WWW-Authenticate") == "" {
				t.Error("missing WWW-Authenticate header")
			}
		})
	}
}

func TestAuthWithoutReaderRejectsEmptyReader(t *testing.T) {
	a := NewAuth("admin", "secret", "", "")
	req := httptest.NewRequest("GET", "/", nil)
	req.SetBasicAuth("", "")
	if role := a.authenticate(req); role != "" {
		t.Errorf("role = %q, want none", role)
	}
}

func TestLoadAuthFromEnv(t *testing.T) {
	dir := t.TempDir()
	passFile := filepath.Join(dir, "pass")
	if err := os.WriteFile(passFile, []byte("s3cret\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SAISCOPE_ADMIN_USER", "admin")
	t.Setenv("SAISCOPE_ADMIN_PASS_FILE", passFile)

	a, err := LoadAuth()
	if err != nil {
		t.Fatalf("LoadAuth: %v", err)
	}
	if !a.Enabled() {
		t.Fatal("expected auth enabled")
	}
	req := httptest.NewRequest("GET", "/", nil)
	req.SetBasicAuth("admin", "s3cret")
	if role := a.authenticate(req); role != RoleAdmin {
		t.Errorf("role = %q, want admin", role)
	}
}

func TestServerRequiresAuth(t *testing.T) {
	srv := newTestServer(t, Options{Auth: NewAuth("admin", "secret", "", "")})

	if code := get(t, srv.URL+"/health", nil); code != http.StatusOK {
		t.Errorf("/health status = %d, want 200 without credentials", code)
	}
	resp, err := http.Get(srv.URL + "/explain?event=4")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("/explain status = %d, want 401", resp.StatusCode)
	}
}

func writeKeyPair(t *testing.T) (certFile, keyFile string) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatal(err)
	}
	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	certFile = filepath.Join(dir, "cert.pem")
	keyFile = filepath.Join(dir, "key.pem")
	os.WriteFile(certFile, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600)
	os.WriteFile(keyFile, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}), 0o600)
	return certFile, keyFile
}

func TestTLSFromEnv(t *testing.T) {
	t.Setenv("SAISCOPE_TLS_CERT", "")
	t.Setenv("SAISCOPE_TLS_KEY", "")
	if TLSFromEnv() != nil {
		t.Fatal("TLS should be disabled without cert and key")
	}

	certFile, keyFile := writeKeyPair(t)
	t.Setenv("SAISCOPE_TLS_CERT", certFile)
	t.Setenv("SAISCOPE_TLS_KEY", keyFile)

	c := TLSFromEnv()
	if c == nil {
		t.Fatal("expected TLS config")
	}
	cfg, err := c.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Certificates) != 1 {
		t.Errorf("got %d certificates", len(cfg.Certificates))
	}
}

func TestTLSLoadMissingFiles(t *testing.T) {
	c := &TLSConfig{CertFile: "/nonexistent/cert.pem", KeyFile: "/nonexistent/key.pem"}
	if _, err := c.Load(); err == nil {
		t.Error("expected error for missing key pair")
	}
}
