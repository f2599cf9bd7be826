package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseVersionValue(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    int64
		wantErr bool
	}{
		{name: "int64 value", input: int64(3), want: 3},
		{name: "float64 value", input: float64(7), want: 7},
		{name: "string value", input: "12", want: 12},
		{name: "unparseable string", input: "twelve", wantErr: true},
		{name: "unexpected type", input: []string{"1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVersionValue(tt.input, "secret/data/tls")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseVersionValue(%v) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseVersionValue(%v) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseVersionValue(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestApplyGeminiKeyToConfig(t *testing.T) {
	cfg := &Config{}
	applyGeminiKeyToConfig(cfg, "vault-key")

	if cfg.AI.APIKey != "vault-key" {
		t.Errorf("AI.APIKey = %q, want vault-key", cfg.AI.APIKey)
	}
	if cfg.AI.Improve.APIKey != "vault-key" {
		t.Errorf("AI.Improve.APIKey = %q, want vault-key", cfg.AI.Improve.APIKey)
	}
}

func TestApplyGeminiKeyPreservesOperationOverride(t *testing.T) {
	cfg := &Config{}
	cfg.AI.Improve.APIKey = "operation-key"
	applyGeminiKeyToConfig(cfg, "vault-key")

	if cfg.AI.Improve.APIKey != "operation-key" {
		t.Errorf("AI.Improve.APIKey = %q, want operation-key preserved", cfg.AI.Improve.APIKey)
	}
	if cfg.AI.APIKey != "vault-key" {
		t.Errorf("AI.APIKey = %q, want vault-key", cfg.AI.APIKey)
	}
}

func TestResolveVaultToken(t *testing.T) {
	t.Run("direct token", func(t *testing.T) {
		token, err := resolveVaultToken(VaultConfig{Token: "hvs.direct"})
		if err != nil {
			t.Fatalf("resolveVaultToken() unexpected error: %v", err)
		}
		if token != "hvs.direct" {
			t.Errorf("token = %q, want hvs.direct", token)
		}
	})

	t.Run("token from file", func(t *testing.T) {
		tokenFile := filepath.Join(t.TempDir(), "token")
		if err := os.WriteFile(tokenFile, []byte("  hvs.fromfile\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		token, err := resolveVaultToken(VaultConfig{TokenFile: tokenFile})
		if err != nil {
			t.Fatalf("resolveVaultToken() unexpected error: %v", err)
		}
		if token != "hvs.fromfile" {
			t.Errorf("token = %q, want hvs.fromfile (trimmed)", token)
		}
	})

	t.Run("direct token wins over file", func(t *testing.T) {
		token, err := resolveVaultToken(VaultConfig{Token: "hvs.direct", TokenFile: "/nonexistent"})
		if err != nil {
			t.Fatalf("resolveVaultToken() unexpected error: %v", err)
		}
		if token != "hvs.direct" {
			t.Errorf("token = %q, want hvs.direct", token)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		if _, err := resolveVaultToken(VaultConfig{}); err == nil {
			t.Error("resolveVaultToken() expected error for missing token, got nil")
		}
	})

	t.Run("unreadable token file", func(t *testing.T) {
		if _, err := resolveVaultToken(VaultConfig{TokenFile: "/nonexistent/token"}); err == nil {
			t.Error("resolveVaultToken() expected error for unreadable file, got nil")
		}
	})
}

func TestLoadTLSCertificateContent(t *testing.T) {
	cfg := &Config{}
	tlsData := &VaultSecret{
		Data: map[string]any{
			"cert": "CERT-PEM",
			"key":  "KEY-PEM",
			"ca":   "CA-PEM",
		},
	}

	count := loadTLSCertificateContent(cfg, tlsData)
	if count != 3 {
		t.Errorf("loadTLSCertificateContent() = %d, want 3", count)
	}
	if cfg.Server.TLS.CertContent != "CERT-PEM" {
		t.Errorf("CertContent = %q, want CERT-PEM", cfg.Server.TLS.CertContent)
	}
	if cfg.Server.TLS.KeyContent != "KEY-PEM" {
		t.Errorf("KeyContent = %q, want KEY-PEM", cfg.Server.TLS.KeyContent)
	}
	if cfg.Server.TLS.CAContent != "CA-PEM" {
		t.Errorf("CAContent = %q, want CA-PEM", cfg.Server.TLS.CAContent)
	}
}

func TestLoadTLSCertificateContentPartial(t *testing.T) {
	cfg := &Config{}
	tlsData := &VaultSecret{
		Data: map[string]any{
			"cert": "CERT-PEM",
			"key":  "",    // empty values are skipped
			"ca":   12345, // wrong type is skipped
		},
	}

	count := loadTLSCertificateContent(cfg, tlsData)
	if count != 1 {
		t.Errorf("loadTLSCertificateContent() = %d, want 1", count)
	}
	if cfg.Server.TLS.KeyContent != "" {
		t.Errorf("KeyContent = %q, want empty", cfg.Server.TLS.KeyContent)
	}
}

func TestValidateTLSDeprecatedFields(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]any
		wantErr string
	}{
		{
			name: "content fields only",
			data: map[string]any{"cert": "PEM", "key": "PEM"},
		},
		{
			name:    "deprecated cert_file",
			data:    map[string]any{"cert_file": "/etc/certs/server.crt"},
			wantErr: "cert_file",
		},
		{
			name:    "deprecated key_file",
			data:    map[string]any{"key_file": "/etc/certs/server.key"},
			wantErr: "key_file",
		},
		{
			name:    "deprecated ca_file",
			data:    map[string]any{"ca_file": "/etc/certs/ca.crt"},
			wantErr: "ca_file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTLSDeprecatedFields(&VaultSecret{Data: tt.data})
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validateTLSDeprecatedFields() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("validateTLSDeprecatedFields() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestApplyVaultSecretsDisabled(t *testing.T) {
	cfg := &Config{}
	cfg.Vault.Enabled = false

	if err := ApplyVaultSecrets(cfg, nil); err != nil {
		t.Errorf("ApplyVaultSecrets() with vault disabled should be a no-op, got error: %v", err)
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"short", "****"},
		{"AIzaSyDemoKey123", "AIza****y123"},
	}

	for _, tt := range tests {
		if got := maskSecret(tt.input); got != tt.want {
			t.Errorf("maskSecret(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
