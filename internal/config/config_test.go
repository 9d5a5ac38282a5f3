package config

import "testing"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FIREBASE_PROJECT_ID", "handmade-test")
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64", "e30=")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "handmade-cloud")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.CloudinaryUploadPreset != "handmade_upload" {
		t.Fatalf("expected default upload preset, got %q", cfg.CloudinaryUploadPreset)
	}
	if cfg.CloudinaryUploadFolder != "handmade_uploads" {
		t.Fatalf("expected default upload folder, got %q", cfg.CloudinaryUploadFolder)
	}
	if cfg.FirebaseProjectID != "handmade-test" {
		t.Fatalf("expected project ID from env, got %q", cfg.FirebaseProjectID)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9999")
	t.Setenv("BOOTSTRAP_ADMIN_EMAIL", "owner@example.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "9999" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if cfg.BootstrapAdminEmail != "owner@example.com" {
		t.Fatalf("expected bootstrap admin email, got %q", cfg.BootstrapAdminEmail)
	}
}

func TestLoadConfigMissingProjectID(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64", "e30=")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "handmade-cloud")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when FIREBASE_PROJECT_ID is missing")
	}
}

func TestLoadConfigAllowsDefaultCredentials(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "handmade-test")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64", "")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "handmade-cloud")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.GoogleApplicationCredentials != "" || cfg.FirebaseServiceAccountJSONBase64 != "" {
		t.Fatalf("expected no explicit credential source, got %+v", cfg)
	}
}
