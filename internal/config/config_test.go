package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("QR_SIZE", "")
	c := FromEnv()
	if c.Port != "8080" || c.DataDir != "data" || c.QRSize != 256 {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_DIR", "/srv/cards")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("QR_SIZE", "512")
	c := FromEnv()
	if c.Port != "9000" || c.DataDir != "/srv/cards" || c.GinMode != "release" || c.QRSize != 512 {
		t.Errorf("overrides not applied: %+v", c)
	}

	t.Setenv("QR_SIZE", "-3")
	if c := FromEnv(); c.QRSize != 256 {
		t.Errorf("bad QR_SIZE should fall back, got %d", c.QRSize)
	}

	t.Setenv("QR_SIZE", "100000")
	if c := FromEnv(); c.QRSize != 256 {
		t.Errorf("QR_SIZE above MaxQRSize should fall back, got %d", c.QRSize)
	}
}
