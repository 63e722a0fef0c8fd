package config

import (
	"testing"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		wantErr bool
	}{
		{name: "valid config", mutate: func(*Config) {}},
		{name: "negative timeout", mutate: func(c *Config) { c.GitHub.Timeout = -1 }, field: "github.timeout", wantErr: true},
		{name: "zero timeout allowed", mutate: func(c *Config) { c.GitHub.Timeout = 0 }},
		{name: "empty api url", mutate: func(c *Config) { c.GitHub.APIURL = "" }, field: "github.api_url", wantErr: true},
		{name: "api url without scheme", mutate: func(c *Config) { c.GitHub.APIURL = "api.github.com" }, field: "github.api_url", wantErr: true},
		{name: "enterprise api url", mutate: func(c *Config) { c.GitHub.APIURL = "https://ghe.example.com/api/v3" }},
		{name: "negative cache size", mutate: func(c *Config) { c.Cache.Size = -1 }, field: "cache.size", wantErr: true},
		{name: "zero cache size with cache enabled", mutate: func(c *Config) { c.Cache.Size = 0 }, field: "cache.size", wantErr: true},
		{name: "zero cache size with cache disabled", mutate: func(c *Config) { c.Cache.Enabled = false; c.Cache.Size = 0 }},
		{name: "negative TTL", mutate: func(c *Config) { c.Cache.TTL = -1 }, field: "cache.ttl", wantErr: true},
		{name: "zero concurrency", mutate: func(c *Config) { c.Analysis.Concurrency = 0 }, field: "analysis.concurrency", wantErr: true},
		{name: "negative readme limit", mutate: func(c *Config) { c.Analysis.ReadmeMaxChars = -5 }, field: "analysis.readme_max_chars", wantErr: true},
		{name: "unknown format", mutate: func(c *Config) { c.Output.Format = "html" }, field: "output.format", wantErr: true},
		{name: "yaml format", mutate: func(c *Config) { c.Output.Format = FormatYAML }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := NewLoader().Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			cfgErr, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("Expected ConfigError, got %T", err)
			}
			if cfgErr.Type != ConfigValidationFailed {
				t.Errorf("Expected ConfigValidationFailed, got %v", cfgErr.Type)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, cfgErr.Field)
			}
		})
	}
}

func TestValidateNil(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range SupportedFormats() {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) unexpected error: %v", f, err)
		}
	}
	for _, f := range []string{"", "TEXT", "html", "pdf"} {
		if err := ValidateFormat(f); err == nil {
			t.Errorf("ValidateFormat(%q) expected error", f)
		}
	}
}

func TestCanonicalFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"text", FormatText},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"json", FormatJSON},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := CanonicalFormat(tt.in)
		if err != nil {
			t.Errorf("CanonicalFormat(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CanonicalFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateAcceptsFormatAliases(t *testing.T) {
	for _, f := range []string{"md", "yml"} {
		cfg := DefaultConfig()
		cfg.Output.Format = f
		if err := Validate(cfg); err != nil {
			t.Errorf("Validate with output.format=%q unexpected error: %v", f, err)
		}
	}
}
