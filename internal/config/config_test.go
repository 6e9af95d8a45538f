package config

import (
	"strings"
	"testing"
)

func TestDefaultHasResolvableDefaultSite(t *testing.T) {
	cfg := Default()
	site, err := cfg.Lookup("")
	if err != nil {
		t.Fatalf("Lookup default site: %v", err)
	}
	if site.Name != cfg.DefaultSite {
		t.Errorf("Lookup(\"\") = %q, want default site %q", site.Name, cfg.DefaultSite)
	}
	if site.Latitude == 0 || site.Longitude == 0 {
		t.Errorf("default site has zero coordinates: %+v", site)
	}
}

func TestParseReplacesSites(t *testing.T) {
	data := `
default-site: longyearbyen
sites:
  - name: longyearbyen
    latitude: 78.22
    longitude: 15.65
    pressure: 100.2
    temperature: 268.0
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.Sites) != 1 {
		t.Fatalf("sites = %d, want 1 (defaults replaced)", len(cfg.Sites))
	}
	site, err := cfg.Lookup("")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if site.Name != "longyearbyen" || site.Temperature != 268.0 {
		t.Errorf("unexpected site: %+v", site)
	}

	obs := site.Observer()
	if obs.Latitude != 78.22 || obs.Atmosphere.Pressure != 100.2 {
		t.Errorf("Observer conversion lost fields: %+v", obs)
	}
}

func TestParseKeepsDefaultOutputWhenAbsent(t *testing.T) {
	cfg, err := Parse([]byte("default-site: arnhem\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !cfg.Output.Degrees || !cfg.Output.NorthZeroAzimuth {
		t.Errorf("output defaults not preserved: %+v", cfg.Output)
	}
}

func TestParseOutputBlockReplaces(t *testing.T) {
	data := `
output:
  degrees: true
  refracted-equatorial: true
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Output.NorthZeroAzimuth {
		t.Errorf("output block should replace wholesale, got %+v", cfg.Output)
	}
	opts := cfg.Output.Options()
	if !opts.UseDegrees || !opts.ComputeRefrEquatorial {
		t.Errorf("Options conversion lost fields: %+v", opts)
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("sites: {not a list"))
	if err == nil || !strings.Contains(err.Error(), "unmarshaling") {
		t.Errorf("want unmarshal error, got %v", err)
	}
}

func TestLookupUnknownSite(t *testing.T) {
	_, err := Default().Lookup("atlantis")
	if err == nil || !strings.Contains(err.Error(), "atlantis") {
		t.Errorf("want error naming the site, got %v", err)
	}
}
