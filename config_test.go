package a11ykit

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Enabled || !cfg.EnableVoiceOverOptimization || !cfg.EnableDynamicType || !cfg.EnableColorContrastOptimization {
		t.Error("every strategy should be enabled by default")
	}
	if !cfg.AutoGenerateVoiceOverLabels {
		t.Error("AutoGenerateVoiceOverLabels should default to true")
	}
	if cfg.MinimumContrastRatio() != 4.5 || cfg.PreferredContrastRatio() != 7 {
		t.Errorf("ratios = %v/%v, want 4.5/7", cfg.MinimumContrastRatio(), cfg.PreferredContrastRatio())
	}
	if cfg.MinimumContentSizeCategory != ContentSizeSmall || cfg.MaximumContentSizeCategory != ContentSizeAccessibilityExtraExtraExtraLarge {
		t.Errorf("content size range = %v..%v", cfg.MinimumContentSizeCategory, cfg.MaximumContentSizeCategory)
	}
	if diff := cmp.Diff([]string{"_"}, cfg.AutoExcludedClassPrefixes); diff != "" {
		t.Errorf("AutoExcludedClassPrefixes mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroConfigContrastRatios(t *testing.T) {
	var cfg Config
	if cfg.MinimumContrastRatio() != DefaultMinimumContrastRatio {
		t.Errorf("zero Config minimum = %v", cfg.MinimumContrastRatio())
	}
	if cfg.PreferredContrastRatio() != DefaultPreferredContrastRatio {
		t.Errorf("zero Config preferred = %v", cfg.PreferredContrastRatio())
	}
}

func TestContrastRatioSettersKeepOrdering(t *testing.T) {
	tests := []struct {
		name          string
		min, pref     float64
		wantMin       float64
		wantPreferred float64
	}{
		{"within range", 3, 5, 3, 5},
		{"minimum clamped low", 0.2, 7, 1, 7},
		{"minimum clamped high", 30, 0, 21, 21},
		{"minimum raises preferred", 9, 0, 9, 9},
		{"preferred below minimum", 6, 2, 6, 6},
		{"preferred clamped high", 4.5, 40, 4.5, 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SetMinimumContrastRatio(tt.min)
			if tt.pref != 0 {
				cfg.SetPreferredContrastRatio(tt.pref)
			}
			if cfg.MinimumContrastRatio() != tt.wantMin {
				t.Errorf("minimum = %v, want %v", cfg.MinimumContrastRatio(), tt.wantMin)
			}
			if cfg.PreferredContrastRatio() != tt.wantPreferred {
				t.Errorf("preferred = %v, want %v", cfg.PreferredContrastRatio(), tt.wantPreferred)
			}
		})
	}
}

func TestIsContentSizeCategoryAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinimumContentSizeCategory = ContentSizeMedium
	cfg.MaximumContentSizeCategory = ContentSizeExtraExtraLarge

	tests := []struct {
		cat  ContentSizeCategory
		want bool
	}{
		{ContentSizeExtraSmall, false},
		{ContentSizeMedium, true},
		{ContentSizeUnspecified, true}, // treated as large
		{ContentSizeExtraExtraLarge, true},
		{ContentSizeAccessibilityMedium, false},
	}
	for _, tt := range tests {
		if got := cfg.IsContentSizeCategoryAllowed(tt.cat); got != tt.want {
			t.Errorf("IsContentSizeCategoryAllowed(%v) = %v, want %v", tt.cat, got, tt.want)
		}
	}
}

func TestConfigCloneIsDeep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExcludeTags(7)
	cfg.ExcludeClassNames("Spinner")
	cfg.SetCustomSetting("theme", "dark")

	clone := cfg.Clone()
	clone.ExcludeTags(8)
	clone.ExcludeClassNames("Toast")
	clone.SetCustomSetting("theme", "light")
	clone.AutoExcludedClassPrefixes[0] = "internal"

	if _, ok := cfg.ExcludedTags[8]; ok {
		t.Error("ExcludedTags shared with clone")
	}
	if _, ok := cfg.ExcludedClassNames["Toast"]; ok {
		t.Error("ExcludedClassNames shared with clone")
	}
	if v, _ := CustomSetting[string](cfg, "theme"); v != "dark" {
		t.Errorf("CustomSettings shared with clone: theme = %q", v)
	}
	if cfg.AutoExcludedClassPrefixes[0] != "_" {
		t.Error("AutoExcludedClassPrefixes shared with clone")
	}
}

func TestCustomSettingTyped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetCustomSetting("retries", 3)

	if v, ok := CustomSetting[int](cfg, "retries"); !ok || v != 3 {
		t.Errorf("CustomSetting[int] = %v, %v", v, ok)
	}
	if _, ok := CustomSetting[string](cfg, "retries"); ok {
		t.Error("CustomSetting[string] should fail for an int value")
	}
	if _, ok := CustomSetting[int](cfg, "missing"); ok {
		t.Error("missing key should report false")
	}
}

func TestConfigReset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	cfg.SetMinimumContrastRatio(10)
	cfg.ExcludeTags(1)
	cfg.Reset()

	if !cfg.Enabled || cfg.MinimumContrastRatio() != 4.5 || len(cfg.ExcludedTags) != 0 {
		t.Errorf("Reset did not restore defaults: %v", cfg)
	}
}

func TestConfigString(t *testing.T) {
	s := DefaultConfig().String()
	for _, want := range []string{"Config:", "- Enabled: true", "- Minimum Contrast Ratio: 4.5"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	data := []byte(`
enabled: true
logLevel: warn
autoGenerateVoiceOverLabels: false
voiceOverLabelPrefix: "["
voiceOverLabelSuffix: "]"
enableDynamicType: false
maximumContentSizeCategory: extraExtraExtraLarge
preferredContentSizeCategory: accessibilityLarge
minimumContrastRatio: 7
preferredContrastRatio: 3
excludedTags: [42, 43]
excludedClassNames: [DebugOverlay]
minimumElementSize: {width: 4, height: 4}
customSettings:
  theme: dark
`)
	cfg, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.LogLevel != LogLevelWarning {
		t.Errorf("LogLevel = %v, want warning", cfg.LogLevel)
	}
	if cfg.AutoGenerateVoiceOverLabels || cfg.EnableDynamicType {
		t.Error("explicit false values should override defaults")
	}
	if !cfg.EnableColorContrastOptimization {
		t.Error("absent keys should keep defaults")
	}
	if cfg.VoiceOverLabelPrefix != "[" || cfg.VoiceOverLabelSuffix != "]" {
		t.Errorf("prefix/suffix = %q/%q", cfg.VoiceOverLabelPrefix, cfg.VoiceOverLabelSuffix)
	}
	if cfg.MaximumContentSizeCategory != ContentSizeExtraExtraExtraLarge {
		t.Errorf("MaximumContentSizeCategory = %v", cfg.MaximumContentSizeCategory)
	}
	if cfg.PreferredContentSizeCategory != ContentSizeAccessibilityLarge {
		t.Errorf("PreferredContentSizeCategory = %v", cfg.PreferredContentSizeCategory)
	}
	if cfg.MinimumContrastRatio() != 7 || cfg.PreferredContrastRatio() != 7 {
		t.Errorf("ratios = %v/%v, want 7/7", cfg.MinimumContrastRatio(), cfg.PreferredContrastRatio())
	}
	if _, ok := cfg.ExcludedTags[43]; !ok || len(cfg.ExcludedTags) != 2 {
		t.Errorf("ExcludedTags = %v", cfg.ExcludedTags)
	}
	if _, ok := cfg.ExcludedClassNames["DebugOverlay"]; !ok {
		t.Errorf("ExcludedClassNames = %v", cfg.ExcludedClassNames)
	}
	if cfg.MinimumElementSize != (Vec2{4, 4}) {
		t.Errorf("MinimumElementSize = %v", cfg.MinimumElementSize)
	}
	if v, _ := CustomSetting[string](cfg, "theme"); v != "dark" {
		t.Errorf("theme = %q", v)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "enabled: [unterminated"},
		{"unknown log level", "logLevel: verbose"},
		{"unknown category", "minimumContentSizeCategory: huge"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig([]byte(tt.data)); err == nil {
				t.Error("expected error")
			} else if !strings.HasPrefix(err.Error(), "a11ykit: parse config:") {
				t.Errorf("error %q lacks package prefix", err)
			}
		})
	}
}

func TestLoadConfigRejectsNonFiniteRatios(t *testing.T) {
	tests := []struct {
		data string
		key  string
	}{
		{"minimumContrastRatio: .nan", "minimumContrastRatio"},
		{"minimumContrastRatio: .inf", "minimumContrastRatio"},
		{"preferredContrastRatio: -.inf", "preferredContrastRatio"},
		{"preferredContrastRatio: .NaN", "preferredContrastRatio"},
	}
	for _, tt := range tests {
		_, err := LoadConfig([]byte(tt.data))
		if err == nil || !strings.Contains(err.Error(), tt.key) {
			t.Errorf("LoadConfig(%q) error = %v, want one naming %s", tt.data, err, tt.key)
		}
	}
}

func TestContrastRatioSettersIgnoreNonFinite(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetMinimumContrastRatio(5)
	cfg.SetPreferredContrastRatio(8)
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		cfg.SetMinimumContrastRatio(v)
		cfg.SetPreferredContrastRatio(v)
	}
	if cfg.MinimumContrastRatio() != 5 || cfg.PreferredContrastRatio() != 8 {
		t.Fatalf("ratios = %v/%v, want 5/8", cfg.MinimumContrastRatio(), cfg.PreferredContrastRatio())
	}

	label := NewLabel("l", "Black on white")
	label.SetTextColor(ColorBlack)
	label.SetBackgroundColor(ColorWhite)
	if issues := auditColorContrast(label, &cfg); len(issues) != 0 {
		t.Errorf("black on white flagged: %v", issues)
	}
}

func TestLoadConfigEmptyIsDefault(t *testing.T) {
	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	if cfg.String() != want.String() || cfg.MinimumContrastRatio() != want.MinimumContrastRatio() {
		t.Errorf("LoadConfig(nil) differs from defaults:\n%s", cfg)
	}
}
