package a11ykit

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	maxContrastRatio = 21.0
	minContrastRatio = 1.0

	// DefaultMinimumContrastRatio is the WCAG AA ratio for body text.
	DefaultMinimumContrastRatio = 4.5
	// DefaultPreferredContrastRatio is the WCAG AAA ratio for body text.
	DefaultPreferredContrastRatio = 7.0
)

// Config holds the thresholds and toggles consumed read-only by every
// strategy. It is a value type; the engine keeps its own copy and replaces
// it wholesale on update.
//
// The contrast ratios are kept behind setters so that
// 1 ≤ minimum ≤ preferred ≤ 21 holds after every mutation.
type Config struct {
	Enabled  bool
	LogLevel LogLevel

	// VoiceOver
	EnableVoiceOverOptimization bool
	AutoGenerateVoiceOverLabels bool
	VoiceOverLabelPrefix        string
	VoiceOverLabelSuffix        string

	// Dynamic Type
	EnableDynamicType            bool
	EnableLargeContentViewer     bool
	MinimumContentSizeCategory   ContentSizeCategory
	MaximumContentSizeCategory   ContentSizeCategory
	PreferredContentSizeCategory ContentSizeCategory // current user setting; unspecified = large

	// Color contrast
	EnableColorContrastOptimization bool
	minimumContrastRatio            float64
	preferredContrastRatio          float64

	// Exclusion
	AutoExcludedClassPrefixes []string
	ExcludedTags              map[int]struct{}
	ExcludedClassNames        map[string]struct{}
	MinimumElementSize        Vec2 // zero disables the size check

	CustomSettings map[string]any
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:                         true,
		LogLevel:                        LogLevelInfo,
		EnableVoiceOverOptimization:     true,
		AutoGenerateVoiceOverLabels:     true,
		EnableDynamicType:               true,
		EnableLargeContentViewer:        true,
		MinimumContentSizeCategory:      ContentSizeSmall,
		MaximumContentSizeCategory:      ContentSizeAccessibilityExtraExtraExtraLarge,
		EnableColorContrastOptimization: true,
		minimumContrastRatio:            DefaultMinimumContrastRatio,
		preferredContrastRatio:          DefaultPreferredContrastRatio,
		AutoExcludedClassPrefixes:       []string{"_"},
		ExcludedTags:                    map[int]struct{}{},
		ExcludedClassNames:              map[string]struct{}{},
		CustomSettings:                  map[string]any{},
	}
}

// MinimumContrastRatio returns the contrast every text node must reach.
func (c Config) MinimumContrastRatio() float64 {
	if c.minimumContrastRatio == 0 {
		return DefaultMinimumContrastRatio
	}
	return c.minimumContrastRatio
}

// PreferredContrastRatio returns the enhanced contrast target.
func (c Config) PreferredContrastRatio() float64 {
	if c.preferredContrastRatio == 0 {
		return max(DefaultPreferredContrastRatio, c.MinimumContrastRatio())
	}
	return c.preferredContrastRatio
}

// SetMinimumContrastRatio clamps v to [1, 21] and raises the preferred ratio
// if it would fall below the new minimum. NaN and infinities are ignored.
func (c *Config) SetMinimumContrastRatio(v float64) {
	if !isFinite(v) {
		return
	}
	pref := c.PreferredContrastRatio()
	c.minimumContrastRatio = min(max(v, minContrastRatio), maxContrastRatio)
	c.preferredContrastRatio = max(pref, c.minimumContrastRatio)
}

// SetPreferredContrastRatio clamps v to [minimum, 21]. NaN and infinities
// are ignored.
func (c *Config) SetPreferredContrastRatio(v float64) {
	if !isFinite(v) {
		return
	}
	c.preferredContrastRatio = max(c.MinimumContrastRatio(), min(v, maxContrastRatio))
}

// ExcludeTags adds tags to the exclusion set.
func (c *Config) ExcludeTags(tags ...int) {
	if c.ExcludedTags == nil {
		c.ExcludedTags = map[int]struct{}{}
	}
	for _, t := range tags {
		c.ExcludedTags[t] = struct{}{}
	}
}

// ExcludeClassNames adds exact class names to the exclusion set.
func (c *Config) ExcludeClassNames(names ...string) {
	if c.ExcludedClassNames == nil {
		c.ExcludedClassNames = map[string]struct{}{}
	}
	for _, n := range names {
		c.ExcludedClassNames[n] = struct{}{}
	}
}

// IsContentSizeCategoryAllowed reports whether cat lies within the
// configured [minimum, maximum] range.
func (c *Config) IsContentSizeCategoryAllowed(cat ContentSizeCategory) bool {
	cat = cat.effective()
	lo, hi := c.MinimumContentSizeCategory, c.MaximumContentSizeCategory
	if lo != ContentSizeUnspecified && cat < lo {
		return false
	}
	if hi != ContentSizeUnspecified && cat > hi {
		return false
	}
	return true
}

// SetCustomSetting stores an application-defined value.
func (c *Config) SetCustomSetting(key string, value any) {
	if c.CustomSettings == nil {
		c.CustomSettings = map[string]any{}
	}
	c.CustomSettings[key] = value
}

// CustomSetting returns the custom value stored under key if it has type T.
func CustomSetting[T any](c Config, key string) (T, bool) {
	v, ok := c.CustomSettings[key].(T)
	return v, ok
}

// Reset restores every field to its default.
func (c *Config) Reset() {
	*c = DefaultConfig()
}

// Clone returns a deep copy; the sets and maps are not shared with c.
func (c Config) Clone() Config {
	out := c
	out.AutoExcludedClassPrefixes = slices.Clone(c.AutoExcludedClassPrefixes)
	out.ExcludedTags = maps.Clone(c.ExcludedTags)
	out.ExcludedClassNames = maps.Clone(c.ExcludedClassNames)
	out.CustomSettings = maps.Clone(c.CustomSettings)
	return out
}

func (c Config) String() string {
	var b strings.Builder
	b.WriteString("Config:\n")
	fmt.Fprintf(&b, "- Enabled: %v\n", c.Enabled)
	fmt.Fprintf(&b, "- Log Level: %v\n", c.LogLevel)
	fmt.Fprintf(&b, "- Auto Generate VoiceOver Labels: %v\n", c.AutoGenerateVoiceOverLabels)
	fmt.Fprintf(&b, "- Enable Dynamic Type: %v\n", c.EnableDynamicType)
	fmt.Fprintf(&b, "- Preferred Content Size Category: %v\n", c.PreferredContentSizeCategory)
	fmt.Fprintf(&b, "- Enable Color Contrast Optimization: %v\n", c.EnableColorContrastOptimization)
	fmt.Fprintf(&b, "- Minimum Contrast Ratio: %v\n", c.MinimumContrastRatio())
	fmt.Fprintf(&b, "- Custom Settings: %v\n", c.CustomSettings)
	return b.String()
}

// --- YAML loading ---

// configFile mirrors Config for YAML decoding. Pointer fields distinguish
// "absent" from zero so that absent keys keep their defaults.
type configFile struct {
	Enabled  *bool     `yaml:"enabled"`
	LogLevel *LogLevel `yaml:"logLevel"`

	EnableVoiceOverOptimization *bool   `yaml:"enableVoiceOverOptimization"`
	AutoGenerateVoiceOverLabels *bool   `yaml:"autoGenerateVoiceOverLabels"`
	VoiceOverLabelPrefix        *string `yaml:"voiceOverLabelPrefix"`
	VoiceOverLabelSuffix        *string `yaml:"voiceOverLabelSuffix"`

	EnableDynamicType            *bool                `yaml:"enableDynamicType"`
	EnableLargeContentViewer     *bool                `yaml:"enableLargeContentViewer"`
	MinimumContentSizeCategory   *ContentSizeCategory `yaml:"minimumContentSizeCategory"`
	MaximumContentSizeCategory   *ContentSizeCategory `yaml:"maximumContentSizeCategory"`
	PreferredContentSizeCategory *ContentSizeCategory `yaml:"preferredContentSizeCategory"`

	EnableColorContrastOptimization *bool    `yaml:"enableColorContrastOptimization"`
	MinimumContrastRatio            *float64 `yaml:"minimumContrastRatio"`
	PreferredContrastRatio          *float64 `yaml:"preferredContrastRatio"`

	AutoExcludedClassPrefixes []string `yaml:"autoExcludedClassPrefixes"`
	ExcludedTags              []int    `yaml:"excludedTags"`
	ExcludedClassNames        []string `yaml:"excludedClassNames"`
	MinimumElementSize        *struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"minimumElementSize"`

	CustomSettings map[string]any `yaml:"customSettings"`
}

// LoadConfig parses a YAML document into a Config. Keys that are absent
// keep their DefaultConfig values; contrast ratios are clamped the same way
// the setters clamp them.
func LoadConfig(data []byte) (Config, error) {
	var f configFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("a11ykit: parse config: %w", err)
	}
	cfg := DefaultConfig()
	setIf(&cfg.Enabled, f.Enabled)
	setIf(&cfg.LogLevel, f.LogLevel)
	setIf(&cfg.EnableVoiceOverOptimization, f.EnableVoiceOverOptimization)
	setIf(&cfg.AutoGenerateVoiceOverLabels, f.AutoGenerateVoiceOverLabels)
	setIf(&cfg.VoiceOverLabelPrefix, f.VoiceOverLabelPrefix)
	setIf(&cfg.VoiceOverLabelSuffix, f.VoiceOverLabelSuffix)
	setIf(&cfg.EnableDynamicType, f.EnableDynamicType)
	setIf(&cfg.EnableLargeContentViewer, f.EnableLargeContentViewer)
	setIf(&cfg.MinimumContentSizeCategory, f.MinimumContentSizeCategory)
	setIf(&cfg.MaximumContentSizeCategory, f.MaximumContentSizeCategory)
	setIf(&cfg.PreferredContentSizeCategory, f.PreferredContentSizeCategory)
	setIf(&cfg.EnableColorContrastOptimization, f.EnableColorContrastOptimization)
	if f.MinimumContrastRatio != nil {
		if !isFinite(*f.MinimumContrastRatio) {
			return Config{}, fmt.Errorf("a11ykit: config minimumContrastRatio: %v is not a finite number", *f.MinimumContrastRatio)
		}
		cfg.SetMinimumContrastRatio(*f.MinimumContrastRatio)
	}
	if f.PreferredContrastRatio != nil {
		if !isFinite(*f.PreferredContrastRatio) {
			return Config{}, fmt.Errorf("a11ykit: config preferredContrastRatio: %v is not a finite number", *f.PreferredContrastRatio)
		}
		cfg.SetPreferredContrastRatio(*f.PreferredContrastRatio)
	}
	if f.AutoExcludedClassPrefixes != nil {
		cfg.AutoExcludedClassPrefixes = f.AutoExcludedClassPrefixes
	}
	cfg.ExcludeTags(f.ExcludedTags...)
	cfg.ExcludeClassNames(f.ExcludedClassNames...)
	if f.MinimumElementSize != nil {
		cfg.MinimumElementSize = Vec2{f.MinimumElementSize.Width, f.MinimumElementSize.Height}
	}
	for k, v := range f.CustomSettings {
		cfg.SetCustomSetting(k, v)
	}
	return cfg, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
