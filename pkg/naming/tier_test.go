// Test Type: Unit Test
// Description: Tests for size tier parsing and Base Concept derivation

package naming_test

import (
	"testing"

	"github.com/arthur-debert/svgset/pkg/naming"
	"github.com/stretchr/testify/assert"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantStem string
		wantTier naming.Tier
		wantOK   bool
	}{
		{name: "tier_64", input: "acme-widget-64", wantStem: "acme-widget", wantTier: naming.Tier64, wantOK: true},
		{name: "tier_48", input: "widget-48", wantStem: "widget", wantTier: naming.Tier48, wantOK: true},
		{name: "tier_32", input: "widget-32", wantStem: "widget", wantTier: naming.Tier32, wantOK: true},
		{name: "tier_16", input: "widget-16", wantStem: "widget", wantTier: naming.Tier16, wantOK: true},
		{name: "no_suffix", input: "widget", wantStem: "widget", wantTier: naming.TierNone},
		{name: "unknown_size", input: "widget-128", wantStem: "widget-128", wantTier: naming.TierNone},
		{name: "zero_padded", input: "widget-064", wantStem: "widget-064", wantTier: naming.TierNone},
		{name: "size_inside_name", input: "ec2-64-bit", wantStem: "ec2-64-bit", wantTier: naming.TierNone},
		{name: "bare_number", input: "-64", wantStem: "-64", wantTier: naming.TierNone},
		{name: "trailing_hyphen", input: "widget-", wantStem: "widget-", wantTier: naming.TierNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, tier, ok := naming.ParseTier(tt.input)
			assert.Equal(t, tt.wantStem, stem)
			assert.Equal(t, tt.wantTier, tier)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestTierHelpers(t *testing.T) {
	assert.Equal(t, "-64", naming.Tier64.Suffix())
	assert.Equal(t, "", naming.TierNone.Suffix())
	assert.Equal(t, "widget-48", naming.Sibling("widget", naming.Tier48))

	assert.True(t, naming.Tier32.Promotable())
	assert.False(t, naming.Tier16.Promotable())
	assert.False(t, naming.TierNone.Promotable())

	assert.Equal(t, []naming.Tier{naming.Tier64, naming.Tier48}, naming.Tier32.Larger())
	assert.Empty(t, naming.Tier64.Larger())
	assert.Equal(t, "48", naming.Tier48.String())
}

func TestBaseConcept(t *testing.T) {
	brands := []string{"amazon", "acme-"}

	tests := []struct {
		name     string
		stem     string
		expected string
	}{
		{name: "brand_stripped", stem: "amazon-ec2", expected: "ec2"},
		{name: "brand_with_trailing_hyphen_in_config", stem: "acme-widget", expected: "widget"},
		{name: "brand_must_be_whole_token", stem: "amazonia-river", expected: "amazonia-river"},
		{name: "brand_only", stem: "amazon", expected: "amazon"},
		{name: "brand_not_leading", stem: "aws-amazon-ec2", expected: "aws-amazon-ec2"},
		{name: "no_brand", stem: "widget", expected: "widget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, naming.BaseConcept(tt.stem, brands))
		})
	}
}
