package naming

import (
	"strconv"
	"strings"
)

// Tier is a recognized size suffix.
type Tier int

const (
	TierNone Tier = 0
	Tier16   Tier = 16
	Tier32   Tier = 32
	Tier48   Tier = 48
	Tier64   Tier = 64
)

// Tiers lists the recognized tiers from most to least preferred.
var Tiers = []Tier{Tier64, Tier48, Tier32, Tier16}

// Suffix returns the name suffix for the tier, e.g. "-48".
func (t Tier) Suffix() string {
	if t == TierNone {
		return ""
	}
	return "-" + strconv.Itoa(int(t))
}

// Promotable reports whether the tier can own a Base Concept alias.
// The 16 tier is terminal.
func (t Tier) Promotable() bool {
	return t == Tier64 || t == Tier48 || t == Tier32
}

// Larger returns the recognized tiers above t, largest first.
func (t Tier) Larger() []Tier {
	var larger []Tier
	for _, tier := range Tiers {
		if tier > t {
			larger = append(larger, tier)
		}
	}
	return larger
}

func (t Tier) String() string {
	if t == TierNone {
		return "none"
	}
	return strconv.Itoa(int(t))
}

// ParseTier splits name into stem and tier. ok is false when name carries
// no recognized suffix, in which case stem is name unchanged.
func ParseTier(name string) (stem string, tier Tier, ok bool) {
	i := strings.LastIndexByte(name, '-')
	if i <= 0 || i == len(name)-1 {
		return name, TierNone, false
	}
	n, err := strconv.Atoi(name[i+1:])
	if err != nil {
		return name, TierNone, false
	}
	for _, t := range Tiers {
		if int(t) == n && name[i+1:] == strconv.Itoa(n) {
			return name[:i], t, true
		}
	}
	return name, TierNone, false
}

// Sibling returns the name the given tier variant of stem would carry.
func Sibling(stem string, tier Tier) string {
	return stem + tier.Suffix()
}

// BaseConcept strips a leading brand token from stem. Brands are matched
// as whole hyphen-delimited prefixes, first match wins.
func BaseConcept(stem string, brands []string) string {
	for _, brand := range brands {
		brand = strings.TrimSuffix(brand, "-")
		if brand == "" {
			continue
		}
		if rest, found := strings.CutPrefix(stem, brand+"-"); found && rest != "" {
			return rest
		}
	}
	return stem
}
