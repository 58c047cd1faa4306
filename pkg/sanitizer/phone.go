package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var DefaultRegions = []string{"BD"}

type PhoneNormalizer struct {
	regions []string
}

func NewPhoneNormalizer(regions []string) *PhoneNormalizer {
	if len(regions) == 0 {
		regions = DefaultRegions
	}
	return &PhoneNormalizer{regions: regions}
}

// Normalize returns phone in E.164 when it parses as a valid number for one
// of the configured regions. Anything else is returned trimmed.
func (n *PhoneNormalizer) Normalize(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	for _, region := range n.regions {
		parsedNumber, err := phonenumbers.Parse(phone, region)
		if err != nil || !phonenumbers.IsValidNumber(parsedNumber) {
			continue
		}
		return phonenumbers.Format(parsedNumber, phonenumbers.E164)
	}
	return phone
}

func NormalizePhone(phone string) string {
	return NewPhoneNormalizer(DefaultRegions).Normalize(phone)
}
