package region

import (
	"errors"
	"fmt"
	"strings"
)

// Region is a LibreLinkUp geographic API partition, identified by its short code.
type Region string

const (
	EU  Region = "EU"
	EU2 Region = "EU2"
	US  Region = "US"
	AE  Region = "AE"
	AP  Region = "AP"
	AU  Region = "AU"
	CA  Region = "CA"
	DE  Region = "DE"
	FR  Region = "FR"
	JP  Region = "JP"
	LA  Region = "LA"

	Default = US
)

var ErrUnknownRegion = errors.New("unknown region")

var baseURLs = map[Region]string{
	EU:  "https://api-eu.libreview.io",
	EU2: "https://api-eu2.libreview.io",
	US:  "https://api.libreview.io",
	AE:  "https://api-ae.libreview.io",
	AP:  "https://api-ap.libreview.io",
	AU:  "https://api-au.libreview.io",
	CA:  "https://api-ca.libreview.io",
	DE:  "https://api-de.libreview.io",
	FR:  "https://api-fr.libreview.io",
	JP:  "https://api-jp.libreview.io",
	LA:  "https://api-la.libreview.io",
}

var all = []Region{EU, EU2, US, AE, AP, AU, CA, DE, FR, JP, LA}

// All returns every supported region in a stable order.
func All() []Region {
	result := make([]Region, len(all))
	copy(result, all)
	return result
}

// Parse resolves a region code, ignoring case.
func Parse(code string) (Region, error) {
	for _, r := range all {
		if strings.EqualFold(string(r), strings.TrimSpace(code)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRegion, code)
}

func (r Region) IsValid() bool {
	_, ok := baseURLs[r]
	return ok
}

// BaseURL returns the API host for the region, or an empty string for an unknown region.
func (r Region) BaseURL() string {
	return baseURLs[r]
}

func (r Region) String() string {
	return string(r)
}
