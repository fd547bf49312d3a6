package wikiloc

import (
	"regexp"
	"strconv"
)

// dmsPattern matches a degrees/minutes/seconds angle with a hemisphere
// letter, e.g. 60°09′33.2″N. Seconds may carry a fractional part.
var dmsPattern = regexp.MustCompile(`(\d+)°(\d+)′(\d+(?:\.\d+)?)″([NSEW])`)

// ParseDMS converts a DMS angle string like "60°09′33.2″N" to signed
// decimal degrees. Southern and western hemispheres yield negative values.
// Returns EINVALID if the string does not match the DMS pattern; callers
// should treat that as "not parseable here", not as a hard failure.
func ParseDMS(s string) (float64, error) {
	m := dmsPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, Errorf(EINVALID, "not a DMS coordinate: %q", s)
	}

	degrees, _ := strconv.ParseFloat(m[1], 64)
	minutes, _ := strconv.ParseFloat(m[2], 64)
	seconds, _ := strconv.ParseFloat(m[3], 64)

	decimal := degrees + minutes/60 + seconds/3600
	if m[4] == "S" || m[4] == "W" {
		decimal = -decimal
	}
	return decimal, nil
}
