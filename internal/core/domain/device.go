package domain

import "strings"

// DeviceUnknown is returned when no classification rule matches.
const DeviceUnknown = "Unknown Device"

// deviceRule maps user-agent tokens to a device label. When contains is
// set every token must appear in the user agent; when anyOf is set one
// appearance suffices.
type deviceRule struct {
	label    string
	contains []string
	anyOf    []string
}

// deviceRules is the classification table, evaluated in order with the
// first match winning. The order is a contract: "android"+"mobile" must
// be tested before bare "android" (phones vs tablets), and "windows
// phone" before bare "windows".
var deviceRules = []deviceRule{
	{label: "iPhone", contains: []string{"iphone"}},
	{label: "iPad", contains: []string{"ipad"}},
	{label: "Android Phone", contains: []string{"android", "mobile"}},
	{label: "Android Tablet", contains: []string{"android"}},
	{label: "Windows Phone", contains: []string{"windows phone"}},
	{label: "Mac", anyOf: []string{"macintosh", "mac os x"}},
	{label: "Windows PC", contains: []string{"windows"}},
	{label: "Linux", contains: []string{"linux"}},
}

// DetectDevice classifies a user-agent string into a coarse device
// label. It is a pure, total function: unmatched or empty input yields
// DeviceUnknown.
func DetectDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	for _, rule := range deviceRules {
		if rule.matches(ua) {
			return rule.label
		}
	}
	return DeviceUnknown
}

func (r deviceRule) matches(ua string) bool {
	for _, token := range r.contains {
		if !strings.Contains(ua, token) {
			return false
		}
	}
	if len(r.anyOf) == 0 {
		return len(r.contains) > 0
	}
	for _, token := range r.anyOf {
		if strings.Contains(ua, token) {
			return true
		}
	}
	return false
}
