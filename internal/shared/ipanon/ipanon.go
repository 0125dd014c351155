package ipanon

import "strings"

// Anonymize zeroes the host part of a client address before it is logged or
// persisted. Dotted-decimal: keep the first three groups, fourth becomes 0.
// Colon-separated: keep the first four groups, terminate with "::".
// Anything else passes through unchanged; empty in, empty out.
//
// The dot check runs first so IPv4-mapped IPv6 addresses truncate as IPv4.
func Anonymize(ip string) string {
	if ip == "" {
		return ""
	}
	if strings.Contains(ip, ".") {
		parts := strings.Split(ip, ".")
		if len(parts) > 3 {
			parts = parts[:3]
		}
		return strings.Join(append(parts, "0"), ".")
	}
	if strings.Contains(ip, ":") {
		parts := strings.Split(ip, ":")
		if len(parts) > 4 {
			parts = parts[:4]
		}
		return strings.Join(parts, ":") + "::"
	}
	return ip
}
