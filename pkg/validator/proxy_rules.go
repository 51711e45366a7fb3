package validator

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// proxySchemes is the explicit allow-list of proxy URL schemes.
var proxySchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
	"ftps":  true,
}

// ProxyURL validates that a string is a well-formed proxy URL. An empty
// string passes, mirroring an unset optional argument.
func ProxyURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := ValidateProxyURL(value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s is not a valid proxy path", value),
			Kind:    ValueError,
		},
	}
}

// ValidateProxyURL validates a proxy URL: scheme must be http, https, ftp or
// ftps, and the host must be a domain name, "localhost", or an IPv4 address,
// with an optional port and path. The empty string is accepted and returned
// unchanged so optional proxy arguments pass through.
func ValidateProxyURL(value string) (string, error) {
	if value == "" {
		return value, nil
	}

	u, err := url.Parse(value)
	if err != nil {
		return "", fmt.Errorf("%w: %s is not a valid proxy path", ErrInvalidValue, value)
	}

	if !proxySchemes[strings.ToLower(u.Scheme)] || u.Host == "" {
		return "", fmt.Errorf("%w: %s is not a valid proxy path", ErrInvalidValue, value)
	}

	if !validProxyHost(u.Hostname()) {
		return "", fmt.Errorf("%w: %s is not a valid proxy path", ErrInvalidValue, value)
	}

	return value, nil
}

func validProxyHost(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}

	if ip := net.ParseIP(host); ip != nil {
		return ip.To4() != nil
	}

	// Domain names need at least two valid labels.
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !validDomainLabel(label) {
			return false
		}
	}
	return true
}

func validDomainLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
		return false
	}
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}
