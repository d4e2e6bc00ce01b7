package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidIPv4(t *testing.T) {
	valid := []string{"192.168.1.50", "10.0.0.1", "255.255.255.255", "0.0.0.0"}
	for _, ip := range valid {
		assert.True(t, validIPv4(ip), ip)
	}

	invalid := []string{
		"",
		"fpp.local",
		"256.1.1.1",
		"192.168.1",
		"192.168.1.50.1",
		"::1",
		"2001:db8::1",
		"::ffff:192.168.1.50",
		"192.168.1.50 ",
	}
	for _, ip := range invalid {
		assert.False(t, validIPv4(ip), ip)
	}
}

func TestParseParams(t *testing.T) {
	assert.Empty(t, parseParams(""))

	got := parseParams("merge=true, limit=10 ,raw")
	assert.Equal(t, map[string]string{
		"merge": "true",
		"limit": "10",
		"raw":   "",
	}, got)
}
