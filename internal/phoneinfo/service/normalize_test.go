package service

import (
	"strings"
	"testing"

	"phone_info_backend/platform/logger"
	"phone_info_backend/platform/phone"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return New(phone.NewProvider(), logger.New("test"))
}

func TestNormalize_CleanupSteps(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "+14155552671", "+14155552671"},
		{"parens and dashes", "+1 (415) 555-2671", "+14155552671"},
		{"international prefix 00", "00442079460958", "+442079460958"},
		{"url encoded", "%2B44%2020%207946%200958", "+442079460958"},
		{"trunk zero in parens", "+44 (0) 20 7946 0958", "+442079460958"},
		{"trunk zero in brackets", "+44 [0] 20 7946 0958", "+442079460958"},
		{"slashes", "+44/20/79460958", "+442079460958"},
		{"periods", "+44.20.79460958", "+442079460958"},
		{"extension word", "+44 20 7946 0958 ext 123", "+442079460958"},
		{"extension colon", "+442079460958ext:9", "+442079460958"},
		{"bare international length gets plus", "442079460958", "+442079460958"},
		{"leading parens keeps plus", "(+44) 2079460958", "+442079460958"},
		{"nanp local stays national", "(415) 555-2671", "4155552671"},
		{"ten digits no speculative plus", "4155552671", "4155552671"},
		{"mexico mobile with spaces", "+52 1 55 1234 5678", "+5215512345678"},
		{"whitespace trimmed", "  +14155552671  ", "+14155552671"},
		{"literal exception short circuit", "+44 7700 900123", "+447700900123"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := svc.normalize(tc.in)
			if got != tc.want {
				t.Fatalf("normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	svc := newTestService(t)

	corpus := []string{
		"+14155552671",
		"(415) 555-2671",
		"00447911123456",
		"+44 (0) 7911 123456",
		"+52 1 55 1234 5678",
		"091 123-4567",
		"12345",
		"abcdefghij",
		"+",
		"",
		"+44 20 7946 0958 ext 123",
		"+1234+5678",
		"%2B61%204%201234%205678",
	}

	for _, in := range corpus {
		once := svc.normalize(in)
		twice := svc.normalize(once)
		if once != twice {
			t.Errorf("normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalize_DigitsOnlyAfterSuccessfulParse(t *testing.T) {
	svc := newTestService(t)

	inputs := []string{
		"+14155552671",
		"(415) 555-2671",
		"+44 (0) 7911 123456",
		"00442079460958",
		"442079460958",
		"+61 4 1234 5678",
	}

	for _, in := range inputs {
		normalized := svc.normalize(in)
		if _, err := svc.meta.Parse(normalized, "US"); err != nil {
			continue
		}
		rest := strings.TrimPrefix(normalized, "+")
		for i := 0; i < len(rest); i++ {
			if !isDigit(rest[i]) {
				t.Fatalf("normalize(%q) = %q contains non-digit %q", in, normalized, rest[i])
			}
		}
	}
}
