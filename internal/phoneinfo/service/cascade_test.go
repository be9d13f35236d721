package service

import (
	"errors"
	"testing"

	"phone_info_backend/platform/apperr"
	"phone_info_backend/platform/logger"
	"phone_info_backend/platform/phone"
)

// scriptedMetadata drives the cascade from a table of accepted parse inputs.
type parseCall struct {
	text   string
	region string
}

type scriptedMetadata struct {
	accept map[string]*phone.Number // keyed by text|region
	calls  []parseCall
}

func (m *scriptedMetadata) Parse(text, region string) (*phone.Number, error) {
	m.calls = append(m.calls, parseCall{text: text, region: region})
	if n, ok := m.accept[text+"|"+region]; ok {
		return n, nil
	}
	return nil, errors.New("the phone number supplied is not a number")
}

func (m *scriptedMetadata) IsValidNumber(*phone.Number) bool              { return true }
func (m *scriptedMetadata) NumberType(*phone.Number) phone.NumberType     { return phone.FixedLine }
func (m *scriptedMetadata) FormatInternational(*phone.Number) string      { return "" }
func (m *scriptedMetadata) CountryNameForCallingCode(int) (string, bool)  { return "", false }
func (m *scriptedMetadata) CountryNameForNumber(*phone.Number) (string, bool) {
	return "", false
}
func (m *scriptedMetadata) RegionDescription(*phone.Number) string { return "" }
func (m *scriptedMetadata) CarrierName(*phone.Number) string       { return "" }

func newScriptedService(accept map[string]*phone.Number) (*Service, *scriptedMetadata) {
	meta := &scriptedMetadata{accept: accept}
	return New(meta, logger.New("test")), meta
}

func TestParseCascade_FirstAttemptWins(t *testing.T) {
	want := &phone.Number{CallingCode: 44, NationalNumber: 2079460958}
	svc, meta := newScriptedService(map[string]*phone.Number{
		"+442079460958|GB": want,
	})

	got, err := svc.parseCascade("+44 20 7946 0958", "+442079460958", "GB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected first-attempt number, got %+v", got)
	}
	if len(meta.calls) != 1 {
		t.Fatalf("expected 1 parse call, got %d", len(meta.calls))
	}
}

func TestParseCascade_EmbeddedCallingCodeRecovery(t *testing.T) {
	want := &phone.Number{CallingCode: 44, NationalNumber: 7911123456}
	svc, meta := newScriptedService(map[string]*phone.Number{
		"+447911123456|GB": want,
	})

	// Raw carries 44 plus ten national digits but the normalized form does
	// not parse; the cascade must re-prefix and retry with GB.
	got, err := svc.parseCascade("44 7911 123456", "4479111234567???", "US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected recovered number, got %+v", got)
	}

	recovered := meta.calls[1]
	if recovered.text != "+447911123456" || recovered.region != "GB" {
		t.Fatalf("expected retry with +447911123456/GB, got %s/%s", recovered.text, recovered.region)
	}
}

func TestParseCascade_ExhaustionReturnsInvalidFormat(t *testing.T) {
	svc, meta := newScriptedService(nil)

	_, err := svc.parseCascade("not-a-number", "notanumber", "US")
	if err == nil {
		t.Fatal("expected error")
	}
	if !apperr.Is(err, apperr.KindInvalidFormat) {
		t.Fatalf("expected InvalidFormat, got %v", err)
	}
	// Initial attempt plus the final retry; no pattern matched in between.
	if len(meta.calls) != 2 {
		t.Fatalf("expected 2 parse calls, got %d", len(meta.calls))
	}
}

func TestParseCascade_NationalLengthBoundsRespected(t *testing.T) {
	svc, meta := newScriptedService(nil)

	// 44 followed by only six digits: outside the GB rule's bounds, so no
	// re-prefixed attempt may happen.
	_, err := svc.parseCascade("44123456", "44123456x", "US")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, call := range meta.calls {
		if call.region == "GB" {
			t.Fatalf("unexpected GB retry for out-of-bounds national length: %+v", meta.calls)
		}
	}
}
