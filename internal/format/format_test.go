package format

import (
	"testing"
	"time"
)

func TestFormatDate_LongForm(t *testing.T) {
	f := New("en-US", time.UTC)
	if got := f.FormatDate("2024-03-05"); got != "March 5, 2024" {
		t.Fatalf("FormatDate = %q, want March 5, 2024", got)
	}
}

func TestFormatDate_DateOnlyIgnoresLocation(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	f := New("en-US", newYork)
	if got := f.FormatDate("2024-03-05"); got != "March 5, 2024" {
		t.Fatalf("FormatDate = %q, want calendar date unchanged", got)
	}
	if got := f.FormatDate("2024-03-05T02:00:00Z"); got != "March 4, 2024" {
		t.Fatalf("FormatDate with zone = %q, want shifted to March 4, 2024", got)
	}
}

func TestFormatDate_Locales(t *testing.T) {
	cases := []struct {
		locale string
		want   string
	}{
		{locale: "en-US", want: "March 5, 2024"},
		{locale: "en_GB.UTF-8", want: "5 March 2024"},
		{locale: "de_DE.UTF-8", want: "5. März 2024"},
		{locale: "fr-FR", want: "5 mars 2024"},
		{locale: "es", want: "5 de marzo de 2024"},
		{locale: "C", want: "March 5, 2024"},
		{locale: "", want: "March 5, 2024"},
	}
	for _, tc := range cases {
		if got := New(tc.locale, time.UTC).FormatDate("2024-03-05"); got != tc.want {
			t.Fatalf("FormatDate(%s) = %q, want %q", tc.locale, got, tc.want)
		}
	}
}

func TestFormatDate_Invalid(t *testing.T) {
	f := New("en-US", time.UTC)
	for _, value := range []string{"", "yesterday", "2024-13-40"} {
		if got := f.FormatDate(value); got != InvalidDate {
			t.Fatalf("FormatDate(%q) = %q, want %q", value, got, InvalidDate)
		}
	}
}

func TestFormatTime_HourMinute(t *testing.T) {
	us := New("en-US", time.UTC)
	gb := New("en-GB", time.UTC)
	cases := []struct {
		value  string
		wantUS string
		wantGB string
	}{
		{value: "14:30:59", wantUS: "02:30 PM", wantGB: "14:30"},
		{value: "09:05", wantUS: "09:05 AM", wantGB: "09:05"},
		{value: "00:00:00.250", wantUS: "12:00 AM", wantGB: "00:00"},
	}
	for _, tc := range cases {
		if got := us.FormatTime(tc.value); got != tc.wantUS {
			t.Fatalf("en-US FormatTime(%q) = %q, want %q", tc.value, got, tc.wantUS)
		}
		if got := gb.FormatTime(tc.value); got != tc.wantGB {
			t.Fatalf("en-GB FormatTime(%q) = %q, want %q", tc.value, got, tc.wantGB)
		}
	}
}

func TestFormatTime_ConvertsFromUTC(t *testing.T) {
	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	if got := New("de", plusTwo).FormatTime("22:15"); got != "00:15" {
		t.Fatalf("FormatTime = %q, want 00:15", got)
	}
}

func TestFormatTime_Invalid(t *testing.T) {
	f := New("en-US", time.UTC)
	for _, value := range []string{"", "noon", "25:00"} {
		if got := f.FormatTime(value); got != InvalidDate {
			t.Fatalf("FormatTime(%q) = %q, want %q", value, got, InvalidDate)
		}
	}
}

func TestLocaleFromEnv(t *testing.T) {
	env := map[string]string{"LANG": "fr_FR.UTF-8", "LC_TIME": "de_DE.UTF-8"}
	got := LocaleFromEnv(func(k string) string { return env[k] })
	if got != "de_DE.UTF-8" {
		t.Fatalf("expected LC_TIME to win over LANG, got %q", got)
	}
	if got := LocaleFromEnv(func(string) string { return "" }); got != "" {
		t.Fatalf("expected empty locale, got %q", got)
	}
}
