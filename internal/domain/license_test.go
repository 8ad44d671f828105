package domain

import "testing"

func TestParseLicenseClass(t *testing.T) {
	cases := []struct {
		in   string
		want LicenseClass
	}{
		{"class 1", LicenseClass1},
		{"Class 2", LicenseClass2},
		{"  CLASS 1 ", LicenseClass1},
		{"2", LicenseClass2},
		{"class1", LicenseClass1},
	}

	for _, tc := range cases {
		got, err := ParseLicenseClass(tc.in)
		if err != nil {
			t.Fatalf("ParseLicenseClass(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseLicenseClass(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "class 3", "hgv"} {
		if _, err := ParseLicenseClass(bad); err == nil {
			t.Errorf("ParseLicenseClass(%q): expected error", bad)
		}
	}
}

func TestCanOperate(t *testing.T) {
	cases := []struct {
		driver, route LicenseClass
		want          bool
	}{
		{LicenseClass1, LicenseClass1, true},
		{LicenseClass1, LicenseClass2, true},
		{LicenseClass2, LicenseClass2, true},
		{LicenseClass2, LicenseClass1, false},
		{LicenseUnknown, LicenseClass2, false},
		{LicenseClass1, LicenseUnknown, false},
	}

	for _, tc := range cases {
		if got := CanOperate(tc.driver, tc.route); got != tc.want {
			t.Errorf("CanOperate(%v, %v) = %v, want %v", tc.driver, tc.route, got, tc.want)
		}
	}
}
