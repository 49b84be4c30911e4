package buildinfo

import "testing"

func TestShortPrecedence(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	cases := []struct {
		version, commit string
		want            string
	}{
		{"dev", "unknown", "dev"},
		{"dev", "abc1234", "abc1234"},
		{"v1.2.0", "abc1234", "v1.2.0"},
		{"", "", "dev"},
	}
	for _, tc := range cases {
		Version, Commit = tc.version, tc.commit
		if got := Short(); got != tc.want {
			t.Fatalf("Short() with version=%q commit=%q = %q, want %q", tc.version, tc.commit, got, tc.want)
		}
	}
}
