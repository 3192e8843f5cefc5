package ledger

import "testing"

func TestDepositURI(t *testing.T) {
	cases := map[string]struct {
		BaseUri   string
		DepositID int64
		Want      string
	}{
		"pointer is the base followed by the id": {
			BaseUri:   "https://deposits.example.com/",
			DepositID: 42,
			Want:      "https://deposits.example.com/42",
		},
		"no configured base means no pointer": {
			BaseUri:   "",
			DepositID: 42,
			Want:      "",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			conf := Configuration{BaseUri: tc.BaseUri}
			if got := conf.DepositURI(tc.DepositID); got != tc.Want {
				t.Fatalf("want %q, got %q", tc.Want, got)
			}
		})
	}
}
