package store

import "testing"

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "3", want: 3},
		{in: " 12 ", want: 12},
		{in: "0", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "2.5", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseQuantity(tc.in)
		if tc.wantErr != (err != nil) {
			t.Errorf("ParseQuantity(%q): err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseQuantity(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseStock(t *testing.T) {
	if got, err := ParseStock("0"); err != nil || got != 0 {
		t.Errorf("ParseStock(0) = %d, %v; zero stock is valid", got, err)
	}
	if _, err := ParseStock("-4"); err == nil {
		t.Error("want an error for negative stock")
	}
}

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{in: "3500", want: M(3500)},
		{in: "49.90", want: M(49.9)},
		{in: "0", want: M(0)},
		{in: "-1", wantErr: true},
		{in: "R$ 10", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParsePrice(tc.in)
		if tc.wantErr != (err != nil) {
			t.Errorf("ParsePrice(%q): err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && !got.Equal(tc.want) {
			t.Errorf("ParsePrice(%q) = %s, want %s", tc.in, got.Amount(), tc.want.Amount())
		}
	}
}

func TestRequireText(t *testing.T) {
	if got, err := RequireText("name", "  Loja  "); err != nil || got != "Loja" {
		t.Errorf("RequireText = %q, %v", got, err)
	}
	if _, err := RequireText("name", "   "); err == nil {
		t.Error("want an error for blank input")
	}
}
