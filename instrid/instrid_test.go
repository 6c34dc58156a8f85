package instrid

import "testing"

func TestIllegalIsZero(t *testing.T) {
	if Illegal != 0 {
		t.Errorf("Illegal = %d, want 0", Illegal)
	}
	if Illegal.String() != "illegal" {
		t.Errorf("Illegal.String() = %q, want %q", Illegal.String(), "illegal")
	}
}

func TestMaxIDIsLastEnumerator(t *testing.T) {
	if MaxID != VrgatherVi {
		t.Errorf("MaxID = %v, want VrgatherVi", MaxID)
	}
}

func TestStringRoundTripsKnownMnemonics(t *testing.T) {
	cases := map[ID]string{
		Lui:        "lui",
		AmoaddW:    "amoadd_w",
		FcvtWuS:    "fcvt_wu_s",
		CAddi4spn:  "c_addi4spn",
		Crc32cD:    "crc32c_d",
		VrgatherVi: "vrgather_vi",
	}
	for id, want := range cases {
		if got := id.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", int(id), got, want)
		}
	}
}

func TestStringOutOfRange(t *testing.T) {
	if got := ID(-1).String(); got != "illegal" {
		t.Errorf("ID(-1).String() = %q, want %q", got, "illegal")
	}
	if got := ID(MaxID + 1).String(); got != "illegal" {
		t.Errorf("ID(MaxID+1).String() = %q, want %q", got, "illegal")
	}
}
