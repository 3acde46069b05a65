package domain

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResolveProductKey_Integer(t *testing.T) {
	cases := map[string]int64{
		"1":                   1,
		"0":                   0,
		"999":                 999,
		"-5":                  -5,
		"9223372036854775807": 9223372036854775807,
	}

	for raw, want := range cases {
		key, err := ResolveProductKey(raw)
		if err != nil {
			t.Fatalf("ResolveProductKey(%q) returned error: %v", raw, err)
		}
		if key.Kind != KeyInteger {
			t.Fatalf("ResolveProductKey(%q) kind = %v, want KeyInteger", raw, key.Kind)
		}
		if key.Int != want {
			t.Errorf("ResolveProductKey(%q) = %d, want %d", raw, key.Int, want)
		}
		if got, ok := key.Filter().(int64); !ok || got != want {
			t.Errorf("Filter() for %q = %v, want int64 %d", raw, key.Filter(), want)
		}
	}
}

func TestResolveProductKey_ObjectID(t *testing.T) {
	raw := "507f1f77bcf86cd799439011"

	key, err := ResolveProductKey(raw)
	if err != nil {
		t.Fatalf("ResolveProductKey(%q) returned error: %v", raw, err)
	}
	if key.Kind != KeyObjectID {
		t.Fatalf("kind = %v, want KeyObjectID", key.Kind)
	}
	if key.ObjectID.Hex() != raw {
		t.Errorf("ObjectID = %s, want %s", key.ObjectID.Hex(), raw)
	}
	if _, ok := key.Filter().(primitive.ObjectID); !ok {
		t.Errorf("Filter() = %T, want primitive.ObjectID", key.Filter())
	}
	if key.String() != raw {
		t.Errorf("String() = %s, want %s", key.String(), raw)
	}
}

func TestResolveProductKey_Invalid(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"12.5",
		"507f1f77bcf86cd79943901",   // 23 chars
		"507f1f77bcf86cd7994390111", // 25 chars
		"g07f1f77bcf86cd799439011",  // not hex
		"18446744073709551616",      // overflows int64, not hex either
	}

	for _, raw := range cases {
		_, err := ResolveProductKey(raw)
		if !errors.Is(err, ErrInvalidProductID) {
			t.Errorf("ResolveProductKey(%q) error = %v, want ErrInvalidProductID", raw, err)
		}
	}
}
