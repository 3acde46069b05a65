package domain

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductKeyKind int

const (
	KeyInvalid ProductKeyKind = iota
	KeyInteger
	KeyObjectID
)

// ProductKey is the resolved form of a caller-supplied product identifier.
// Products loaded from sample data carry integer primary keys while
// store-created documents use ObjectIDs, so both have to be accepted
// transparently.
type ProductKey struct {
	Kind     ProductKeyKind
	Int      int64
	ObjectID primitive.ObjectID
}

// ResolveProductKey tries the base-10 integer interpretation first, then the
// 24-character hex ObjectID interpretation.
func ResolveProductKey(raw string) (ProductKey, error) {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ProductKey{Kind: KeyInteger, Int: n}, nil
	}

	if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
		return ProductKey{Kind: KeyObjectID, ObjectID: oid}, nil
	}

	return ProductKey{}, ErrInvalidProductID
}

// Filter returns the value to match against _id. Mongo compares numeric
// types loosely, so an int64 filter matches int32 documents as well.
func (k ProductKey) Filter() interface{} {
	switch k.Kind {
	case KeyInteger:
		return k.Int
	case KeyObjectID:
		return k.ObjectID
	default:
		return nil
	}
}

func (k ProductKey) String() string {
	switch k.Kind {
	case KeyInteger:
		return strconv.FormatInt(k.Int, 10)
	case KeyObjectID:
		return k.ObjectID.Hex()
	default:
		return ""
	}
}
