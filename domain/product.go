package domain

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product document in the "products" collection. The _id is either a plain
// integer (bulk/sample loaded data) or a store-generated ObjectID, so it is
// kept untyped at rest and rendered through IDString.
type Product struct {
	ID          interface{} `bson:"_id" json:"-"`
	Name        string      `bson:"name" json:"name"`
	Category    string      `bson:"category" json:"category"`
	Price       float64     `bson:"price" json:"price"`
	Description *string     `bson:"description,omitempty" json:"description,omitempty"`
	Rating      *float64    `bson:"rating,omitempty" json:"rating,omitempty"`
}

func (p Product) IDString() string {
	switch v := p.ID.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
