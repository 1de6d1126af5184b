package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Bucket identifies one denomination face value.
type Bucket string

// The ten denomination buckets handled by the vault. The 40-shilling note is
// a real face value in circulation, not a typo.
const (
	BucketOnes         Bucket = "ones"
	BucketFives        Bucket = "fives"
	BucketTens         Bucket = "tens"
	BucketTwenties     Bucket = "twenties"
	BucketForties      Bucket = "forties"
	BucketFifties      Bucket = "fifties"
	BucketHundreds     Bucket = "hundreds"
	BucketTwoHundreds  Bucket = "twoHundreds"
	BucketFiveHundreds Bucket = "fiveHundreds"
	BucketThousands    Bucket = "thousands"
)

// Buckets lists all buckets in ascending face-value order.
var Buckets = []Bucket{
	BucketOnes,
	BucketFives,
	BucketTens,
	BucketTwenties,
	BucketForties,
	BucketFifties,
	BucketHundreds,
	BucketTwoHundreds,
	BucketFiveHundreds,
	BucketThousands,
}

var faceValues = map[Bucket]int64{
	BucketOnes:         1,
	BucketFives:        5,
	BucketTens:         10,
	BucketTwenties:     20,
	BucketForties:      40,
	BucketFifties:      50,
	BucketHundreds:     100,
	BucketTwoHundreds:  200,
	BucketFiveHundreds: 500,
	BucketThousands:    1000,
}

// FaceValue returns the currency value of a single note in the bucket.
func FaceValue(b Bucket) int64 {
	return faceValues[b]
}

// DenominationVector is a breakdown of a cash amount by note face value.
// Values are note counts. Counts may go negative while a calculation is in
// flight (the certificate reverse-walk depends on that); Validate rejects
// negative counts for vectors at rest.
type DenominationVector struct {
	Ones         int64 `json:"ones"`
	Fives        int64 `json:"fives"`
	Tens         int64 `json:"tens"`
	Twenties     int64 `json:"twenties"`
	Forties      int64 `json:"forties"`
	Fifties      int64 `json:"fifties"`
	Hundreds     int64 `json:"hundreds"`
	TwoHundreds  int64 `json:"twoHundreds"`
	FiveHundreds int64 `json:"fiveHundreds"`
	Thousands    int64 `json:"thousands"`
}

// Count returns the note count for a bucket.
func (v DenominationVector) Count(b Bucket) int64 {
	switch b {
	case BucketOnes:
		return v.Ones
	case BucketFives:
		return v.Fives
	case BucketTens:
		return v.Tens
	case BucketTwenties:
		return v.Twenties
	case BucketForties:
		return v.Forties
	case BucketFifties:
		return v.Fifties
	case BucketHundreds:
		return v.Hundreds
	case BucketTwoHundreds:
		return v.TwoHundreds
	case BucketFiveHundreds:
		return v.FiveHundreds
	case BucketThousands:
		return v.Thousands
	}
	return 0
}

// WithCount returns a copy of the vector with the bucket's count replaced.
func (v DenominationVector) WithCount(b Bucket, n int64) DenominationVector {
	switch b {
	case BucketOnes:
		v.Ones = n
	case BucketFives:
		v.Fives = n
	case BucketTens:
		v.Tens = n
	case BucketTwenties:
		v.Twenties = n
	case BucketForties:
		v.Forties = n
	case BucketFifties:
		v.Fifties = n
	case BucketHundreds:
		v.Hundreds = n
	case BucketTwoHundreds:
		v.TwoHundreds = n
	case BucketFiveHundreds:
		v.FiveHundreds = n
	case BucketThousands:
		v.Thousands = n
	}
	return v
}

// Total returns the cash value of the vector: sum of count times face value
// over all buckets.
func (v DenominationVector) Total() decimal.Decimal {
	var total int64
	for _, b := range Buckets {
		total += v.Count(b) * faceValues[b]
	}
	return decimal.NewFromInt(total)
}

// Add returns the per-bucket sum of v and o.
func (v DenominationVector) Add(o DenominationVector) DenominationVector {
	result := v
	for _, b := range Buckets {
		result = result.WithCount(b, v.Count(b)+o.Count(b))
	}
	return result
}

// Sub returns the per-bucket difference v minus o. Results are not clamped at
// zero: the certificate builder subtracts future credits from the live vector
// and intermediate counts legitimately dip negative before netting out.
func (v DenominationVector) Sub(o DenominationVector) DenominationVector {
	result := v
	for _, b := range Buckets {
		result = result.WithCount(b, v.Count(b)-o.Count(b))
	}
	return result
}

// IsZero reports whether every bucket count is zero.
func (v DenominationVector) IsZero() bool {
	return v == DenominationVector{}
}

// Validate rejects negative counts. Applied to vectors at rest (cash counts,
// movement inputs), never to intermediate calculation results.
func (v DenominationVector) Validate() error {
	for _, b := range Buckets {
		if v.Count(b) < 0 {
			return fmt.Errorf("%w: %s is %d", ErrNegativeDenomination, b, v.Count(b))
		}
	}
	return nil
}

// BucketDiff classifies the signed difference for one bucket.
type BucketDiff struct {
	Value      int64 `json:"value"`
	IsPositive bool  `json:"is_positive"`
	IsNegative bool  `json:"is_negative"`
	IsZero     bool  `json:"is_zero"`
}

// Diff returns the per-bucket signed difference actual minus expected,
// classified for display.
func Diff(expected, actual DenominationVector) map[Bucket]BucketDiff {
	result := make(map[Bucket]BucketDiff, len(Buckets))
	for _, b := range Buckets {
		d := actual.Count(b) - expected.Count(b)
		result[b] = BucketDiff{
			Value:      d,
			IsPositive: d > 0,
			IsNegative: d < 0,
			IsZero:     d == 0,
		}
	}
	return result
}
