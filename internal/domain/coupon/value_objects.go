package coupon

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode   = errors.New("invalid coupon code format")
	ErrUnknownDiscountType = errors.New("unknown discount type")
)

const (
	SegmentLength    = 4
	SegmentCount     = 3
	segmentSeparator = "-"
)

var segmentRegex = regexp.MustCompile(fmt.Sprintf(`^[A-Za-z0-9]{%d}$`, SegmentLength))

// Code is the grouped form XXXX-XXXX-XXXX that the shopper types into three boxes.
type Code string

// JoinSegments builds a Code from the three input boxes.
func JoinSegments(segments ...string) (Code, error) {
	if len(segments) != SegmentCount {
		return "", ErrInvalidCouponCode
	}
	trimmed := make([]string, 0, SegmentCount)
	for _, s := range segments {
		s = strings.TrimSpace(s)
		if !segmentRegex.MatchString(s) {
			return "", ErrInvalidCouponCode
		}
		trimmed = append(trimmed, s)
	}
	return Code(strings.Join(trimmed, segmentSeparator)), nil
}

func ParseCode(code string) (Code, error) {
	return JoinSegments(strings.Split(strings.TrimSpace(code), segmentSeparator)...)
}

func (c Code) String() string {
	return string(c)
}

func (c Code) Segments() []string {
	return strings.Split(string(c), segmentSeparator)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountAmount     DiscountType = "amount"
)

func ParseDiscountType(s string) (DiscountType, error) {
	switch DiscountType(s) {
	case DiscountPercentage, DiscountAmount:
		return DiscountType(s), nil
	default:
		return "", ErrUnknownDiscountType
	}
}

func (t DiscountType) String() string {
	return string(t)
}
