package response

import (
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// copyOptions renders money as fixed two-place strings so clients never see
// float rounding artifacts.
var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
	},
}

func money(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}
