package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Pricing представляет результат расчета стоимости заказа
type Pricing struct {
	Total    decimal.Decimal
	Discount decimal.Decimal
	Wallet   decimal.Decimal
	Final    decimal.Decimal
}

// DiscountFor вычисляет скидку купона для суммы total.
// Процентная скидка берется от total, фиксированная не превышает total.
func (c *Coupon) DiscountFor(total decimal.Decimal) decimal.Decimal {
	if c == nil || !total.IsPositive() || !c.Value.IsPositive() {
		return decimal.Zero
	}

	var amount decimal.Decimal
	switch c.Kind {
	case DiscountPercentage:
		amount = total.Mul(c.Value).Div(hundred)
	case DiscountFixed:
		amount = decimal.Min(c.Value, total)
	default:
		return decimal.Zero
	}

	return decimal.Min(amount, total).Round(2)
}

// Price рассчитывает стоимость заказа по единому правилу:
// final = max(0, total - discount - wallet), при этом wallet не превышает остаток к оплате.
func Price(total decimal.Decimal, coupon *Coupon, walletAmount decimal.Decimal) Pricing {
	total = total.Round(2)
	discount := coupon.DiscountFor(total)
	payable := total.Sub(discount)

	wallet := decimal.Max(walletAmount, decimal.Zero)
	wallet = decimal.Min(wallet, payable).Round(2)

	final := decimal.Max(payable.Sub(wallet), decimal.Zero)

	return Pricing{
		Total:    total,
		Discount: discount,
		Wallet:   wallet,
		Final:    final,
	}
}

// SumItems считает сумму позиций заказа по зафиксированным ценам
func SumItems(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// CoinsFor вычисляет количество монет за доставленный заказ: floor(final / perCoin)
func CoinsFor(final decimal.Decimal, perCoin int64) int64 {
	if perCoin <= 0 || !final.IsPositive() {
		return 0
	}
	return final.Div(decimal.NewFromInt(perCoin)).Floor().IntPart()
}
