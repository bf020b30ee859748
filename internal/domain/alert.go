package domain

import (
	"fmt"
	"strings"
)

// Text формирует текст сообщения оператору о заказе
func (a *OperatorAlert) Text() string {
	if a == nil || a.Order == nil {
		return ""
	}
	o := a.Order

	var b strings.Builder
	switch a.Kind {
	case AlertOrderCanceled:
		fmt.Fprintf(&b, "Order #%d was canceled\n", o.ID)
	default:
		fmt.Fprintf(&b, "New order #%d\n", o.ID)
	}

	if c := o.Customer; c != nil {
		fmt.Fprintf(&b, "Customer: %s", c.Name)
		if c.Phone != "" {
			fmt.Fprintf(&b, ", %s", c.Phone)
		}
		if c.Email != "" {
			fmt.Fprintf(&b, ", %s", c.Email)
		}
		b.WriteString("\n")
	}

	for _, item := range o.Items {
		name := item.ProductName
		if name == "" {
			name = fmt.Sprintf("product %d", item.ProductID)
		}
		fmt.Fprintf(&b, "- %s x%d @ %s\n", name, item.Quantity, item.UnitPrice.StringFixed(2))
	}

	fmt.Fprintf(&b, "Total: %s\n", o.TotalAmount.StringFixed(2))
	if o.Discount.IsPositive() {
		fmt.Fprintf(&b, "Discount: %s", o.Discount.StringFixed(2))
		if o.CouponCode != "" {
			fmt.Fprintf(&b, " (%s)", o.CouponCode)
		}
		b.WriteString("\n")
	}
	if o.WalletAmount.IsPositive() {
		fmt.Fprintf(&b, "Wallet: %s\n", o.WalletAmount.StringFixed(2))
	}
	fmt.Fprintf(&b, "To pay: %s", o.FinalAmount.StringFixed(2))
	if o.PaymentMethod != "" {
		fmt.Fprintf(&b, " by %s", o.PaymentMethod)
	}
	if o.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s", o.Notes)
	}

	return b.String()
}
