package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Rakhulsr/go-restaurant/app/models"
	"github.com/Rakhulsr/go-restaurant/app/utils/format"
)

func renderCart(w io.Writer, f *format.Formatter, c models.Cart) {
	state := "closed"
	if c.IsOpen {
		state = "open"
	}
	fmt.Fprintf(w, "Cart (%s, %d items)\n", state, c.ItemCount())
	if c.IsEmpty() {
		fmt.Fprintln(w, "  Your cart is empty")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, item := range c.Items {
		fmt.Fprintf(tw, "  %s\t%s\tx%d\t%s\n", item.ID, item.Name, item.Quantity, f.Money(item.LineTotal()))
	}
	if c.Discount != nil {
		fmt.Fprintf(tw, "  Discount\t%s\t%s%%\t\n", c.Discount.Code, c.Discount.Percent.String())
	}
	fmt.Fprintf(tw, "  Subtotal\t\t\t%s\n", f.Money(c.Subtotal))
	fmt.Fprintf(tw, "  Tax\t\t\t%s\n", f.Money(c.Tax))
	fmt.Fprintf(tw, "  Total\t\t\t%s\n", f.Money(c.Total))
	tw.Flush()
}

func renderMenu(w io.Writer, f *format.Formatter, items []models.MenuItem, favorite func(string) bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, m := range items {
		mark := ""
		if favorite != nil && favorite(m.ID) {
			mark = "*"
		}
		tags := []string{}
		if m.Vegetarian {
			tags = append(tags, "vegetarian")
		}
		tags = append(tags, m.Allergens...)
		fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\t%s\n", m.ID, mark, m.Name, f.Money(m.Price), m.Category, strings.Join(tags, ","))
	}
	tw.Flush()
}

func renderOrder(w io.Writer, f *format.Formatter, o models.Order) {
	fmt.Fprintf(w, "%s  %s %s  %s  %s\n", o.ID, o.Date, o.Time, o.Status, f.Money(o.Total))
	for _, item := range o.Items {
		fmt.Fprintf(w, "    %dx %s  %s\n", item.Quantity, item.Name, f.Money(item.LineTotal()))
	}
	fmt.Fprintf(w, "    Subtotal %s  Tax %s\n", f.Money(o.Subtotal), f.Money(o.Tax))
	if o.DeliveryAddress != "" {
		fmt.Fprintf(w, "    Delivery Address: %s\n", o.DeliveryAddress)
	}
}

func renderReservation(w io.Writer, f *format.Formatter, r models.Reservation) {
	fmt.Fprintf(w, "%s  %s at %s  %d guests  %s\n", r.ID, r.Date, r.Time, r.Guests, r.Name)
	if r.SpecialRequests != "" {
		fmt.Fprintf(w, "    Requests: %s\n", r.SpecialRequests)
	}
	if len(r.PreOrder) == 0 {
		return
	}
	for _, item := range r.PreOrder {
		fmt.Fprintf(w, "    %dx %s  %s\n", item.Quantity, item.Name, f.Money(item.LineTotal()))
	}
	fmt.Fprintf(w, "    Pre-order total %s\n", f.Money(r.PreOrderTotal))
}
