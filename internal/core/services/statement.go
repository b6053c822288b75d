package services

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/latadairy/dairy_backend/internal/core/domain"
)

// statementTmpl is the HTML body of the monthly bill statement email.
var statementTmpl = template.Must(template.New("statement").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #1e3a8a; color: white; padding: 20px; text-align: center;">
        <h1 style="margin: 0;">Lata Dairy</h1>
        <p style="margin: 5px 0 0 0;">Monthly Bill Statement</p>
    </div>

    <div style="padding: 20px; background: #fdfbf7;">
        <p>Dear <strong>{{.CustomerName}}</strong>,</p>
        <p>Please find below your bill statement for <strong>{{.MonthName}} {{.Year}}</strong>.</p>

        <table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
            <tr style="background: #f5f5f4;">
                <td style="padding: 10px; border: 1px solid #e7e5e4;"><strong>Total Purchases</strong></td>
                <td style="padding: 10px; border: 1px solid #e7e5e4; text-align: right;">&#8377;{{.TotalSales}}</td>
            </tr>
            <tr>
                <td style="padding: 10px; border: 1px solid #e7e5e4;"><strong>Amount Paid</strong></td>
                <td style="padding: 10px; border: 1px solid #e7e5e4; text-align: right;">&#8377;{{.TotalPaid}}</td>
            </tr>
            <tr style="background: #fef2f2;">
                <td style="padding: 10px; border: 1px solid #e7e5e4;"><strong>Balance Due</strong></td>
                <td style="padding: 10px; border: 1px solid #e7e5e4; text-align: right; color: #dc2626;"><strong>&#8377;{{.BalanceDue}}</strong></td>
            </tr>
            <tr>
                <td style="padding: 10px; border: 1px solid #e7e5e4;"><strong>Number of Transactions</strong></td>
                <td style="padding: 10px; border: 1px solid #e7e5e4; text-align: right;">{{.SalesCount}}</td>
            </tr>
        </table>

        <p>Thank you for your continued trust in Lata Dairy.</p>
        <p style="color: #78716c; font-size: 14px;">If you have any questions, please contact us.</p>
    </div>

    <div style="background: #1c1917; color: white; padding: 15px; text-align: center; font-size: 12px;">
        <p style="margin: 0;">&copy; {{.Year}} Lata Dairy. All rights reserved.</p>
    </div>
</div>
`))

type statementData struct {
	CustomerName string
	MonthName    string
	Year         int
	TotalSales   string
	TotalPaid    string
	BalanceDue   string
	SalesCount   int
}

// renderStatement produces the HTML statement body and subject line for a
// bill. Amounts are fixed to two decimal places.
func renderStatement(bill *domain.MonthlyBill) (subject, htmlBody string, err error) {
	data := statementData{
		CustomerName: bill.CustomerName,
		MonthName:    bill.MonthName(),
		Year:         bill.Year,
		TotalSales:   bill.TotalSales.StringFixed(2),
		TotalPaid:    bill.TotalPaid.StringFixed(2),
		BalanceDue:   bill.BalanceDue.StringFixed(2),
		SalesCount:   bill.SalesCount,
	}

	var buf strings.Builder
	if err := statementTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render bill statement: %w", err)
	}

	subject = fmt.Sprintf("Lata Dairy - Bill Statement for %s %d", data.MonthName, data.Year)
	return subject, buf.String(), nil
}
