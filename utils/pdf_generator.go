package utils

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"fleetlink/models"
)

// GenerateInvoicePDF renders the order invoice template twice (office copy
// plus client copy) and prints the combined HTML to an A4 PDF through
// headless Chrome. Each copy stays whole on a page.
func GenerateInvoicePDF(order *models.Order) ([]byte, error) {
	if order == nil {
		return nil, nil
	}

	formattedDate := "-"
	if !order.CreatedAt.IsZero() {
		formattedDate = order.CreatedAt.Format("02-Jan-2006")
	}

	route := fmt.Sprintf("%s -> %s", order.Transport.Source.City, order.Transport.Destination.City)

	balance := 0.0
	if order.Payment.RemainingAmount != nil {
		balance = *order.Payment.RemainingAmount
	}

	copyTitles := []string{"Office Copy", "Client Copy"}

	tmpl, err := template.ParseFiles("templates/invoice_template.html")
	if err != nil {
		return nil, err
	}

	var fullHTML bytes.Buffer
	for _, title := range copyTitles {
		data := models.InvoicePDFData{
			Order:       order,
			Date:        formattedDate,
			Route:       route,
			PaidInWords: NumberToCurrencyWords(order.Payment.Amount),
			Balance:     balance,
			CopyTitle:   title,
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, err
		}

		fullHTML.WriteString("<div class='invoice-copy'>")
		fullHTML.Write(buf.Bytes())
		fullHTML.WriteString("</div>")
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.invoice-copy {
			page-break-inside: avoid; /* Prevent cutting copy in middle */
			border: none;
		}
		</style>
		</head>
		<body>` + fullHTML.String() + `</body></html>`

	// Create temp HTML file
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "invoice_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	// Generate PDF with headless Chrome
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
