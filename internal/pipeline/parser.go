package pipeline

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

// Parse turns raw pipe-delimited lines into validated transactions.
// A line failing any single check is counted and skipped; no partially
// valid record is ever kept. Accepted records preserve input order, so
// len(valid) + invalid == len(rawLines) always holds.
func Parse(rawLines []string) ([]domain.Transaction, int) {
	valid := make([]domain.Transaction, 0, len(rawLines))
	invalid := 0

	for _, line := range rawLines {
		tx, ok := parseLine(line)
		if !ok {
			invalid++
			continue
		}
		valid = append(valid, tx)
	}

	return valid, invalid
}

// parseLine validates and cleans a single raw record. The check order is
// fixed: field count, transaction id prefix, product id prefix, blank
// customer/region, numeric conversion, positivity.
func parseLine(line string) (domain.Transaction, bool) {
	parts := strings.Split(line, "|")
	if len(parts) != 8 {
		return domain.Transaction{}, false
	}

	transactionID, date, productID, productName := parts[0], parts[1], parts[2], parts[3]
	quantityStr, priceStr, customerID, region := parts[4], parts[5], parts[6], parts[7]

	if !strings.HasPrefix(transactionID, "T") {
		return domain.Transaction{}, false
	}
	if !strings.HasPrefix(productID, "P") {
		return domain.Transaction{}, false
	}
	if strings.TrimSpace(customerID) == "" || strings.TrimSpace(region) == "" {
		return domain.Transaction{}, false
	}

	// Commas inside a product name are noise from the upstream export.
	productName = strings.ReplaceAll(productName, ",", " ")

	// Thousands separators in numeric fields.
	quantityStr = strings.ReplaceAll(quantityStr, ",", "")
	priceStr = strings.ReplaceAll(priceStr, ",", "")

	quantity, err := strconv.ParseInt(quantityStr, 10, 64)
	if err != nil {
		return domain.Transaction{}, false
	}
	unitPrice, err := decimal.NewFromString(priceStr)
	if err != nil {
		return domain.Transaction{}, false
	}

	if quantity <= 0 || unitPrice.Sign() <= 0 {
		return domain.Transaction{}, false
	}

	return domain.Transaction{
		TransactionID: transactionID,
		Date:          date,
		ProductID:     productID,
		ProductName:   productName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    customerID,
		Region:        region,
	}, true
}
