package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/shopspring/decimal"
)

type ProductSortColumn string

const (
	SortByName    ProductSortColumn = "name"
	SortByRevenue ProductSortColumn = "revenue"
	SortByOrders  ProductSortColumn = "orders"
	SortByTrend   ProductSortColumn = "trend"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ProductQuery drives the "My Reports" product table
type ProductQuery struct {
	Search    string
	SortBy    ProductSortColumn
	Direction SortDirection
}

// NewProductQuery validates raw query values. Empty values fall back to revenue, desc.
func NewProductQuery(search, sortBy, direction string) (ProductQuery, error) {
	q := ProductQuery{Search: search, SortBy: SortByRevenue, Direction: SortDesc}
	switch col := ProductSortColumn(strings.ToLower(sortBy)); col {
	case "":
	case SortByName, SortByRevenue, SortByOrders, SortByTrend:
		q.SortBy = col
	default:
		return ProductQuery{}, fmt.Errorf("invalid sort column %q", sortBy)
	}
	switch dir := SortDirection(strings.ToLower(direction)); dir {
	case "":
	case SortAsc, SortDesc:
		q.Direction = dir
	default:
		return ProductQuery{}, fmt.Errorf("invalid sort direction %q", direction)
	}
	return q, nil
}

var currencyStripper = strings.NewReplacer("$", "", ",", "")

// ParseRevenue turns a formatted amount like "$12,450" into a decimal.
// Unparseable amounts count as zero.
func ParseRevenue(formatted string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(currencyStripper.Replace(formatted)))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FilterProducts returns a new slice of products whose name contains the
// search term, sorted by the requested column. The input is not reordered.
func FilterProducts(products []models.Product, q ProductQuery) []models.Product {
	term := strings.ToLower(q.Search)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareProducts(out[i], out[j], q.SortBy)
		if q.Direction == SortAsc {
			return cmp < 0
		}
		return cmp > 0
	})
	return out
}

func compareProducts(a, b models.Product, col ProductSortColumn) int {
	switch col {
	case SortByName:
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	case SortByOrders:
		return a.Orders - b.Orders
	case SortByTrend:
		switch {
		case a.Trend < b.Trend:
			return -1
		case a.Trend > b.Trend:
			return 1
		}
		return 0
	default:
		return ParseRevenue(a.Revenue).Cmp(ParseRevenue(b.Revenue))
	}
}
