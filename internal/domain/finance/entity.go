package finance

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category is the fixed transaction vocabulary used by the bookkeeping log.
type Category string

const (
	CategoryPendapatan       Category = "Pendapatan"
	CategoryPendapatanLain   Category = "Pendapatan Lain"
	CategoryBebanPokok       Category = "Beban Pokok"
	CategoryBebanOperasional Category = "Beban Operasional"
	CategoryAsetTetap        Category = "Aset Tetap"
	CategoryZIS              Category = "ZIS"
	CategoryPengeluaranLain  Category = "Pengeluaran lain"
)

// IsIncome reports whether the category is income-like for ledger and
// statement purposes (substring match on "Pendapatan").
func (c Category) IsIncome() bool {
	return strings.Contains(string(c), "Pendapatan")
}

// IsExpense reports whether the category is an expense ("Beban" prefix).
func (c Category) IsExpense() bool {
	return strings.HasPrefix(string(c), "Beban")
}

func (c Category) IsZIS() bool {
	return c == CategoryZIS
}

// IsCredit reports whether amounts in this category sit on the credit side of
// the ledger: income-like categories and ZIS.
func (c Category) IsCredit() bool {
	return c.IsIncome() || c.IsZIS()
}

// Transaction is one entry of the append-only, category-tagged bookkeeping
// log. The log is owned by the recording side of the application; the
// statement builders only read it.
type Transaction struct {
	ID          string
	Date        time.Time
	Description string
	Category    Category
	Amount      decimal.Decimal
	AIStatus    string
	CreatedAt   time.Time
}
