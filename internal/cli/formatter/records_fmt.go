package formatter

import (
	"github.com/avelacorte/moneta/internal/cadence"
	"github.com/avelacorte/moneta/internal/domain"
)

// FormatIncomes renders the income list with normalized monthly amounts.
func FormatIncomes(incomes []*domain.Income) string {
	if len(incomes) == 0 {
		return Dim("No incomes recorded.") + "\n"
	}
	headers := []string{"ID", "NAME", "AMOUNT", "MONTHLY"}
	rows := make([][]string, 0, len(incomes))
	for _, i := range incomes {
		rows = append(rows, []string{
			TruncID(i.ID),
			Bold(i.Name),
			CadenceLabel(i.Recurring),
			Money(cadence.Recurring(i.Recurring)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatBills renders the bill list with normalized monthly amounts.
func FormatBills(bills []*domain.Bill) string {
	if len(bills) == 0 {
		return Dim("No bills recorded.") + "\n"
	}
	headers := []string{"ID", "NAME", "CATEGORY", "AMOUNT", "MONTHLY"}
	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		category := b.Category
		if category == "" {
			category = "--"
		}
		rows = append(rows, []string{
			TruncID(b.ID),
			Bold(b.Name),
			Dim(category),
			CadenceLabel(b.Recurring),
			Money(cadence.Recurring(b.Recurring)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatAccounts renders balance accounts split by class markers.
func FormatAccounts(accounts []*domain.Account) string {
	if len(accounts) == 0 {
		return Dim("No accounts recorded.") + "\n"
	}
	headers := []string{"ID", "NAME", "CLASS", "LIQUID", "BALANCE"}
	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		class := StyleGreen.Render("asset")
		if a.Class == domain.AccountLiability {
			class = StyleRed.Render("liability")
		}
		liquid := Dim("--")
		if a.Liquid {
			liquid = StyleBlue.Render("yes")
		}
		rows = append(rows, []string{
			TruncID(a.ID),
			Bold(a.Name),
			class,
			liquid,
			Money(a.Balance),
		})
	}
	return RenderTable(headers, rows)
}

// FormatPurchases renders the purchase list, archived rows dimmed.
func FormatPurchases(purchases []*domain.Purchase) string {
	if len(purchases) == 0 {
		return Dim("No purchases recorded.") + "\n"
	}
	headers := []string{"ID", "ITEM", "AMOUNT", "DATE", "STATUS", "NOTES"}
	rows := make([][]string, 0, len(purchases))
	for _, p := range purchases {
		item := Bold(p.Item)
		if p.Archived() {
			item = Dim(p.Item + " (archived)")
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			item,
			Money(p.Amount),
			p.PurchaseDate.Format("2006-01-02"),
			ReconPill(p.ReconciliationStatus),
			Dim(p.Notes),
		})
	}
	return RenderTable(headers, rows)
}
