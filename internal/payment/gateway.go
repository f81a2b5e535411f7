package payment

// Charge is the gateway's record of a captured payment. Amount is the
// authoritative captured amount in minor currency units.
type Charge struct {
	ID     string
	Amount int64
}

// Gateway captures payments. Implementations must either capture the full
// amount and return the charge, or return an error having moved no money.
type Gateway interface {
	Charge(amount int64, currency, source string) (Charge, error)
}
