package domain

// TransferResult holds both balances produced by a transfer.
type TransferResult struct {
	NewSource      Money
	NewDestination Money
}
