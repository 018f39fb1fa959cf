// Package inventory provides stock-check collaborators for the shopping
// cart's checkout. The contract is domain.StockChecker: "does this item have
// sufficient stock?" — pass or fail. Implementations here range from the
// demo placeholder rule to a stock-table-backed checker; a real inventory
// service client slots in behind the same interface.
package inventory
