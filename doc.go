// Package hasilbumi keeps the ledger of a small trader in agricultural
// commodities: cloves (cengkeh), cardamom (kapulaga), pepper (lada), coffee
// (kopi), or any item of the catalog.
//
// The core functionalities include:
//   - Ledger Management: recording purchases and sales in insertion order.
//     The order of entry, not the date, defines the recent activity.
//   - Item Catalog: the list of item names offered when recording a
//     transaction. Removing an item never removes its transactions.
//   - Aggregation: pure functions computing the stock per item, the cash
//     flow, period and item filters, and summaries. They take the
//     transactions as an argument and never cache anything.
//   - Data Persistence: encoding the ledger as JSON lines and the catalog as
//     a JSON array, saved to a [store.Store] after every change by a Session.
//
// This package serves as the foundational logic for the `hb` command-line
// tool.
package hasilbumi
