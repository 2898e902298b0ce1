// Package tokens holds the reference table of popular Solana tokens the
// service exposes to callers and embeds into model prompts. The table is a
// curated subset; Jupiter resolves everything else at execution time.
package tokens

// Token describes one SPL token the generated strategies may reference.
type Token struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Mint     string `json:"mint"`
	Decimals int    `json:"decimals"`
}

// Popular maps symbol to token metadata for mainnet-beta. Immutable after
// process start.
var Popular = map[string]Token{
	"SOL": {
		Symbol:   "SOL",
		Name:     "Solana",
		Mint:     "So11111111111111111111111111111111111111112",
		Decimals: 9,
	},
	"USDC": {
		Symbol:   "USDC",
		Name:     "USD Coin",
		Mint:     "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		Decimals: 6,
	},
	"USDT": {
		Symbol:   "USDT",
		Name:     "Tether USD",
		Mint:     "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB",
		Decimals: 6,
	},
	"BTC": {
		Symbol:   "BTC",
		Name:     "Bitcoin",
		Mint:     "9n4nbM75f5Ui33ZbPYXn59EwSgE8CGsHtAeTH5YFeJ9E",
		Decimals: 6,
	},
	"ETH": {
		Symbol:   "ETH",
		Name:     "Ethereum",
		Mint:     "7vfCXTUXx5WJV5JADk17DUJ4ksgau7utNKj4b963voxs",
		Decimals: 8,
	},
}

// Lookup returns the metadata for a symbol, if known.
func Lookup(symbol string) (Token, bool) {
	t, ok := Popular[symbol]
	return t, ok
}
