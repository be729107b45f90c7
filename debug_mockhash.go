package main

import (
	"fmt"

	"btc-yield.backend/internal/infrastructure/blockchain"
)

func main() {
	seeds := []string{
		"convert|dev-user|1000000",
		"stake|dev-user|1000000",
	}

	for _, seed := range seeds {
		fmt.Printf("%s: %s\n", seed, blockchain.MockTxHash(seed))
	}
}
