package entities

// Felt is a Starknet field element in its hex or decimal string form.
// Calldata stays string-typed end to end so values round-trip through the
// quote builder and the SDK without precision loss.
type Felt string

// Call is one contract invocation inside a sponsored batch
type Call struct {
	ContractAddress string `json:"contractAddress"`
	Entrypoint      string `json:"entrypoint"`
	Calldata        []Felt `json:"calldata"`
}
