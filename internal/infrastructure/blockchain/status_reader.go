package blockchain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"

	"btc-yield.backend/internal/domain/entities"
)

// txStatusResult is the accepted response shape of
// starknet_getTransactionStatus. Finality wins over execution status when
// both are present.
type txStatusResult struct {
	FinalityStatus  string `json:"finality_status"`
	ExecutionStatus string `json:"execution_status"`
}

// RPCStatusReader reads transaction status over JSON-RPC
type RPCStatusReader struct {
	client *rpc.Client
}

// NewRPCStatusReader dials the chain RPC endpoint
func NewRPCStatusReader(rpcURL string) (*RPCStatusReader, error) {
	client, err := rpc.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial chain rpc: %w", err)
	}
	return &RPCStatusReader{client: client}, nil
}

// TransactionStatus queries live finality status for a hash
func (r *RPCStatusReader) TransactionStatus(ctx context.Context, hash string) (string, error) {
	var result txStatusResult
	if err := r.client.CallContext(ctx, &result, "starknet_getTransactionStatus", hash); err != nil {
		return "", err
	}
	if result.FinalityStatus != "" {
		return result.FinalityStatus, nil
	}
	if result.ExecutionStatus != "" {
		return result.ExecutionStatus, nil
	}
	return entities.TxStatusUnknown, nil
}

// Close releases the underlying RPC connection
func (r *RPCStatusReader) Close() {
	r.client.Close()
}
