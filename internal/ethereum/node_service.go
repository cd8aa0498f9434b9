package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrNoRevertReason error = errors.New("transaction reverted without a reason")

// NodeService follows submitted transactions on the node.
type NodeService struct {
	client       EthClient
	pollInterval time.Duration
}

func NewNodeService(ethClient EthClient, pollInterval time.Duration) *NodeService {
	return &NodeService{
		client:       ethClient,
		pollInterval: pollInterval,
	}
}

// WaitMined polls for the receipt of hash until it exists or ctx is done.
// Lookup errors are treated as "not yet mined".
func (s *NodeService) WaitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		receipt, err := s.client.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, geth.NotFound) {
			lastErr = fmt.Errorf("receipt %s: %w", hash.Hex(), err)
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ctx.Err(), lastErr)
		case <-ticker.C:
		}
	}
}

// ReplayRevert re-executes tx as a call against the state it was mined on
// and returns the revert reason the contract produced.
func (s *NodeService) ReplayRevert(ctx context.Context, from common.Address, tx *types.Transaction, blockNumber *big.Int) (string, error) {
	var at *big.Int
	if blockNumber != nil && blockNumber.Sign() > 0 {
		at = new(big.Int).Sub(blockNumber, big.NewInt(1))
	}

	msg := geth.CallMsg{
		From:  from,
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}
	_, err := s.client.CallContract(ctx, msg, at)
	if err == nil {
		return "", ErrNoRevertReason
	}
	if reason, ok := RevertReason(err); ok {
		return reason, nil
	}
	return "", fmt.Errorf("replay %s: %w", tx.Hash().Hex(), err)
}
